package services

import (
	"errors"
	"fmt"
	"strings"

	"bookhaven/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for all stored password hashes
const bcryptCost = 10

// UserRepository interface for user data operations
type UserRepository interface {
	Create(username, email, passwordHash string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdatePassword(id, passwordHash string) error
}

// AuthService handles registration, login and password management
type AuthService struct {
	users  UserRepository
	tokens *TokenService
	email  EmailService

	// resetBaseURL is the password-reset page the emailed link points at;
	// the token is appended as the final path segment.
	resetBaseURL string
}

// NewAuthService creates a new authentication service
func NewAuthService(users UserRepository, tokens *TokenService, email EmailService, resetBaseURL string) *AuthService {
	return &AuthService{
		users:        users,
		tokens:       tokens,
		email:        email,
		resetBaseURL: strings.TrimRight(resetBaseURL, "/"),
	}
}

// Register creates a new user account, storing only the password's hash
func (s *AuthService) Register(req *models.UserCreateRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(req.Email); err == nil {
		return nil, models.ErrUserExists
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.users.Create(req.Username, req.Email, string(hash))
}

// Login checks the credentials and issues a bearer token. Unknown email and
// wrong password both report the same generic error so neither leaks.
func (s *AuthService) Login(req *models.LoginRequest) (string, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return "", models.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}

// ChangePassword rotates a user's password. The bearer token must be present,
// valid, and issued for the same user id the path names.
func (s *AuthService) ChangePassword(userID, bearerToken string, req *models.PasswordChangeRequest) error {
	if err := req.ValidateNewPassword(); err != nil {
		return err
	}

	if bearerToken == "" {
		return models.ErrNoToken
	}

	tokenUserID, err := s.tokens.Verify(bearerToken)
	if err != nil {
		return err
	}
	if tokenUserID != userID {
		return models.ErrForbidden
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return models.ErrOldPasswordWrong
	}

	if req.NewPassword != req.ConfirmPassword {
		return models.NewValidationError("New password and confirm password do not match")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.users.UpdatePassword(userID, string(hash))
}

// ForgotPassword issues a one-hour reset token and emails the reset link.
// A delivery failure is reported distinctly from validation and lookup
// failures so the handler can surface it as a server-side error.
func (s *AuthService) ForgotPassword(req *models.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/%s", s.resetBaseURL, token)
	if err := s.email.SendPasswordResetEmail(user.Email, resetLink); err != nil {
		return fmt.Errorf("%w: %v", models.ErrEmailDelivery, err)
	}

	return nil
}
