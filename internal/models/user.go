package models

import (
	"regexp"
	"strings"
	"time"
)

// User represents a registered customer. Only the bcrypt hash of the password
// is ever persisted; password-change fields live on request types, never here.
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserCreateRequest represents the data needed to register a new user
type UserCreateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordChangeRequest represents a password rotation request
type PasswordChangeRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ForgotPasswordRequest represents a password reset request
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

var (
	// Email validation regex
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	passwordLowerRegex  = regexp.MustCompile(`[a-z]`)
	passwordUpperRegex  = regexp.MustCompile(`[A-Z]`)
	passwordDigitRegex  = regexp.MustCompile(`[0-9]`)
	passwordSymbolRegex = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// Validate validates registration data, collecting every violated rule.
func (req *UserCreateRequest) Validate() error {
	var details []string

	if strings.TrimSpace(req.Username) == "" {
		details = append(details, "Username is required")
	}
	details = append(details, emailRules(req.Email)...)
	if req.Password == "" {
		details = append(details, "Password is required")
	}
	details = append(details, PasswordRules(req.Password)...)

	if len(details) > 0 {
		return NewValidationError(details...)
	}
	return nil
}

// Validate validates a forgot-password request
func (req *ForgotPasswordRequest) Validate() error {
	if details := emailRules(req.Email); len(details) > 0 {
		return NewValidationError(details...)
	}
	return nil
}

// ValidateNewPassword checks the new password against the same complexity
// rules as registration, collecting every violated rule.
func (req *PasswordChangeRequest) ValidateNewPassword() error {
	var details []string

	if req.OldPassword == "" {
		details = append(details, "Old password is required")
	}
	if req.NewPassword == "" {
		details = append(details, "New password is required")
	}
	for _, rule := range PasswordRules(req.NewPassword) {
		details = append(details, strings.Replace(rule, "Password", "New password", 1))
	}

	if len(details) > 0 {
		return NewValidationError(details...)
	}
	return nil
}

func emailRules(email string) []string {
	var details []string
	if strings.TrimSpace(email) == "" {
		details = append(details, "Email is required")
	}
	if !emailRegex.MatchString(email) {
		details = append(details, "Invalid email format")
	}
	return details
}

// PasswordRules returns every complexity rule the password fails to meet.
func PasswordRules(password string) []string {
	var details []string

	if len(password) < 6 {
		details = append(details, "Password must be at least 6 characters")
	}
	if !passwordLowerRegex.MatchString(password) {
		details = append(details, "Password must contain at least one lowercase letter")
	}
	if !passwordUpperRegex.MatchString(password) {
		details = append(details, "Password must contain at least one uppercase letter")
	}
	if !passwordDigitRegex.MatchString(password) {
		details = append(details, "Password must contain at least one digit")
	}
	if !passwordSymbolRegex.MatchString(password) {
		details = append(details, "Password must contain at least one special character")
	}

	return details
}
