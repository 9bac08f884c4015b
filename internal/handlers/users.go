package handlers

import (
	"net/http"
	"strings"

	"bookhaven/internal/models"

	"github.com/go-chi/chi/v5"
)

// AuthService interface for user auth operations
type AuthService interface {
	Register(req *models.UserCreateRequest) (*models.User, error)
	Login(req *models.LoginRequest) (string, error)
	ChangePassword(userID, bearerToken string, req *models.PasswordChangeRequest) error
	ForgotPassword(req *models.ForgotPasswordRequest) error
}

// UserHandler handles registration, login and password management requests
type UserHandler struct {
	auth AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(auth AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

// Routes mounts the user endpoints
func (h *UserHandler) Routes(r chi.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/change-password/{userId}", h.ChangePassword)
	r.Post("/forgot-password", h.ForgotPassword)
}

// loginResponse carries the issued bearer token
type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Register creates a new account
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.UserCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, err)
		return
	}

	if _, err := h.auth.Register(&req); err != nil {
		handleError(w, err)
		return
	}

	writeMessage(w, http.StatusCreated, "User registered successfully")
}

// Login authenticates a user and returns a bearer token
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, err)
		return
	}

	token, err := h.auth.Login(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Message: "Login successful", Token: token})
}

// ChangePassword rotates the password for the user named in the path
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordChangeRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, err)
		return
	}

	token := bearerToken(r)
	if err := h.auth.ChangePassword(chi.URLParam(r, "userId"), token, &req); err != nil {
		handleError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Password changed successfully")
}

// ForgotPassword emails a password reset link
func (h *UserHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, err)
		return
	}

	if err := h.auth.ForgotPassword(&req); err != nil {
		handleError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Password reset link sent to your email")
}

// bearerToken reads the raw token from the Authorization header. A standard
// "Bearer " prefix is tolerated and stripped.
func bearerToken(r *http.Request) string {
	token := r.Header.Get("Authorization")
	return strings.TrimPrefix(token, "Bearer ")
}
