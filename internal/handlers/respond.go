package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookhaven/internal/models"

	"github.com/rs/zerolog/log"
)

// errorResponse is the single error envelope every endpoint uses. Validation
// failures additionally list every violated rule.
type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// messageResponse is the plain success envelope for message-only endpoints
type messageResponse struct {
	Message string `json:"message"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeMessage writes a {"message": ...} success response
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeError writes the error envelope
func writeError(w http.ResponseWriter, status int, message string, details ...string) {
	writeJSON(w, status, errorResponse{Error: message, Details: details})
}

// handleError maps an error from the service layer onto the HTTP taxonomy.
// Anything unexpected is logged and reported as a generic server error so no
// internal detail leaks to the client.
func handleError(w http.ResponseWriter, err error) {
	if ve, ok := models.AsValidationError(err); ok {
		writeError(w, http.StatusBadRequest, "Validation failed", ve.Details...)
		return
	}

	switch {
	case errors.Is(err, models.ErrBookNotFound):
		writeError(w, http.StatusNotFound, "Book not found in store or Sold out")
	case errors.Is(err, models.ErrCartItemNotFound):
		writeError(w, http.StatusNotFound, "Item not found in cart")
	case errors.Is(err, models.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, models.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, models.ErrUserExists):
		writeError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, models.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, models.ErrNoToken):
		writeError(w, http.StatusUnauthorized, "Unauthorized: No token provided")
	case errors.Is(err, models.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "Unauthorized: Invalid or expired token")
	case errors.Is(err, models.ErrForbidden):
		writeError(w, http.StatusForbidden, "You are not authorized to change the password for this user")
	case errors.Is(err, models.ErrOldPasswordWrong):
		writeError(w, http.StatusUnauthorized, "Old password is incorrect")
	case errors.Is(err, models.ErrEmailDelivery):
		log.Error().Err(err).Msg("email delivery failed")
		writeError(w, http.StatusInternalServerError, "Error sending email")
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "Server Error")
	}
}

// decodeJSON decodes a request body, reporting malformed input as a
// validation failure
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return models.NewValidationError("Invalid request body")
	}
	return nil
}
