package models

import (
	"errors"
	"strings"
)

// Common errors used throughout the application
var (
	ErrBookNotFound       = errors.New("book not found in store or sold out")
	ErrCartItemNotFound   = errors.New("item not found in cart")
	ErrUserNotFound       = errors.New("user not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNoToken            = errors.New("no token provided")
	ErrForbidden          = errors.New("not authorized for this user")
	ErrOldPasswordWrong   = errors.New("old password is incorrect")
	ErrEmailDelivery      = errors.New("error sending email")
)

// ValidationError carries every rule a request violated, not just the first.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Details, "; ")
}

// NewValidationError creates a validation error from one or more rule messages.
func NewValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
