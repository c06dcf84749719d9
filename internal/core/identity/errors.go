package identity

import (
	"errors"
	"fmt"
)

// Sentinel errors for account operations
var (
	// ErrAccountNotFound is returned when an account lookup finds no record
	ErrAccountNotFound = errors.New("account not found")

	// ErrEmailTaken is returned when registering with an email that
	// already belongs to another account
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login fails. Wrong email and
	// wrong password are indistinguishable on purpose.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned when a token fails verification
	ErrInvalidToken = errors.New("invalid or expired token")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
