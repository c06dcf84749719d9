package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrNotFound is returned when a post is missing or soft-deleted
	ErrNotFound = errors.New("post not found")

	// ErrForbidden is returned when a non-author attempts a mutation
	ErrForbidden = errors.New("not authorized")

	// ErrSlugTaken is returned when a live post already holds the slug
	ErrSlugTaken = errors.New("post with same title already exists")
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
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsNotFound checks if error is a not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if error is a duplicate-slug conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrSlugTaken)
}
