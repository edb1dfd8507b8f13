package services

import (
	"errors"
	"fmt"

	"github.com/swarmshield/swarmshield/ent"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition is returned when a status change is not permitted
	// from the entity's current status
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// wrapEntError translates ent storage errors into the service sentinel set so
// callers never depend on ent error types.
func wrapEntError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case ent.IsNotFound(err):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case ent.IsConstraintError(err):
		return fmt.Errorf("%s: %w", what, ErrAlreadyExists)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}
