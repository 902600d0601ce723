package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("permission denied")
	ErrConflict           = errors.New("conflict")
	ErrInvariantViolation = errors.New("invariant violation")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// InvariantError reports an operation that would break a store-wide rule,
// such as leaving the system without an administrator.
type InvariantError struct {
	Rule    string
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant %s: %s", e.Rule, e.Message)
}

func (e *InvariantError) Unwrap() error { return ErrInvariantViolation }

// NewInvariantError creates an InvariantError.
func NewInvariantError(rule, message string) *InvariantError {
	return &InvariantError{Rule: rule, Message: message}
}

// PermissionError reports that a principal's role does not satisfy an
// operation's requirement.
type PermissionError struct {
	Role     Role
	Required string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: role %q does not satisfy %s", e.Role, e.Required)
}

func (e *PermissionError) Unwrap() error { return ErrForbidden }
