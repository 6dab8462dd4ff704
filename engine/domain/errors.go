package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for lookups and dataset validation.
var (
	ErrNotFound          = errors.New("employee not found")
	ErrInvalidEmployee   = errors.New("invalid employee record")
	ErrInvalidID         = errors.New("id must be positive")
	ErrDuplicateID       = errors.New("duplicate id")
	ErrEmptyName         = errors.New("name is empty")
	ErrUnknownDepartment = errors.New("unknown department")
	ErrSalaryOutOfRange  = errors.New("salary out of range")
	ErrAgeOutOfRange     = errors.New("age out of range")
)

// ValidationError wraps a sentinel with the offending field and value.
type ValidationError struct {
	Field   string
	Value   string
	Wrapped error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s (value=%q)", e.Wrapped, e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Wrapped }

// NewValidationError creates a ValidationError.
func NewValidationError(field, value string, wrapped error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Wrapped: wrapped}
}
