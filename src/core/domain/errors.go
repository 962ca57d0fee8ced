// Package domain contains the Beer entity, its value types, and the
// error taxonomy shared across the application. It depends only on the
// standard library plus the uuid and decimal value types.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when a write conflicts with current state,
	// e.g. an optimistic version mismatch.
	ErrConflict = errors.New("conflict")

	// ErrConversion is returned when a value cannot be converted between
	// its transfer and domain representations, e.g. malformed date text.
	ErrConversion = errors.New("conversion failed")

	// ErrFieldNotFound is returned when constraint documentation is
	// requested for a field path that does not exist on the type.
	ErrFieldNotFound = errors.New("field not found")
)

// DomainError wraps a sentinel with human-readable context.
type DomainError struct {
	// Base is the underlying sentinel (e.g. ErrNotFound).
	Base error

	// Message provides human-readable context.
	Message string

	// Field names the field involved, when one applies.
	Field string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Base.Error(), e.Message, e.Field)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	}
	return e.Base.Error()
}

// Unwrap returns the base error for errors.Is/As support.
func (e *DomainError) Unwrap() error {
	return e.Base
}

// NewNotFoundError creates a not found error naming the resource.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{Base: ErrNotFound, Message: resource}
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{Base: ErrInvalidInput, Message: message, Field: field}
}

// NewConflictError creates a conflict error with context.
func NewConflictError(message string) *DomainError {
	return &DomainError{Base: ErrConflict, Message: message}
}

// NewConversionError creates a conversion error for a field and the raw
// value that failed to convert.
func NewConversionError(field, value string) *DomainError {
	return &DomainError{
		Base:    ErrConversion,
		Message: fmt.Sprintf("cannot convert %q", value),
		Field:   field,
	}
}

// NewFieldNotFoundError creates an error for a constraint lookup against a
// field path the type does not declare.
func NewFieldNotFoundError(typeName, path string) *DomainError {
	return &DomainError{
		Base:    ErrFieldNotFound,
		Message: fmt.Sprintf("no field %q on %s", path, typeName),
		Field:   path,
	}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsConversion checks if an error is a conversion error.
func IsConversion(err error) bool {
	return errors.Is(err, ErrConversion)
}

// IsFieldNotFound checks if an error is a field lookup error.
func IsFieldNotFound(err error) bool {
	return errors.Is(err, ErrFieldNotFound)
}
