package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateRange   = errors.New("date from is after date to")
	ErrInvalidPageSize    = errors.New("page size must be greater than zero")
	ErrInvalidPage        = errors.New("page must be 1 or greater")
	ErrNegativeTotal      = errors.New("total count cannot be negative")
	ErrUnknownStatus      = errors.New("unknown status value")
	ErrInvalidTransition  = errors.New("invalid settlement status transition")
	ErrSettlementNotFound = errors.New("settlement not found")
)

// ValidationError reports malformed caller input (filter criteria, pagination parameters).
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError wraps err as a ValidationError on field
func NewValidationError(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// IsValidationError reports whether err, or anything it wraps, is a *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
