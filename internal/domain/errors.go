package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrUnavailable = errors.New("database unavailable")

	// ErrInvalidTransition marks a status change outside the listing
	// lifecycle. errors.Is(err, ErrValidation) holds for it.
	ErrInvalidTransition = fmt.Errorf("%w: status transition not allowed", ErrValidation)
)

// ValidationError names the field that violated a data-model invariant.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
