package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrSampleNotFound = fmt.Errorf("%w: sample", ErrNotFound)
	ErrResultNotFound = fmt.Errorf("%w: result", ErrNotFound)

	// Validation errors
	ErrMalformedSequence = errors.New("sequence has more than two distinct symbols")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrEmptySample       = errors.New("sample contains no data")

	// Degenerate test conditions. Not a hard failure: callers fall back to
	// the documented zero-variance behavior (no z-score, p = 1.0).
	ErrDegenerateVariance = errors.New("variance is zero, z-score undefined")
)

// Error constructors with context
func NewNotFoundError(resource string, name string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, resource, name)
}

func NewInvalidParameterError(param string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParameter, param, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrMalformedSequence) ||
		errors.Is(err, ErrInvalidParameter) ||
		errors.Is(err, ErrEmptySample)
}

func IsDegenerateError(err error) bool {
	return errors.Is(err, ErrDegenerateVariance)
}
