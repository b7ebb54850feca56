package errors

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every layer of the session server.
var (
	// Lookup errors
	ErrNotFound = errors.New("not found")

	// Authentication errors
	ErrBadCredential = errors.New("bad credential")
	ErrUnauthorized  = errors.New("unauthorized")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")

	// Persistence errors
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("service unavailable")

	// Request errors
	ErrInvalidRequest = errors.New("invalid request")

	// Token errors
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrTokenExpired     = errors.New("token expired")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Unavailable marks a downstream failure (store or database) as ErrUnavailable
// while keeping the original cause in the chain.
func Unavailable(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", fmt.Sprintf(format, args...), ErrUnavailable, err)
}

// Retryable reports whether the caller may retry the operation later.
// Only downstream unavailability qualifies.
func Retryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New is errors.New, re-exported so callers need a single errors import.
func New(text string) error {
	return errors.New(text)
}
