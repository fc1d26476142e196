package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrContentRejected is returned when moderation flags a submission
	ErrContentRejected = errors.New("content rejected by moderation")

	// ErrUnauthorized is returned when an admin session is missing or invalid
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal is returned when an internal error occurs
	ErrInternal = errors.New("internal error")
)

// ValidationError carries the per-field problems of a rejected submission
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, ", ")
}

// IsValidation reports whether err wraps a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
