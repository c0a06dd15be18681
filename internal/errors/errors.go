// Package errors provides the domain error taxonomy shared by the payment data
// protection pipeline. Modules wrap these sentinels so callers can classify a
// failure with errors.Is regardless of which layer produced it.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a requested item (field, key, attribute) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a caller supplied an argument the core cannot accept:
	// an unknown field id, a write to a read-only field, or a malformed request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEncryption indicates the encryption pipeline aborted. No partial token is
	// ever returned alongside it.
	ErrEncryption = errors.New("encryption error")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
