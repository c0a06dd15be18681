// Package domain defines the payment product, field and request models that
// collect payment instrument data before it is encrypted.
package domain

import (
	"github.com/allisson/cardshield/internal/errors"
)

// Payment request error definitions.
//
// All of them wrap errors.ErrInvalidInput: they are raised by store mutations
// that would violate an invariant, and the store is left unchanged.
var (
	// ErrFieldNotFound indicates the field id does not exist on the bound payment product.
	ErrFieldNotFound = errors.Wrap(errors.ErrInvalidInput, "field not found on payment product")

	// ErrFieldReadOnly indicates a write to a field the bound account on file marks read-only.
	ErrFieldReadOnly = errors.Wrap(errors.ErrInvalidInput, "field is read-only")

	// ErrInvalidProduct indicates a payment product definition is unusable.
	ErrInvalidProduct = errors.Wrap(errors.ErrInvalidInput, "invalid payment product")

	// ErrAccountOnFileMismatch indicates an account on file was bound to a request
	// for a different payment product.
	ErrAccountOnFileMismatch = errors.Wrap(
		errors.ErrInvalidInput,
		"account on file belongs to another payment product",
	)
)
