// Package domain defines the records exchanged when a payment request is
// sealed: the encrypted payload body, the device metadata snapshot and the
// prepared request handed to the transport.
package domain

import (
	"github.com/allisson/cardshield/internal/errors"
)

var (
	// ErrInvalidRequest indicates a payment request that fails validation and
	// cannot be encrypted.
	ErrInvalidRequest = errors.Wrap(errors.ErrInvalidInput, "payment request is invalid")

	// ErrMissingSessionID indicates encryption was requested without a client session.
	ErrMissingSessionID = errors.Wrap(errors.ErrInvalidInput, "client session id is required")

	// ErrInvalidMetadata indicates a device metadata snapshot missing required members.
	ErrInvalidMetadata = errors.Wrap(errors.ErrInvalidInput, "invalid device metadata")
)
