// Package domain defines the cryptographic domain models of the payment
// encryption pipeline: algorithm identifiers, recipient keys, the compact token
// wire form and encryption errors.
package domain

import (
	"fmt"

	"github.com/allisson/cardshield/internal/errors"
)

// Encryption failure reasons. Every reason wraps errors.ErrEncryption and is
// carried by an EncryptionError.
var (
	// ErrRandomGeneration indicates the random source failed to produce key or IV bytes.
	ErrRandomGeneration = errors.Wrap(errors.ErrEncryption, "random generation failed")

	// ErrKeyUnavailable indicates the recipient RSA key is missing or malformed.
	ErrKeyUnavailable = errors.Wrap(errors.ErrEncryption, "rsa key not available")

	// ErrRSAOperation indicates RSA-OAEP wrapping or unwrapping failed.
	ErrRSAOperation = errors.Wrap(errors.ErrEncryption, "rsa operation failed")

	// ErrCipherOperation indicates AES-CBC encryption, decryption or padding failed.
	ErrCipherOperation = errors.Wrap(errors.ErrEncryption, "cipher operation failed")

	// ErrHMACOperation indicates the authentication tag could not be computed.
	ErrHMACOperation = errors.Wrap(errors.ErrEncryption, "hmac operation failed")

	// ErrSerialization indicates the header or payload could not be encoded or decoded.
	ErrSerialization = errors.Wrap(errors.ErrEncryption, "serialization failed")

	// ErrAuthentication indicates a token whose authentication tag does not verify.
	ErrAuthentication = errors.Wrap(errors.ErrEncryption, "authentication failed")
)

// Input errors of the crypto domain.
var (
	// ErrInvalidToken indicates a string that is not a 5 segment compact token.
	ErrInvalidToken = errors.Wrap(errors.ErrInvalidInput, "invalid compact token")

	// ErrInvalidEncryptionKey indicates a key distribution record that cannot be used.
	ErrInvalidEncryptionKey = errors.Wrap(errors.ErrInvalidInput, "invalid encryption key")

	// ErrKeyNotFound indicates no key is stored under the requested tag.
	ErrKeyNotFound = errors.Wrap(errors.ErrNotFound, "key not found")
)

// EncryptionError aborts an encryption or decryption call. Reason is one of the
// reason sentinels above and Err is the underlying primitive failure, if any.
// errors.Is matches both.
type EncryptionError struct {
	Reason error
	Err    error
}

// NewEncryptionError returns an EncryptionError for reason caused by err.
func NewEncryptionError(reason, err error) *EncryptionError {
	return &EncryptionError{Reason: reason, Err: err}
}

func (e *EncryptionError) Error() string {
	if e.Err == nil {
		return e.Reason.Error()
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

// Unwrap returns the reason and the cause.
func (e *EncryptionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}
