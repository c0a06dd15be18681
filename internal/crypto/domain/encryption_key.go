package domain

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"fmt"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/cardshield/internal/validation"
)

// EncryptionKey is the record returned by key distribution: the identifier the
// recipient uses to select its private key and the public key as standard
// base64 of DER encoded SubjectPublicKeyInfo (PKCS#1 is accepted as well).
type EncryptionKey struct {
	KeyID     string `json:"keyId"`
	PublicKey string `json:"publicKey"`
}

// NewEncryptionKey encodes pub in the key distribution wire form.
func NewEncryptionKey(keyID string, pub *rsa.PublicKey) (EncryptionKey, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return EncryptionKey{}, NewEncryptionError(ErrKeyUnavailable, err)
	}
	return EncryptionKey{
		KeyID:     keyID,
		PublicKey: base64.StdEncoding.EncodeToString(der),
	}, nil
}

// Validate checks the record is structurally usable.
func (k EncryptionKey) Validate() error {
	err := validation.ValidateStruct(&k,
		validation.Field(&k.KeyID, validation.Required, customValidation.NotBlank),
		validation.Field(&k.PublicKey, validation.Required, customValidation.Base64),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEncryptionKey, err)
	}
	return nil
}

// ParsePublicKey decodes the RSA public key. Failures are reported as an
// EncryptionError with reason ErrKeyUnavailable.
func (k EncryptionKey) ParsePublicKey() (*rsa.PublicKey, error) {
	der, err := base64.StdEncoding.DecodeString(k.PublicKey)
	if err != nil {
		return nil, NewEncryptionError(ErrKeyUnavailable, err)
	}
	return ParseRSAPublicKeyDER(der)
}

// ParseRSAPublicKeyDER parses a PKIX or PKCS#1 DER encoded RSA public key of at
// least MinRSAKeyBits.
func ParseRSAPublicKeyDER(der []byte) (*rsa.PublicKey, error) {
	var pub *rsa.PublicKey
	if parsed, err := x509.ParsePKIXPublicKey(der); err == nil {
		rsaPub, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, NewEncryptionError(ErrKeyUnavailable, fmt.Errorf("unsupported public key type %T", parsed))
		}
		pub = rsaPub
	} else {
		pkcs1, pkcs1Err := x509.ParsePKCS1PublicKey(der)
		if pkcs1Err != nil {
			return nil, NewEncryptionError(ErrKeyUnavailable, err)
		}
		pub = pkcs1
	}

	if bits := pub.N.BitLen(); bits < MinRSAKeyBits {
		return nil, NewEncryptionError(
			ErrKeyUnavailable,
			fmt.Errorf("rsa key has %d bits, need at least %d", bits, MinRSAKeyBits),
		)
	}
	return pub, nil
}
