package service

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	cryptoDomain "github.com/allisson/cardshield/internal/crypto/domain"
)

// GenerateRSAKey creates a recipient key pair. bits of zero selects
// cryptoDomain.DefaultRSAKeyBits.
func GenerateRSAKey(bits int) (*rsa.PrivateKey, error) {
	if bits == 0 {
		bits = cryptoDomain.DefaultRSAKeyBits
	}
	if bits < cryptoDomain.MinRSAKeyBits {
		return nil, fmt.Errorf("%w: rsa key must have at least %d bits", cryptoDomain.ErrInvalidEncryptionKey, cryptoDomain.MinRSAKeyBits)
	}
	priv, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, cryptoDomain.NewEncryptionError(cryptoDomain.ErrRandomGeneration, err)
	}
	return priv, nil
}

// MarshalPrivateKeyPEM encodes priv as a PKCS#8 "PRIVATE KEY" PEM block.
func MarshalPrivateKeyPEM(priv *rsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}

// ParsePrivateKeyPEM decodes a PKCS#8 or PKCS#1 PEM encoded RSA private key.
func ParsePrivateKeyPEM(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, cryptoDomain.NewEncryptionError(cryptoDomain.ErrKeyUnavailable, errors.New("no PEM block found"))
	}

	switch block.Type {
	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, cryptoDomain.NewEncryptionError(cryptoDomain.ErrKeyUnavailable, err)
		}
		priv, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, cryptoDomain.NewEncryptionError(
				cryptoDomain.ErrKeyUnavailable,
				fmt.Errorf("unsupported private key type %T", key),
			)
		}
		return priv, nil
	case "RSA PRIVATE KEY":
		priv, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, cryptoDomain.NewEncryptionError(cryptoDomain.ErrKeyUnavailable, err)
		}
		return priv, nil
	default:
		return nil, cryptoDomain.NewEncryptionError(
			cryptoDomain.ErrKeyUnavailable,
			fmt.Errorf("unsupported PEM block type %q", block.Type),
		)
	}
}
