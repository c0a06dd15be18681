// Package service provides the cryptographic primitives, recipient key storage
// and the JWE compact composer (RSA-OAEP with A256CBC-HS512) used to seal
// payment requests.
package service

import (
	"context"
	"crypto/rsa"

	"github.com/google/uuid"
)

// Primitives are the low level operations the composer is built from. Every
// method is safe for concurrent use and independent of any other call.
type Primitives interface {
	// RandomBytes returns n bytes from a cryptographically secure source.
	RandomBytes(n int) ([]byte, error)

	// RSAEncrypt wraps data for pub with RSAES-OAEP (SHA-1, MGF1-SHA-1).
	RSAEncrypt(data []byte, pub *rsa.PublicKey) ([]byte, error)

	// RSADecrypt unwraps data produced by RSAEncrypt.
	RSADecrypt(data []byte, priv *rsa.PrivateKey) ([]byte, error)

	// AESCBCEncrypt PKCS#7 pads data and encrypts it with AES-256-CBC.
	AESCBCEncrypt(data, key, iv []byte) ([]byte, error)

	// AESCBCDecrypt decrypts AES-256-CBC data and removes the PKCS#7 padding.
	AESCBCDecrypt(data, key, iv []byte) ([]byte, error)

	// HMACSHA512 returns the 64 byte HMAC-SHA-512 of data under key.
	HMACSHA512(data, key []byte) ([]byte, error)

	// UUID returns a random version 4 UUID.
	UUID() (uuid.UUID, error)
}

// KeyStore holds recipient public keys under a caller chosen tag.
type KeyStore interface {
	// StoreKey saves pub under tag, replacing any key already stored there.
	StoreKey(ctx context.Context, tag string, pub *rsa.PublicKey) error

	// RetrieveKey returns the key stored under tag or cryptoDomain.ErrKeyNotFound.
	RetrieveKey(ctx context.Context, tag string) (*rsa.PublicKey, error)

	// DeleteKey removes the key stored under tag. Deleting a missing tag is not an error.
	DeleteKey(ctx context.Context, tag string) error

	// Close releases resources held by the store.
	Close() error
}

// CryptoProvider is the full capability consumed by the encryption use case:
// primitives plus key storage by tag.
type CryptoProvider interface {
	Primitives
	KeyStore
}

// Keeper seals and opens key material at rest. *secrets.Keeper from
// gocloud.dev implements it.
type Keeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}
