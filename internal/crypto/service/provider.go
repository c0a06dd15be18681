package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec // RSA-OAEP as registered for JWE uses SHA-1
	"crypto/sha512"
	"errors"
	"fmt"
	"io"

	"github.com/andreburgaud/crypt2go/padding"
	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/cardshield/internal/crypto/domain"
)

// DefaultCryptoProvider implements CryptoProvider with the Go standard crypto
// packages, PKCS#7 padding from crypt2go and the supplied KeyStore.
type DefaultCryptoProvider struct {
	KeyStore

	random io.Reader
}

// NewCryptoProvider creates a provider backed by crypto/rand and store.
func NewCryptoProvider(store KeyStore) *DefaultCryptoProvider {
	return NewCryptoProviderWithRandom(store, rand.Reader)
}

// NewCryptoProviderWithRandom creates a provider reading randomness from random.
// Tests use it to inject failing or deterministic sources.
func NewCryptoProviderWithRandom(store KeyStore, random io.Reader) *DefaultCryptoProvider {
	return &DefaultCryptoProvider{KeyStore: store, random: random}
}

// RandomBytes implements Primitives.
func (p *DefaultCryptoProvider) RandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid random length %d", n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(p.random, b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}

// RSAEncrypt implements Primitives.
func (p *DefaultCryptoProvider) RSAEncrypt(data []byte, pub *rsa.PublicKey) ([]byte, error) {
	if pub == nil {
		return nil, errors.New("rsa public key is nil")
	}
	out, err := rsa.EncryptOAEP(sha1.New(), p.random, pub, data, nil) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt with RSA-OAEP: %w", err)
	}
	return out, nil
}

// RSADecrypt implements Primitives.
func (p *DefaultCryptoProvider) RSADecrypt(data []byte, priv *rsa.PrivateKey) ([]byte, error) {
	if priv == nil {
		return nil, errors.New("rsa private key is nil")
	}
	out, err := rsa.DecryptOAEP(sha1.New(), nil, priv, data, nil) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt with RSA-OAEP: %w", err)
	}
	return out, nil
}

// newCBCBlock checks the key and IV sizes and creates the AES block.
func newCBCBlock(key, iv []byte) (cipher.Block, error) {
	if len(key) != cryptoDomain.CipherKeySize {
		return nil, fmt.Errorf("key must be exactly %d bytes", cryptoDomain.CipherKeySize)
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("iv must be exactly %d bytes", aes.BlockSize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	return block, nil
}

// AESCBCEncrypt implements Primitives.
func (p *DefaultCryptoProvider) AESCBCEncrypt(data, key, iv []byte) ([]byte, error) {
	block, err := newCBCBlock(key, iv)
	if err != nil {
		return nil, err
	}

	padded, err := padding.NewPkcs7Padding(aes.BlockSize).Pad(data)
	if err != nil {
		return nil, fmt.Errorf("failed to pad plaintext: %w", err)
	}

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	return ciphertext, nil
}

// AESCBCDecrypt implements Primitives.
func (p *DefaultCryptoProvider) AESCBCDecrypt(data, key, iv []byte) ([]byte, error) {
	block, err := newCBCBlock(key, iv)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext length %d is not a positive multiple of %d", len(data), aes.BlockSize)
	}

	plaintext := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, data)

	plaintext, err = padding.NewPkcs7Padding(aes.BlockSize).Unpad(plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to unpad plaintext: %w", err)
	}
	return plaintext, nil
}

// HMACSHA512 implements Primitives.
func (p *DefaultCryptoProvider) HMACSHA512(data, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, errors.New("hmac key is empty")
	}
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil), nil
}

// UUID implements Primitives.
func (p *DefaultCryptoProvider) UUID() (uuid.UUID, error) {
	id, err := uuid.NewRandomFromReader(p.random)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate uuid: %w", err)
	}
	return id, nil
}
