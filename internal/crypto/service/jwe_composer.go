package service

import (
	"crypto/hmac"
	"crypto/rsa"
	"encoding/binary"
	"fmt"

	cryptoDomain "github.com/allisson/cardshield/internal/crypto/domain"
)

// JWEComposer seals plaintext into a JWE compact token using RSA-OAEP key
// wrapping and A256CBC-HS512 content encryption (RFC 7516, RFC 7518 section
// 5.2). It holds no state besides its primitives and is safe for concurrent use.
type JWEComposer struct {
	primitives Primitives
}

// NewJWEComposer creates a composer using primitives.
func NewJWEComposer(primitives Primitives) *JWEComposer {
	return &JWEComposer{primitives: primitives}
}

// Encrypt seals plaintext for the recipient key pub identified by keyID.
//
// The composite key is a fresh 32 byte MAC key followed by a fresh 32 byte
// AES key, wrapped with RSA-OAEP. The payload is AES-256-CBC encrypted under a
// fresh 16 byte IV and authenticated by the first 32 bytes of
// HMAC-SHA-512(AAD || IV || ciphertext || AL), where AAD is the encoded
// protected header and AL its bit length as a 64 bit big-endian integer.
//
// Parameters:
//   - plaintext: The serialized payload to seal
//   - pub: The recipient RSA public key
//   - keyID: The identifier written to the "kid" header member
//
// Returns:
//   - The five segment compact token
//   - An *cryptoDomain.EncryptionError with the reason of the first failing step;
//     no token is returned alongside it
func (c *JWEComposer) Encrypt(plaintext []byte, pub *rsa.PublicKey, keyID string) (string, error) {
	if pub == nil {
		return "", cryptoDomain.NewEncryptionError(cryptoDomain.ErrKeyUnavailable, nil)
	}

	header, err := cryptoDomain.NewHeader(keyID).Encode()
	if err != nil {
		return "", err
	}

	macKey, err := c.randomBytes(cryptoDomain.MACKeySize)
	if err != nil {
		return "", err
	}
	cipherKey, err := c.randomBytes(cryptoDomain.CipherKeySize)
	if err != nil {
		return "", err
	}
	iv, err := c.randomBytes(cryptoDomain.IVSize)
	if err != nil {
		return "", err
	}

	compositeKey := make([]byte, 0, cryptoDomain.CompositeKeySize)
	compositeKey = append(compositeKey, macKey...)
	compositeKey = append(compositeKey, cipherKey...)
	defer cryptoDomain.Zero(compositeKey)
	defer cryptoDomain.Zero(macKey)
	defer cryptoDomain.Zero(cipherKey)

	encryptedKey, err := c.primitives.RSAEncrypt(compositeKey, pub)
	if err != nil {
		return "", cryptoDomain.NewEncryptionError(cryptoDomain.ErrRSAOperation, err)
	}

	ciphertext, err := c.primitives.AESCBCEncrypt(plaintext, cipherKey, iv)
	if err != nil {
		return "", cryptoDomain.NewEncryptionError(cryptoDomain.ErrCipherOperation, err)
	}

	token := cryptoDomain.CompactToken{
		ProtectedHeader: header,
		EncryptedKey:    encryptedKey,
		IV:              iv,
		Ciphertext:      ciphertext,
	}
	token.Tag, err = c.tag(token, macKey)
	if err != nil {
		return "", err
	}
	return token.String(), nil
}

// Decrypt opens a token produced by Encrypt, or by any JWE implementation using
// RSA-OAEP with A256CBC-HS512, with the recipient private key.
//
// The unwrapped 64 byte composite key is split into the MAC key (bytes 0-31)
// and the AES key (bytes 32-63). The tag is verified in constant time before
// the ciphertext is decrypted.
//
// Returns:
//   - The plaintext
//   - cryptoDomain.ErrInvalidToken for malformed tokens or unsupported headers
//   - An *cryptoDomain.EncryptionError for key, authentication or cipher failures
func (c *JWEComposer) Decrypt(compact string, priv *rsa.PrivateKey) ([]byte, error) {
	token, err := cryptoDomain.ParseCompactToken(compact)
	if err != nil {
		return nil, err
	}
	header, err := token.Header()
	if err != nil {
		return nil, err
	}
	if header.Algorithm != cryptoDomain.RSAOAEP || header.Encryption != cryptoDomain.A256CBCHS512 {
		return nil, fmt.Errorf(
			"%w: unsupported alg %q enc %q",
			cryptoDomain.ErrInvalidToken,
			header.Algorithm,
			header.Encryption,
		)
	}
	if priv == nil {
		return nil, cryptoDomain.NewEncryptionError(cryptoDomain.ErrKeyUnavailable, nil)
	}

	compositeKey, err := c.primitives.RSADecrypt(token.EncryptedKey, priv)
	if err != nil {
		return nil, cryptoDomain.NewEncryptionError(cryptoDomain.ErrRSAOperation, err)
	}
	defer cryptoDomain.Zero(compositeKey)
	if len(compositeKey) != cryptoDomain.CompositeKeySize {
		return nil, cryptoDomain.NewEncryptionError(
			cryptoDomain.ErrRSAOperation,
			fmt.Errorf("unwrapped key is %d bytes, want %d", len(compositeKey), cryptoDomain.CompositeKeySize),
		)
	}
	macKey := compositeKey[:cryptoDomain.MACKeySize]
	cipherKey := compositeKey[cryptoDomain.MACKeySize:]

	expected, err := c.tag(token, macKey)
	if err != nil {
		return nil, err
	}
	if !hmac.Equal(expected, token.Tag) {
		return nil, cryptoDomain.NewEncryptionError(cryptoDomain.ErrAuthentication, nil)
	}

	plaintext, err := c.primitives.AESCBCDecrypt(token.Ciphertext, cipherKey, token.IV)
	if err != nil {
		return nil, cryptoDomain.NewEncryptionError(cryptoDomain.ErrCipherOperation, err)
	}
	return plaintext, nil
}

func (c *JWEComposer) randomBytes(n int) ([]byte, error) {
	b, err := c.primitives.RandomBytes(n)
	if err != nil {
		return nil, cryptoDomain.NewEncryptionError(cryptoDomain.ErrRandomGeneration, err)
	}
	if len(b) != n {
		return nil, cryptoDomain.NewEncryptionError(
			cryptoDomain.ErrRandomGeneration,
			fmt.Errorf("got %d random bytes, want %d", len(b), n),
		)
	}
	return b, nil
}

// tag computes the truncated HMAC-SHA-512 over AAD || IV || ciphertext || AL.
func (c *JWEComposer) tag(token cryptoDomain.CompactToken, macKey []byte) ([]byte, error) {
	aad := token.AAD()

	input := make([]byte, 0, len(aad)+len(token.IV)+len(token.Ciphertext)+8)
	input = append(input, aad...)
	input = append(input, token.IV...)
	input = append(input, token.Ciphertext...)
	input = binary.BigEndian.AppendUint64(input, uint64(len(aad))*8)

	mac, err := c.primitives.HMACSHA512(input, macKey)
	if err != nil {
		return nil, cryptoDomain.NewEncryptionError(cryptoDomain.ErrHMACOperation, err)
	}
	if len(mac) < cryptoDomain.TagSize {
		return nil, cryptoDomain.NewEncryptionError(
			cryptoDomain.ErrHMACOperation,
			fmt.Errorf("hmac output is %d bytes", len(mac)),
		)
	}
	return mac[:cryptoDomain.TagSize], nil
}
