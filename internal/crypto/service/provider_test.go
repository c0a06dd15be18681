package service

import (
	"bytes"
	"crypto/aes"
	"encoding/hex"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCryptoProvider_RandomBytes(t *testing.T) {
	provider := NewCryptoProvider(NewMemoryKeyStore())

	t.Run("fresh bytes on every call", func(t *testing.T) {
		a, err := provider.RandomBytes(32)
		require.NoError(t, err)
		b, err := provider.RandomBytes(32)
		require.NoError(t, err)

		assert.Len(t, a, 32)
		assert.NotEqual(t, a, b)
	})

	t.Run("invalid length", func(t *testing.T) {
		_, err := provider.RandomBytes(0)
		assert.Error(t, err)
	})

	t.Run("failing source", func(t *testing.T) {
		failing := NewCryptoProviderWithRandom(NewMemoryKeyStore(), iotest.ErrReader(errors.New("no entropy")))

		_, err := failing.RandomBytes(16)
		assert.ErrorContains(t, err, "no entropy")

		_, err = failing.UUID()
		assert.Error(t, err)
	})
}

func TestDefaultCryptoProvider_RSA(t *testing.T) {
	provider := NewCryptoProvider(NewMemoryKeyStore())
	priv := recipientKey(t)
	compositeKey := bytes.Repeat([]byte{0x42}, 64)

	t.Run("round trip", func(t *testing.T) {
		wrapped, err := provider.RSAEncrypt(compositeKey, &priv.PublicKey)
		require.NoError(t, err)
		assert.Len(t, wrapped, priv.Size())

		unwrapped, err := provider.RSADecrypt(wrapped, priv)
		require.NoError(t, err)
		assert.Equal(t, compositeKey, unwrapped)
	})

	t.Run("oaep is randomized", func(t *testing.T) {
		a, err := provider.RSAEncrypt(compositeKey, &priv.PublicKey)
		require.NoError(t, err)
		b, err := provider.RSAEncrypt(compositeKey, &priv.PublicKey)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("nil keys", func(t *testing.T) {
		_, err := provider.RSAEncrypt(compositeKey, nil)
		assert.Error(t, err)

		_, err = provider.RSADecrypt(compositeKey, nil)
		assert.Error(t, err)
	})

	t.Run("corrupted input", func(t *testing.T) {
		wrapped, err := provider.RSAEncrypt(compositeKey, &priv.PublicKey)
		require.NoError(t, err)
		wrapped[0] ^= 0xff

		_, err = provider.RSADecrypt(wrapped, priv)
		assert.ErrorContains(t, err, "failed to decrypt with RSA-OAEP")
	})
}

func TestDefaultCryptoProvider_AESCBC(t *testing.T) {
	provider := NewCryptoProvider(NewMemoryKeyStore())
	key := bytes.Repeat([]byte{0x01}, 32)
	iv := bytes.Repeat([]byte{0x02}, aes.BlockSize)

	tests := []struct {
		name       string
		plaintext  []byte
		cipherSize int
	}{
		{"empty plaintext gets a full padding block", []byte{}, 16},
		{"short plaintext", []byte("4567"), 16},
		{"block aligned plaintext gets an extra block", bytes.Repeat([]byte("a"), 16), 32},
		{"multi block plaintext", bytes.Repeat([]byte("b"), 100), 112},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ciphertext, err := provider.AESCBCEncrypt(tt.plaintext, key, iv)
			require.NoError(t, err)
			assert.Len(t, ciphertext, tt.cipherSize)

			plaintext, err := provider.AESCBCDecrypt(ciphertext, key, iv)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, plaintext)
		})
	}

	t.Run("rejects wrong key and iv sizes", func(t *testing.T) {
		_, err := provider.AESCBCEncrypt([]byte("x"), key[:16], iv)
		assert.ErrorContains(t, err, "key must be exactly 32 bytes")

		_, err = provider.AESCBCEncrypt([]byte("x"), key, iv[:8])
		assert.ErrorContains(t, err, "iv must be exactly 16 bytes")
	})

	t.Run("rejects partial blocks", func(t *testing.T) {
		_, err := provider.AESCBCDecrypt([]byte("short"), key, iv)
		assert.Error(t, err)

		_, err = provider.AESCBCDecrypt(nil, key, iv)
		assert.Error(t, err)
	})

}

func TestDefaultCryptoProvider_HMACSHA512(t *testing.T) {
	provider := NewCryptoProvider(NewMemoryKeyStore())

	t.Run("RFC 4231 test case 2", func(t *testing.T) {
		mac, err := provider.HMACSHA512([]byte("what do ya want for nothing?"), []byte("Jefe"))
		require.NoError(t, err)
		assert.Equal(t,
			"164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea2505549758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737",
			hex.EncodeToString(mac),
		)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := provider.HMACSHA512([]byte("data"), nil)
		assert.Error(t, err)
	})
}

func TestDefaultCryptoProvider_UUID(t *testing.T) {
	provider := NewCryptoProvider(NewMemoryKeyStore())

	id, err := provider.UUID()
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, uuid.Version(4), id.Version())
	assert.Equal(t, uuid.RFC4122, id.Variant())

	other, err := provider.UUID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}
