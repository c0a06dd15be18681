package domain

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/cardshield/internal/errors"
)

func TestHeader(t *testing.T) {
	t.Run("encodes members in fixed order", func(t *testing.T) {
		segment, err := NewHeader("kid-1").Encode()
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(segment)
		require.NoError(t, err)
		assert.Equal(t, `{"alg":"RSA-OAEP","enc":"A256CBC-HS512","kid":"kid-1"}`, string(raw))
		assert.NotContains(t, segment, "=")
	})

	t.Run("does not escape html characters", func(t *testing.T) {
		segment, err := NewHeader("a<b>&c").Encode()
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(segment)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"kid":"a<b>&c"`)
	})

	t.Run("decode round trip", func(t *testing.T) {
		segment, err := NewHeader("kid-1").Encode()
		require.NoError(t, err)

		h, err := DecodeHeader(segment)
		require.NoError(t, err)
		assert.Equal(t, NewHeader("kid-1"), h)
	})
}

func newTestToken(t *testing.T) CompactToken {
	t.Helper()
	header, err := NewHeader("kid-1").Encode()
	require.NoError(t, err)
	return CompactToken{
		ProtectedHeader: header,
		EncryptedKey:    bytes.Repeat([]byte{0xfb}, 256),
		IV:              bytes.Repeat([]byte{0xff}, IVSize),
		Ciphertext:      []byte("ciphertext"),
		Tag:             bytes.Repeat([]byte{0x3e}, TagSize),
	}
}

func TestCompactToken(t *testing.T) {
	t.Run("string and parse round trip", func(t *testing.T) {
		token := newTestToken(t)
		s := token.String()

		assert.Len(t, strings.Split(s, "."), 5)
		assert.NotContains(t, s, "=")
		assert.NotContains(t, s, "+")
		assert.NotContains(t, s, "/")

		parsed, err := ParseCompactToken(s)
		require.NoError(t, err)
		assert.Equal(t, token, parsed)
		assert.Equal(t, []byte(token.ProtectedHeader), parsed.AAD())

		h, err := parsed.Header()
		require.NoError(t, err)
		assert.Equal(t, "kid-1", h.KeyID)
	})

	t.Run("rejects malformed tokens", func(t *testing.T) {
		valid := strings.Split(newTestToken(t).String(), ".")
		replace := func(i int, v string) string {
			parts := append([]string(nil), valid...)
			parts[i] = v
			return strings.Join(parts, ".")
		}

		tests := []struct {
			name  string
			token string
		}{
			{"too few segments", strings.Join(valid[:4], ".")},
			{"too many segments", strings.Join(append(valid, "x"), ".")},
			{"empty header", replace(0, "")},
			{"padded segment", replace(3, base64.URLEncoding.EncodeToString([]byte("ciphertext")))},
			{"standard alphabet", replace(1, "+/+/")},
			{"empty encrypted key", replace(1, "")},
			{"short iv", replace(2, base64.RawURLEncoding.EncodeToString([]byte("short")))},
			{"short tag", replace(4, base64.RawURLEncoding.EncodeToString([]byte("short")))},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := ParseCompactToken(tt.token)
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			})
		}
	})
}
