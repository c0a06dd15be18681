package domain

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// segmentEncoding is base64url without padding (RFC 7515 section 2).
var segmentEncoding = base64.RawURLEncoding

// Header is the JOSE protected header. Its members marshal in the order alg,
// enc, kid.
type Header struct {
	Algorithm  KeyAlgorithm      `json:"alg"`
	Encryption ContentEncryption `json:"enc"`
	KeyID      string            `json:"kid"`
}

// NewHeader returns the RSA-OAEP/A256CBC-HS512 header for keyID.
func NewHeader(keyID string) Header {
	return Header{Algorithm: RSAOAEP, Encryption: A256CBCHS512, KeyID: keyID}
}

// Encode returns the header segment. The segment bytes are also the additional
// authenticated data of the token.
func (h Header) Encode() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(h); err != nil {
		return "", NewEncryptionError(ErrSerialization, err)
	}
	return segmentEncoding.EncodeToString(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// DecodeHeader parses a header segment.
func DecodeHeader(segment string) (Header, error) {
	raw, err := segmentEncoding.DecodeString(segment)
	if err != nil {
		return Header{}, fmt.Errorf("%w: header: %v", ErrInvalidToken, err)
	}
	var h Header
	if err := json.Unmarshal(raw, &h); err != nil {
		return Header{}, fmt.Errorf("%w: header: %v", ErrInvalidToken, err)
	}
	return h, nil
}

// CompactToken is the five segment JWE compact serialization:
// header.encryptedKey.iv.ciphertext.tag.
type CompactToken struct {
	// ProtectedHeader is kept encoded because the MAC covers the exact segment bytes.
	ProtectedHeader string
	EncryptedKey    []byte
	IV              []byte
	Ciphertext      []byte
	Tag             []byte
}

// AAD returns the additional authenticated data: the ASCII bytes of the
// protected header segment.
func (t CompactToken) AAD() []byte {
	return []byte(t.ProtectedHeader)
}

// Header decodes the protected header.
func (t CompactToken) Header() (Header, error) {
	return DecodeHeader(t.ProtectedHeader)
}

// String joins the segments with dots.
func (t CompactToken) String() string {
	return strings.Join([]string{
		t.ProtectedHeader,
		segmentEncoding.EncodeToString(t.EncryptedKey),
		segmentEncoding.EncodeToString(t.IV),
		segmentEncoding.EncodeToString(t.Ciphertext),
		segmentEncoding.EncodeToString(t.Tag),
	}, ".")
}

// ParseCompactToken splits and decodes a compact token. It checks the segment
// count, the encoding of every segment and the IV and tag lengths; it does not
// authenticate the token.
func ParseCompactToken(s string) (CompactToken, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 5 {
		return CompactToken{}, fmt.Errorf("%w: expected 5 segments, got %d", ErrInvalidToken, len(parts))
	}
	if parts[0] == "" {
		return CompactToken{}, fmt.Errorf("%w: empty header", ErrInvalidToken)
	}
	if _, err := segmentEncoding.DecodeString(parts[0]); err != nil {
		return CompactToken{}, fmt.Errorf("%w: header: %v", ErrInvalidToken, err)
	}

	names := [4]string{"encrypted key", "iv", "ciphertext", "tag"}
	var decoded [4][]byte
	for i, part := range parts[1:] {
		b, err := segmentEncoding.DecodeString(part)
		if err != nil {
			return CompactToken{}, fmt.Errorf("%w: %s: %v", ErrInvalidToken, names[i], err)
		}
		decoded[i] = b
	}

	token := CompactToken{
		ProtectedHeader: parts[0],
		EncryptedKey:    decoded[0],
		IV:              decoded[1],
		Ciphertext:      decoded[2],
		Tag:             decoded[3],
	}
	if len(token.EncryptedKey) == 0 {
		return CompactToken{}, fmt.Errorf("%w: empty encrypted key", ErrInvalidToken)
	}
	if len(token.IV) != IVSize {
		return CompactToken{}, fmt.Errorf("%w: iv must be %d bytes", ErrInvalidToken, IVSize)
	}
	if len(token.Tag) != TagSize {
		return CompactToken{}, fmt.Errorf("%w: tag must be %d bytes", ErrInvalidToken, TagSize)
	}
	return token, nil
}
