package domain

// KeyAlgorithm identifies how the content encryption key is wrapped for the
// recipient. It is the "alg" member of the protected header.
type KeyAlgorithm string

// ContentEncryption identifies how the payload is encrypted and authenticated.
// It is the "enc" member of the protected header.
type ContentEncryption string

const (
	// RSAOAEP is RSAES-OAEP with SHA-1 and MGF1-SHA-1 (RFC 7518 section 4.3).
	RSAOAEP KeyAlgorithm = "RSA-OAEP"

	// A256CBCHS512 is AES-256-CBC with PKCS#7 padding authenticated by a truncated
	// HMAC-SHA-512 (RFC 7518 section 5.2.5).
	A256CBCHS512 ContentEncryption = "A256CBC-HS512"
)

// Key and block sizes for A256CBC-HS512, in bytes.
const (
	// MACKeySize is the length of the HMAC-SHA-512 key. It occupies the first
	// half of the composite key.
	MACKeySize = 32

	// CipherKeySize is the length of the AES-256 key. It occupies the second
	// half of the composite key.
	CipherKeySize = 32

	// CompositeKeySize is the length of the key wrapped by RSA-OAEP.
	CompositeKeySize = MACKeySize + CipherKeySize

	// IVSize is the AES block size.
	IVSize = 16

	// TagSize is the length of the truncated authentication tag.
	TagSize = 32
)

// RSA modulus sizes in bits.
const (
	DefaultRSAKeyBits = 2048
	MinRSAKeyBits     = 2048
)
