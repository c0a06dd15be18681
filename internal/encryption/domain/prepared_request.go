package domain

// PreparedPaymentRequest is the result of sealing a payment request.
type PreparedPaymentRequest struct {
	// EncryptedPayload is the five segment compact token.
	EncryptedPayload string `json:"encryptedPayload"`

	// EncodedMetadata is the base64 JSON device metadata.
	EncodedMetadata string `json:"encodedMetadata"`
}
