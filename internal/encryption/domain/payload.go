package domain

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/cardshield/internal/crypto/domain"
	paymentDomain "github.com/allisson/cardshield/internal/payment/domain"
)

// PaymentValue is one raw field value inside the payload.
type PaymentValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Payload is the plaintext sealed into the compact token.
type Payload struct {
	ClientSessionID  string         `json:"clientSessionId"`
	Nonce            uuid.UUID      `json:"nonce"`
	PaymentProductID string         `json:"paymentProductId"`
	AccountOnFileID  string         `json:"accountOnFileId,omitempty"`
	Tokenize         bool           `json:"tokenize,omitempty"`
	PaymentValues    []PaymentValue `json:"paymentValues"`
}

// NewPayload builds the payload from a request snapshot. Payment values are the
// stored raw values ordered by key.
func NewPayload(sessionID string, nonce uuid.UUID, snap paymentDomain.RequestSnapshot) Payload {
	paymentValues := make([]PaymentValue, 0, len(snap.Values))
	for key, value := range snap.Values {
		paymentValues = append(paymentValues, PaymentValue{Key: key, Value: value})
	}
	slices.SortFunc(paymentValues, func(a, b PaymentValue) int {
		return strings.Compare(a.Key, b.Key)
	})

	payload := Payload{
		ClientSessionID:  sessionID,
		Nonce:            nonce,
		PaymentProductID: snap.ProductID,
		Tokenize:         snap.Tokenize,
		PaymentValues:    paymentValues,
	}
	if snap.AccountOnFile != nil {
		payload.AccountOnFileID = snap.AccountOnFile.ID
	}
	return payload
}

// Marshal encodes the payload as JSON.
func (p Payload) Marshal() ([]byte, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, cryptoDomain.NewEncryptionError(cryptoDomain.ErrSerialization, err)
	}
	return b, nil
}
