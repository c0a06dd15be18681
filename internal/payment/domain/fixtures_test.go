package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/allisson/cardshield/internal/mask"
	"github.com/allisson/cardshield/internal/validation"
)

const (
	validCardNumber = "4567350000427977"
	cardMask        = mask.Mask("{{9999}} {{9999}} {{9999}} {{9999}}")
	expiryMask      = mask.Mask("{{99}}/{{99}}")
)

func referenceNow() time.Time {
	return time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)
}

// newCardProduct returns a card product with two required fields (cardNumber,
// expiryDate) and two optional ones (cvv, cardholderName).
func newCardProduct(t *testing.T) *PaymentProduct {
	t.Helper()
	product, err := NewPaymentProduct("1", []*FieldDefinition{
		{
			ID:       "cardNumber",
			Type:     FieldTypeNumericString,
			Mask:     cardMask,
			Required: true,
			Validators: []validation.Rule{
				validation.Luhn{},
				validation.Length{Min: 12, Max: 19},
			},
		},
		{
			ID:         "expiryDate",
			Type:       FieldTypeExpirationDate,
			Mask:       expiryMask,
			Required:   true,
			Validators: []validation.Rule{validation.ExpirationDate{Now: referenceNow}},
		},
		{
			ID:         "cvv",
			Type:       FieldTypeNumericString,
			Mask:       mask.Mask("{{9999}}"),
			Validators: []validation.Rule{validation.Length{Min: 3, Max: 4}},
		},
		{
			ID:         "cardholderName",
			Type:       FieldTypeString,
			Validators: []validation.Rule{validation.Length{Min: 2, Max: 50}},
		},
	})
	require.NoError(t, err)
	return product
}

func newCardRequest(t *testing.T) *PaymentRequest {
	t.Helper()
	req, err := NewPaymentRequest(newCardProduct(t))
	require.NoError(t, err)
	return req
}

// storedCard is an account on file whose card number cannot change and whose
// expiry date must be entered again.
func storedCard() *AccountOnFile {
	return &AccountOnFile{
		ID:        "aof-1",
		ProductID: "1",
		Attributes: []Attribute{
			{Key: "cardNumber", Value: "************7977", Status: WritabilityReadOnly},
			{Key: "expiryDate", Value: "1230", Status: WritabilityMustWrite},
			{Key: "cardholderName", Value: "J Doe", Status: WritabilityCanWrite},
		},
	}
}
