package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/cardshield/internal/errors"
)

func TestEvaluate(t *testing.T) {
	t.Run("Success_ValidValue", func(t *testing.T) {
		result := Evaluate(Length{Min: 1, Max: 3}, "ab")
		assert.True(t, result.Valid)
		assert.Empty(t, result.Message)
	})

	t.Run("Success_InvalidValueCarriesMessage", func(t *testing.T) {
		result := Evaluate(Length{Min: 1, Max: 3}, "abcd")
		assert.False(t, result.Valid)
		assert.Equal(t, "length must be between 1 and 3", result.Message)
	})
}

func TestCheckRequired(t *testing.T) {
	assert.Equal(t, Result{Valid: false, Message: "field required"}, CheckRequired(""))
	assert.True(t, CheckRequired("x").Valid)
}

func mustRegex(t *testing.T, pattern string) Regex {
	t.Helper()
	rule, err := NewRegex(pattern)
	require.NoError(t, err)
	return rule
}

func TestRules_RejectNonString(t *testing.T) {
	rules := []Rule{
		Luhn{},
		IBAN{},
		Length{Min: 0, Max: 1},
		Range{Min: 0, Max: 1},
		mustRegex(t, ".*"),
		FixedList{Allowed: []string{"a"}},
		EmailAddress{},
		ExpirationDate{},
		TermsAndConditions{},
	}

	for _, rule := range rules {
		t.Run(string(rule.Type()), func(t *testing.T) {
			err := rule.Validate(42)
			require.Error(t, err)
			assert.Equal(t, "must be a string", err.Error())
		})
	}
}

func TestRules_AcceptStringPointer(t *testing.T) {
	value := "4567350000427977"
	assert.NoError(t, Luhn{}.Validate(&value))
}

func TestLength(t *testing.T) {
	rule := Length{Min: 2, Max: 4}

	assert.NoError(t, rule.Validate("ab"))
	assert.NoError(t, rule.Validate("abcd"))
	assert.NoError(t, rule.Validate("äöü"))
	assert.Error(t, rule.Validate("a"))
	assert.Error(t, rule.Validate("abcde"))
	assert.Equal(t, TypeLength, rule.Type())
}

func TestRange(t *testing.T) {
	rule := Range{Min: 1, Max: 10}

	t.Run("Success_InRange", func(t *testing.T) {
		assert.NoError(t, rule.Validate("1"))
		assert.NoError(t, rule.Validate("10"))
	})

	t.Run("Error_OutOfRange", func(t *testing.T) {
		result := Evaluate(rule, "11")
		assert.False(t, result.Valid)
		assert.Equal(t, "must be between 1 and 10", result.Message)
	})

	t.Run("Error_NotAnInteger", func(t *testing.T) {
		result := Evaluate(rule, "abc")
		assert.False(t, result.Valid)
		assert.Equal(t, "must be an integer", result.Message)
	})
}

func TestRegex(t *testing.T) {
	t.Run("Success_AnchoredPattern", func(t *testing.T) {
		rule, err := NewRegex(`^[0-9]{3}$`)
		require.NoError(t, err)

		assert.NoError(t, rule.Validate("123"))
		assert.Error(t, rule.Validate("1234"))
		assert.Equal(t, `^[0-9]{3}$`, rule.Pattern())
	})

	t.Run("Success_ExactlyOneMatch", func(t *testing.T) {
		rule := mustRegex(t, `[0-9]{3}`)

		assert.NoError(t, rule.Validate("1234"))
		assert.Error(t, rule.Validate("123456"))
		assert.Error(t, rule.Validate("12"))
	})

	t.Run("Error_InvalidPattern", func(t *testing.T) {
		_, err := NewRegex(`([`)
		assert.Error(t, err)
	})

	t.Run("Error_ZeroValueNeverMatches", func(t *testing.T) {
		assert.Error(t, Regex{}.Validate("anything"))
	})
}

func TestFixedList(t *testing.T) {
	rule := FixedList{Allowed: []string{"visa", "mastercard"}}

	assert.NoError(t, rule.Validate("visa"))
	assert.Error(t, rule.Validate("VISA"))
	assert.Error(t, rule.Validate("amex"))
	assert.Error(t, FixedList{}.Validate("visa"))
}

func TestEmailAddress(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"john.doe@example.com", true},
		{"j+tag@mail.example.co.uk", true},
		{".john@example.com", false},
		{"john.@example.com", false},
		{"john@example", false},
		{"john@@example.com", false},
		{"john@example..com", false},
		{"john@.example.com", false},
		{"john@example.c", false},
		{"john doe@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := EmailAddress{}.Validate(tt.email)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestTermsAndConditions(t *testing.T) {
	assert.NoError(t, TermsAndConditions{}.Validate("true"))
	assert.NoError(t, TermsAndConditions{}.Validate("TRUE"))
	assert.Error(t, TermsAndConditions{}.Validate("false"))
	assert.Error(t, TermsAndConditions{}.Validate("yes"))
	assert.Error(t, TermsAndConditions{}.Validate(""))
}

func TestRules_ComposeWithValidateStruct(t *testing.T) {
	type card struct {
		Number string
		Email  string
	}

	c := card{Number: "4567350000427978", Email: "john@example.com"}
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Number, validation.Required, Luhn{}),
		validation.Field(&c.Email, validation.Required, EmailAddress{}),
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Luhn")

	wrapped := WrapValidationError(err)
	assert.ErrorIs(t, wrapped, apperrors.ErrInvalidInput)
	assert.NoError(t, WrapValidationError(nil))
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("key-1"))
	assert.Error(t, NotBlank.Validate("   "))
}

func TestNoWhitespace(t *testing.T) {
	assert.NoError(t, NoWhitespace.Validate("key-1"))
	assert.Error(t, NoWhitespace.Validate(" key-1"))
}

func TestBase64(t *testing.T) {
	assert.NoError(t, Base64.Validate("dGVzdA=="))
	assert.NoError(t, Base64.Validate(""))
	assert.Error(t, Base64.Validate("not base64!"))
	assert.Error(t, Base64.Validate(12))
}
