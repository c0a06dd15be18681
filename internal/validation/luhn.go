package validation

import (
	validation "github.com/jellydator/validation"
)

var errLuhn = validation.NewError("validation_luhn", "card number failed the Luhn check")

// Luhn validates card numbers with the mod-10 checksum. Only ASCII digits are
// accepted; separators must be removed by the mask before validation.
type Luhn struct{}

// Type implements Rule.
func (Luhn) Type() RuleType { return TypeLuhn }

// Validate implements validation.Rule.
func (Luhn) Validate(value interface{}) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	digits, ok := parseDigits(s)
	if !ok || !validateLuhn(digits) {
		return errLuhn
	}
	return nil
}

// parseDigits converts an all-digit string to its digit values.
func parseDigits(s string) ([]int, bool) {
	if s == "" {
		return nil, false
	}
	digits := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		digits[i] = int(c - '0')
	}
	return digits, true
}

// calculateLuhnCheckDigit calculates the Luhn check digit for the given digits.
// The digits slice should NOT include the check digit position.
func calculateLuhnCheckDigit(digits []int) int {
	sum := 0
	length := len(digits)

	for i := 0; i < length; i++ {
		digit := digits[length-1-i]

		// the check digit will sit at index 0, so it is the even positions that double here
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
	}

	return (10 - (sum % 10)) % 10
}

// validateLuhn validates a complete number (including check digit).
func validateLuhn(digits []int) bool {
	last := len(digits) - 1
	return calculateLuhnCheckDigit(digits[:last]) == digits[last]
}
