package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"
)

// ibanPattern is the structural check applied before the checksum.
var ibanPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{4}[0-9]{7}[A-Z0-9]{0,16}$`)

// ibanChunk is the largest run of digits reduced at once; 9 digits plus a two
// digit carry stays well inside an int.
const ibanChunk = 9

var errIBAN = validation.NewError("validation_iban", "invalid IBAN")

// IBAN validates international bank account numbers with the ISO 13616 mod-97
// check. Whitespace is ignored and letters are case-insensitive.
type IBAN struct{}

// Type implements Rule.
func (IBAN) Type() RuleType { return TypeIBAN }

// Validate implements validation.Rule.
func (IBAN) Validate(value interface{}) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	if !validateIBAN(s) {
		return errIBAN
	}
	return nil
}

func validateIBAN(s string) bool {
	iban := strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))

	if !ibanPattern.MatchString(iban) {
		return false
	}

	rearranged := iban[4:] + iban[:4]

	var numeric strings.Builder
	for _, r := range rearranged {
		if r >= 'A' && r <= 'Z' {
			numeric.WriteString(strconv.Itoa(int(r-'A') + 10))
			continue
		}
		numeric.WriteRune(r)
	}

	return mod97(numeric.String()) == 1
}

// mod97 reduces a decimal digit string modulo 97, carrying the remainder into
// each following chunk.
func mod97(digits string) int {
	remainder := 0
	for len(digits) > 0 {
		carry := ""
		if remainder > 0 {
			carry = strconv.Itoa(remainder)
		}
		take := ibanChunk - len(carry)
		if take > len(digits) {
			take = len(digits)
		}
		chunk, err := strconv.Atoi(carry + digits[:take])
		if err != nil {
			return -1
		}
		remainder = chunk % 97
		digits = digits[take:]
	}
	return remainder
}
