package validation

import (
	"strconv"
	"time"

	validation "github.com/jellydator/validation"
)

// ExpirationHorizonYears is how far ahead an expiration date may lie. Any month
// of the final year is accepted.
const ExpirationHorizonYears = 25

var (
	errExpirationFormat = validation.NewError(
		"validation_expiration_date_format",
		"expiration date must be MMYY or MMYYYY",
	)
	errExpirationWindow = validation.NewError(
		"validation_expiration_date",
		"expiration date is in the past or too far in the future",
	)
)

// ExpirationDate validates a card expiry written as MMYY or MMYYYY. The value
// must not be before the current month and not after the year
// ExpirationHorizonYears from now. The century of a two digit year is taken from
// the current year.
type ExpirationDate struct {
	// Now returns the reference date. Nil means time.Now.
	Now func() time.Time
}

// Type implements Rule.
func (ExpirationDate) Type() RuleType { return TypeExpirationDate }

// Validate implements validation.Rule.
func (e ExpirationDate) Validate(value interface{}) error {
	s, err := asString(value)
	if err != nil {
		return err
	}

	now := time.Now()
	if e.Now != nil {
		now = e.Now()
	}

	month, year, ok := parseExpirationDate(s, now)
	if !ok {
		return errExpirationFormat
	}

	notPast := year > now.Year() || (year == now.Year() && month >= int(now.Month()))
	notTooFar := year <= now.Year()+ExpirationHorizonYears
	if !notPast || !notTooFar {
		return errExpirationWindow
	}
	return nil
}

// parseExpirationDate splits an MMYY or MMYYYY value into month and full year.
func parseExpirationDate(s string, now time.Time) (month, year int, ok bool) {
	if len(s) != 4 && len(s) != 6 {
		return 0, 0, false
	}
	if _, digits := parseDigits(s); !digits {
		return 0, 0, false
	}

	month, err := strconv.Atoi(s[:2])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}

	year, err = strconv.Atoi(s[2:])
	if err != nil {
		return 0, 0, false
	}
	if len(s) == 4 {
		year += now.Year() / 100 * 100
	}
	return month, year, true
}
