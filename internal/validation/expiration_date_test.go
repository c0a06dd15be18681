package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedNow(year int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 14, 10, 0, 0, 0, time.UTC)
	}
}

func TestExpirationDate_Validate(t *testing.T) {
	rule := ExpirationDate{Now: fixedNow(2026, time.October)}

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"current month", "1026", true},
		{"previous month", "0926", false},
		{"next year", "0127", true},
		{"far but inside horizon", "1244", true},
		{"long form", "102026", true},
		{"long past", "0112", false},
		{"first month of horizon year", "012051", true},
		{"last month of horizon year", "1251", true},
		{"after horizon year", "0152", false},
		{"after horizon year long form", "012052", false},
		{"month zero", "0030", false},
		{"month thirteen", "1330", false},
		{"separator", "12/30", false},
		{"letters", "ab30", false},
		{"five digits", "12030", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestExpirationDate_Messages(t *testing.T) {
	rule := ExpirationDate{Now: fixedNow(2026, time.October)}

	assert.Equal(t, "expiration date must be MMYY or MMYYYY", Evaluate(rule, "12/30").Message)
	assert.Equal(
		t,
		"expiration date is in the past or too far in the future",
		Evaluate(rule, "0112").Message,
	)
}

func TestExpirationDate_CenturyFromCurrentYear(t *testing.T) {
	rule := ExpirationDate{Now: fixedNow(2044, time.December)}

	assert.NoError(t, rule.Validate("1244"))
	assert.Error(t, ExpirationDate{Now: fixedNow(2045, time.January)}.Validate("1244"))
}

func TestExpirationDate_DefaultClock(t *testing.T) {
	now := time.Now()
	value := now.AddDate(1, 0, 0).Format("0106")

	assert.NoError(t, ExpirationDate{}.Validate(value))
	assert.Equal(t, TypeExpirationDate, ExpirationDate{}.Type())
}
