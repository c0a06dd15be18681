package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIBAN_Validate(t *testing.T) {
	tests := []struct {
		name  string
		iban  string
		valid bool
	}{
		{"great britain", "GB82WEST12345698765432", true},
		{"germany", "DE89370400440532013000", true},
		{"netherlands", "NL91ABNA0417164300", true},
		{"france with letter in bban", "FR1420041010050500013M02606", true},
		{"grouped with spaces", "GB82 WEST 1234 5698 7654 32", true},
		{"lowercase", "gb82west12345698765432", true},
		{"wrong check digits", "GB83WEST12345698765432", false},
		{"too short", "GB82WEST123", false},
		{"too long", "GB82WEST1234569876543212345678901234", false},
		{"bad structure", "1282WEST12345698765432", false},
		{"punctuation", "GB82-WEST-1234-5698-7654-32", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := IBAN{}.Validate(tt.iban)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestIBAN_SingleCharacterMutations(t *testing.T) {
	const valid = "GB82WEST12345698765432"

	for i := 0; i < len(valid); i++ {
		mutated := []byte(valid)
		switch c := mutated[i]; {
		case c >= '0' && c <= '9':
			mutated[i] = '0' + (c-'0'+1)%10
		default:
			mutated[i] = 'A' + (c-'A'+1)%26
		}
		assert.Error(t, IBAN{}.Validate(string(mutated)), "position %d: %s", i, mutated)
	}
}

func TestMod97(t *testing.T) {
	assert.Equal(t, 1, mod97("3214282912345698765432161182"))
	assert.Equal(t, 0, mod97("97"))
	assert.Equal(t, 1, mod97("98"))
	assert.Equal(t, 0, mod97(""))
}
