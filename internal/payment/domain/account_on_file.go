package domain

import (
	"github.com/allisson/cardshield/internal/mask"
)

// Writability governs whether a field backed by an account on file attribute may
// be set by the user.
type Writability string

const (
	WritabilityReadOnly  Writability = "READ_ONLY"
	WritabilityCanWrite  Writability = "CAN_WRITE"
	WritabilityMustWrite Writability = "MUST_WRITE"
)

// IsValid reports whether w is a known writability.
func (w Writability) IsValid() bool {
	switch w {
	case WritabilityReadOnly, WritabilityCanWrite, WritabilityMustWrite:
		return true
	default:
		return false
	}
}

// Attribute is one stored value of an account on file, keyed by field id.
type Attribute struct {
	Key    string
	Value  string
	Status Writability
}

// AccountOnFile is a previously stored, tokenized payment instrument the user can
// select instead of entering raw card data.
type AccountOnFile struct {
	ID         string
	ProductID  string
	Attributes []Attribute
}

// Attribute returns the attribute stored under key.
func (a *AccountOnFile) Attribute(key string) (Attribute, bool) {
	for _, attr := range a.Attributes {
		if attr.Key == key {
			return attr, true
		}
	}
	return Attribute{}, false
}

// IsReadOnly reports whether the field id may not be written while this
// account on file is bound. Fields without an attribute are writable.
func (a *AccountOnFile) IsReadOnly(fieldID string) bool {
	attr, ok := a.Attribute(fieldID)
	return ok && attr.Status == WritabilityReadOnly
}

// MustWriteKeys returns the attribute keys the user has to provide again.
func (a *AccountOnFile) MustWriteKeys() []string {
	var keys []string
	for _, attr := range a.Attributes {
		if attr.Status == WritabilityMustWrite {
			keys = append(keys, attr.Key)
		}
	}
	return keys
}

// MaskedValue formats the stored attribute value for display. It returns false
// when the attribute does not exist.
func (a *AccountOnFile) MaskedValue(key string, m mask.Mask) (string, bool) {
	attr, ok := a.Attribute(key)
	if !ok {
		return "", false
	}
	if m.IsEmpty() {
		return attr.Value, true
	}
	return m.Format(attr.Value), true
}
