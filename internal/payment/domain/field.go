package domain

import (
	"strings"

	"github.com/allisson/cardshield/internal/mask"
	"github.com/allisson/cardshield/internal/validation"
)

// FieldType describes how a field value is interpreted.
type FieldType string

const (
	FieldTypeString         FieldType = "string"
	FieldTypeInteger        FieldType = "integer"
	FieldTypeNumericString  FieldType = "numericstring"
	FieldTypeExpirationDate FieldType = "expirydate"
	FieldTypeBooleanString  FieldType = "boolean"
	FieldTypeDateString     FieldType = "date"
)

// IsValid reports whether t is a known field type.
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeString, FieldTypeInteger, FieldTypeNumericString,
		FieldTypeExpirationDate, FieldTypeBooleanString, FieldTypeDateString:
		return true
	default:
		return false
	}
}

// FieldDefinition describes one payment product field. It is shared read-only by
// the product and every request created against it and must not be modified
// once the product is built.
type FieldDefinition struct {
	ID         string
	Type       FieldType
	Mask       mask.Mask
	Required   bool
	Validators []validation.Rule
}

// ApplyMask formats a raw value for display. Fields without a mask return the
// value unchanged.
func (f *FieldDefinition) ApplyMask(value string) string {
	if f.Mask.IsEmpty() {
		return value
	}
	return f.Mask.Format(value)
}

// RemoveMask returns the raw form of value. The value may be either the display
// form produced by ApplyMask (full or partial) or already raw; a value is only
// unformatted when it is a prefix of the formatted form of its unformatted
// characters. Format emits the separator that follows a completed group, so
// "4567 3500" is accepted as a prefix of "4567 3500 ".
func (f *FieldDefinition) RemoveMask(value string) string {
	if f.Mask.IsEmpty() {
		return value
	}
	raw := f.Mask.Unformat(value)
	if strings.HasPrefix(f.Mask.Format(raw), value) {
		return raw
	}
	return value
}

// Validate checks a raw value against the field. An empty required value yields
// a single required error; rules only run against non-empty values.
func (f *FieldDefinition) Validate(value string) []ValidationError {
	if value == "" {
		if !f.Required {
			return nil
		}
		result := validation.CheckRequired(value)
		return []ValidationError{{
			FieldID:   f.ID,
			ErrorType: string(validation.TypeRequired),
			Message:   result.Message,
		}}
	}

	var errs []ValidationError
	for _, rule := range f.Validators {
		result := validation.Evaluate(rule, value)
		if result.Valid {
			continue
		}
		errs = append(errs, ValidationError{
			FieldID:   f.ID,
			ErrorType: string(rule.Type()),
			Message:   result.Message,
		})
	}
	return errs
}
