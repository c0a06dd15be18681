// Package dto provides the JSON documents that describe payment products and
// the values entered for a payment request.
package dto

import (
	validation "github.com/jellydator/validation"

	paymentDomain "github.com/allisson/cardshield/internal/payment/domain"
	customValidation "github.com/allisson/cardshield/internal/validation"
)

// ProductDefinition describes a payment product and its fields.
type ProductDefinition struct {
	ID     string            `json:"id"`
	Fields []FieldDefinition `json:"fields"`
}

// Validate checks if the product definition is usable.
func (p *ProductDefinition) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.ID, validation.Required, customValidation.NotBlank),
		validation.Field(&p.Fields),
	)
}

// FieldDefinition describes one product field.
type FieldDefinition struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Mask       string     `json:"mask,omitempty"`
	Required   bool       `json:"required"`
	Validators Validators `json:"validators"`
}

// Validate checks if the field definition is usable.
func (f FieldDefinition) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.ID, validation.Required, customValidation.NoWhitespace),
		validation.Field(&f.Type, validation.Required, validation.By(validateFieldType)),
	)
}

func validateFieldType(value interface{}) error {
	s, _ := value.(string)
	if !paymentDomain.FieldType(s).IsValid() {
		return validation.NewError("validation_field_type", "unsupported field type")
	}
	return nil
}

// Validators lists the rules attached to a field. A present key enables the rule.
type Validators struct {
	Luhn               *struct{}      `json:"luhn,omitempty"`
	IBAN               *struct{}      `json:"iban,omitempty"`
	Length             *LengthRule    `json:"length,omitempty"`
	Range              *RangeRule     `json:"range,omitempty"`
	RegularExpression  *RegexRule     `json:"regularExpression,omitempty"`
	FixedList          *FixedListRule `json:"fixedList,omitempty"`
	EmailAddress       *struct{}      `json:"emailAddress,omitempty"`
	ExpirationDate     *struct{}      `json:"expirationDate,omitempty"`
	TermsAndConditions *struct{}      `json:"termsAndConditions,omitempty"`
}

// LengthRule configures validation.Length.
type LengthRule struct {
	MinLength int `json:"minLength"`
	MaxLength int `json:"maxLength"`
}

// RangeRule configures validation.Range.
type RangeRule struct {
	MinValue int `json:"minValue"`
	MaxValue int `json:"maxValue"`
}

// RegexRule configures validation.Regex.
type RegexRule struct {
	RegularExpression string `json:"regularExpression"`
}

// FixedListRule configures validation.FixedList.
type FixedListRule struct {
	AllowedValues []string `json:"allowedValues"`
}

// AccountOnFile describes a stored payment instrument.
type AccountOnFile struct {
	ID               string      `json:"id"`
	PaymentProductID string      `json:"paymentProductId"`
	Attributes       []Attribute `json:"attributes"`
}

// Validate checks if the account on file is usable.
func (a *AccountOnFile) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.ID, validation.Required, customValidation.NotBlank),
		validation.Field(&a.Attributes),
	)
}

// Attribute is one stored value of an account on file.
type Attribute struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Status string `json:"status"`
}

// Validate checks if the attribute is usable.
func (a Attribute) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Key, validation.Required),
		validation.Field(&a.Status, validation.Required, validation.By(func(value interface{}) error {
			s, _ := value.(string)
			if !paymentDomain.Writability(s).IsValid() {
				return validation.NewError("validation_writability", "must be READ_ONLY, CAN_WRITE or MUST_WRITE")
			}
			return nil
		})),
	)
}

// PaymentValues are the values a user entered, keyed by field id.
type PaymentValues struct {
	Values        map[string]string `json:"values"`
	Tokenize      bool              `json:"tokenize"`
	AccountOnFile *AccountOnFile    `json:"accountOnFile,omitempty"`
}

// Validate checks if the payment values document is usable.
func (p *PaymentValues) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.AccountOnFile),
	)
}
