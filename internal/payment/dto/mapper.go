package dto

import (
	"fmt"
	"sort"

	"github.com/allisson/cardshield/internal/mask"
	paymentDomain "github.com/allisson/cardshield/internal/payment/domain"
	"github.com/allisson/cardshield/internal/validation"
)

// ToPaymentProduct converts a validated ProductDefinition into a domain product.
func ToPaymentProduct(def ProductDefinition) (*paymentDomain.PaymentProduct, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", paymentDomain.ErrInvalidProduct, err)
	}

	fields := make([]*paymentDomain.FieldDefinition, 0, len(def.Fields))
	for _, f := range def.Fields {
		rules, err := ToRules(f.Validators)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s: %v", paymentDomain.ErrInvalidProduct, f.ID, err)
		}
		fields = append(fields, &paymentDomain.FieldDefinition{
			ID:         f.ID,
			Type:       paymentDomain.FieldType(f.Type),
			Mask:       mask.Mask(f.Mask),
			Required:   f.Required,
			Validators: rules,
		})
	}
	return paymentDomain.NewPaymentProduct(def.ID, fields)
}

// ToRules converts the validator document into rules in a fixed order.
func ToRules(v Validators) ([]validation.Rule, error) {
	var rules []validation.Rule
	if v.Luhn != nil {
		rules = append(rules, validation.Luhn{})
	}
	if v.IBAN != nil {
		rules = append(rules, validation.IBAN{})
	}
	if v.Length != nil {
		if v.Length.MinLength > v.Length.MaxLength {
			return nil, fmt.Errorf("length: min %d exceeds max %d", v.Length.MinLength, v.Length.MaxLength)
		}
		rules = append(rules, validation.Length{Min: v.Length.MinLength, Max: v.Length.MaxLength})
	}
	if v.Range != nil {
		if v.Range.MinValue > v.Range.MaxValue {
			return nil, fmt.Errorf("range: min %d exceeds max %d", v.Range.MinValue, v.Range.MaxValue)
		}
		rules = append(rules, validation.Range{Min: v.Range.MinValue, Max: v.Range.MaxValue})
	}
	if v.RegularExpression != nil {
		re, err := validation.NewRegex(v.RegularExpression.RegularExpression)
		if err != nil {
			return nil, err
		}
		rules = append(rules, re)
	}
	if v.FixedList != nil {
		allowed := append([]string(nil), v.FixedList.AllowedValues...)
		rules = append(rules, validation.FixedList{Allowed: allowed})
	}
	if v.EmailAddress != nil {
		rules = append(rules, validation.EmailAddress{})
	}
	if v.ExpirationDate != nil {
		rules = append(rules, validation.ExpirationDate{})
	}
	if v.TermsAndConditions != nil {
		rules = append(rules, validation.TermsAndConditions{})
	}
	return rules, nil
}

// ToAccountOnFile converts a validated AccountOnFile document into the domain model.
func ToAccountOnFile(a AccountOnFile) (*paymentDomain.AccountOnFile, error) {
	if err := a.Validate(); err != nil {
		return nil, validation.WrapValidationError(err)
	}
	attrs := make([]paymentDomain.Attribute, 0, len(a.Attributes))
	for _, attr := range a.Attributes {
		attrs = append(attrs, paymentDomain.Attribute{
			Key:    attr.Key,
			Value:  attr.Value,
			Status: paymentDomain.Writability(attr.Status),
		})
	}
	return &paymentDomain.AccountOnFile{
		ID:         a.ID,
		ProductID:  a.PaymentProductID,
		Attributes: attrs,
	}, nil
}

// ApplyPaymentValues binds the account on file (first, so read-only fields are
// known) and then sets every value in field id order. It stops at the first
// error.
func ApplyPaymentValues(req *paymentDomain.PaymentRequest, values PaymentValues) error {
	if err := values.Validate(); err != nil {
		return validation.WrapValidationError(err)
	}
	if values.AccountOnFile != nil {
		aof, err := ToAccountOnFile(*values.AccountOnFile)
		if err != nil {
			return err
		}
		if err := req.SetAccountOnFile(aof); err != nil {
			return err
		}
	}

	ids := make([]string, 0, len(values.Values))
	for id := range values.Values {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := req.SetValue(id, values.Values[id]); err != nil {
			return err
		}
	}
	req.SetTokenize(values.Tokenize)
	return nil
}
