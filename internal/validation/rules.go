// Package validation provides the payment field rule engine and a few generic
// string rules. Every rule implements validation.Rule from jellydator/validation
// so it composes with ValidateStruct, and Evaluate turns a rule outcome into a
// Result for callers that need a verdict rather than an error.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/cardshield/internal/errors"
)

// RuleType names a member of the closed rule family. The value doubles as the
// errorType reported for a failing field.
type RuleType string

// Rule types.
const (
	TypeLuhn               RuleType = "luhn"
	TypeIBAN               RuleType = "iban"
	TypeLength             RuleType = "length"
	TypeRange              RuleType = "range"
	TypeRegex              RuleType = "regularExpression"
	TypeFixedList          RuleType = "fixedList"
	TypeEmailAddress       RuleType = "emailAddress"
	TypeExpirationDate     RuleType = "expirationDate"
	TypeTermsAndConditions RuleType = "termsAndConditions"
	TypeRequired           RuleType = "required"
)

// Rule is a stateless payment field validator.
type Rule interface {
	validation.Rule
	// Type identifies which member of the rule family this is.
	Type() RuleType
}

// Result is the verdict of a single rule against a single value.
type Result struct {
	Valid   bool
	Message string
}

// Evaluate runs rule against value. It never fails; a rule error becomes an
// invalid Result carrying the rule's message.
func Evaluate(rule Rule, value string) Result {
	err := rule.Validate(value)
	if err == nil {
		return Result{Valid: true}
	}
	if verr, ok := err.(validation.Error); ok {
		return Result{Valid: false, Message: verr.Message()}
	}
	return Result{Valid: false, Message: err.Error()}
}

// CheckRequired reports whether value satisfies a required field.
func CheckRequired(value string) Result {
	if err := validation.Required.Validate(value); err != nil {
		return Result{Valid: false, Message: errRequired.Message()}
	}
	return Result{Valid: true}
}

var (
	errNotString = validation.NewError("validation_type", "must be a string")
	errRequired  = validation.NewError("validation_required", "field required")
)

// asString extracts the string a rule validates.
func asString(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case *string:
		if v == nil {
			return "", nil
		}
		return *v, nil
	default:
		return "", errNotString
	}
}

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
