package validation

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"unicode/utf8"

	validation "github.com/jellydator/validation"
)

// Length accepts values whose character count lies in [Min, Max].
type Length struct {
	Min int
	Max int
}

// Type implements Rule.
func (Length) Type() RuleType { return TypeLength }

// Validate implements validation.Rule.
func (l Length) Validate(value interface{}) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	n := utf8.RuneCountInString(s)
	if n < l.Min || n > l.Max {
		return validation.NewError(
			"validation_length",
			fmt.Sprintf("length must be between %d and %d", l.Min, l.Max),
		)
	}
	return nil
}

// Range accepts integer values in [Min, Max].
type Range struct {
	Min int
	Max int
}

// Type implements Rule.
func (Range) Type() RuleType { return TypeRange }

// Validate implements validation.Rule.
func (r Range) Validate(value interface{}) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return validation.NewError("validation_range_type", "must be an integer")
	}
	if n < r.Min || n > r.Max {
		return validation.NewError(
			"validation_range",
			fmt.Sprintf("must be between %d and %d", r.Min, r.Max),
		)
	}
	return nil
}

// Regex accepts values in which the pattern matches exactly once.
type Regex struct {
	pattern *regexp.Regexp
}

// NewRegex compiles pattern into a Regex rule.
func NewRegex(pattern string) (Regex, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Regex{}, fmt.Errorf("invalid regular expression %q: %w", pattern, err)
	}
	return Regex{pattern: re}, nil
}

// Pattern returns the source of the compiled expression.
func (r Regex) Pattern() string {
	if r.pattern == nil {
		return ""
	}
	return r.pattern.String()
}

// Type implements Rule.
func (Regex) Type() RuleType { return TypeRegex }

// Validate implements validation.Rule.
func (r Regex) Validate(value interface{}) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	if r.pattern == nil || len(r.pattern.FindAllStringIndex(s, 2)) != 1 {
		return validation.NewError("validation_regex", "does not match the required format")
	}
	return nil
}

// FixedList accepts only values exactly equal to one of Allowed.
type FixedList struct {
	Allowed []string
}

// Type implements Rule.
func (FixedList) Type() RuleType { return TypeFixedList }

// Validate implements validation.Rule.
func (f FixedList) Validate(value interface{}) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	if !slices.Contains(f.Allowed, s) {
		return validation.NewError("validation_fixed_list", "must be one of the allowed values")
	}
	return nil
}

// emailRegex requires a single @, no empty dot-separated labels and a domain
// with at least one dot and a top level label of two or more characters.
var emailRegex = regexp.MustCompile(`^[^@.\s]+(\.[^@.\s]+)*@([^@.\s]+\.)+[^@.\s]{2,}$`)

var errEmail = validation.NewError("validation_email_format", "must be a valid email address")

// EmailAddress validates email addresses.
type EmailAddress struct{}

// Type implements Rule.
func (EmailAddress) Type() RuleType { return TypeEmailAddress }

// Validate implements validation.Rule.
func (EmailAddress) Validate(value interface{}) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	if !emailRegex.MatchString(s) {
		return errEmail
	}
	return nil
}

var errTerms = validation.NewError("validation_terms_and_conditions", "terms and conditions must be accepted")

// TermsAndConditions accepts only a value that parses as boolean true.
type TermsAndConditions struct{}

// Type implements Rule.
func (TermsAndConditions) Type() RuleType { return TypeTermsAndConditions }

// Validate implements validation.Rule.
func (TermsAndConditions) Validate(value interface{}) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	accepted, err := strconv.ParseBool(s)
	if err != nil || !accepted {
		return errTerms
	}
	return nil
}
