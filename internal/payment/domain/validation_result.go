package domain

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/cardshield/internal/validation"
)

// ValidationError reports one failed check of one field.
type ValidationError struct {
	FieldID   string `json:"fieldId"`
	ErrorType string `json:"errorType"`
	Message   string `json:"message"`
}

// ValidationResult aggregates the field errors of a request. It is a value, not
// an error path; use Err when an error is more convenient.
type ValidationResult struct {
	IsValid bool              `json:"isValid"`
	Errors  []ValidationError `json:"errors"`
}

// newValidationResult builds a result from collected errors.
func newValidationResult(errs []ValidationError) ValidationResult {
	if errs == nil {
		errs = []ValidationError{}
	}
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// ErrorsFor returns the errors reported for one field.
func (r ValidationResult) ErrorsFor(fieldID string) []ValidationError {
	var out []ValidationError
	for _, e := range r.Errors {
		if e.FieldID == fieldID {
			out = append(out, e)
		}
	}
	return out
}

// Err returns nil for a valid result, otherwise a validation.Errors keyed by
// field id (first error per field) wrapped as ErrInvalidInput.
func (r ValidationResult) Err() error {
	if r.IsValid {
		return nil
	}
	errs := validation.Errors{}
	for _, e := range r.Errors {
		if _, exists := errs[e.FieldID]; exists {
			continue
		}
		errs[e.FieldID] = validation.NewError("validation_"+e.ErrorType, e.Message)
	}
	return customValidation.WrapValidationError(errs)
}
