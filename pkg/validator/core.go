package validator

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Kind is the token that names a failed rule, e.g. "required" or "invalido".
type Kind string

const (
	KindRequired  Kind = "required"
	KindMinLength Kind = "minlength"
	KindMaxLength Kind = "maxlength"
	KindEmail     Kind = "email"
	// KindInvalid marks a value that is structurally or arithmetically wrong (CPF, dates).
	KindInvalid Kind = "invalido"
	// KindMismatch marks a field that does not equal the field it is compared to.
	KindMismatch Kind = "comparacao"
)

// Result is the marker set of a single field. A nil or empty Result is valid;
// any key marks the field invalid regardless of its value.
type Result map[Kind]bool

// Invalid is a shorthand for a Result holding a single marker.
func Invalid(kind Kind) Result {
	return Result{kind: true}
}

func (r Result) Valid() bool {
	return len(r) == 0
}

func (r Result) Has(kind Kind) bool {
	_, ok := r[kind]
	return ok
}

// Kinds returns the markers in lexical order.
func (r Result) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r))
	for k := range r {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Merge returns the union of both marker sets. Neither receiver nor argument is modified.
func (r Result) Merge(other Result) Result {
	if len(r) == 0 && len(other) == 0 {
		return nil
	}
	out := make(Result, len(r)+len(other))
	for k, v := range r {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Kind              Kind
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Markers folds the failures into a per-field marker set.
// Errors without a Kind are reported as KindInvalid.
func (ve ValidationErrors) Markers() map[string]Result {
	if len(ve) == 0 {
		return nil
	}
	out := make(map[string]Result)
	for _, err := range ve {
		kind := err.Kind
		if kind == "" {
			kind = KindInvalid
		}
		if out[err.Field] == nil {
			out[err.Field] = make(Result)
		}
		out[err.Field][kind] = true
	}
	return out
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
