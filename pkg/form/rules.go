package form

import "github.com/appcadastro/registro/pkg/validator"

// FieldRule builds a validation rule for a single field value.
type FieldRule func(field, value string) validator.Rule

// Required fails on blank values.
func Required() FieldRule {
	return validator.RequiredString
}

// MinLength skips empty values; emptiness belongs to Required.
func MinLength(n int) FieldRule {
	return optional(func(field, value string) validator.Rule {
		return validator.MinLenString(field, value, n)
	})
}

func MaxLength(n int) FieldRule {
	return optional(func(field, value string) validator.Rule {
		return validator.MaxLenString(field, value, n)
	})
}

func Email() FieldRule {
	return optional(validator.ValidEmail)
}

// CPF applies the checksum validator to non-empty values.
func CPF() FieldRule {
	return optional(validator.ValidCPF)
}

// Date accepts the given layouts, or ISO dates and RFC 3339 timestamps by default.
func Date(layouts ...string) FieldRule {
	return optional(func(field, value string) validator.Rule {
		return validator.ValidDate(field, value, layouts...)
	})
}

func optional(rule FieldRule) FieldRule {
	return func(field, value string) validator.Rule {
		r := rule(field, value)
		check := r.Check
		r.Check = func() bool {
			return value == "" || check()
		}
		return r
	}
}
