// Package validator provides small, composable validation rules for user input
// and the marker model used by form hosts.
//
// A Rule pairs a boolean Check with error metadata: the field name, a Kind
// token (e.g. "required", "invalido"), a default English message and a
// translation key. Rules are evaluated with Apply, which aggregates failures
// into ValidationErrors, a slice that satisfies the error interface.
//
// Form hosts that keep live per-field state work with Result instead: a set of
// Kind markers where an empty set means valid. ValidationErrors.Markers folds a
// failure list into that shape.
//
// # Architecture
//
// Rules are grouped by family:
//   - string_rules.go  - required, minimum and maximum length, equality
//   - format_rules.go  - email address and calendar dates
//   - cpf_rules.go     - the Brazilian CPF checksum
//
// Lengths are counted in Unicode code points, so "José" has length 4. Every
// constructor returns a fresh Rule; there is no global state.
//
// Core building blocks:
//   - Kind              - marker token such as KindRequired or KindMismatch
//   - Result            - marker set of one field; nil means valid
//   - Rule              - Check func plus the ValidationError it reports
//   - ValidationErrors  - slice of failures implementing error
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("cpf", in.CPF),
//	    validator.ValidCPF("cpf", in.CPF),
//	    validator.ValidEmail("email", in.Email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    markers := verrs.Markers() // map[field]Result
//	    if markers["cpf"].Has(validator.KindInvalid) {
//	        // wrong check digits
//	    }
//	}
//
// The CPF checksum is also available as a pure function. Every non-digit is
// stripped first, so formatted and bare inputs behave the same:
//
//	validator.CPF("529.982.247-25") // nil (valid)
//	validator.CPF("52998224725")    // nil (valid)
//	validator.CPF("111.111.111-11") // Result{"invalido": true}
//	validator.IsCPF("123")          // false
//
// Results combine without mutating their operands:
//
//	res := validator.Invalid(validator.KindMinLength).
//	    Merge(validator.Invalid(validator.KindMismatch))
//	res.Kinds() // [comparacao minlength]
//
// # Error Handling
//
// Apply returns nil when every rule passes. Use IsValidationError or
// ExtractValidationErrors to tell validation failures apart from other errors;
// Has, Get, GetErrors and Fields inspect individual fields.
//
// All helpers are stateless and safe for concurrent use.
package validator
