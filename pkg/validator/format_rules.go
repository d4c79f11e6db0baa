package validator

import (
	"net/mail"
	"strings"
	"time"
)

// ValidEmail validates that a string is a valid email address using RFC 5322.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}
			// Display-name forms like "Ana <ana@x.com>" parse fine but are not plain addresses.
			if addr.Address != strings.TrimSpace(value) {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}

			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindEmail,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidDate validates that value parses with one of the given layouts.
// With no layouts it accepts ISO dates ("2006-01-02") and RFC 3339 timestamps.
func ValidDate(field, value string, layouts ...string) Rule {
	return Rule{
		Check: func() bool {
			_, err := ParseDate(value, layouts...)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindInvalid,
			Message:        "must be a valid date",
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ParseDate parses value with the first matching layout.
func ParseDate(value string, layouts ...string) (time.Time, error) {
	if len(layouts) == 0 {
		layouts = []string{time.DateOnly, time.RFC3339}
	}
	value = strings.TrimSpace(value)
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
