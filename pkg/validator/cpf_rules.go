package validator

const cpfLength = 11

// CPF checks a Brazilian individual taxpayer number. Every non-digit
// character is ignored, so "529.982.247-25" and "52998224725" are equivalent.
// The function is total: any malformed input yields the KindInvalid marker.
func CPF(candidate string) Result {
	if !IsCPF(candidate) {
		return Invalid(KindInvalid)
	}
	return nil
}

// IsCPF reports whether candidate holds exactly 11 digits, not all the same,
// whose last two digits are the mod-11 check digits of the preceding ones.
func IsCPF(candidate string) bool {
	var digits [cpfLength]int
	n := 0
	for i := 0; i < len(candidate); i++ {
		c := candidate[i]
		if c < '0' || c > '9' {
			continue
		}
		if n == cpfLength {
			return false
		}
		digits[n] = int(c - '0')
		n++
	}
	if n != cpfLength {
		return false
	}

	repeated := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}

	return digits[9] == cpfCheckDigit(digits[:9]) && digits[10] == cpfCheckDigit(digits[:10])
}

// cpfCheckDigit weights the digits from len+1 down to 2.
func cpfCheckDigit(digits []int) int {
	weight := len(digits) + 1
	sum := 0
	for _, d := range digits {
		sum += d * weight
		weight--
	}
	if rem := sum % 11; rem >= 2 {
		return 11 - rem
	}
	return 0
}

// ValidCPF validates that value is a well-formed CPF with correct check digits.
func ValidCPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsCPF(value)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindInvalid,
			Message:        "must be a valid CPF",
			TranslationKey: "validation.cpf",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
