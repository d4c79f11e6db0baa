package sanitizer

import "strings"

// Digits keeps only the ASCII digits 0-9.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// NormalizeEmail lowercases and trims the address and collapses repeated dots
// in the local part. Inputs without exactly one "@" are only trimmed and lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// MaskEmail keeps the first letter of the local part and the whole domain.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}
	if len(local) == 1 {
		return "*@" + domain
	}
	return local[:1] + strings.Repeat("*", len(local)-1) + "@" + domain
}

// NormalizePhone strips formatting so numbers compare and store consistently.
func NormalizePhone(phone string) string {
	return Digits(phone)
}

// FormatCPF renders 11 digits as 000.000.000-00. Anything else is returned unchanged.
func FormatCPF(cpf string) string {
	d := Digits(cpf)
	if len(d) != 11 {
		return cpf
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// MaskCPF hides the middle six digits: 529.***.***-25. Inputs that are not
// 11 digits are fully masked so nothing leaks into logs.
func MaskCPF(cpf string) string {
	d := Digits(cpf)
	if len(d) != 11 {
		return strings.Repeat("*", len(d))
	}
	return d[0:3] + ".***.***-" + d[9:11]
}
