package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appcadastro/registro/pkg/sanitizer"
)

func TestDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "52998224725", sanitizer.Digits("529.982.247-25"))
	assert.Equal(t, "", sanitizer.Digits("abc"))
	assert.Equal(t, "", sanitizer.Digits("٥٢٩"), "only ASCII digits are kept")
	assert.Equal(t, "5511987654321", sanitizer.NormalizePhone("+55 (11) 98765-4321"))
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"  Ana.Souza@Example.COM ", "ana.souza@example.com"},
		{"ana..souza.@example.com", "ana.souza@example.com"},
		{"not-an-email", "not-an-email"},
		{"a@b@c.com", "a@b@c.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizer.NormalizeEmail(tt.in), "input %q", tt.in)
	}
}

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a***@example.com", sanitizer.MaskEmail("ana1@example.com"))
	assert.Equal(t, "*@example.com", sanitizer.MaskEmail("a@example.com"))
	assert.Equal(t, "plain", sanitizer.MaskEmail("plain"))
}

func TestFormatCPF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "529.982.247-25", sanitizer.FormatCPF("52998224725"))
	assert.Equal(t, "529.982.247-25", sanitizer.FormatCPF("529 982 247 25"))
	assert.Equal(t, "123", sanitizer.FormatCPF("123"))
}

func TestMaskCPF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "529.***.***-25", sanitizer.MaskCPF("529.982.247-25"))
	assert.Equal(t, "****", sanitizer.MaskCPF("12-34"))
	assert.Equal(t, "", sanitizer.MaskCPF(""))
}
