package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appcadastro/registro/pkg/sanitizer"
)

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  ", ""},
		{"Maria   da  Silva", "Maria da Silva"},
		{"\tJoão\nPedro ", "João Pedro"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizer.NormalizeWhitespace(tt.in), "input %q", tt.in)
	}
}

func TestRemoveControlChars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab\ncd\t", sanitizer.RemoveControlChars("a\x00b\ncd\t\x1b"))
}
