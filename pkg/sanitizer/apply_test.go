package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appcadastro/registro/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("no transforms returns input", func(t *testing.T) {
		assert.Equal(t, " x ", sanitizer.Apply(" x "))
	})

	t.Run("transforms run in order", func(t *testing.T) {
		got := sanitizer.Apply("  Ana@Example.COM ", sanitizer.Trim, sanitizer.ToLower)
		assert.Equal(t, "ana@example.com", got)

		got = sanitizer.Apply("ab", func(s string) string { return s + "c" }, strings.ToUpper)
		assert.Equal(t, "ABC", got)
	})
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.NormalizeWhitespace)
	assert.Equal(t, "Ana Souza", clean("  Ana \t Souza\x00\n"))
	assert.Equal(t, "", clean("   "))
}
