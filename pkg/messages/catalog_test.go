package messages_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appcadastro/registro/pkg/messages"
	"github.com/appcadastro/registro/pkg/validator"
)

func TestBundled(t *testing.T) {
	t.Parallel()

	cat, err := messages.Bundled()
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "pt-BR"}, cat.Languages())
	assert.Equal(t, "pt-BR", cat.DefaultLanguage())

	t.Run("field messages", func(t *testing.T) {
		assert.Equal(t, "CPF inválido.", cat.Message("pt-BR", "cpf", validator.KindInvalid))
		assert.Equal(t, "Deve ser igual a senha.", cat.Message("pt-BR", "confirmaSenha", validator.KindMismatch))
		assert.Equal(t, "Invalid CPF.", cat.Message("en", "cpf", validator.KindInvalid))
	})

	t.Run("falls back to default language then kind", func(t *testing.T) {
		assert.Equal(t, "CPF inválido.", cat.Message("fr", "cpf", validator.KindInvalid))
		assert.Equal(t, "CPF inválido.", cat.Message("", "cpf", validator.KindInvalid))
		assert.Equal(t, "email", cat.Message("pt-BR", "nome", validator.KindEmail))
	})

	t.Run("messages follow catalog order", func(t *testing.T) {
		res := validator.Result{
			validator.KindInvalid:   true,
			validator.KindMinLength: true,
		}
		assert.Equal(t, []string{
			"O CPF deve ter pelo menos 11 caracteres!",
			"CPF inválido.",
		}, cat.Messages("pt-BR", "cpf", res))
	})

	t.Run("unknown markers come last", func(t *testing.T) {
		res := validator.Result{
			validator.KindRequired: true,
			"custom":               true,
		}
		assert.Equal(t, []string{"O campo Nome é obrigatório!", "custom"}, cat.Messages("pt-BR", "nome", res))
	})

	t.Run("valid result has no messages", func(t *testing.T) {
		assert.Nil(t, cat.Messages("pt-BR", "cpf", nil))
	})

	t.Run("translate", func(t *testing.T) {
		out := cat.Translate("en", map[string]validator.Result{
			"email": validator.Invalid(validator.KindEmail),
			"senha": nil,
		})
		assert.Equal(t, map[string][]string{"email": {"Invalid email address."}}, out)
		assert.Nil(t, cat.Translate("en", nil))
	})

	t.Run("notices", func(t *testing.T) {
		assert.Contains(t, cat.Notice("pt-BR", "registration_success"), "Cadastro realizado com sucesso!")
		assert.Contains(t, cat.Notice("en", "registration_success"), "Registration completed")
		assert.Equal(t, "unknown_key", cat.Notice("en", "unknown_key"))
	})

	t.Run("field entries", func(t *testing.T) {
		entries := cat.Field("pt-BR", "confirmaSenha")
		require.Len(t, entries, 3)
		assert.Equal(t, validator.KindMismatch, entries[2].Kind)
		assert.Nil(t, cat.Field("pt-BR", "unknown"))
	})
}

func TestCatalog_Match(t *testing.T) {
	t.Parallel()

	cat, err := messages.Bundled()
	require.NoError(t, err)

	tests := []struct {
		header string
		want   string
	}{
		{"", "pt-BR"},
		{"pt-BR,pt;q=0.9", "pt-BR"},
		{"pt", "pt-BR"},
		{"en-US,en;q=0.8", "en"},
		{"fr-FR", "pt-BR"},
		{"de;q=0.9, en;q=0.5", "en"},
		{"!!invalid!!", "pt-BR"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cat.Match(tt.header), "header %q", tt.header)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("custom default language", func(t *testing.T) {
		fsys := fstest.MapFS{
			"en.yaml":    {Data: []byte("fields:\n  nome:\n    - kind: required\n      message: Name is required.\n")},
			"README.md":  {Data: []byte("ignored")},
			"sub/x.yaml": {Data: []byte("ignored: true")},
		}
		cat, err := messages.Load(fsys, messages.WithDefaultLanguage("en"))
		require.NoError(t, err)
		assert.Equal(t, []string{"en"}, cat.Languages())
		assert.Equal(t, "Name is required.", cat.Message("pt-BR", "nome", validator.KindRequired))
	})

	t.Run("no catalogs", func(t *testing.T) {
		_, err := messages.Load(fstest.MapFS{})
		assert.ErrorIs(t, err, messages.ErrNoCatalogs)
	})

	t.Run("default language missing", func(t *testing.T) {
		fsys := fstest.MapFS{"en.yaml": {Data: []byte("fields: {}\n")}}
		_, err := messages.Load(fsys)
		assert.ErrorIs(t, err, messages.ErrDefaultMissing)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		fsys := fstest.MapFS{"pt-BR.yaml": {Data: []byte("fields: [")}}
		_, err := messages.Load(fsys)
		assert.ErrorIs(t, err, messages.ErrFailedToParse)
	})

	t.Run("entry without kind", func(t *testing.T) {
		fsys := fstest.MapFS{"pt-BR.yaml": {Data: []byte("fields:\n  nome:\n    - message: x\n")}}
		_, err := messages.Load(fsys)
		assert.ErrorIs(t, err, messages.ErrFailedToParse)
	})

	t.Run("invalid language file name", func(t *testing.T) {
		fsys := fstest.MapFS{"not a tag.yaml": {Data: []byte("fields: {}\n")}}
		_, err := messages.Load(fsys)
		assert.ErrorIs(t, err, messages.ErrInvalidLanguage)
	})
}
