package registration

import (
	"time"

	"github.com/appcadastro/registro/pkg/form"
)

// Form field names as submitted by the client.
const (
	FieldName            = "nome"
	FieldCPF             = "cpf"
	FieldBirthDate       = "data_de_nascimento"
	FieldGender          = "genero"
	FieldPhone           = "celular"
	FieldEmail           = "email"
	FieldPassword        = "senha"
	FieldPasswordConfirm = "confirmaSenha"
)

var birthDateLayouts = []string{time.DateOnly, time.RFC3339}

// Form returns the registration form declaration. Every call builds a new
// group, so callers may extend it freely.
func Form() *form.Group {
	return form.New(
		form.Field(FieldName, form.Required(), form.MinLength(3)),
		form.Field(FieldCPF, form.Required(), form.MinLength(11), form.MaxLength(14), form.CPF()),
		form.Field(FieldBirthDate, form.Required(), form.Date(birthDateLayouts...)),
		form.Field(FieldGender, form.Required()),
		form.Field(FieldPhone, form.MinLength(10), form.MaxLength(16)),
		form.Field(FieldEmail, form.Required(), form.Email()),
		form.Field(FieldPassword, form.Required(), form.MinLength(6)),
		form.Field(FieldPasswordConfirm, form.Required(), form.MinLength(6)),
		form.WithValidator(form.Match(FieldPassword, FieldPasswordConfirm)),
	)
}
