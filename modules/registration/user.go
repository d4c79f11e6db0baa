package registration

import (
	"time"

	"github.com/google/uuid"

	"github.com/appcadastro/registro/pkg/sanitizer"
)

const keyPrefix = "usuarios/"

// User is the persisted registration record.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"nome"`
	CPF          string    `json:"cpf"`
	BirthDate    time.Time `json:"data_de_nascimento"`
	Gender       string    `json:"genero"`
	Phone        string    `json:"celular,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"senha_hash"`
	CreatedAt    time.Time `json:"criado_em"`
}

// UserView is the public representation of a User.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nome"`
	CPF       string    `json:"cpf"`
	BirthDate string    `json:"data_de_nascimento"`
	Gender    string    `json:"genero"`
	Phone     string    `json:"celular,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"criado_em"`
}

func (u User) View() UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		CPF:       sanitizer.FormatCPF(u.CPF),
		BirthDate: u.BirthDate.Format(time.DateOnly),
		Gender:    u.Gender,
		Phone:     u.Phone,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// userKey is the storage key of the record for a CPF in any formatting.
func userKey(cpf string) string {
	return keyPrefix + sanitizer.Digits(cpf)
}

var (
	cleanName  = sanitizer.Compose(sanitizer.Trim, sanitizer.RemoveControlChars, sanitizer.NormalizeWhitespace)
	cleanField = sanitizer.Compose(sanitizer.Trim, sanitizer.RemoveControlChars)
)
