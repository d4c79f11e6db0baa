package registration

import "errors"

var (
	ErrInvalidForm       = errors.New("registration form is invalid")
	ErrAlreadyRegistered = errors.New("cpf already registered")
	ErrPersistFailed     = errors.New("failed to persist registration")
	ErrNotFound          = errors.New("registration not found")
	ErrInvalidCPF        = errors.New("invalid cpf")
)
