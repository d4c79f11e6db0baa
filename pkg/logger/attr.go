package logger

import (
	"log/slog"

	"github.com/appcadastro/registro/pkg/sanitizer"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the user identifier under the key "user_id".
// If id is nil, it returns an empty Attr.
func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Key records a storage key under the key "key".
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// CPF records a taxpayer number masked to its first three and last two digits.
func CPF(cpf string) slog.Attr {
	return slog.String("cpf", sanitizer.MaskCPF(cpf))
}

// Email records an address with its local part masked.
func Email(email string) slog.Attr {
	return slog.String("email", sanitizer.MaskEmail(email))
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Fields records the names of invalid form fields.
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}
