package storage

import "errors"

var (
	ErrEmptyKey = errors.New("storage key is empty")
	ErrBackend  = errors.New("storage backend failure")
	ErrDecode   = errors.New("failed to decode stored value")
	ErrEncode   = errors.New("failed to encode value")
	ErrNilData  = errors.New("storage data is nil")
)
