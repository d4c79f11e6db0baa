package messages

import "errors"

var (
	ErrNoCatalogs      = errors.New("no message catalogs found")
	ErrFailedToParse   = errors.New("failed to parse message catalog")
	ErrInvalidLanguage = errors.New("invalid language tag")
	ErrDefaultMissing  = errors.New("default language has no catalog")
)
