package langcode

import "errors"

var (
	// ErrUnknownLanguage is returned when a code has no entry in the table.
	ErrUnknownLanguage = errors.New("langcode: unsupported language code")
)
