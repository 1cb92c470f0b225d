package translate

import "errors"

var (
	// ErrEmptyLanguage is returned when an operation receives an empty language code.
	ErrEmptyLanguage = errors.New("translate: language cannot be empty")

	// ErrUnknownLanguage is returned when a switch target is not a supported
	// canonical code.
	ErrUnknownLanguage = errors.New("translate: unknown language")

	// ErrInvalidKeyFormat is returned when a translation key lacks the
	// required namespace prefix.
	ErrInvalidKeyFormat = errors.New("translate: invalid translation key")

	// ErrResourceFormat is returned when translation pack data cannot be parsed.
	ErrResourceFormat = errors.New("translate: invalid resource data")

	// ErrResourceNotFound reports that a language has no registered resource set.
	// Lookup operations collapse it to absence; it never crosses the public
	// read API as an error.
	ErrResourceNotFound = errors.New("translate: no resources for language")

	// ErrKeyNotFound reports that a key is absent from every consulted
	// resource set. Like ErrResourceNotFound, it collapses to absence.
	ErrKeyNotFound = errors.New("translate: translation key not found")
)
