package translate

import "github.com/dmitrymomot/lingua/pkg/langcode"

// Settings is the host's settings/registry collaborator. The engine
// reads language preferences and the set of installed packs from it and
// asks it to persist a language switch; it never owns this data.
//
// Implementations must be safe for concurrent reads.
type Settings interface {
	// ActiveLanguage returns the configured language preference, if any.
	ActiveLanguage() (string, bool)

	// FallbackLanguage returns the configured fallback preference, if any.
	FallbackLanguage() (string, bool)

	// AutoDetect reports whether the host wants the system locale used
	// when no explicit preference is configured.
	AutoDetect() bool

	// AvailableLanguages lists metadata for every installed language pack.
	AvailableLanguages() []langcode.Metadata

	// PersistActiveLanguage stores a successful language switch.
	PersistActiveLanguage(code string) error
}
