package lingua

import (
	"github.com/dmitrymomot/lingua/pkg/langcode"
	"github.com/dmitrymomot/lingua/pkg/translate"
)

// Type aliases - public API
type (
	// Engine resolves translation keys for the active language.
	Engine = translate.Engine

	// Option configures the engine.
	Option = translate.Option

	// Param is one named substitution value for FormatText.
	Param = translate.Param

	// Settings is the host's settings/registry collaborator.
	Settings = translate.Settings

	// Table holds the static language code data.
	Table = langcode.Table

	// TableOption configures a custom Table.
	TableOption = langcode.TableOption

	// Metadata describes one installed language pack.
	Metadata = langcode.Metadata
)

// Re-exported sentinel errors.
var (
	ErrEmptyLanguage    = translate.ErrEmptyLanguage
	ErrUnknownLanguage  = translate.ErrUnknownLanguage
	ErrInvalidKeyFormat = translate.ErrInvalidKeyFormat
	ErrResourceFormat   = translate.ErrResourceFormat
)

// Namespace is the required prefix for every translation key.
const Namespace = translate.Namespace

// New creates a translation engine. Preferences from an attached
// Settings collaborator are applied after all options.
//
// Example:
//
//	engine, err := lingua.New(
//	    lingua.WithSettings(hostSettings),
//	    lingua.WithResources("zh-cn", zhPack),
//	)
func New(opts ...Option) (*Engine, error) {
	return translate.New(opts...)
}

// P is shorthand for constructing a Param.
func P(name, value string) Param {
	return translate.P(name, value)
}

// DefaultTable returns the built-in language code table.
func DefaultTable() Table {
	return langcode.DefaultTable()
}

// Engine options

// WithBaseLanguage sets the base language (default "en-us").
func WithBaseLanguage(code string) Option {
	return translate.WithBaseLanguage(code)
}

// WithFallbackLanguage configures the fallback language preference.
func WithFallbackLanguage(code string) Option {
	return translate.WithFallbackLanguage(code)
}

// WithResources registers a language's resource set at construction.
func WithResources(lang string, resources map[string]string) Option {
	return translate.WithResources(lang, resources)
}

// WithDefaultTexts registers the host's default text catalog under the
// base language.
func WithDefaultTexts(texts map[string]string) Option {
	return translate.WithDefaultTexts(texts)
}

// WithSettings attaches the host's settings/registry collaborator.
func WithSettings(settings Settings) Option {
	return translate.WithSettings(settings)
}

// WithTable replaces the default language code table.
func WithTable(table Table) Option {
	return translate.WithTable(table)
}

// WithCacheCapacity bounds the lookup cache (default 1000 entries).
func WithCacheCapacity(n int) Option {
	return translate.WithCacheCapacity(n)
}
