package translate

import (
	"github.com/dmitrymomot/lingua/pkg/langcode"
)

// WithBaseLanguage sets the base language. The base is the initial
// active language, a permanently valid switch target, and the natural
// home for WithDefaultTexts. Default: "en-us".
func WithBaseLanguage(code string) Option {
	return func(e *Engine) error {
		code = canonical(code)
		if code == "" {
			return ErrEmptyLanguage
		}
		e.base = code
		return nil
	}
}

// WithFallbackLanguage configures the fallback consulted when the
// active language lacks a key. It takes precedence over the settings
// collaborator's fallback preference and over registration order.
func WithFallbackLanguage(code string) Option {
	return func(e *Engine) error {
		code = canonical(code)
		if code == "" {
			return ErrEmptyLanguage
		}
		if err := e.validateCode(code); err != nil {
			return err
		}
		e.fallback = code
		return nil
	}
}

// WithActiveLanguage sets the initial active language, overriding the
// base. Settings preferences still win when a collaborator is attached.
func WithActiveLanguage(code string) Option {
	return func(e *Engine) error {
		code = canonical(code)
		if code == "" {
			return ErrEmptyLanguage
		}
		if err := e.validateCode(code); err != nil {
			return err
		}
		e.active = code
		return nil
	}
}

// WithTable replaces the default language code table.
func WithTable(table langcode.Table) Option {
	return func(e *Engine) error {
		e.table = table
		return nil
	}
}

// WithCacheCapacity bounds the lookup cache. Default: 1000 entries.
func WithCacheCapacity(n int) Option {
	return func(e *Engine) error {
		if n > 0 {
			e.cacheCapacity = n
		}
		return nil
	}
}

// WithResources registers a language's resource set at construction.
// Same contract as Register.
func WithResources(lang string, resources map[string]string) Option {
	return func(e *Engine) error {
		return e.registerSet(lang, resources, nil)
	}
}

// WithDefaultTexts registers the host's default text catalog under the
// base language. Apply after WithBaseLanguage if both are used.
func WithDefaultTexts(texts map[string]string) Option {
	return func(e *Engine) error {
		return e.registerSet(e.base, texts, nil)
	}
}

// WithSettings attaches the host's settings/registry collaborator.
func WithSettings(settings Settings) Option {
	return func(e *Engine) error {
		e.settings = settings
		return nil
	}
}

// WithMissingKeyHandler sets a handler called when a key resolves to
// nothing in any consulted language. Useful for logging translation
// gaps; the engine itself stays silent.
func WithMissingKeyHandler(handler func(lang, key string)) Option {
	return func(e *Engine) error {
		e.missingKeyHandler = handler
		return nil
	}
}
