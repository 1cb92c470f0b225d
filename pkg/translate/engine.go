package translate

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/lingua/pkg/cache"
	"github.com/dmitrymomot/lingua/pkg/langcode"
)

// DefaultBaseLanguage is the language the engine starts in and the one
// code that is always a valid switch target, even without a table entry.
const DefaultBaseLanguage = "en-us"

// Engine resolves translation keys to text for the currently active
// language, with a single-fallback miss path and a bounded LRU cache of
// resolved results in front of the resource store.
//
// An Engine is an explicitly owned service object: construct one with
// New and hand it to consumers. It is safe for concurrent use; reads
// run under a shared lock while registration and language switches
// serialize against each other.
type Engine struct {
	table    langcode.Table
	cache    *cache.LRU[string]
	settings Settings

	// Called on a total lookup miss; useful for spotting untranslated
	// keys during development.
	missingKeyHandler func(lang, key string)

	base          string
	cacheCapacity int

	mu        sync.RWMutex
	active    string
	fallback  string
	resources map[string]map[string]string
	order     []string
	rtl       map[string]bool
}

// Option configures the Engine during construction.
type Option func(*Engine) error

// New creates an Engine. Preferences from an attached Settings
// collaborator are applied after all options: an explicit language
// preference wins, then system locale detection when auto-detect is on,
// then the base language.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		table:         langcode.DefaultTable(),
		base:          DefaultBaseLanguage,
		cacheCapacity: cache.DefaultCapacity,
		resources:     make(map[string]map[string]string),
		rtl:           make(map[string]bool),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if e.active == "" {
		e.active = e.base
	}

	if e.settings != nil {
		if err := e.applySettings(); err != nil {
			return nil, err
		}
	}

	e.cache = cache.NewLRU[string](cache.WithCapacity(e.cacheCapacity))

	return e, nil
}

// applySettings folds the collaborator's preferences into the engine state.
func (e *Engine) applySettings() error {
	if e.fallback == "" {
		if pref, ok := e.settings.FallbackLanguage(); ok && pref != "" {
			pref = canonical(pref)
			if err := e.validateCode(pref); err != nil {
				return err
			}
			e.fallback = pref
		}
	}

	if pref, ok := e.settings.ActiveLanguage(); ok && pref != "" {
		pref = canonical(pref)
		if err := e.validateCode(pref); err != nil {
			return err
		}
		e.active = pref
		return nil
	}

	if e.settings.AutoDetect() {
		if code, ok := e.table.SystemLocale(nil); ok {
			e.active = code
		}
	}

	return nil
}

// Register stores the complete resource set for a language, replacing
// any existing set wholesale. Every key must carry the "i18n."
// namespace prefix; a single bad key rejects the whole set without
// mutating existing state.
func (e *Engine) Register(lang string, resources map[string]string) error {
	return e.registerSet(lang, resources, nil)
}

// RegisterPack parses raw translation pack data (see ParseResources)
// and registers it for a language, capturing the pack's right-to-left
// flag. Parse failures leave existing state untouched.
func (e *Engine) RegisterPack(lang string, data []byte) error {
	resources, rtl, err := ParseResources(data)
	if err != nil {
		return err
	}
	return e.registerSet(lang, resources, &rtl)
}

func (e *Engine) registerSet(lang string, resources map[string]string, rtl *bool) error {
	lang = canonical(lang)
	if lang == "" {
		return ErrEmptyLanguage
	}
	if err := validateKeys(resources); err != nil {
		return err
	}

	set := maps.Clone(resources)
	if set == nil {
		set = make(map[string]string)
	}

	e.mu.Lock()
	if _, exists := e.resources[lang]; !exists {
		e.order = append(e.order, lang)
	}
	e.resources[lang] = set
	if rtl != nil {
		e.rtl[lang] = *rtl
	}
	e.mu.Unlock()

	// A replaced set may shadow results cached for any active language
	// (the language also serves as a fallback), so drop everything.
	e.invalidate()

	return nil
}

// Deregister removes a language's resource set entirely. Subsequent
// lookups for that language find nothing. Unknown languages are a no-op.
func (e *Engine) Deregister(lang string) {
	lang = canonical(lang)

	e.mu.Lock()
	_, existed := e.resources[lang]
	delete(e.resources, lang)
	delete(e.rtl, lang)
	if existed {
		e.order = slices.DeleteFunc(e.order, func(l string) bool { return l == lang })
	}
	e.mu.Unlock()

	if existed {
		e.invalidate()
	}
}

// GetText resolves a translation key for the active language.
// Resolution order: lookup cache, active language's resource set, then
// exactly one fallback language. Absence reports false, never an error;
// callers typically display the raw key.
func (e *Engine) GetText(key string) (string, bool) {
	e.mu.RLock()
	active := e.active
	e.mu.RUnlock()

	// The cache is keyed by (language, key) so entries from a previous
	// active language can never satisfy this lookup.
	text, err := e.cache.GetOrSet(context.Background(), cacheKey(active, key),
		func(context.Context) (string, error) {
			e.mu.RLock()
			defer e.mu.RUnlock()

			if text, ok := e.resolveLocked(active, key); ok {
				return text, nil
			}
			return "", ErrKeyNotFound
		})
	if err != nil {
		if e.missingKeyHandler != nil {
			e.missingKeyHandler(active, key)
		}
		return "", false
	}

	return text, true
}

// resolveLocked consults the active language's set, then one fallback.
// Caller must hold at least a read lock.
func (e *Engine) resolveLocked(active, key string) (string, bool) {
	if text, ok := e.resources[active][key]; ok {
		return text, true
	}

	fallback, ok := e.fallbackLocked(active)
	if !ok {
		return "", false
	}

	text, ok := e.resources[fallback][key]
	return text, ok
}

// fallbackLocked selects exactly one fallback language: the configured
// preference when it is set and registered, otherwise the first
// registered language (in registration order) that is not active.
func (e *Engine) fallbackLocked(active string) (string, bool) {
	if e.fallback != "" && e.fallback != active {
		if _, ok := e.resources[e.fallback]; ok {
			return e.fallback, true
		}
	}

	for _, lang := range e.order {
		if lang != active {
			return lang, true
		}
	}

	return "", false
}

// FormatText resolves a key via GetText and substitutes {name}
// placeholders with the given parameters, in order. Best-effort on both
// sides: unmatched placeholders stay verbatim, unused parameters are
// ignored.
func (e *Engine) FormatText(key string, params ...Param) (string, bool) {
	text, ok := e.GetText(key)
	if !ok {
		return "", false
	}
	return ReplaceParams(text, params), true
}

// Lookup reads a key from one language's resource set directly, without
// touching the cache or the fallback path.
func (e *Engine) Lookup(lang, key string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	text, ok := e.resources[canonical(lang)][key]
	return text, ok
}

// SwitchLanguage makes code the active language. The target must be the
// base language or a canonical code known to the table; anything else
// fails with ErrUnknownLanguage and changes nothing. On success the
// cache is cleared and the switch is handed to the settings collaborator
// for persistence.
func (e *Engine) SwitchLanguage(code string) error {
	code = canonical(code)
	if code == "" {
		return ErrEmptyLanguage
	}
	if err := e.validateCode(code); err != nil {
		return err
	}

	e.mu.Lock()
	e.active = code
	e.mu.Unlock()

	e.invalidate()

	if e.settings != nil {
		if err := e.settings.PersistActiveLanguage(code); err != nil {
			return fmt.Errorf("translate: persist language switch: %w", err)
		}
	}

	return nil
}

// ActiveLanguage returns the currently active language code.
func (e *Engine) ActiveLanguage() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.active
}

// BaseLanguage returns the engine's base language.
func (e *Engine) BaseLanguage() string {
	return e.base
}

// Languages returns the registered language codes in registration order.
func (e *Engine) Languages() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.order)
}

// HasLanguage reports whether a language has a registered resource set.
func (e *Engine) HasLanguage(lang string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.resources[canonical(lang)]
	return ok
}

// IsRightToLeft reports whether the active language reads right to
// left. A pack-declared rtl flag takes precedence over the table's
// static set.
func (e *Engine) IsRightToLeft() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if rtl, ok := e.rtl[e.active]; ok {
		return rtl
	}
	return e.table.IsRightToLeft(e.active)
}

// PackForLanguage scans the settings collaborator's installed packs for
// one that serves the given canonical code, using the table's fuzzy
// matcher. Reports false without a settings collaborator or a match.
func (e *Engine) PackForLanguage(code string) (langcode.Metadata, bool) {
	if e.settings == nil {
		return langcode.Metadata{}, false
	}

	code = canonical(code)
	for _, meta := range e.settings.AvailableLanguages() {
		if meta.PackageID == "" {
			continue
		}
		if e.table.MatchesPackage(meta.PackageID, code) {
			return meta, true
		}
	}

	return langcode.Metadata{}, false
}

// Table returns the engine's language code table.
func (e *Engine) Table() langcode.Table {
	return e.table
}

// validateCode accepts the base language unconditionally; everything
// else must be known to the table.
func (e *Engine) validateCode(code string) error {
	if code == e.base {
		return nil
	}
	if err := e.table.Validate(code); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	return nil
}

// invalidate drops all cached resolutions. Selective purging is not
// possible because a cached entry does not record which language's set
// produced it (the fallback path caches under the active language).
func (e *Engine) invalidate() {
	if e.cache == nil {
		// Still inside New; the cache is built after options run.
		return
	}
	_ = e.cache.Clear(context.Background())
}

func cacheKey(lang, key string) string {
	return lang + ":" + key
}

// canonical lower-cases and trims a language code. All engine maps are
// keyed by canonical codes.
func canonical(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
