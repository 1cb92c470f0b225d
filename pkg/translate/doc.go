// Package translate resolves namespaced translation keys to text for an
// active language, with wholesale per-language resource registration, a
// bounded LRU cache of resolved results, and a single-fallback miss path.
//
// # Basic Usage
//
// Create an Engine, register resource sets, and look up keys:
//
//	engine, err := translate.New(
//	    translate.WithResources("zh-cn", map[string]string{
//	        "i18n.menu.file.save": "保存",
//	        "i18n.greeting":       "你好，{name}！",
//	    }),
//	)
//	if err != nil {
//	    return err
//	}
//
//	if err := engine.SwitchLanguage("zh-cn"); err != nil {
//	    return err
//	}
//
//	text, ok := engine.GetText("i18n.menu.file.save") // "保存", true
//	text, ok = engine.FormatText("i18n.greeting", translate.P("name", "Ada"))
//	// "你好，Ada！", true
//
// Every key carries the "i18n." namespace prefix; Register rejects sets
// containing anything else without mutating existing state.
//
// # Resolution and Fallback
//
// GetText consults the lookup cache first, then the active language's
// resource set, then exactly one fallback: the configured fallback
// language when one is set, otherwise the first registered language that
// is not active. A total miss reports absence, never an error — the UI
// decides what to show (commonly the raw key).
//
// The cache is keyed by (language, key) and cleared on every language
// switch and resource (de)registration, so a stale value from a previous
// language is never returned.
//
// # Host Collaborators
//
// The engine performs no file or network I/O. Translation packs arrive
// as already-parsed maps (Register), raw pack bytes (RegisterPack), or
// an fs.FS of pack files (WithJSONDir, WithYAMLDir). A Settings
// collaborator supplies language preferences and installed pack
// metadata and persists language switches.
package translate
