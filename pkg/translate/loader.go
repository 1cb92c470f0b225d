package translate

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// WithJSONDir loads translation packs from JSON files in an fs.FS.
// File convention: one flat pack per language, named {lang}.json at the
// root (e.g. "zh-cn.json", "ja.json"). See ParseResources for the pack
// format. A malformed file aborts construction without registering
// anything from it.
//
//	//go:embed translations
//	var packs embed.FS
//
//	sub, _ := fs.Sub(packs, "translations")
//	engine, err := translate.New(translate.WithJSONDir(sub))
func WithJSONDir(fsys fs.FS) Option {
	return func(e *Engine) error {
		return loadDir(e, fsys, ".json", ParseResources)
	}
}

// WithYAMLDir loads translation packs from YAML files in an fs.FS.
// File convention: {lang}.yaml or {lang}.yml at the root.
func WithYAMLDir(fsys fs.FS) Option {
	return func(e *Engine) error {
		return loadDir(e, fsys, ".yaml", ParseResourcesYAML)
	}
}

func loadDir(e *Engine, fsys fs.FS, ext string, parse func([]byte) (map[string]string, bool, error)) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading pack directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		fileExt := strings.ToLower(path.Ext(name))

		// .YML and .Yaml show up on case-preserving filesystems
		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			continue
		}

		lang := strings.TrimSuffix(name, path.Ext(name))
		if lang == "" {
			return fmt.Errorf("%w: file %q has no language name", ErrResourceFormat, name)
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading %q: %w", name, err)
		}

		resources, rtl, err := parse(data)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", name, err)
		}

		if err := e.registerSet(lang, resources, &rtl); err != nil {
			return fmt.Errorf("registering %q: %w", name, err)
		}
	}

	return nil
}
