// Package lingua resolves symbolic translation keys (e.g.
// "i18n.menu.file.save") to text in the user's selected language, and
// discovers installable language packs by fuzzy-matching their
// identifiers against normalized locale codes.
//
// The root package is a thin facade over two engines:
//
//   - pkg/translate: per-language resource sets, a bounded LRU cache of
//     resolved lookups, and active-language state with a single-fallback
//     miss path.
//   - pkg/langcode: canonicalization of arbitrary locale spellings
//     ("zh_CN.UTF-8" → "zh-cn") and keyword-based matching of language
//     pack identifiers ("i18n-简体中文-社区版" serves "zh-cn").
//
// # Quick Start
//
//	engine, err := lingua.New(
//	    lingua.WithDefaultTexts(apptexts.Defaults()),
//	    lingua.WithResources("zh-cn", zhPack),
//	    lingua.WithSettings(hostSettings),
//	)
//	if err != nil {
//	    return err
//	}
//
//	if err := engine.SwitchLanguage("zh-cn"); err != nil {
//	    return err
//	}
//
//	save, ok := engine.GetText("i18n.menu.file.save")
//	hello, ok := engine.FormatText("i18n.greeting", lingua.P("name", "Ada"))
//
// The engine never touches the file system or network; hosts hand it
// already-parsed resource maps, raw pack bytes, or an fs.FS of pack
// files, and wire a Settings collaborator for preference storage.
package lingua
