// Package langcode canonicalizes arbitrary locale strings and
// fuzzy-matches language pack identifiers against canonical codes.
//
// All lookups run against an immutable [Table] of static data: raw
// spelling mappings, per-language keyword lists, native display names,
// and marketplace search strings. [DefaultTable] carries the built-in
// reference set; tests and hosts with different language coverage can
// build their own with [NewTable].
//
// # Normalization
//
// Operating systems report locales in many spellings. Normalize reduces
// them to one canonical code:
//
//	table := langcode.DefaultTable()
//	code, ok := table.Normalize("zh_CN.UTF-8") // "zh-cn", true
//	code, ok = table.Normalize("JA_JP.utf8")   // "ja", true
//
// Several spellings may map to the same canonical code; bare "zh"
// defaults to simplified Chinese in the reference table.
//
// # Package Matching
//
// Language packs are distributed with identifiers like
// "i18n-zh-cn-community" or "i18n-简体中文". MatchesPackage decides
// whether such an identifier serves a canonical code, and FindPackageID
// synthesizes a plausible identifier for one:
//
//	table.MatchesPackage("i18n-zh-cn-community", "zh-cn") // true
//	table.MatchesPackage("i18n-japanese", "zh-cn")        // false
//	id, ok := table.FindPackageID("ja")                   // "i18n-ja", true
//
// # Locale Detection
//
// SystemLocale reads LC_ALL, LC_MESSAGES, and LANG and normalizes the
// first one set. MatchAccept resolves an Accept-Language style header
// against a list of available codes using BCP 47 matching.
package langcode
