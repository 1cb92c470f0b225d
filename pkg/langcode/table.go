package langcode

import (
	"fmt"
	"sort"
	"strings"
)

// Table holds the static lookup data for language code normalization and
// package matching: raw-spelling mappings, per-language keyword lists,
// native display names, marketplace search strings, and the right-to-left
// set. It is immutable after construction, making it safe for concurrent
// use; all methods are pure functions of the table data.
type Table struct {
	mappings       map[string]string
	keywords       map[string][]string
	nativeNames    map[string]string
	searchKeywords map[string]string
	rtl            map[string]bool
}

// TableOption configures a Table during construction.
type TableOption func(*Table)

// DefaultTable returns the table with the built-in reference data.
func DefaultTable() Table {
	return Table{
		mappings:       defaultMappings,
		keywords:       defaultKeywords,
		nativeNames:    defaultNativeNames,
		searchKeywords: defaultSearchKeywords,
		rtl:            defaultRTL,
	}
}

// NewTable builds a Table from scratch. Use it in tests or hosts that
// need a different language set than the built-in one; DefaultTable
// covers the common case.
func NewTable(opts ...TableOption) Table {
	t := Table{
		mappings:       make(map[string]string),
		keywords:       make(map[string][]string),
		nativeNames:    make(map[string]string),
		searchKeywords: make(map[string]string),
		rtl:            make(map[string]bool),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// WithMappings adds raw-spelling to canonical-code mappings.
// Keys are lower-cased.
func WithMappings(mappings map[string]string) TableOption {
	return func(t *Table) {
		for raw, code := range mappings {
			t.mappings[strings.ToLower(raw)] = strings.ToLower(code)
		}
	}
}

// WithKeywords sets the fuzzy-match keyword list for a canonical code.
// List order is significant for package identifier synthesis.
func WithKeywords(code string, keywords ...string) TableOption {
	return func(t *Table) {
		t.keywords[strings.ToLower(code)] = keywords
	}
}

// WithNativeName sets the native display name for a canonical code.
// A code without a native name is not a supported language.
func WithNativeName(code, name string) TableOption {
	return func(t *Table) {
		t.nativeNames[strings.ToLower(code)] = name
	}
}

// WithSearchKeywords sets the marketplace search string for a canonical code.
func WithSearchKeywords(code, keywords string) TableOption {
	return func(t *Table) {
		t.searchKeywords[strings.ToLower(code)] = keywords
	}
}

// WithRightToLeft marks codes as right-to-left languages.
func WithRightToLeft(codes ...string) TableOption {
	return func(t *Table) {
		for _, code := range codes {
			t.rtl[strings.ToLower(code)] = true
		}
	}
}

// Normalize maps a raw, possibly decorated locale spelling to its
// canonical code. The input is lower-cased and trimmed; if no direct
// match exists, the encoding suffix after the first '.' is stripped and
// retried, and finally the portion before the first '_' or '-' is
// retried as a main-language match.
//
// Absence of a match reports false, never an error:
//
//	Normalize("zh_CN.UTF-8")  // "zh-cn", true
//	Normalize("JA_JP.utf8")   // "ja", true
//	Normalize("en_US.UTF-8")  // "", false (no English entry in the reference set)
func (t Table) Normalize(raw string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}

	if code, ok := t.mappings[s]; ok {
		return code, true
	}

	// Strip the encoding suffix (e.g. ".UTF-8") and retry.
	if base, _, found := strings.Cut(s, "."); found {
		if code, ok := t.mappings[base]; ok {
			return code, true
		}
		s = base
	}

	// Retry the main language portion (e.g. "fr" from "fr_BE").
	if i := strings.IndexAny(s, "_-"); i > 0 {
		if code, ok := t.mappings[s[:i]]; ok {
			return code, true
		}
	}

	return "", false
}

// NativeName returns the native display name for a canonical code.
func (t Table) NativeName(code string) (string, bool) {
	name, ok := t.nativeNames[strings.ToLower(code)]
	return name, ok
}

// SearchKeywords returns the marketplace search string for a canonical code.
func (t Table) SearchKeywords(code string) (string, bool) {
	kw, ok := t.searchKeywords[strings.ToLower(code)]
	return kw, ok
}

// Validate reports whether code is a supported canonical language code.
// Empty codes are valid ("no preference"). Returns ErrUnknownLanguage
// for anything the table does not know.
func (t Table) Validate(code string) error {
	if code == "" {
		return nil
	}
	if _, ok := t.nativeNames[strings.ToLower(code)]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	return nil
}

// Supported returns all canonical codes known to the table, sorted.
func (t Table) Supported() []string {
	codes := make([]string, 0, len(t.nativeNames))
	for code := range t.nativeNames {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// IsRightToLeft reports whether a canonical code is a right-to-left language.
func (t Table) IsRightToLeft(code string) bool {
	return t.rtl[strings.ToLower(code)]
}
