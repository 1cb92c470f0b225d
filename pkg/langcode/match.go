package langcode

import "strings"

// PackagePrefix is the required prefix for installable language pack
// identifiers (e.g. "i18n-zh-cn-community").
const PackagePrefix = "i18n-"

// MatchesPackage reports whether an installable package identifier
// provides support for a canonical language code.
//
// The checks run in order, first match wins:
//  1. reject unless packageID carries the "i18n-" prefix
//  2. accept if the remainder starts with the canonical code
//  3. accept if the remainder contains any of the language's keywords
//  4. accept if the remainder contains the language's native name
//
// All comparisons are case-insensitive. The predicate is deterministic
// and side-effect-free.
func (t Table) MatchesPackage(packageID, code string) bool {
	id := strings.ToLower(packageID)
	code = strings.ToLower(code)

	rest, ok := strings.CutPrefix(id, PackagePrefix)
	if !ok {
		return false
	}

	if strings.HasPrefix(rest, code) {
		return true
	}

	for _, keyword := range t.keywords[code] {
		if strings.Contains(rest, strings.ToLower(keyword)) {
			return true
		}
	}

	if name, ok := t.nativeNames[code]; ok {
		if strings.Contains(rest, strings.ToLower(name)) {
			return true
		}
	}

	return false
}

// FindPackageID synthesizes a plausible package identifier for a
// canonical language code: the first keyword in the language's list
// whose "i18n-<keyword>" form matches via MatchesPackage, falling back
// to "i18n-<code>" for any supported code. Unknown codes report false.
func (t Table) FindPackageID(code string) (string, bool) {
	code = strings.ToLower(code)
	if t.Validate(code) != nil || code == "" {
		return "", false
	}

	for _, keyword := range t.keywords[code] {
		candidate := PackagePrefix + strings.ToLower(keyword)
		if t.MatchesPackage(candidate, code) {
			return candidate, true
		}
	}

	return PackagePrefix + code, true
}
