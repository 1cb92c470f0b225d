package langcode

import (
	"os"

	"golang.org/x/text/language"
)

// localeEnvVars are consulted in POSIX precedence order.
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// SystemLocale detects the host locale from the environment and
// normalizes it against the table. The env reader is injectable for
// tests; pass nil to read the process environment.
//
// Reports false when no locale variable is set or the spelling has no
// table entry (e.g. "en_US.UTF-8" against the reference set).
func (t Table) SystemLocale(env func(string) string) (string, bool) {
	if env == nil {
		env = os.Getenv
	}

	for _, name := range localeEnvVars {
		raw := env(name)
		if raw == "" {
			continue
		}
		return t.Normalize(raw)
	}

	return "", false
}

// MatchAccept picks the best entry from available for an
// Accept-Language style preference header. Matching uses BCP 47
// semantics (golang.org/x/text), so "zh-Hans" finds an available
// "zh-cn" and "en-GB" finds "en". Falls back to the first available
// entry when nothing matches or the header is empty.
func MatchAccept(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}

	tags := make([]language.Tag, 0, len(available))
	codes := make([]string, 0, len(available))
	for _, code := range available {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}
	if len(tags) == 0 {
		return available[0]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0]
	}

	matcher := language.NewMatcher(tags)
	_, index, conf := matcher.Match(desired...)
	if conf == language.No {
		return available[0]
	}

	return codes[index]
}
