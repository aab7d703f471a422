package helpers

import (
	"net/url"
	"regexp"
	"strings"
)

var spaceRuns = regexp.MustCompile(`\s+`)

// Slugify derives the public URL segment for a display name: trim,
// lowercase, whitespace runs to a single hyphen. Nothing is
// transliterated or dropped, so the advertised slug always resolves
// back to the name it was derived from through NormalizeSlug.
func Slugify(name string) string {
	return spaceRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// NormalizeSlug turns a URL path segment back into a display-name
// lookup key: URL-decode, hyphens to spaces, trim. Returns "" when
// nothing usable remains.
func NormalizeSlug(s string) string {
	if dec, err := url.PathUnescape(s); err == nil {
		s = dec
	}
	s = strings.ReplaceAll(s, "-", " ")
	return strings.TrimSpace(s)
}

// NamePattern builds the anchored, case-insensitive match pattern for
// a normalized name. The input is attacker-controlled free text, so
// every regex metacharacter is escaped before it is embedded.
func NamePattern(normalized string) string {
	return "^" + regexp.QuoteMeta(normalized) + "$"
}
