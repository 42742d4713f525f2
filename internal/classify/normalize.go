package classify

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// searchText builds the lower-cased, diacritic-folded haystack used for
// keyword matching. "Nestlé" matches the same rules as "nestle".
func searchText(name, description string) string {
	s := strings.ToLower(strings.TrimSpace(name) + " " + strings.TrimSpace(description))
	if folded, _, err := transform.String(deaccent, s); err == nil {
		s = folded
	}
	return s
}

// containsAny reports whether any keyword occurs as a substring of text.
// Matching is intentionally naive: a company named "Nosex Inc" will hit
// the "sex" keyword. That mirrors the documented matching contract and is
// not to be quietly tightened.
func containsAny(text string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return kw, true
		}
	}
	return "", false
}
