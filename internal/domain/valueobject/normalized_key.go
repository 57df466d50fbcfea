// Package valueobject contains domain value objects for the billing system.
package valueobject

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeKey converts free text into the canonical matching key used for
// statement deduplication and alias lookup: Unicode NFKD decomposition with
// diacritics and non-ASCII remnants stripped, lower-cased, inner whitespace
// collapsed to single spaces.
func NormalizeKey(text string) string {
	decomposed := norm.NFKD.String(text)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue // combining mark left over from decomposition
		}
		if r > unicode.MaxASCII {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
