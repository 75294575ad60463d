package viceverser

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Key identifies a normalized word form inside one cache table.
type Key uint64

// KeyOf returns the cache key of an already normalized form.
func KeyOf(form string) Key {
	return Key(xxhash.Sum64String(form))
}

// apostropheReplacer folds typographic apostrophes and hyphens.
var apostropheReplacer = strings.NewReplacer(
	"’", "'", // ’
	"ʼ", "'", // ʼ
	"‐", "-", // ‐ hyphen
	"‑", "-", // non-breaking hyphen
)

// Normalize returns the normalized form of a French surface word: NFC,
// lowercased, with typographic apostrophes and hyphens folded to ASCII.
// Accents are kept, they are lexically significant in French (à/a, où/ou).
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = apostropheReplacer.Replace(s)
	// a Caser keeps state, it cannot be shared between goroutines
	return cases.Lower(language.French).String(s)
}
