package alphabet

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold returns s with diacritics stripped ("café" → "cafe"), so text from
// richer alphabets can be canonicalized before enciphering: decompose to
// NFD, drop the combining marks, recompose to NFC. Runes that do not
// decompose to a base letter survive unchanged; on malformed input the
// original string is returned as-is.
//
// The transformer chain is built per call, keeping Fold safe for
// concurrent use like everything else in this package.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return folded
}
