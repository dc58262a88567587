package alphabet

import (
	"strings"
	"unicode"
)

// AlphabetSize is the size of the Latin alphabet all ciphers here work over.
const AlphabetSize = 26

// Symbol classifies one rune: a letter carrying its 0–25 residue and
// original case, or any other rune to be passed through unchanged by
// every substitution cipher.
type Symbol struct {
	Rune    rune // the original rune
	Residue int  // 0..25 when Alpha is true, 0 otherwise
	Upper   bool // original case when Alpha is true
	Alpha   bool // true exactly for 'A'..'Z' and 'a'..'z'
}

// Classify reports how a single rune participates in a cipher:
// letters yield their residue and case, everything else is passthrough.
// Total over all runes; no failure modes.
func Classify(r rune) Symbol {
	switch {
	case r >= 'A' && r <= 'Z':
		return Symbol{Rune: r, Residue: int(r - 'A'), Upper: true, Alpha: true}
	case r >= 'a' && r <= 'z':
		return Symbol{Rune: r, Residue: int(r - 'a'), Alpha: true}
	default:
		return Symbol{Rune: r}
	}
}

// FromResidue maps a residue back to the letter of the requested case.
// The residue is normalized mod 26 first, so negative values are fine:
// FromResidue(-1, true) is 'Z'.
func FromResidue(residue int, upper bool) rune {
	residue = mod26(residue)
	if upper {
		return 'A' + rune(residue)
	}

	return 'a' + rune(residue)
}

// KeyResidue is the residue a keyword rune contributes to a key stream.
// Unlike Classify it is total in the arithmetic sense: any rune maps to
// some residue through its uppercased code point, so keys carrying spaces,
// digits or accented letters still yield a deterministic stream.
// KeyResidue(' ') is 19; KeyResidue('a') and KeyResidue('A') are both 0.
func KeyResidue(r rune) int {
	return mod26(int(unicode.ToUpper(r)) - 'A')
}

// Letters returns the uppercased copy of s with every non-letter removed.
// Block ciphers that cannot carry passthrough runes (Hill) start here.
func Letters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if sym := Classify(r); sym.Alpha {
			b.WriteRune(FromResidue(sym.Residue, true))
		}
	}

	return b.String()
}

// Alphanumeric returns the uppercased copy of s keeping only letters and
// ASCII digits. Transposition ciphers fill their grids from this form.
func Alphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if sym := Classify(r); sym.Alpha {
			b.WriteRune(FromResidue(sym.Residue, true))
			continue
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// mod26 reduces v into [0, 26) with Python-style semantics for negatives.
func mod26(v int) int {
	return ((v % AlphabetSize) + AlphabetSize) % AlphabetSize
}
