// Package alphabet maps runes of the 26-letter Latin alphabet to their
// 0–25 residues and back, preserving case and passing every other rune
// through untouched.
//
// Every cipher in this module speaks residues, not runes; alphabet is the
// one place where the rune↔residue conversion lives:
//   - Classify — rune → Symbol (residue + case, or passthrough)
//   - FromResidue — residue + case → rune (mod-26 normalized)
//   - KeyResidue — total residue of an arbitrary key rune
//   - Letters / Alphanumeric — uppercased filtered copies for block ciphers
//   - Fold — best-effort diacritic folding ("café" → "cafe")
//
// All functions are pure, re-entrant and total; none of them can fail.
package alphabet
