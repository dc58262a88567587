// Package keystream produces the per-position key residues that drive the
// polyalphabetic ciphers: repeating keywords (Vigenère, Beaufort),
// progressive shifts (August), fixed shifts (Caesar) and the self-extending
// Autokey stream.
//
// A Stream is fed every rune of the text, in order, as an
// alphabet.Symbol; the stream decides internally whether the position
// advances its state:
//   - Fixed / Repeating / Progressive advance only on letters, so
//     punctuation and spacing pass through a cipher without consuming key
//     material.
//   - Autokey consumes one slot per rune, letters or not, because its tail
//     is the text itself read position-for-position.
//
// Streams are cheap, single-use values: build one per encrypt or decrypt
// call and discard it. Nothing is shared, so concurrent calls never
// coordinate.
package keystream
