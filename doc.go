// Package cipherion is a study bench for classical cryptography: the
// ciphers people actually broke, implemented exactly, next to the tools
// that broke them.
//
// 🚀 What is cipherion?
//
//	A pure-function library that brings together:
//		• Substitution ciphers: Caesar, Affine, Atbash
//		• Polyalphabetic ciphers: August, Vigenère, Beaufort, Autokey
//		• Polygraphic ciphers: Hill (exact integer matrices modulo 26)
//		• Transposition ciphers: Rail Fence, Route, Myszkowski
//		• Cryptanalysis: n-gram frequencies, repeated-sequence search,
//		  index of coincidence
//
// ✨ Why choose cipherion?
//
//   - Exact – Hill inverses via integer cofactor arithmetic, never floats
//   - Invertible by construction – transposition decryption is the inverse
//     permutation of encryption's coordinate order, not a second traversal
//   - Honest errors – sentinel errors, errors.Is-matchable, no panics
//   - Re-entrant – ciphers are immutable values; share them freely
//
// None of these ciphers is secure. That is the point: they exist to be
// studied and broken with the analysis package.
//
// Everything is organized under six subpackages:
//
//	alphabet/  — rune↔residue codec, filters, diacritic folding
//	keystream/ — repeating, progressive, and self-extending key streams
//	modmath/   — modular scalar arithmetic & exact integer matrices
//	grid/      — coordinate orders, permutations, padding for transposition
//	cipher/    — the eleven-variant catalog behind one Encrypt/Decrypt contract
//	analysis/  — the statistics that tell ciphertext from language
//
// Quick example:
//
//	c, _ := cipher.NewVigenere("KEY")
//	out, _ := c.Encrypt("HELLO")   // "RIJVS"
//
// See each package's doc.go for the full register, and the example tests
// for runnable demonstrations.
package cipherion
