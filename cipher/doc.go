// SPDX-License-Identifier: MIT

// Package cipher implements the classical cipher catalog behind one
// uniform contract: Encrypt and Decrypt over in-memory strings, with a
// typed error on an invalid key or parameter.
//
// 🚀 What is in the catalog?
//
//	Substitution    — Caesar, Affine, Atbash
//	Polyalphabetic  — August, Vigenère, Beaufort, Autokey
//	Polygraphic     — Hill (integer matrix blocks modulo 26)
//	Transposition   — Rail Fence, Route, Myszkowski
//
//	Every variant is a small value constructed with its own key shape
//	(NewCaesar(3), NewVigenere("KEY"), NewHill(rows), …) and satisfying
//	the Cipher interface, so callers hold a Cipher and never dispatch by
//	name. These are study ciphers: none of them is secure, and none of
//	them pretends to be.
//
// ✨ Shared behavior:
//   - Substitution family: case is preserved per character and every
//     non-letter passes through in place, without consuming key material
//     (Autokey being the deliberate exception — its self-extending key
//     consumes one slot per position).
//   - Transposition family and Hill: text is canonicalized first
//     (uppercased, filtered), output is uppercase, and block padding
//     with 'X' is stripped by the caller via the recorded pad count.
//   - Failures are sentinel-typed: ErrInvalidKey, ErrInvalidParameter.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cipherion/cipher"
//
//	c, err := cipher.NewVigenere("KEY")
//	if err != nil { ... }
//	out, _ := c.Encrypt("HELLO")   // "RIJVS"
//	in, _ := c.Decrypt(out)        // "HELLO"
//
// Concurrency: cipher values are immutable after construction; any number
// of goroutines may share one and call Encrypt/Decrypt without locking.
//
// Complexity: O(len(text)) for every variant except Hill, O(len·n) for an
// n×n key.
package cipher
