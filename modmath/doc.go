// SPDX-License-Identifier: MIT

// Package modmath provides exact integer arithmetic in the ring ℤ/mℤ:
// scalar helpers (Mod, GCD, ModInverse) and dense square integer matrices
// with determinant, adjugate and modular inverse.
//
// 🚀 Why exact arithmetic?
//
//	Inverting a key matrix modulo 26 with floating-point linear algebra
//	and rounding the result is numerically fragile: for 3×3 and larger
//	matrices the rounded adjugate can be off by one, which silently
//	corrupts every decrypted block. Every routine here works in exact
//	integers — cofactor expansion for determinants and adjugates,
//	extended Euclid for scalar inverses — so the result is the true
//	modular inverse or a typed error, never an approximation.
//
// ✨ Surface:
//   - Mod(a, m) — Python-style remainder, result always in [0, m)
//   - GCD(a, b), ModInverse(a, m) — coprimality guard + extended Euclid
//   - Matrix — FromRows, Determinant, Adjugate, InverseMod, MulVecMod
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cipherion/modmath"
//
//	key, _ := modmath.FromRows([][]int{{2, 1}, {3, 4}})
//	inv, err := key.InverseMod(26)
//	if err != nil {
//	  // errors.Is(err, modmath.ErrNotInvertible)
//	}
//	block, _ := key.MulVecMod([]int{7, 4}, 26)
//
// Determinism: every routine is a pure function with fixed loop order;
// identical inputs always produce identical outputs.
//
// Complexity: Determinant and Adjugate run cofactor expansion, O(n!) —
// intended for the small key matrices of classical ciphers, not for
// numerical workloads.
package modmath
