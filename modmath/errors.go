// SPDX-License-Identifier: MIT
// Package modmath: sentinel error set.
// This file defines ONLY package-level sentinel errors. All routines return
// these sentinels (optionally wrapped with context via fmt.Errorf and %w) and
// tests MUST check them via errors.Is. No routine panics on user input.

package modmath

import "errors"

// Every message is prefixed with "modmath: ..." so a wrapped chain stays
// greppable end to end.
var (
	// ErrBadShape is returned when matrix construction receives no rows,
	// ragged rows, or a non-square layout.
	ErrBadShape = errors.New("modmath: invalid matrix shape")

	// ErrDimensionMismatch indicates incompatible operand sizes,
	// e.g. MulVecMod with a vector shorter than the matrix dimension.
	ErrDimensionMismatch = errors.New("modmath: dimension mismatch")

	// ErrBadModulus is returned when a modulus smaller than 2 is supplied.
	ErrBadModulus = errors.New("modmath: modulus must be at least 2")

	// ErrNotCoprime is returned by ModInverse when gcd(a, m) ≠ 1,
	// i.e. no multiplicative inverse exists.
	ErrNotCoprime = errors.New("modmath: values are not coprime")

	// ErrNotInvertible is returned by Matrix.InverseMod when the
	// determinant shares a factor with the modulus.
	ErrNotInvertible = errors.New("modmath: matrix is not invertible modulo m")
)
