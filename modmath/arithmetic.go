package modmath

import "fmt"

// Mod reduces a into [0, m), following the mathematical (Python-style)
// convention for negative operands: Mod(-1, 26) is 25, never -1.
// The modulus must be positive; Mod is the single reduction point every
// other routine in this package funnels through.
//
// Complexity: O(1).
func Mod(a, m int) int {
	return ((a % m) + m) % m
}

// GCD returns the greatest common divisor of a and b by the iterative
// Euclidean algorithm. Signs are ignored; GCD(0, 0) is 0.
//
// Complexity: O(log min(|a|,|b|)).
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// ModInverse returns x with (a·x) mod m == 1, computed by the iterative
// extended Euclidean algorithm.
//
// Inputs:
//   - a: any integer; reduced mod m before inversion.
//   - m: the modulus, must be ≥ 2.
//
// Returns:
//   - int: the inverse in [0, m).
//   - error: ErrBadModulus when m < 2; ErrNotCoprime when gcd(a, m) ≠ 1.
//
// Complexity: O(log m).
func ModInverse(a, m int) (int, error) {
	if m < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrBadModulus, m)
	}
	a = Mod(a, m)
	if GCD(a, m) != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) ≠ 1", ErrNotCoprime, a, m)
	}

	// Extended Euclid on (m, a), tracking only the Bézout coefficient of a.
	t, newT := 0, 1
	r, newR := m, a
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}

	return Mod(t, m), nil
}
