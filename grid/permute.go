// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cipherion/alphabet"
)

// Permutation compiles a coordinate order over a rows×cols grid into the
// row-major index permutation: perm[j] = order[j].Row·cols + order[j].Col.
// Applying it to the row-major grid text yields the pattern read-out.
func Permutation(order []Coord, cols int) []int {
	perm := make([]int, len(order))
	for j, c := range order {
		perm[j] = c.Row*cols + c.Col
	}

	return perm
}

// ColumnPermutation projects each coordinate to its Col field. ZigzagOrder
// stores the original text position there, so this is the Rail Fence
// read-out permutation.
func ColumnPermutation(order []Coord) []int {
	perm := make([]int, len(order))
	for j, c := range order {
		perm[j] = c.Col
	}

	return perm
}

// Invert returns the inverse permutation: Apply(Invert(perm), Apply(perm, s))
// restores s. perm must be a bijection over [0, len(perm)).
func Invert(perm []int) []int {
	inv := make([]int, len(perm))
	for j, p := range perm {
		inv[p] = j
	}

	return inv
}

// Apply reorders text by the permutation: output position j receives the
// input character at perm[j].
//
// Errors:
//   - ErrShapeMismatch — text length differs from the permutation length.
func Apply(perm []int, text string) (string, error) {
	runes := []rune(text)
	if len(runes) != len(perm) {
		return "", fmt.Errorf("%w: text length %d, permutation length %d", ErrShapeMismatch, len(runes), len(perm))
	}

	out := make([]rune, len(perm))
	for j, p := range perm {
		out[j] = runes[p]
	}

	return string(out), nil
}

// Normalize prepares text for a transposition grid: uppercased, letters
// and digits only, everything else stripped.
func Normalize(s string) string {
	return alphabet.Alphanumeric(s)
}

// PadCount reports how many pad runes bring a text of length n up to a
// whole number of blocks. block must be ≥ 1.
func PadCount(n, block int) int {
	return (block - n%block) % block
}

// Pad appends PadCount(len(s), block) copies of PadRune. Record the count
// before encrypting and hand it to StripPad after decrypting; the grid
// itself cannot tell a pad 'X' from a plaintext one.
func Pad(s string, block int) string {
	return s + strings.Repeat(string(PadRune), PadCount(len(s), block))
}

// StripPad removes pad trailing runes appended by Pad. Counts outside
// [0, len(s)] are clamped.
func StripPad(s string, pad int) string {
	if pad <= 0 {
		return s
	}
	if pad >= len(s) {
		return ""
	}

	return s[:len(s)-pad]
}
