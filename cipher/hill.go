// SPDX-License-Identifier: MIT

package cipher

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cipherion/alphabet"
	"github.com/katalvlaran/cipherion/grid"
	"github.com/katalvlaran/cipherion/modmath"
)

// Hill enciphers blocks of n letters as column vectors multiplied by an
// n×n key matrix modulo 26: C = K·p. Text is reduced to uppercase letters
// and padded with 'X' to a whole number of blocks; output is uppercase.
// The inverse matrix K⁻¹ is computed once, in exact integer arithmetic,
// when the cipher is built.
type Hill struct {
	key *modmath.Matrix
	inv *modmath.Matrix
}

// NewHill builds a Hill cipher from the square key matrix given as rows.
// Validity is exactly invertibility modulo 26, so the inverse is computed
// here and cached; Decrypt never recomputes it.
//
// Errors:
//   - ErrInvalidKey — ragged or non-square rows, or a determinant sharing
//     a factor with 26 (no modular inverse exists).
func NewHill(rows [][]int) (*Hill, error) {
	key, err := modmath.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	inv, err := key.InverseMod(alphabet.AlphabetSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return &Hill{key: key, inv: inv}, nil
}

// BlockSize returns n, the number of letters per block.
func (c *Hill) BlockSize() int { return c.key.Size() }

// PadCount reports how many 'X' runes Encrypt will append to text; hand
// it to grid.StripPad after a round-trip to recover the unpadded letters.
func (c *Hill) PadCount(text string) int {
	return grid.PadCount(len(alphabet.Letters(text)), c.key.Size())
}

// Encrypt filters text to uppercase letters, pads with 'X' to a block
// multiple, and multiplies each block by the key matrix modulo 26.
func (c *Hill) Encrypt(text string) (string, error) {
	return c.apply(grid.Pad(alphabet.Letters(text), c.key.Size()), c.key)
}

// Decrypt multiplies each ciphertext block by the cached inverse matrix.
//
// Errors:
//   - ErrInvalidParameter — text (after letter filtering) is not a whole
//     number of blocks; only unmangled ciphertext decrypts.
func (c *Hill) Decrypt(text string) (string, error) {
	letters := alphabet.Letters(text)
	if len(letters)%c.key.Size() != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not a multiple of block size %d",
			ErrInvalidParameter, len(letters), c.key.Size())
	}

	return c.apply(letters, c.inv)
}

// apply runs the per-block matrix product over letters-only text whose
// length is a block multiple.
func (c *Hill) apply(letters string, m *modmath.Matrix) (string, error) {
	n := m.Size()
	var b strings.Builder
	b.Grow(len(letters))

	vec := make([]int, n)
	for start := 0; start < len(letters); start += n {
		for i := 0; i < n; i++ {
			vec[i] = int(letters[start+i] - 'A')
		}
		out, err := m.MulVecMod(vec, alphabet.AlphabetSize)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidParameter, err)
		}
		for _, r := range out {
			b.WriteRune(alphabet.FromResidue(r, true))
		}
	}

	return b.String(), nil
}

var _ Cipher = (*Hill)(nil)
