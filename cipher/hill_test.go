package cipher_test

import (
	"testing"

	"github.com/katalvlaran/cipherion/cipher"
	"github.com/katalvlaran/cipherion/grid"
	"github.com/katalvlaran/cipherion/modmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHill_2x2Vector pins the [[2,1],[3,4]] key over "HELP": a clean two
// block round-trip with no padding.
func TestHill_2x2Vector(t *testing.T) {
	c, err := cipher.NewHill([][]int{{2, 1}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 2, c.BlockSize())

	enc, err := c.Encrypt("HELP")
	require.NoError(t, err)
	assert.Equal(t, "SLLP", enc)
	assert.Len(t, enc, 4)

	dec, err := c.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "HELP", dec)
}

// TestHill_3x3Vector pins the textbook 3×3 key over "ACT", the case the
// floating-point adjugate gets wrong and exact cofactor arithmetic does
// not.
func TestHill_3x3Vector(t *testing.T) {
	c, err := cipher.NewHill([][]int{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}})
	require.NoError(t, err)

	enc, err := c.Encrypt("ACT")
	require.NoError(t, err)
	assert.Equal(t, "POH", enc)

	dec, err := c.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "ACT", dec)
}

// TestHill_PaddingAndFilter verifies the letters-only canonical form:
// non-letters are dropped, text is uppercased, and the tail is padded
// with 'X' to a block boundary, strippable via the recorded pad count.
func TestHill_PaddingAndFilter(t *testing.T) {
	c, err := cipher.NewHill([][]int{{2, 1}, {3, 4}})
	require.NoError(t, err)

	assert.Equal(t, 0, c.PadCount("help me!"), "HELPME is a whole number of blocks")
	assert.Equal(t, 1, c.PadCount("hello"), "5 letters pad to 6")

	enc, err := c.Encrypt("hello")
	require.NoError(t, err)
	assert.Len(t, enc, 6)

	dec, err := c.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "HELLO", grid.StripPad(dec, c.PadCount("hello")), "canonical round-trip")
}

// TestHill_InvalidKey rejects singular-mod-26 and malformed matrices.
func TestHill_InvalidKey(t *testing.T) {
	_, err := cipher.NewHill([][]int{{2, 4}, {1, 2}})
	assert.ErrorIs(t, err, cipher.ErrInvalidKey, "determinant 0")

	_, err = cipher.NewHill([][]int{{4, 2}, {3, 4}})
	assert.ErrorIs(t, err, cipher.ErrInvalidKey, "determinant 10 shares a factor with 26")
	assert.ErrorIs(t, err, modmath.ErrNotInvertible, "cause stays matchable")

	_, err = cipher.NewHill([][]int{{1, 2, 3}, {4, 5}})
	assert.ErrorIs(t, err, cipher.ErrInvalidKey, "ragged rows")

	_, err = cipher.NewHill(nil)
	assert.ErrorIs(t, err, cipher.ErrInvalidKey, "no rows")
}

// TestHill_DecryptShape rejects ciphertext that is not a whole number of
// blocks.
func TestHill_DecryptShape(t *testing.T) {
	c, err := cipher.NewHill([][]int{{2, 1}, {3, 4}})
	require.NoError(t, err)

	_, err = c.Decrypt("ABC")
	assert.ErrorIs(t, err, cipher.ErrInvalidParameter)
}
