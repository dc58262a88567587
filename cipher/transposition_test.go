package cipher_test

import (
	"testing"

	"github.com/katalvlaran/cipherion/cipher"
	"github.com/katalvlaran/cipherion/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRailFence_Vector pins the classic three-rail vector.
func TestRailFence_Vector(t *testing.T) {
	c, err := cipher.NewRailFence(3)
	require.NoError(t, err)

	enc, err := c.Encrypt("WEAREDISCOVEREDFLEEATONCE")
	require.NoError(t, err)
	assert.Equal(t, "WECRLTEERDSOEEFEAOCAIVDEN", enc)

	dec, err := c.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "WEAREDISCOVEREDFLEEATONCE", dec)
}

// TestRailFence_Normalization verifies spaces and punctuation are
// stripped, digits kept, and output uppercased before zigzagging.
func TestRailFence_Normalization(t *testing.T) {
	c, err := cipher.NewRailFence(4)
	require.NoError(t, err)

	enc, err := c.Encrypt("Attack at 10 pm")
	require.NoError(t, err)
	assert.Equal(t, "AATKTMTC1PA0", enc)

	dec, err := c.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "ATTACKAT10PM", dec, "canonical form, no padding to strip")
}

// TestRailFence_Validation rejects rails below 2 at construction and
// rails beyond the text length at call time.
func TestRailFence_Validation(t *testing.T) {
	_, err := cipher.NewRailFence(1)
	assert.ErrorIs(t, err, cipher.ErrInvalidParameter)

	_, err = cipher.NewRailFence(0)
	assert.ErrorIs(t, err, cipher.ErrInvalidParameter)

	c, err := cipher.NewRailFence(9)
	require.NoError(t, err)
	_, err = c.Encrypt("SHORT")
	assert.ErrorIs(t, err, cipher.ErrInvalidParameter, "more rails than characters")
	assert.ErrorIs(t, err, grid.ErrRailsRange, "cause stays matchable")
}

// routeVectors are the four pattern read-outs of "WE ARE DISCOVERED"
// (15 letters, exactly filling 3×5).
var routeVectors = map[string]string{
	"spiral_in":  "WEAREODEREVDISC",
	"spiral_out": "CSIDVEREDOERAEW",
	"snake":      "WEAREOCSIDVERED",
	"diagonal":   "WEDAIVRSEECROED",
}

// TestRoute_PatternVectors pins each pattern's read-out and round-trip
// over an exactly-filling text.
func TestRoute_PatternVectors(t *testing.T) {
	for pattern, want := range routeVectors {
		c, err := cipher.NewRoute(3, 5, pattern)
		require.NoError(t, err, pattern)

		enc, err := c.Encrypt("WE ARE DISCOVERED")
		require.NoError(t, err, pattern)
		assert.Equal(t, want, enc, pattern)

		dec, err := c.Decrypt(enc)
		require.NoError(t, err, pattern)
		assert.Equal(t, "WEAREDISCOVERED", dec, "%s round-trip", pattern)
	}
}

// TestRoute_Padding verifies 'X' padding to the grid size and the
// caller-side strip recipe.
func TestRoute_Padding(t *testing.T) {
	c, err := cipher.NewRoute(3, 4, "snake")
	require.NoError(t, err)

	pad := c.PadCount("HELLO WORLD") // 10 letters into 12 cells
	assert.Equal(t, 2, pad)

	enc, err := c.Encrypt("HELLO WORLD")
	require.NoError(t, err)
	assert.Len(t, enc, 12)

	dec, err := c.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "HELLOWORLD", grid.StripPad(dec, pad))
}

// TestRoute_EmptyText verifies text that normalizes to nothing still
// fills the whole grid with pad runes and round-trips to the empty
// canonical form, instead of leaking a shape error.
func TestRoute_EmptyText(t *testing.T) {
	c, err := cipher.NewRoute(3, 5, "snake")
	require.NoError(t, err)

	for _, text := range []string{"", "... !?"} {
		pad := c.PadCount(text)
		assert.Equal(t, 15, pad, "empty text pads to the full grid")

		enc, err := c.Encrypt(text)
		require.NoError(t, err, "%q", text)
		assert.Equal(t, "XXXXXXXXXXXXXXX", enc)

		dec, err := c.Decrypt(enc)
		require.NoError(t, err)
		assert.Empty(t, grid.StripPad(dec, pad))
	}
}

// TestRoute_Validation covers bad dimensions, unknown patterns, encrypt
// overflow, and decrypt shape mismatch.
func TestRoute_Validation(t *testing.T) {
	_, err := cipher.NewRoute(0, 4, "snake")
	assert.ErrorIs(t, err, cipher.ErrInvalidParameter, "rows below 1")

	_, err = cipher.NewRoute(3, 4, "boustrophedon")
	assert.ErrorIs(t, err, cipher.ErrInvalidParameter)
	assert.ErrorIs(t, err, grid.ErrUnknownPattern, "cause stays matchable")

	c, err := cipher.NewRoute(2, 2, "snake")
	require.NoError(t, err)

	_, err = c.Encrypt("TOOLONGFORFOUR")
	assert.ErrorIs(t, err, cipher.ErrInvalidParameter, "overflow is rejected, never truncated")

	_, err = c.Decrypt("ABC")
	assert.ErrorIs(t, err, cipher.ErrInvalidParameter, "ciphertext must fill the grid exactly")
}

// TestMyszkowski_Vector pins the TOMATO grouping over the classic text.
func TestMyszkowski_Vector(t *testing.T) {
	c, err := cipher.NewMyszkowski("TOMATO")
	require.NoError(t, err)

	enc, err := c.Encrypt("WE ARE DISCOVERED FLEE AT ONCE")
	require.NoError(t, err)
	assert.Equal(t, "ROFOXACDTXESEAXDEECXWIREEEVLNX", enc)

	pad := c.PadCount("WE ARE DISCOVERED FLEE AT ONCE")
	assert.Equal(t, 5, pad, "25 letters pad to 5 rows of 6")

	dec, err := c.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "WEAREDISCOVEREDFLEEATONCE", grid.StripPad(dec, pad))
}

// TestMyszkowski_RepeatedKeyLetters verifies the grouping with a heavily
// repeating keyword.
func TestMyszkowski_RepeatedKeyLetters(t *testing.T) {
	c, err := cipher.NewMyszkowski("BANANA")
	require.NoError(t, err)

	enc, err := c.Encrypt("ATTACKATDAWN")
	require.NoError(t, err)
	assert.Equal(t, "TTAAKNAATDCW", enc)

	dec, err := c.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWN", dec)
}

// TestMyszkowski_Validation covers keyword gating, shape checking, and
// the empty-text identity.
func TestMyszkowski_Validation(t *testing.T) {
	_, err := cipher.NewMyszkowski("")
	assert.ErrorIs(t, err, cipher.ErrInvalidKey)

	_, err = cipher.NewMyszkowski("T0MATO")
	assert.ErrorIs(t, err, cipher.ErrInvalidKey, "digit in keyword")

	c, err := cipher.NewMyszkowski("TOMATO")
	require.NoError(t, err)

	_, err = c.Decrypt("ABCDE")
	assert.ErrorIs(t, err, cipher.ErrInvalidParameter, "five characters under a six-column key")

	enc, err := c.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, enc)
}
