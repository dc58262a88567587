package cipher

import (
	"fmt"

	"github.com/katalvlaran/cipherion/grid"
)

// RailFence writes the normalized text in a zigzag across a number of
// rails and reads the rails top to bottom. There is no padding: the
// bounce pattern covers exactly the text length, so the rails bound is
// checked against each text at call time.
type RailFence struct {
	rails int
}

// NewRailFence builds a Rail Fence cipher over the given number of rails.
//
// Errors:
//   - ErrInvalidParameter — rails below 2 (the upper bound depends on the
//     text and is enforced per call).
func NewRailFence(rails int) (*RailFence, error) {
	if rails < 2 {
		return nil, fmt.Errorf("%w: %w: got %d rails", ErrInvalidParameter, grid.ErrRailsRange, rails)
	}

	return &RailFence{rails: rails}, nil
}

// Encrypt normalizes the text (uppercase, alphanumeric only) and reads it
// out rail by rail.
//
// Errors:
//   - ErrInvalidParameter — rails exceeds the normalized text length.
func (c *RailFence) Encrypt(text string) (string, error) {
	perm, norm, err := c.permutation(text)
	if err != nil {
		return "", err
	}

	return grid.Apply(perm, norm)
}

// Decrypt regenerates the identical bounce pattern and applies its
// inverse permutation.
//
// Errors:
//   - ErrInvalidParameter — rails exceeds the ciphertext length.
func (c *RailFence) Decrypt(text string) (string, error) {
	perm, norm, err := c.permutation(text)
	if err != nil {
		return "", err
	}

	return grid.Apply(grid.Invert(perm), norm)
}

// permutation builds the zigzag read-out permutation for this text.
func (c *RailFence) permutation(text string) ([]int, string, error) {
	norm := grid.Normalize(text)
	order, err := grid.ZigzagOrder(c.rails, len(norm))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	return grid.ColumnPermutation(order), norm, nil
}

var _ Cipher = (*RailFence)(nil)
