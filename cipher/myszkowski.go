package cipher

import (
	"fmt"

	"github.com/katalvlaran/cipherion/grid"
)

// Myszkowski is a columnar transposition keyed by a (possibly repeating)
// keyword: columns are grouped by key letter, groups read in ascending
// letter order, and within a group each column is emitted in full before
// the next. The column count equals the keyword length; the row count
// follows from the text.
type Myszkowski struct {
	keyword string
	cols    int
}

// NewMyszkowski builds a Myszkowski cipher over the keyword (case
// ignored; repeated letters are the point of the variant).
//
// Errors:
//   - ErrInvalidKey — empty keyword or non-letter characters in it.
func NewMyszkowski(keyword string) (*Myszkowski, error) {
	// One throwaway row validates the keyword through the same gate the
	// real orders will use.
	if _, err := grid.MyszkowskiOrder(keyword, 1); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return &Myszkowski{keyword: keyword, cols: len(keyword)}, nil
}

// PadCount reports how many 'X' runes Encrypt will append to text; hand
// it to grid.StripPad after a round-trip.
func (c *Myszkowski) PadCount(text string) int {
	return grid.PadCount(len(grid.Normalize(text)), c.cols)
}

// Encrypt normalizes the text, pads it to a whole number of rows, and
// reads the grid in the keyword's group order.
func (c *Myszkowski) Encrypt(text string) (string, error) {
	padded := grid.Pad(grid.Normalize(text), c.cols)
	if padded == "" {
		return "", nil
	}
	perm, err := c.permutation(len(padded) / c.cols)
	if err != nil {
		return "", err
	}

	return grid.Apply(perm, padded)
}

// Decrypt replays the identical grouping to place ciphertext slices back
// into their columns, then reads the grid row-major.
//
// Errors:
//   - ErrInvalidParameter — ciphertext length is not a whole number of
//     keyword-width rows.
func (c *Myszkowski) Decrypt(text string) (string, error) {
	norm := grid.Normalize(text)
	if norm == "" {
		return "", nil
	}
	if len(norm)%c.cols != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not a multiple of the %d-column key",
			ErrInvalidParameter, len(norm), c.cols)
	}
	perm, err := c.permutation(len(norm) / c.cols)
	if err != nil {
		return "", err
	}

	return grid.Apply(grid.Invert(perm), norm)
}

// permutation compiles the group order for the given row count.
func (c *Myszkowski) permutation(rows int) ([]int, error) {
	order, err := grid.MyszkowskiOrder(c.keyword, rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	return grid.Permutation(order, c.cols), nil
}

var _ Cipher = (*Myszkowski)(nil)
