package cipher

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cipherion/grid"
)

// Route fills a rows×cols grid row-major with the normalized text (padded
// with 'X') and reads it out in one of the grid package's patterns:
// spiral_in, spiral_out, snake, or diagonal. The permutation is fixed by
// the shape alone, so it is compiled once at construction.
type Route struct {
	rows, cols int
	pattern    grid.Pattern
	perm       []int
}

// NewRoute builds a Route cipher over a rows×cols grid and a pattern
// name as listed by grid.Patterns.
//
// Errors:
//   - ErrInvalidParameter — rows or cols below 1, or an unrecognized
//     pattern name.
func NewRoute(rows, cols int, pattern string) (*Route, error) {
	p, err := grid.ParsePattern(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	order, err := grid.Order(p, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	return &Route{rows: rows, cols: cols, pattern: p, perm: grid.Permutation(order, cols)}, nil
}

// PadCount reports how many 'X' runes Encrypt will append to text; hand
// it to grid.StripPad after a round-trip. The grid is always filled
// completely, so an empty text pads to the full rows·cols.
func (c *Route) PadCount(text string) int {
	n := len(grid.Normalize(text))
	if n >= c.rows*c.cols {
		return 0
	}

	return c.rows*c.cols - n
}

// Encrypt normalizes the text, pads it to fill the grid, and reads the
// grid in the pattern order. Text longer than the grid is rejected
// rather than truncated: a truncating encrypt could never round-trip.
//
// Errors:
//   - ErrInvalidParameter — normalized text longer than rows·cols.
func (c *Route) Encrypt(text string) (string, error) {
	norm := grid.Normalize(text)
	cells := c.rows * c.cols
	if len(norm) > cells {
		return "", fmt.Errorf("%w: text of %d characters overflows the %d×%d grid",
			ErrInvalidParameter, len(norm), c.rows, c.cols)
	}

	// Fill the whole grid, not just up to a block boundary: an empty
	// text still enciphers to a full grid of pad runes.
	padded := norm + strings.Repeat(string(grid.PadRune), cells-len(norm))

	return grid.Apply(c.perm, padded)
}

// Decrypt assigns ciphertext characters to coordinates in the pattern
// order and reads the grid back row-major, i.e. applies the inverse
// permutation.
//
// Errors:
//   - ErrInvalidParameter — ciphertext length differs from rows·cols.
func (c *Route) Decrypt(text string) (string, error) {
	norm := grid.Normalize(text)
	if len(norm) != c.rows*c.cols {
		return "", fmt.Errorf("%w: ciphertext length %d does not fill the %d×%d grid",
			ErrInvalidParameter, len(norm), c.rows, c.cols)
	}

	return grid.Apply(grid.Invert(c.perm), norm)
}

var _ Cipher = (*Route)(nil)
