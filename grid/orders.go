// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Order enumerates every cell of a rows×cols grid exactly once in the
// pattern's read-out order. The result depends only on the shape, never on
// text content, so encryption and decryption regenerate identical orders.
//
// Errors:
//   - ErrGridDims — rows or cols below 1.
//   - ErrUnknownPattern — pattern outside the declared set.
//
// Complexity: O(rows·cols).
func Order(p Pattern, rows, cols int) ([]Coord, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrGridDims, rows, cols)
	}

	switch p {
	case SpiralIn:
		return spiralIn(rows, cols), nil
	case SpiralOut:
		out := spiralIn(rows, cols)
		reverseCoords(out)

		return out, nil
	case Snake:
		return snake(rows, cols), nil
	case Diagonal:
		return diagonal(rows, cols), nil
	default:
		return nil, fmt.Errorf("%w: value %d", ErrUnknownPattern, int(p))
	}
}

// spiralIn peels concentric rectangular rings clockwise: top row
// left→right, right column top→bottom, bottom row right→left, left column
// bottom→top, shrinking the boundary after each ring.
func spiralIn(rows, cols int) []Coord {
	out := make([]Coord, 0, rows*cols)
	top, bottom, left, right := 0, rows-1, 0, cols-1
	for top <= bottom && left <= right {
		for c := left; c <= right; c++ {
			out = append(out, Coord{top, c})
		}
		for r := top + 1; r <= bottom; r++ {
			out = append(out, Coord{r, right})
		}
		// Single-row and single-column rings have no return legs.
		if top < bottom {
			for c := right - 1; c >= left; c-- {
				out = append(out, Coord{bottom, c})
			}
		}
		if left < right {
			for r := bottom - 1; r > top; r-- {
				out = append(out, Coord{r, left})
			}
		}
		top, bottom, left, right = top+1, bottom-1, left+1, right-1
	}

	return out
}

// snake walks rows top to bottom, alternating direction by row parity.
func snake(rows, cols int) []Coord {
	out := make([]Coord, 0, rows*cols)
	for r := 0; r < rows; r++ {
		if r%2 == 0 {
			for c := 0; c < cols; c++ {
				out = append(out, Coord{r, c})
			}
			continue
		}
		for c := cols - 1; c >= 0; c-- {
			out = append(out, Coord{r, c})
		}
	}

	return out
}

// diagonal groups cells by constant row+col (anti-diagonal index,
// ascending) and walks each group by increasing row.
func diagonal(rows, cols int) []Coord {
	out := make([]Coord, 0, rows*cols)
	for d := 0; d <= rows+cols-2; d++ {
		rStart := 0
		if d-cols+1 > 0 {
			rStart = d - cols + 1
		}
		rEnd := d
		if rows-1 < rEnd {
			rEnd = rows - 1
		}
		for r := rStart; r <= rEnd; r++ {
			out = append(out, Coord{r, d - r})
		}
	}

	return out
}

// reverseCoords flips the order in place.
func reverseCoords(cs []Coord) {
	for l, r := 0, len(cs)-1; l < r; l, r = l+1, r-1 {
		cs[l], cs[r] = cs[r], cs[l]
	}
}
