package grid

import "fmt"

// ZigzagOrder assigns each of n text positions to a rail by simulating the
// Rail Fence bounce — the pointer flips direction at rail 0 and rail
// rails-1 — and returns the read-out order: rails top to bottom, positions
// left to right within a rail. Each Coord carries (rail, text position).
//
// Errors:
//   - ErrRailsRange — rails < 2 or rails > n.
//
// Complexity: O(n).
func ZigzagOrder(rails, n int) ([]Coord, error) {
	if rails < 2 || rails > n {
		return nil, fmt.Errorf("%w: %d rails over %d characters", ErrRailsRange, rails, n)
	}

	byRail := make([][]int, rails)
	row, dir := 0, 1
	for i := 0; i < n; i++ {
		byRail[row] = append(byRail[row], i)
		if row == 0 {
			dir = 1
		} else if row == rails-1 {
			dir = -1
		}
		row += dir
	}

	out := make([]Coord, 0, n)
	for r, positions := range byRail {
		for _, p := range positions {
			out = append(out, Coord{r, p})
		}
	}

	return out, nil
}
