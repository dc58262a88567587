package grid

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cipherion/alphabet"
)

// MyszkowskiOrder returns the read-out order of a Myszkowski transposition
// over a grid of rows × len(keyword) cells: column indices are grouped by
// their (uppercased) key letter, groups are visited in ascending letter
// order, columns within a group keep their original left-to-right order,
// and every row of one column is emitted before the next column begins.
//
// Errors:
//   - ErrBadKeyword — empty keyword or non-letter characters.
//   - ErrGridDims — rows below 1.
//
// Complexity: O(rows·cols + cols·log cols).
func MyszkowskiOrder(keyword string, rows int) ([]Coord, error) {
	if rows < 1 {
		return nil, fmt.Errorf("%w: got %d rows", ErrGridDims, rows)
	}
	letters, err := keyLetters(keyword)
	if err != nil {
		return nil, err
	}

	// Group column indices by key letter; appending left to right keeps
	// the within-group column order for free.
	groups := make(map[rune][]int, len(letters))
	for col, letter := range letters {
		groups[letter] = append(groups[letter], col)
	}
	order := make([]rune, 0, len(groups))
	for letter := range groups {
		order = append(order, letter)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	out := make([]Coord, 0, rows*len(letters))
	for _, letter := range order {
		for _, col := range groups[letter] {
			for row := 0; row < rows; row++ {
				out = append(out, Coord{row, col})
			}
		}
	}

	return out, nil
}

// keyLetters validates and uppercases a transposition keyword.
func keyLetters(keyword string) ([]rune, error) {
	if keyword == "" {
		return nil, fmt.Errorf("%w: empty", ErrBadKeyword)
	}
	letters := make([]rune, 0, len(keyword))
	for _, r := range keyword {
		sym := alphabet.Classify(r)
		if !sym.Alpha {
			return nil, fmt.Errorf("%w: %q", ErrBadKeyword, r)
		}
		letters = append(letters, alphabet.FromResidue(sym.Residue, true))
	}

	return letters, nil
}
