// Package grid defines coordinate types, route patterns, and sentinel
// errors for the transposition generators.
package grid

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for grid operations.
var (
	// ErrGridDims indicates a grid dimension below 1.
	ErrGridDims = errors.New("grid: rows and cols must be at least 1")
	// ErrUnknownPattern indicates an unrecognized route pattern name or value.
	ErrUnknownPattern = errors.New("grid: unknown route pattern")
	// ErrRailsRange indicates rails outside [2, len(text)].
	ErrRailsRange = errors.New("grid: rails must be between 2 and the text length")
	// ErrShapeMismatch indicates text whose length does not fit the grid shape.
	ErrShapeMismatch = errors.New("grid: text length does not match the grid shape")
	// ErrBadKeyword indicates an empty or non-letter transposition keyword.
	ErrBadKeyword = errors.New("grid: keyword must be non-empty letters only")
)

// PadRune fills the tail of the last grid row.
const PadRune = 'X'

// Coord addresses one grid cell. For ZigzagOrder, Row is the rail and Col
// is the original text position.
type Coord struct {
	Row, Col int
}

// Pattern selects a Route read-out order.
type Pattern int

const (
	// SpiralIn peels concentric rings clockwise from the outer boundary inward.
	SpiralIn Pattern = iota
	// SpiralOut is the exact reverse order of SpiralIn.
	SpiralOut
	// Snake alternates row direction by row parity.
	Snake
	// Diagonal walks anti-diagonals (row+col ascending), increasing row within each.
	Diagonal
)

// patternNames is the canonical Pattern↔name mapping.
var patternNames = map[Pattern]string{
	SpiralIn:  "spiral_in",
	SpiralOut: "spiral_out",
	Snake:     "snake",
	Diagonal:  "diagonal",
}

// String returns the canonical pattern name, or "unknown" for
// out-of-range values.
func (p Pattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}

	return "unknown"
}

// ParsePattern resolves a canonical pattern name.
//
// Errors: ErrUnknownPattern for any name not listed by Patterns.
func ParsePattern(name string) (Pattern, error) {
	for p, n := range patternNames {
		if n == name {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

// Patterns lists the valid pattern names in ascending order.
func Patterns() []string {
	names := make([]string, 0, len(patternNames))
	for _, n := range patternNames {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
