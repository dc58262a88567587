// Package keystream defines the Stream contract and sentinel errors
// shared by every key-stream generator.
package keystream

import (
	"errors"

	"github.com/katalvlaran/cipherion/alphabet"
)

// Sentinel errors for keyword validation.
var (
	// ErrEmptyKeyword indicates a keyword with no characters.
	ErrEmptyKeyword = errors.New("keystream: keyword must not be empty")
	// ErrBadKeyword indicates a keyword containing non-letter characters.
	ErrBadKeyword = errors.New("keystream: keyword must contain letters only")
)

// A Stream yields the key residue for each consumed text position.
//
// Contract: feed every rune's Symbol exactly once, in text order. The
// returned residue is meaningful only when sym.Alpha is true; passthrough
// symbols still MUST be fed, because some streams (Autokey) consume a key
// slot on every position while others advance only on letters.
type Stream interface {
	Next(sym alphabet.Symbol) int
}

// Residues validates a keyword and converts it to its residue sequence.
// The keyword must be non-empty and letters-only; case is ignored.
//
// Errors: ErrEmptyKeyword, ErrBadKeyword.
func Residues(keyword string) ([]int, error) {
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}
	out := make([]int, 0, len(keyword))
	for _, r := range keyword {
		sym := alphabet.Classify(r)
		if !sym.Alpha {
			return nil, ErrBadKeyword
		}
		out = append(out, sym.Residue)
	}

	return out, nil
}
