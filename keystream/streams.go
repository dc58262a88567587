package keystream

import "github.com/katalvlaran/cipherion/alphabet"

// Fixed returns the constant stream emitting shift for every letter.
// A Caesar cipher is exactly a Fixed stream applied additively.
func Fixed(shift int) Stream {
	return &fixed{shift: shift}
}

type fixed struct {
	shift int
}

func (s *fixed) Next(alphabet.Symbol) int { return s.shift }

// Repeating returns the keyword-cycling stream used by Vigenère and
// Beaufort: the cursor moves to the next keyword letter only when a
// letter is consumed, so passthrough runes never eat key material.
//
// Errors: ErrEmptyKeyword, ErrBadKeyword.
func Repeating(keyword string) (Stream, error) {
	residues, err := Residues(keyword)
	if err != nil {
		return nil, err
	}

	return &repeating{residues: residues}, nil
}

type repeating struct {
	residues []int
	idx      int
}

func (s *repeating) Next(sym alphabet.Symbol) int {
	if !sym.Alpha {
		return 0
	}
	r := s.residues[s.idx%len(s.residues)]
	s.idx++

	return r
}

// Progressive returns the August stream: initial, initial+1, initial+2, …
// advancing by one per letter consumed. The running counter lives inside
// the stream value, scoped to a single traversal.
func Progressive(initial int) Stream {
	return &progressive{next: initial}
}

type progressive struct {
	next int
}

func (s *progressive) Next(sym alphabet.Symbol) int {
	if !sym.Alpha {
		return 0
	}
	r := s.next
	s.next++

	return r
}
