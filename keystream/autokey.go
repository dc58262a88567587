package keystream

import "github.com/katalvlaran/cipherion/alphabet"

// Autokey returns the encryption-side self-extending stream for priming
// over text: the priming keyword's residues first, then the text's own
// residues, one slot per rune. Non-letter runes still consume a slot, and
// their residue is derived through alphabet.KeyResidue, so the stream is
// total no matter what the text carries.
//
// Errors: ErrEmptyKeyword, ErrBadKeyword (priming keyword only).
func Autokey(priming, text string) (Stream, error) {
	head, err := Residues(priming)
	if err != nil {
		return nil, err
	}
	ext := make([]int, 0, len(head)+len(text))
	ext = append(ext, head...)
	for _, r := range text {
		ext = append(ext, alphabet.KeyResidue(r))
	}

	return &autokey{ext: ext}, nil
}

type autokey struct {
	ext []int
	pos int
}

func (s *autokey) Next(alphabet.Symbol) int {
	r := s.ext[s.pos]
	s.pos++

	return r
}

// AutokeyDecrypt returns the decryption-side stream. Beyond the priming
// keyword the key is the plaintext itself, which during decryption exists
// only as far as it has been reconstructed; source is called with the
// 0-based plaintext position to read and must return the rune already
// decrypted there. Positions are consumed strictly left to right, so the
// requested rune is always available — this sequential dependency is what
// makes Autokey decryption impossible to parallelize.
//
// Errors: ErrEmptyKeyword, ErrBadKeyword (priming keyword only).
func AutokeyDecrypt(priming string, source func(pos int) rune) (Stream, error) {
	head, err := Residues(priming)
	if err != nil {
		return nil, err
	}

	return &autokeyTail{head: head, source: source}, nil
}

type autokeyTail struct {
	head   []int
	source func(pos int) rune
	pos    int
}

func (s *autokeyTail) Next(alphabet.Symbol) int {
	var r int
	if s.pos < len(s.head) {
		r = s.head[s.pos]
	} else {
		r = alphabet.KeyResidue(s.source(s.pos - len(s.head)))
	}
	s.pos++

	return r
}
