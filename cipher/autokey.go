package cipher

import (
	"fmt"

	"github.com/katalvlaran/cipherion/alphabet"
	"github.com/katalvlaran/cipherion/keystream"
)

// Autokey extends its priming keyword with the plaintext itself: position
// i takes its key residue from the priming key while i is inside it, and
// from the plaintext character at i − len(priming) after that. Every
// position consumes a key slot, non-letters included.
type Autokey struct {
	priming string
}

// NewAutokey builds an Autokey cipher over the priming keyword
// (case ignored).
//
// Errors:
//   - ErrInvalidKey — empty priming keyword or non-letter characters in it.
func NewAutokey(priming string) (*Autokey, error) {
	if _, err := keystream.Residues(priming); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return &Autokey{priming: priming}, nil
}

// Encrypt adds the self-extending key stream per letter; the stream sees
// the whole plaintext up front.
func (c *Autokey) Encrypt(text string) (string, error) {
	stream, err := keystream.Autokey(c.priming, text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return substitute(text, stream, func(x, k int) int { return x + k }), nil
}

// Decrypt rebuilds the plaintext strictly left to right: beyond the
// priming key, the key residue for position i is the character decrypted
// at position i − len(priming), which is always already in the output
// buffer. The sequential dependency makes this loop inherently
// single-pass.
func (c *Autokey) Decrypt(text string) (string, error) {
	out := make([]rune, 0, len(text))
	stream, err := keystream.AutokeyDecrypt(c.priming, func(pos int) rune { return out[pos] })
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	for _, r := range text {
		sym := alphabet.Classify(r)
		k := stream.Next(sym)
		if !sym.Alpha {
			out = append(out, r)
			continue
		}
		out = append(out, alphabet.FromResidue(sym.Residue-k, sym.Upper))
	}

	return string(out), nil
}

var _ Cipher = (*Autokey)(nil)
