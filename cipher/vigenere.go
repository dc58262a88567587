package cipher

import (
	"fmt"

	"github.com/katalvlaran/cipherion/keystream"
)

// Vigenere cycles a keyword over the letters of the text:
// E(x) = x + k (mod 26), where k is the current keyword letter's residue.
// Non-letters pass through without consuming key material.
type Vigenere struct {
	keyword string
}

// NewVigenere builds a Vigenère cipher over the keyword (case ignored).
//
// Errors:
//   - ErrInvalidKey — empty keyword or non-letter characters in it.
func NewVigenere(keyword string) (*Vigenere, error) {
	if _, err := keystream.Residues(keyword); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return &Vigenere{keyword: keyword}, nil
}

// Encrypt adds the repeating key stream per letter.
func (c *Vigenere) Encrypt(text string) (string, error) {
	stream, err := keystream.Repeating(c.keyword)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return substitute(text, stream, func(x, k int) int { return x + k }), nil
}

// Decrypt subtracts the identical key stream.
func (c *Vigenere) Decrypt(text string) (string, error) {
	stream, err := keystream.Repeating(c.keyword)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return substitute(text, stream, func(x, k int) int { return x - k }), nil
}

var _ Cipher = (*Vigenere)(nil)

// Beaufort is the reciprocal variant: E(x) = k − x (mod 26) in both
// directions, so one application undoes the other.
type Beaufort struct {
	keyword string
}

// NewBeaufort builds a Beaufort cipher over the keyword (case ignored).
//
// Errors:
//   - ErrInvalidKey — empty keyword or non-letter characters in it.
func NewBeaufort(keyword string) (*Beaufort, error) {
	if _, err := keystream.Residues(keyword); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return &Beaufort{keyword: keyword}, nil
}

// Encrypt applies k − x per letter under the repeating key stream.
func (c *Beaufort) Encrypt(text string) (string, error) {
	stream, err := keystream.Repeating(c.keyword)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return substitute(text, stream, func(x, k int) int { return k - x }), nil
}

// Decrypt is the same map as Encrypt; the cipher is self-inverse.
func (c *Beaufort) Decrypt(text string) (string, error) {
	return c.Encrypt(text)
}

var _ Cipher = (*Beaufort)(nil)
