package cipher

import (
	"github.com/katalvlaran/cipherion/alphabet"
	"github.com/katalvlaran/cipherion/keystream"
)

// Caesar shifts every letter by a fixed amount: E(x) = x + shift (mod 26).
// Any integer shift is accepted; it is reduced modulo 26, so shift 29 and
// shift 3 are the same key.
type Caesar struct {
	shift int
}

// NewCaesar builds a Caesar cipher with the given shift. No failure
// modes: every shift is a valid (if weak) key.
func NewCaesar(shift int) *Caesar {
	return &Caesar{shift: shift}
}

// Encrypt shifts each letter forward, preserving case and passing
// non-letters through in place.
func (c *Caesar) Encrypt(text string) (string, error) {
	return substitute(text, keystream.Fixed(c.shift), func(x, k int) int { return x + k }), nil
}

// Decrypt shifts each letter back by the same amount.
func (c *Caesar) Decrypt(text string) (string, error) {
	return substitute(text, keystream.Fixed(c.shift), func(x, k int) int { return x - k }), nil
}

var _ Cipher = (*Caesar)(nil)

// Atbash mirrors the alphabet: E(x) = 25 − x. The map is its own inverse,
// so Encrypt and Decrypt are the same function and there is no key.
type Atbash struct{}

// NewAtbash builds the (keyless) Atbash cipher.
func NewAtbash() *Atbash {
	return &Atbash{}
}

// Encrypt mirrors each letter across the alphabet midpoint.
func (a *Atbash) Encrypt(text string) (string, error) {
	return substitute(text, keystream.Fixed(0), func(x, _ int) int { return alphabet.AlphabetSize - 1 - x }), nil
}

// Decrypt is identical to Encrypt; applying Atbash twice restores the text.
func (a *Atbash) Decrypt(text string) (string, error) {
	return a.Encrypt(text)
}

var _ Cipher = (*Atbash)(nil)
