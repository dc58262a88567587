package cipher

import (
	"fmt"

	"github.com/katalvlaran/cipherion/alphabet"
	"github.com/katalvlaran/cipherion/keystream"
	"github.com/katalvlaran/cipherion/modmath"
)

// Affine maps each letter through E(x) = a·x + b (mod 26). Decryption
// needs a⁻¹ (mod 26), so a must be coprime with 26; b is unrestricted.
type Affine struct {
	a, b, aInv int
}

// NewAffine builds an Affine cipher, computing a⁻¹ once via the extended
// Euclidean algorithm.
//
// Errors:
//   - ErrInvalidKey — gcd(a, 26) ≠ 1, so no modular inverse exists.
func NewAffine(a, b int) (*Affine, error) {
	aInv, err := modmath.ModInverse(a, alphabet.AlphabetSize)
	if err != nil {
		return nil, fmt.Errorf("%w: affine multiplier %d: %w", ErrInvalidKey, a, err)
	}

	return &Affine{a: a, b: b, aInv: aInv}, nil
}

// Encrypt applies a·x + b per letter, case preserved, non-letters
// passed through.
func (c *Affine) Encrypt(text string) (string, error) {
	return substitute(text, keystream.Fixed(0), func(x, _ int) int { return c.a*x + c.b }), nil
}

// Decrypt applies a⁻¹·(x − b) per letter.
func (c *Affine) Decrypt(text string) (string, error) {
	return substitute(text, keystream.Fixed(0), func(x, _ int) int { return c.aInv * (x - c.b) }), nil
}

var _ Cipher = (*Affine)(nil)
