package cipher

import "github.com/katalvlaran/cipherion/keystream"

// DefaultAugustShift is the conventional starting shift of the August
// cipher: the first letter moves by 1, the second by 2, and so on.
const DefaultAugustShift = 1

// August is the progressive-shift cipher: the i-th letter is shifted by
// initial + i, the counter advancing only on letters. Caesar is the
// degenerate case where the counter never advances.
type August struct {
	initial int
}

// NewAugust builds an August cipher starting from the given shift. Use
// DefaultAugustShift for the textbook variant. No failure modes.
func NewAugust(initial int) *August {
	return &August{initial: initial}
}

// Encrypt shifts the i-th letter by initial+i, case preserved,
// non-letters passed through without advancing the counter.
func (c *August) Encrypt(text string) (string, error) {
	return substitute(text, keystream.Progressive(c.initial), func(x, k int) int { return x + k }), nil
}

// Decrypt regenerates the same progressive stream and shifts back.
func (c *August) Decrypt(text string) (string, error) {
	return substitute(text, keystream.Progressive(c.initial), func(x, k int) int { return x - k }), nil
}

var _ Cipher = (*August)(nil)
