// SPDX-License-Identifier: MIT
// Package cipher: the shared contract and sentinel error set.
// Every variant constructor validates its key eagerly and returns one of
// these sentinels (wrapped with context) on rejection; tests match them
// via errors.Is.

package cipher

import (
	"errors"
	"strings"

	"github.com/katalvlaran/cipherion/alphabet"
	"github.com/katalvlaran/cipherion/keystream"
)

// Sentinel errors shared by the whole catalog.
var (
	// ErrInvalidKey is returned when key material cannot produce a
	// decryptable cipher: an Affine multiplier sharing a factor with 26,
	// a Hill matrix whose determinant is not invertible modulo 26, or an
	// empty/non-letter keyword.
	ErrInvalidKey = errors.New("cipher: invalid key")

	// ErrInvalidParameter is returned for structural parameters outside
	// their domain: rails out of [2, len(text)], grid dimensions below 1,
	// an unknown route pattern, or ciphertext whose length does not fit
	// the grid or block shape implied by the key.
	ErrInvalidParameter = errors.New("cipher: invalid parameter")
)

// A Cipher encrypts and decrypts in-memory text under the key it was
// constructed with. Implementations are immutable after construction and
// safe for concurrent use; every failure surfaces as a wrapped
// ErrInvalidKey or ErrInvalidParameter with no partial result.
type Cipher interface {
	Encrypt(text string) (string, error)
	Decrypt(text string) (string, error)
}

// substitute walks text once, feeding every rune's Symbol to the key
// stream and recombining each letter's residue with its key value.
// Non-letters are emitted unchanged; whether they consume key material is
// the stream's decision, which is why they are fed regardless. Case is
// restored per character.
func substitute(text string, stream keystream.Stream, combine func(x, k int) int) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		sym := alphabet.Classify(r)
		k := stream.Next(sym)
		if !sym.Alpha {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(alphabet.FromResidue(combine(sym.Residue, k), sym.Upper))
	}

	return b.String()
}
