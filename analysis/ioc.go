// SPDX-License-Identifier: MIT

package analysis

import (
	"github.com/katalvlaran/cipherion/alphabet"
)

// IndexOfCoincidence is the probability that two letters drawn from the
// text (without replacement) are equal: Σ f·(f−1) / (n·(n−1)) over the
// 26 letter counts f of the letters-only text. Texts of at most one
// letter score 0.
//
// Natural English sits near EnglishIC; a flat distribution sits near
// RandomIC. The gap between those two is what separates monoalphabetic
// from polyalphabetic ciphertext.
//
// Complexity: O(len(text)).
func IndexOfCoincidence(text string) float64 {
	var counts [alphabet.AlphabetSize]int
	n := 0
	for _, r := range text {
		if sym := alphabet.Classify(r); sym.Alpha {
			counts[sym.Residue]++
			n++
		}
	}
	if n <= 1 {
		return 0
	}

	sum := 0
	for _, f := range counts {
		sum += f * (f - 1)
	}

	return float64(sum) / float64(n*(n-1))
}
