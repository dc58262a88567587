// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

// wordPattern tokenizes text into word characters for word-level n-grams.
var wordPattern = regexp.MustCompile(`\w+`)

// NGrams extracts the overlapping n-grams of a text.
//
// Implementation:
//   - Character mode (asWord false): the raw text is uppercased and every
//     window of n runes is an n-gram; spaces and punctuation count as
//     characters, which is what frequency tables of ciphertext want.
//   - Word mode (asWord true): the text is tokenized into \w+ runs,
//     lowercased, and each window of n words joined with single spaces is
//     an n-gram.
//
// Returns:
//   - []string: the n-grams in text order; empty (non-nil) when the text
//     holds fewer than n units.
//   - error: ErrInvalidNGramSize when n < 1.
//
// Complexity: O(len(text)·n).
func NGrams(text string, n int, asWord bool) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNGramSize, n)
	}

	if asWord {
		words := wordPattern.FindAllString(strings.ToLower(text), -1)
		if len(words) < n {
			return []string{}, nil
		}
		out := make([]string, 0, len(words)-n+1)
		for i := 0; i+n <= len(words); i++ {
			out = append(out, strings.Join(words[i:i+n], " "))
		}

		return out, nil
	}

	runes := []rune(strings.ToUpper(text))
	if len(runes) < n {
		return []string{}, nil
	}
	out := make([]string, 0, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		out = append(out, string(runes[i:i+n]))
	}

	return out, nil
}
