// SPDX-License-Identifier: MIT

package analysis

// RepeatedSequences finds every all-letter run that occurs at least twice
// in the text, keyed by the uppercased sequence, mapped to its start
// offsets in ascending order. Offsets index the raw (uppercased) text, so
// they line up with the ciphertext a caller is inspecting; windows
// touching a non-letter are skipped rather than filtered out.
//
// The pairwise distances between offsets of one sequence are the Kasiski
// examination's input: under a periodic cipher they are multiples of the
// key length.
//
// opts may be nil for the default 3..10 length window; see SearchOptions
// for normalization of out-of-range values.
//
// Complexity: O(len(text) · (MaxLen−MinLen+1) · MaxLen).
func RepeatedSequences(text string, opts *SearchOptions) map[string][]int {
	o := opts.normalized()
	runes := []rune(text)
	for i, r := range runes {
		if r >= 'a' && r <= 'z' {
			runes[i] = r - 'a' + 'A'
		}
	}

	out := make(map[string][]int)
	for length := o.MinLen; length <= o.MaxLen; length++ {
		positions := make(map[string][]int)
		for i := 0; i+length <= len(runes); i++ {
			if !allLetters(runes[i : i+length]) {
				continue
			}
			seq := string(runes[i : i+length])
			positions[seq] = append(positions[seq], i)
		}
		for seq, pos := range positions {
			if len(pos) > 1 {
				out[seq] = pos
			}
		}
	}

	return out
}

// allLetters reports whether every rune is an uppercase ASCII letter.
func allLetters(runes []rune) bool {
	for _, r := range runes {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}
