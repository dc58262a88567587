// SPDX-License-Identifier: MIT

package analysis

import "sort"

// FrequencyAnalysis counts the n-grams of a text and reports each one's
// share of the total as a percentage, most common first.
//
// Determinism:
//   - Rows are ordered by descending count; equal counts keep the order
//     of first occurrence in the text, so the table is stable across runs.
//
// Returns:
//   - []Frequency: one row per distinct n-gram; empty for text shorter
//     than n.
//   - error: ErrInvalidNGramSize when n < 1.
//
// Complexity: O(len(text)·n + d·log d) for d distinct n-grams.
func FrequencyAnalysis(text string, n int, asWord bool) ([]Frequency, error) {
	grams, err := NGrams(text, n, asWord)
	if err != nil {
		return nil, err
	}
	if len(grams) == 0 {
		return []Frequency{}, nil
	}

	counts := make(map[string]int, len(grams))
	rows := make([]Frequency, 0, len(grams))
	for _, g := range grams {
		if _, seen := counts[g]; !seen {
			rows = append(rows, Frequency{NGram: g})
		}
		counts[g]++
	}

	total := float64(len(grams))
	for i := range rows {
		rows[i].Count = counts[rows[i].NGram]
		rows[i].Percent = float64(rows[i].Count) / total * 100
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })

	return rows, nil
}
