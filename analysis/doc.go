// SPDX-License-Identifier: MIT

// Package analysis is the cryptanalysis toolkit for the classical
// ciphers: the statistics that break them rather than the ciphers
// themselves.
//
// 🚀 What does it measure?
//
//	NGrams             — character or word n-grams of a text
//	FrequencyAnalysis  — n-gram counts as percentages, most common first
//	RepeatedSequences  — repeated letter runs and their offsets (the
//	                     Kasiski examination's raw material)
//	IndexOfCoincidence — the probability two sampled letters coincide
//
// ✨ How the numbers are read:
//
//	An IoC near EnglishIC (≈0.066) says the text behaves like natural
//	English under a monoalphabetic map; an IoC near RandomIC (1/26) says
//	the letter distribution has been flattened, the polyalphabetic
//	signature. Offsets of repeated sequences expose the key period:
//	their pairwise distances are multiples of the keyword length.
//
// ⚙️ Usage:
//
//	freqs, _ := analysis.FrequencyAnalysis(text, 1, false)
//	ioc := analysis.IndexOfCoincidence(text)
//	repeats := analysis.RepeatedSequences(text, nil)
//
// Everything is a pure function over in-memory strings; the only failure
// is ErrInvalidNGramSize for n < 1.
//
// Complexity: O(len·n) for n-gram extraction, O(len·(max−min)) for the
// repeated-sequence scan, O(len) for the IoC.
package analysis
