package analysis_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/cipherion/analysis"
)

// benchText is ~13k characters of periodic English-like input.
var benchText = strings.Repeat("IT WAS A BRIGHT COLD DAY IN APRIL ", 400)

// BenchmarkFrequencyAnalysis_Trigrams measures the count-and-rank pass.
func BenchmarkFrequencyAnalysis_Trigrams(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = analysis.FrequencyAnalysis(benchText, 3, false)
	}
}

// BenchmarkRepeatedSequences_Defaults measures the 3..10 window scan.
func BenchmarkRepeatedSequences_Defaults(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = analysis.RepeatedSequences(benchText, nil)
	}
}

// BenchmarkIndexOfCoincidence measures the single counting pass.
func BenchmarkIndexOfCoincidence(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = analysis.IndexOfCoincidence(benchText)
	}
}
