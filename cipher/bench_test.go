package cipher_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/cipherion/cipher"
)

// benchText is roughly a paragraph of letters-only input.
var benchText = strings.Repeat("ATTACKATDAWN", 50)

// BenchmarkVigenere_Encrypt measures the repeating-key stream over 600
// characters.
func BenchmarkVigenere_Encrypt(b *testing.B) {
	c, err := cipher.NewVigenere("LEMON")
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = c.Encrypt(benchText)
	}
}

// BenchmarkAutokey_Decrypt measures the sequential self-referencing pass,
// the one cipher step that cannot be split across positions.
func BenchmarkAutokey_Decrypt(b *testing.B) {
	c, err := cipher.NewAutokey("QUEEN")
	if err != nil {
		b.Fatal(err)
	}
	enc, err := c.Encrypt(benchText)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(enc)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = c.Decrypt(enc)
	}
}

// BenchmarkHill_Encrypt3x3 measures block matrix products over 600
// characters with a 3×3 key.
func BenchmarkHill_Encrypt3x3(b *testing.B) {
	c, err := cipher.NewHill([][]int{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = c.Encrypt(benchText)
	}
}

// BenchmarkRoute_RoundTrip measures grid fill, pattern read-out, and the
// inverse pass on a 20×30 spiral.
func BenchmarkRoute_RoundTrip(b *testing.B) {
	c, err := cipher.NewRoute(20, 30, "spiral_in")
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		enc, _ := c.Encrypt(benchText)
		_, _ = c.Decrypt(enc)
	}
}
