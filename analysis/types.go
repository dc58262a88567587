// Package analysis: shared types, sentinel errors, and the reference
// constants results are compared against.
package analysis

import "errors"

// ErrInvalidNGramSize is returned when an n-gram size below 1 is
// requested.
var ErrInvalidNGramSize = errors.New("analysis: n-gram size must be at least 1")

// Reference points for IndexOfCoincidence readings.
const (
	// EnglishIC is the index of coincidence of natural English text.
	EnglishIC = 0.066
	// RandomIC is the index of coincidence of uniformly random letters,
	// the floor a flattening (polyalphabetic) cipher pushes text toward.
	RandomIC = 1.0 / 26.0
)

// Frequency is one row of a frequency table: an n-gram, how often it
// occurred, and its share of all n-grams as a percentage.
type Frequency struct {
	NGram   string
	Count   int
	Percent float64
}

// SearchOptions tunes RepeatedSequences. The zero value is not useful;
// start from DefaultSearchOptions. Lengths outside sensible bounds are
// normalized: either bound below 1 falls back to its default, and a
// MaxLen below MinLen is raised to MinLen.
type SearchOptions struct {
	// MinLen is the shortest sequence length considered.
	MinLen int
	// MaxLen is the longest sequence length considered.
	MaxLen int
}

// DefaultSearchOptions returns the conventional Kasiski search window of
// 3 to 10 characters.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{MinLen: 3, MaxLen: 10}
}

// normalized resolves nil and out-of-range options against the defaults.
func (o *SearchOptions) normalized() SearchOptions {
	opts := DefaultSearchOptions()
	if o == nil {
		return opts
	}
	if o.MinLen >= 1 {
		opts.MinLen = o.MinLen
	}
	if o.MaxLen >= 1 {
		opts.MaxLen = o.MaxLen
	}
	if opts.MaxLen < opts.MinLen {
		opts.MaxLen = opts.MinLen
	}

	return opts
}
