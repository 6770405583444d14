// Package phrase assembles word-based passphrases: randomly sampled
// dictionary words with alternating case, wrapped in a symbol-and-digit
// scaffold.
package phrase

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// symbolSet holds the characters eligible for the outer and inner scaffold
// draws.
const symbolSet = "!@#$%^&*()-_=+~"

// Accepted ranges for a generation spec.
const (
	MinWordLength = 1
	MaxWordLength = 14
	MinWordCount  = 1
	MaxWordCount  = 24
)

// Defaults applied by callers when a spec field is left at zero.
const (
	DefaultMinWordLength = 4
	DefaultMaxWordLength = 8
	DefaultWordCount     = 3
)

var (
	ErrInvalidDictionary = errors.New("dictionary is missing or empty")
	ErrInvalidBounds     = errors.New("invalid generation bounds")
	ErrNoEligibleWords   = errors.New("no dictionary words within the requested length range")
)

// WordIndex answers the length-based corpus queries the composer samples
// from. Implementations must be deterministic: repeated queries over the same
// corpus return the same result.
type WordIndex interface {
	// Len reports the number of words in the corpus.
	Len() int
	// WordsOfLength returns every word of the given character count.
	WordsOfLength(n int) []string
	// LengthsInRange returns the distinct word lengths within [minLen, maxLen].
	LengthsInRange(minLen, maxLen int) []int
}

// Spec configures a single passphrase generation.
type Spec struct {
	MinWordLength int
	MaxWordLength int
	WordCount     int
}

// DefaultSpec returns the generation settings used when a caller supplies
// none: three words of four to eight characters.
func DefaultSpec() Spec {
	return Spec{
		MinWordLength: DefaultMinWordLength,
		MaxWordLength: DefaultMaxWordLength,
		WordCount:     DefaultWordCount,
	}
}

// Generate assembles a passphrase from idx according to spec, drawing from
// the shared math/rand/v2 generator. It is safe for concurrent use.
func Generate(idx WordIndex, spec Spec) (string, error) {
	return generate(idx, spec, rand.IntN)
}

// GenerateWithRand is Generate with a caller-owned random source, which makes
// the output reproducible. The source is not synchronized here; callers
// sharing one across goroutines must do their own locking.
func GenerateWithRand(r *rand.Rand, idx WordIndex, spec Spec) (string, error) {
	return generate(idx, spec, r.IntN)
}

func generate(idx WordIndex, spec Spec, intN func(int) int) (string, error) {
	if idx == nil || idx.Len() == 0 {
		return "", ErrInvalidDictionary
	}
	if err := spec.validate(); err != nil {
		return "", err
	}

	eligible := idx.LengthsInRange(spec.MinWordLength, spec.MaxWordLength)
	if len(eligible) == 0 {
		return "", fmt.Errorf("%w: no words of length %d to %d", ErrNoEligibleWords, spec.MinWordLength, spec.MaxWordLength)
	}

	words := sampleWords(idx, eligible, spec.WordCount, intN)

	// Odd positions are upper-cased; even positions keep their stored form.
	for i := 1; i < len(words); i += 2 {
		words[i] = strings.ToUpper(words[i])
	}

	outside := string(symbolSet[intN(len(symbolSet))])
	inside := string(symbolSet[intN(len(symbolSet))])

	var b strings.Builder
	b.WriteString(outside)
	b.WriteString(outside)
	fmt.Fprintf(&b, "%02d", intN(100))
	b.WriteString(inside)
	for _, w := range words {
		b.WriteString(w)
		b.WriteString(inside)
	}
	fmt.Fprintf(&b, "%02d", intN(100))
	b.WriteString(outside)
	b.WriteString(outside)

	return b.String(), nil
}

// sampleWords draws count lengths uniformly from eligible, then resolves each
// length to a uniformly drawn word of that length. Both draws are with
// replacement, so lengths and words may repeat.
func sampleWords(idx WordIndex, eligible []int, count int, intN func(int) int) []string {
	lengths := make([]int, count)
	for i := range lengths {
		lengths[i] = eligible[intN(len(eligible))]
	}

	words := make([]string, count)
	for i, n := range lengths {
		candidates := idx.WordsOfLength(n)
		words[i] = candidates[intN(len(candidates))]
	}
	return words
}

func (s Spec) validate() error {
	switch {
	case s.MinWordLength < MinWordLength || s.MinWordLength > MaxWordLength:
		return fmt.Errorf("%w: min word length %d outside %d-%d", ErrInvalidBounds, s.MinWordLength, MinWordLength, MaxWordLength)
	case s.MaxWordLength < MinWordLength || s.MaxWordLength > MaxWordLength:
		return fmt.Errorf("%w: max word length %d outside %d-%d", ErrInvalidBounds, s.MaxWordLength, MinWordLength, MaxWordLength)
	case s.MinWordLength > s.MaxWordLength:
		return fmt.Errorf("%w: min word length %d exceeds max %d", ErrInvalidBounds, s.MinWordLength, s.MaxWordLength)
	case s.WordCount < MinWordCount || s.WordCount > MaxWordCount:
		return fmt.Errorf("%w: word count %d outside %d-%d", ErrInvalidBounds, s.WordCount, MinWordCount, MaxWordCount)
	}
	return nil
}
