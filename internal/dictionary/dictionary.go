// Package dictionary holds the in-memory word corpus that passphrase
// generation samples from, indexed by word length.
package dictionary

import (
	"slices"
	"unicode/utf8"

	"github.com/wordpass/wordpass-go/internal/lookup"
)

// Entry is a single dictionary word together with its recorded character
// count. Entries are trusted as given; loaders validate the count against the
// word at the load boundary.
type Entry struct {
	Word   string
	Length int
}

// NewEntry builds an Entry with the length derived from the word's character
// count.
func NewEntry(word string) Entry {
	return Entry{Word: word, Length: utf8.RuneCountInString(word)}
}

// Dictionary is an immutable word corpus with a pre-built length index.
// It is safe for concurrent reads.
type Dictionary struct {
	size  int
	byLen *lookup.Index[int, Entry]
}

// New builds a Dictionary from entries, grouping words by their recorded
// length in a single pass.
func New(entries []Entry) *Dictionary {
	return &Dictionary{
		size:  len(entries),
		byLen: lookup.New(entries, func(e Entry) int { return e.Length }),
	}
}

// Len reports the number of words in the corpus.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return d.size
}

// WordsOfLength returns every word whose recorded length equals n, in corpus
// order. The result is nil when no word matches.
func (d *Dictionary) WordsOfLength(n int) []string {
	group := d.byLen.Get(n)
	if len(group) == 0 {
		return nil
	}
	words := make([]string, len(group))
	for i, e := range group {
		words[i] = e.Word
	}
	return words
}

// LengthsInRange returns the distinct word lengths present in the corpus that
// fall within [minLen, maxLen], in ascending order. An empty result means no
// word in the corpus satisfies the range.
func (d *Dictionary) LengthsInRange(minLen, maxLen int) []int {
	var lengths []int
	for _, n := range d.byLen.Keys() {
		if n >= minLen && n <= maxLen {
			lengths = append(lengths, n)
		}
	}
	slices.Sort(lengths)
	return lengths
}

// Lengths returns every distinct word length present in the corpus, in
// ascending order.
func (d *Dictionary) Lengths() []int {
	lengths := d.byLen.Keys()
	slices.Sort(lengths)
	return lengths
}
