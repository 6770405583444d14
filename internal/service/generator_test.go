package service

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/wordpass/wordpass-go/internal/dictionary"
	"github.com/wordpass/wordpass-go/internal/model"
	"github.com/wordpass/wordpass-go/internal/phrase"
)

func testDict(words ...string) *dictionary.Dictionary {
	entries := make([]dictionary.Entry, len(words))
	for i, w := range words {
		entries[i] = dictionary.NewEntry(w)
	}
	return dictionary.New(entries)
}

func TestGenerateDefaults(t *testing.T) {
	svc := NewGeneratorService(testDict("tree", "apple", "stone", "window", "harbor", "lanterns"))

	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if resp.Words != 3 {
		t.Errorf("Generate() Words = %d, want 3", resp.Words)
	}
	if resp.Passphrase == "" {
		t.Fatal("Generate() returned empty passphrase")
	}
	if resp.Length != utf8.RuneCountInString(resp.Passphrase) {
		t.Errorf("Generate() Length = %d, want %d", resp.Length, utf8.RuneCountInString(resp.Passphrase))
	}
}

func TestGenerateCustomSpec(t *testing.T) {
	svc := NewGeneratorService(testDict("apple", "stone", "grape"))

	resp, err := svc.Generate(model.GenerateRequest{MinWordLength: 5, MaxWordLength: 5, Words: 2})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if resp.Words != 2 {
		t.Errorf("Generate() Words = %d, want 2", resp.Words)
	}
}

func TestGeneratePartialRequestKeepsOtherDefaults(t *testing.T) {
	svc := NewGeneratorService(testDict("tree", "apple", "stone", "window", "harbor", "lanterns"))

	resp, err := svc.Generate(model.GenerateRequest{Words: 5})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if resp.Words != 5 {
		t.Errorf("Generate() Words = %d, want 5", resp.Words)
	}
}

func TestGenerateInvalidBounds(t *testing.T) {
	svc := NewGeneratorService(testDict("apple"))

	_, err := svc.Generate(model.GenerateRequest{MinWordLength: 9, MaxWordLength: 3})
	if !errors.Is(err, phrase.ErrInvalidBounds) {
		t.Errorf("Generate() error = %v, want ErrInvalidBounds", err)
	}
}

func TestGenerateNoEligibleWords(t *testing.T) {
	svc := NewGeneratorService(testDict("cat", "dog"))

	_, err := svc.Generate(model.GenerateRequest{MinWordLength: 10, MaxWordLength: 12})
	if !errors.Is(err, phrase.ErrNoEligibleWords) {
		t.Errorf("Generate() error = %v, want ErrNoEligibleWords", err)
	}
}

func TestGenerateEmptyDictionary(t *testing.T) {
	svc := NewGeneratorService(dictionary.New(nil))

	_, err := svc.Generate(model.GenerateRequest{})
	if !errors.Is(err, phrase.ErrInvalidDictionary) {
		t.Errorf("Generate() error = %v, want ErrInvalidDictionary", err)
	}
}

func TestInfo(t *testing.T) {
	svc := NewGeneratorService(testDict("cat", "apple", "grape", "lanterns"))

	info := svc.Info()
	if info.Words != 4 {
		t.Errorf("Info() Words = %d, want 4", info.Words)
	}
	wantLengths := []int{3, 5, 8}
	if len(info.Lengths) != len(wantLengths) {
		t.Fatalf("Info() Lengths = %v, want %v", info.Lengths, wantLengths)
	}
	for i, n := range wantLengths {
		if info.Lengths[i] != n {
			t.Fatalf("Info() Lengths = %v, want %v", info.Lengths, wantLengths)
		}
	}
	if info.MinLength != 3 || info.MaxLength != 8 {
		t.Errorf("Info() bounds = [%d, %d], want [3, 8]", info.MinLength, info.MaxLength)
	}
}

func TestInfoEmptyDictionary(t *testing.T) {
	svc := NewGeneratorService(dictionary.New(nil))

	info := svc.Info()
	if info.Words != 0 {
		t.Errorf("Info() Words = %d, want 0", info.Words)
	}
	if info.MinLength != 0 || info.MaxLength != 0 {
		t.Errorf("Info() bounds = [%d, %d], want [0, 0]", info.MinLength, info.MaxLength)
	}
}
