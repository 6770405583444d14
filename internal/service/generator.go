package service

import (
	"unicode/utf8"

	"github.com/wordpass/wordpass-go/internal/dictionary"
	"github.com/wordpass/wordpass-go/internal/model"
	"github.com/wordpass/wordpass-go/internal/phrase"
)

// GeneratorService produces passphrases from the server's word corpus.
type GeneratorService struct {
	dict *dictionary.Dictionary
}

// NewGeneratorService creates a new GeneratorService backed by dict.
func NewGeneratorService(dict *dictionary.Dictionary) *GeneratorService {
	return &GeneratorService{dict: dict}
}

// Generate produces a passphrase based on the given request. Zero-valued
// request fields fall back to the built-in defaults.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	return generateFrom(s.dict, req)
}

// Info describes the corpus backing this service.
func (s *GeneratorService) Info() model.DictionaryInfo {
	lengths := s.dict.Lengths()

	info := model.DictionaryInfo{
		Words:   s.dict.Len(),
		Lengths: lengths,
	}
	if len(lengths) > 0 {
		info.MinLength = lengths[0]
		info.MaxLength = lengths[len(lengths)-1]
	}

	return info
}

// generateFrom maps a transport request onto a phrase spec and runs it
// against the given word index.
func generateFrom(idx phrase.WordIndex, req model.GenerateRequest) (model.GenerateResponse, error) {
	spec := phrase.Spec{
		MinWordLength: intOrDefault(req.MinWordLength, phrase.DefaultMinWordLength),
		MaxWordLength: intOrDefault(req.MaxWordLength, phrase.DefaultMaxWordLength),
		WordCount:     intOrDefault(req.Words, phrase.DefaultWordCount),
	}

	passphrase, err := phrase.Generate(idx, spec)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Passphrase: passphrase,
		Length:     utf8.RuneCountInString(passphrase),
		Words:      spec.WordCount,
	}, nil
}

// intOrDefault returns n, or the fallback when n is zero.
func intOrDefault(n, fallback int) int {
	if n == 0 {
		return fallback
	}
	return n
}
