package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/wordpass/wordpass-go/internal/dictionary"
	"github.com/wordpass/wordpass-go/internal/model"
	"github.com/wordpass/wordpass-go/internal/repository"
)

const (
	maxNameLength = 100
	maxWords      = 5000
	maxWordLength = 64
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrNameTooLong      = fmt.Errorf("name exceeds %d characters", maxNameLength)
	ErrWordsRequired    = errors.New("at least one word is required")
	ErrTooManyWords     = fmt.Errorf("wordlist exceeds %d words", maxWords)
	ErrWordTooLong      = fmt.Errorf("word exceeds %d characters", maxWordLength)
	ErrWordlistNotFound = errors.New("wordlist not found")
	ErrNameTaken        = errors.New("wordlist name already taken")
)

// WordlistService handles custom wordlist business logic.
type WordlistService struct {
	repo *repository.WordlistRepository
}

// NewWordlistService creates a new WordlistService.
func NewWordlistService(repo *repository.WordlistRepository) *WordlistService {
	return &WordlistService{repo: repo}
}

// Create stores a new named wordlist for a user and returns its summary.
func (s *WordlistService) Create(ctx context.Context, userID int64, req model.CreateWordlistRequest) (model.WordlistResponse, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return model.WordlistResponse{}, err
	}
	words, err := validateWords(req.Words)
	if err != nil {
		return model.WordlistResponse{}, err
	}

	wl := &model.Wordlist{
		PublicID: uuid.NewString(),
		UserID:   userID,
		Name:     name,
	}

	if err := s.repo.Create(ctx, wl, words); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return model.WordlistResponse{}, ErrNameTaken
		}
		return model.WordlistResponse{}, err
	}

	now := time.Now().UTC()
	wl.CreatedAt, wl.UpdatedAt = now, now

	return toWordlistResponse(*wl), nil
}

// List returns summaries of all wordlists owned by a user.
func (s *WordlistService) List(ctx context.Context, userID int64) ([]model.WordlistResponse, error) {
	lists, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return listsToResponse(lists), nil
}

// Get returns one wordlist with its full word array.
func (s *WordlistService) Get(ctx context.Context, userID int64, publicID string) (model.WordlistDetailResponse, error) {
	wl, err := s.repo.GetByPublicID(ctx, userID, publicID)
	if err != nil {
		if errors.Is(err, repository.ErrWordlistNotFound) {
			return model.WordlistDetailResponse{}, ErrWordlistNotFound
		}
		return model.WordlistDetailResponse{}, err
	}

	stored, err := s.repo.Words(ctx, wl.ID)
	if err != nil {
		return model.WordlistDetailResponse{}, err
	}

	words := make([]string, len(stored))
	for i, w := range stored {
		words[i] = w.Word
	}

	return model.WordlistDetailResponse{
		ID:        wl.PublicID,
		Name:      wl.Name,
		WordCount: len(words),
		Words:     words,
		CreatedAt: wl.CreatedAt,
		UpdatedAt: wl.UpdatedAt,
	}, nil
}

// Update replaces a wordlist's words and optionally renames it. An empty name
// in the request keeps the current name.
func (s *WordlistService) Update(ctx context.Context, userID int64, publicID string, req model.UpdateWordlistRequest) (model.WordlistResponse, error) {
	existing, err := s.repo.GetByPublicID(ctx, userID, publicID)
	if err != nil {
		if errors.Is(err, repository.ErrWordlistNotFound) {
			return model.WordlistResponse{}, ErrWordlistNotFound
		}
		return model.WordlistResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = existing.Name
	} else if name, err = validateName(name); err != nil {
		return model.WordlistResponse{}, err
	}

	words, err := validateWords(req.Words)
	if err != nil {
		return model.WordlistResponse{}, err
	}

	if err := s.repo.Replace(ctx, existing.ID, name, words); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return model.WordlistResponse{}, ErrNameTaken
		}
		return model.WordlistResponse{}, err
	}

	existing.Name = name
	existing.WordCount = len(words)
	existing.UpdatedAt = time.Now().UTC()

	return toWordlistResponse(*existing), nil
}

// Delete removes a user's wordlist.
func (s *WordlistService) Delete(ctx context.Context, userID int64, publicID string) error {
	err := s.repo.Delete(ctx, userID, publicID)
	if errors.Is(err, repository.ErrWordlistNotFound) {
		return ErrWordlistNotFound
	}
	return err
}

// Generate produces a passphrase drawn from one of the user's wordlists
// instead of the built-in corpus.
func (s *WordlistService) Generate(ctx context.Context, userID int64, publicID string, req model.GenerateRequest) (model.GenerateResponse, error) {
	wl, err := s.repo.GetByPublicID(ctx, userID, publicID)
	if err != nil {
		if errors.Is(err, repository.ErrWordlistNotFound) {
			return model.GenerateResponse{}, ErrWordlistNotFound
		}
		return model.GenerateResponse{}, err
	}

	stored, err := s.repo.Words(ctx, wl.ID)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	entries := make([]dictionary.Entry, len(stored))
	for i, w := range stored {
		entries[i] = dictionary.Entry{Word: w.Word, Length: w.Length}
	}

	return generateFrom(dictionary.New(entries), req)
}

// validateName trims the name and enforces the length cap.
func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

// validateWords trims entries, drops blanks and duplicates, and converts the
// survivors to stored word rows with their character counts.
func validateWords(raw []string) ([]model.WordlistWord, error) {
	if len(raw) > maxWords {
		return nil, ErrTooManyWords
	}

	seen := make(map[string]struct{}, len(raw))
	words := make([]model.WordlistWord, 0, len(raw))
	for _, w := range raw {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}

		n := utf8.RuneCountInString(w)
		if n > maxWordLength {
			return nil, fmt.Errorf("%w: %q", ErrWordTooLong, w)
		}

		seen[w] = struct{}{}
		words = append(words, model.WordlistWord{Word: w, Length: n})
	}

	if len(words) == 0 {
		return nil, ErrWordsRequired
	}

	return words, nil
}

// toWordlistResponse converts a Wordlist row to its summary response.
func toWordlistResponse(wl model.Wordlist) model.WordlistResponse {
	return model.WordlistResponse{
		ID:        wl.PublicID,
		Name:      wl.Name,
		WordCount: wl.WordCount,
		CreatedAt: wl.CreatedAt,
		UpdatedAt: wl.UpdatedAt,
	}
}

// listsToResponse converts Wordlist rows to summary responses.
func listsToResponse(lists []model.Wordlist) []model.WordlistResponse {
	result := make([]model.WordlistResponse, len(lists))
	for i, wl := range lists {
		result[i] = toWordlistResponse(wl)
	}
	return result
}
