package model

import "time"

// Wordlist is a custom word corpus row owned by a user. PublicID is the
// server-generated UUID exposed by the API; ID stays internal. WordCount is
// computed from the word rows when the list is read.
type Wordlist struct {
	ID        int64
	PublicID  string
	UserID    int64
	Name      string
	WordCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WordlistWord is a single stored word with its character count, computed
// server-side when the list is written.
type WordlistWord struct {
	Word   string
	Length int
}

// CreateWordlistRequest creates a named wordlist from a plain word array.
type CreateWordlistRequest struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// UpdateWordlistRequest replaces a wordlist's words wholesale. An empty name
// leaves the current name unchanged.
type UpdateWordlistRequest struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// WordlistResponse is the summary shape returned by list and write calls.
type WordlistResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	WordCount int       `json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WordlistDetailResponse is the full shape returned when fetching one list.
type WordlistDetailResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	WordCount int       `json:"word_count"`
	Words     []string  `json:"words"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
