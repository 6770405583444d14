package dictionary

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrNoEntries         = errors.New("dictionary source contains no entries")
	ErrUnsupportedFormat = errors.New("unsupported dictionary format")
)

const (
	fetchTimeout = 30 * time.Second
	maxFetchSize = 10 << 20 // 10MB
)

// LoadCSV parses a two-column Word,StringLength document. A leading header
// row is tolerated. Every declared length must match the word's actual
// character count; a mismatch is fatal.
func LoadCSV(r io.Reader) (*Dictionary, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var entries []Entry
	for row := 1; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		if row == 1 && isHeader(record) {
			continue
		}

		word := strings.TrimSpace(record[0])
		count, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid length %q", row, record[1])
		}
		entry, err := newValidatedEntry(word, count)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		entries = append(entries, entry)
	}

	return fromEntries(entries)
}

// LoadJSON parses an array of {"word", "string_length"} objects with the same
// validation rules as LoadCSV.
func LoadJSON(r io.Reader) (*Dictionary, error) {
	var rows []struct {
		Word         string `json:"word"`
		StringLength int    `json:"string_length"`
	}
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		entry, err := newValidatedEntry(strings.TrimSpace(row.Word), row.StringLength)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, entry)
	}

	return fromEntries(entries)
}

// LoadFile reads a dictionary from disk, dispatching on the file extension.
func LoadFile(name string) (*Dictionary, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv":
		return LoadCSV(f)
	case ".json":
		return LoadJSON(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Fetch retrieves a dictionary document over HTTP. The format is chosen by
// the URL path extension, falling back to the response content type; anything
// not recognizably JSON is parsed as CSV.
func Fetch(ctx context.Context, rawURL string) (*Dictionary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching dictionary: unexpected status %s", resp.Status)
	}

	body := io.LimitReader(resp.Body, maxFetchSize)
	ext := strings.ToLower(path.Ext(req.URL.Path))
	if ext == ".json" || strings.Contains(resp.Header.Get("Content-Type"), "json") {
		return LoadJSON(body)
	}
	return LoadCSV(body)
}

func fromEntries(entries []Entry) (*Dictionary, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	return New(entries), nil
}

func newValidatedEntry(word string, count int) (Entry, error) {
	if word == "" {
		return Entry{}, errors.New("empty word")
	}
	if actual := utf8.RuneCountInString(word); count != actual {
		return Entry{}, fmt.Errorf("declared length %d does not match %q (%d characters)", count, word, actual)
	}
	return Entry{Word: word, Length: count}, nil
}

func isHeader(record []string) bool {
	return strings.EqualFold(strings.TrimSpace(record[0]), "word")
}
