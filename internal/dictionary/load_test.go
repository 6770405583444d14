package dictionary

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestLoadCSV(t *testing.T) {
	src := "Word,StringLength\ncat,3\nlion,4\neagle,5\n"

	d, err := LoadCSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadCSV() unexpected error: %v", err)
	}
	if d.Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.Len())
	}
	if got := d.WordsOfLength(4); !slices.Equal(got, []string{"lion"}) {
		t.Errorf("WordsOfLength(4) = %v, want [lion]", got)
	}
}

func TestLoadCSVWithoutHeader(t *testing.T) {
	d, err := LoadCSV(strings.NewReader("cat,3\ndog,3\n"))
	if err != nil {
		t.Fatalf("LoadCSV() unexpected error: %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
}

func TestLoadCSVRejectsBadRows(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"length mismatch", "cat,4\n"},
		{"non-numeric length", "cat,three\n"},
		{"empty word", ",3\n"},
		{"wrong column count", "cat,3,extra\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadCSV(strings.NewReader(tt.src)); err == nil {
				t.Errorf("LoadCSV(%q) expected error", tt.src)
			}
		})
	}
}

func TestLoadCSVEmpty(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("Word,StringLength\n"))
	if !errors.Is(err, ErrNoEntries) {
		t.Errorf("LoadCSV() error = %v, want ErrNoEntries", err)
	}
}

func TestLoadJSON(t *testing.T) {
	src := `[{"word":"cat","string_length":3},{"word":"lion","string_length":4}]`

	d, err := LoadJSON(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadJSON() unexpected error: %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
	if got := d.WordsOfLength(3); !slices.Equal(got, []string{"cat"}) {
		t.Errorf("WordsOfLength(3) = %v, want [cat]", got)
	}
}

func TestLoadJSONRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"malformed json", `[{"word":"cat"`},
		{"length mismatch", `[{"word":"cat","string_length":9}]`},
		{"empty word", `[{"word":"","string_length":0}]`},
		{"empty array", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadJSON(strings.NewReader(tt.src)); err == nil {
				t.Errorf("LoadJSON(%q) expected error", tt.src)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "words.csv")
	if err := os.WriteFile(csvPath, []byte("cat,3\nlion,4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadFile(csvPath)
	if err != nil {
		t.Fatalf("LoadFile() unexpected error: %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()

	name := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(name, []byte("cat\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(name)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("LoadFile() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("LoadFile() expected error for missing file")
	}
}

func TestFetchCSV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Word,StringLength\ncat,3\nlion,4\n"))
	}))
	defer srv.Close()

	d, err := Fetch(context.Background(), srv.URL+"/words.csv")
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
}

func TestFetchJSONByExtension(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"word":"cat","string_length":3}]`))
	}))
	defer srv.Close()

	d, err := Fetch(context.Background(), srv.URL+"/words.json")
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}
}

func TestFetchJSONByContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"word":"cat","string_length":3}]`))
	}))
	defer srv.Close()

	d, err := Fetch(context.Background(), srv.URL+"/words")
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}
}

func TestFetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := Fetch(context.Background(), srv.URL+"/words.csv"); err == nil {
		t.Error("Fetch() expected error for non-200 response")
	}
}

func TestEmbedded(t *testing.T) {
	d, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded() unexpected error: %v", err)
	}
	if d.Len() == 0 {
		t.Fatal("Embedded() returned an empty corpus")
	}

	// The corpus must cover the default generation range.
	for n := 4; n <= 8; n++ {
		if len(d.WordsOfLength(n)) == 0 {
			t.Errorf("embedded corpus has no words of length %d", n)
		}
	}

	// Every bucket's words must actually have the bucket's length.
	for _, n := range d.Lengths() {
		for _, w := range d.WordsOfLength(n) {
			if len([]rune(w)) != n {
				t.Errorf("word %q indexed under length %d", w, n)
			}
		}
	}
}
