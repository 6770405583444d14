package repository

import (
	"testing"
)

func TestNewWordlistRepository(t *testing.T) {
	repo := NewWordlistRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil WordlistRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestWordlistSentinelErrors(t *testing.T) {
	if ErrWordlistNotFound.Error() != "wordlist not found" {
		t.Fatalf("unexpected error message: %s", ErrWordlistNotFound.Error())
	}
	if ErrDuplicateName.Error() != "wordlist name already exists" {
		t.Fatalf("unexpected error message: %s", ErrDuplicateName.Error())
	}
}

func TestValuesClause(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "(?, ?, ?)"},
		{2, "(?, ?, ?),(?, ?, ?)"},
		{3, "(?, ?, ?),(?, ?, ?),(?, ?, ?)"},
	}

	for _, tt := range tests {
		if got := valuesClause(tt.n); got != tt.want {
			t.Errorf("valuesClause(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
