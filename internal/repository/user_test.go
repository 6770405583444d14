package repository

import (
	"testing"
)

// Handlers surface these messages to clients, so they are part of the API.
func TestUserSentinelMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", ErrUserNotFound, "user not found"},
		{"duplicate email", ErrDuplicateEmail, "email already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
		})
	}
}
