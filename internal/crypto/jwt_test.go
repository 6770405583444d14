package crypto

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(42, "a@example.com", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty string")
	}
}

func TestValidateTokenValid(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken(42, "a@example.com", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("ValidateToken() UserID = %d, want %d", claims.UserID, 42)
	}
	if claims.Email != "a@example.com" {
		t.Errorf("ValidateToken() Email = %q, want %q", claims.Email, "a@example.com")
	}
}

func TestValidateTokenRejected(t *testing.T) {
	mustToken := func(secret string, expiry time.Duration) string {
		t.Helper()
		token, err := GenerateToken(42, "a@example.com", secret, expiry)
		if err != nil {
			t.Fatalf("GenerateToken() unexpected error: %v", err)
		}
		return token
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-valid-token"},
		{"wrong secret", mustToken("other-secret", time.Hour)},
		{"expired", mustToken("test-secret", -time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateToken(tt.token, "test-secret"); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

// signWith builds a token with attacker-controlled claims for negative tests.
func signWith(t *testing.T, method jwt.SigningMethod, claims Claims, secret string) string {
	t.Helper()
	tokenString, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}
	return tokenString
}

func validClaims() Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: 42,
	}
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	claims := validClaims()
	claims.Issuer = "someone-else"

	_, err := ValidateToken(signWith(t, jwt.SigningMethodHS256, claims, "test-secret"), "test-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for wrong issuer")
	}
}

func TestValidateTokenWrongAudience(t *testing.T) {
	claims := validClaims()
	claims.Audience = jwt.ClaimStrings{"another-api"}

	_, err := ValidateToken(signWith(t, jwt.SigningMethodHS256, claims, "test-secret"), "test-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for wrong audience")
	}
}

func TestValidateTokenWrongMethod(t *testing.T) {
	_, err := ValidateToken(signWith(t, jwt.SigningMethodHS512, validClaims(), "test-secret"), "test-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for non-HS256 signing method")
	}
}
