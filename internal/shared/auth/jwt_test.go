package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestValidate(t *testing.T) {
	validator := NewJWTValidator(testSecret)
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	t.Run("valid token with roles", func(t *testing.T) {
		token := signToken(t, &Claims{
			Roles: []string{"ADMIN"},
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "admin-1",
				ExpiresAt: future,
			},
		})
		claims, err := validator.Validate(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !claims.HasRole("admin") {
			t.Fatalf("expected admin role, got %v", claims.Roles)
		}
		if claims.SessionID != "admin-1" {
			t.Fatalf("expected session id fallback to subject, got %q", claims.SessionID)
		}
	})

	t.Run("empty token", func(t *testing.T) {
		if _, err := validator.Validate(""); !errors.Is(err, ErrMissingToken) {
			t.Fatalf("expected ErrMissingToken, got %v", err)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		token := signToken(t, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
		})
		if _, err := validator.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTValidator("other-secret")
		token := signToken(t, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "u1", ExpiresAt: future},
		})
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestExtractBearerTokenFromHeader(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "bearer prefix", input: "Bearer abc.def", expected: "abc.def"},
		{name: "lowercase prefix", input: "bearer abc", expected: "abc"},
		{name: "raw token", input: "abc", expected: "abc"},
		{name: "empty", input: "  ", expected: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractBearerTokenFromHeader(tc.input); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
