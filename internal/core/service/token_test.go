package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bookstack/catalog-api/internal/core/domain"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	userID, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if userID != "user-42" {
		t.Fatalf("expected user-42, got %q", userID)
	}
}

func TestTokenIssuer_DefaultTTL(t *testing.T) {
	issuer := NewTokenIssuer("secret", 0)

	token, err := issuer.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims := &jwt.RegisteredClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}

	validity := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if validity != DefaultTokenTTL {
		t.Fatalf("expected %v validity, got %v", DefaultTokenTTL, validity)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   "user-42",
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := issuer.Verify(expired); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenIssuer_WrongKey(t *testing.T) {
	token, err := NewTokenIssuer("other-secret", time.Hour).Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewTokenIssuer("secret", time.Hour).Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenIssuer_Malformed(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := issuer.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestTokenIssuer_RejectsUnsignedAlg(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := issuer.Verify(unsigned); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenIssuer_EmptySubject(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := issuer.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
