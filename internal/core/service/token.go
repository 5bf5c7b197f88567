package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bookstack/catalog-api/internal/core/domain"
)

// DefaultTokenTTL is the validity window of issued tokens.
const DefaultTokenTTL = 72 * time.Hour

// TokenIssuer creates and verifies HS256-signed identity tokens. The user id
// travels in the "sub" claim; expiry is absolute, fixed at issuance.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for userID.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

// Verify checks signature and expiry and returns the embedded user id.
// Any failure (malformed encoding, wrong key, non-HS256 alg, expired)
// collapses to domain.ErrInvalidToken.
func (t *TokenIssuer) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
