package ports

import (
	"context"
	"time"
)

// SignupInput carries all fields required to register a new member.
type SignupInput struct {
	Name             string
	Email            string
	Password         string
	PhoneNumber      string
	Gender           string
	DateOfBirth      time.Time
	MembershipStatus string
}

// AuthResult is returned on successful signup or login. It deliberately
// carries nothing but the login key and the bearer token.
type AuthResult struct {
	Email string
	Token string
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// TokenVerifier resolves a bearer token to the user id embedded in it.
// Verification failures (malformed, expired, wrong key) surface as errors.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
