package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookstack/catalog-api/internal/core/domain"
	"github.com/bookstack/catalog-api/internal/core/ports"
)

// AuthService implements signup and login.
type AuthService struct {
	repo   ports.AuthRepository
	tokens *TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, tokens *TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Signup registers a new member: validate, reject duplicate email, hash the
// password, persist, and issue a token for the fresh user id.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" ||
		input.PhoneNumber == "" || input.Gender == "" || input.DateOfBirth.IsZero() ||
		input.MembershipStatus == "" {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:             input.Name,
		Email:            input.Email,
		PasswordHash:     string(hash),
		PhoneNumber:      input.PhoneNumber,
		Gender:           input.Gender,
		DateOfBirth:      input.DateOfBirth,
		MembershipStatus: input.MembershipStatus,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user signed up")

	return &ports.AuthResult{Email: created.Email, Token: token}, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password both return ErrInvalidCredentials so callers cannot enumerate
// registered addresses.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	return &ports.AuthResult{Email: user.Email, Token: token}, nil
}
