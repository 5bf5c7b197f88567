package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookstack/catalog-api/internal/core/domain"
	"github.com/bookstack/catalog-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func validSignup() ports.SignupInput {
	return ports.SignupInput{
		Name:             "Alice Reader",
		Email:            "alice@example.com",
		Password:         "s3cret",
		PhoneNumber:      "555-0100",
		Gender:           "female",
		DateOfBirth:      time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		MembershipStatus: "active",
	}
}

func newAuthService(repo ports.AuthRepository) (*AuthService, *TokenIssuer) {
	tokens := NewTokenIssuer("test-secret", time.Hour)
	return NewAuthService(repo, tokens, zerolog.Nop()), tokens
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, tokens := newAuthService(repo)

	result, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if result.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", result.Email)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}

	// The embedded id must resolve to a persisted user.
	userID, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	stored, err := repo.FindByID(context.Background(), userID)
	if err != nil {
		t.Fatalf("token subject does not resolve: %v", err)
	}
	if stored.PasswordHash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(repo)

	blank := func(mutate func(*ports.SignupInput)) ports.SignupInput {
		input := validSignup()
		mutate(&input)
		return input
	}

	cases := map[string]ports.SignupInput{
		"name":              blank(func(i *ports.SignupInput) { i.Name = "" }),
		"email":             blank(func(i *ports.SignupInput) { i.Email = "" }),
		"password":          blank(func(i *ports.SignupInput) { i.Password = "" }),
		"phone_number":      blank(func(i *ports.SignupInput) { i.PhoneNumber = "" }),
		"gender":            blank(func(i *ports.SignupInput) { i.Gender = "" }),
		"date_of_birth":     blank(func(i *ports.SignupInput) { i.DateOfBirth = time.Time{} }),
		"membership_status": blank(func(i *ports.SignupInput) { i.MembershipStatus = "" }),
	}

	for field, input := range cases {
		if _, err := svc.Signup(context.Background(), input); !errors.Is(err, domain.ErrMissingFields) {
			t.Fatalf("missing %s: expected ErrMissingFields, got %v", field, err)
		}
	}
	if len(repo.users) != 0 {
		t.Fatalf("no user should have been persisted")
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(repo)

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), validSignup()); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected a single persisted user, got %d", len(repo.users))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, tokens := newAuthService(repo)

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", result.Email)
	}
	if _, err := tokens.Verify(result.Token); err != nil {
		t.Fatalf("login token invalid: %v", err)
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(repo)

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// Wrong password and unknown email must produce the same error value
	// so callers cannot enumerate registered addresses.
	_, wrongPass := svc.Login(context.Background(), "alice@example.com", "wrong")
	_, unknown := svc.Login(context.Background(), "ghost@example.com", "s3cret")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknown)
	}
	if wrongPass.Error() != unknown.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPass.Error(), unknown.Error())
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(repo)

	if _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "alice@example.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
