package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookstack/catalog-api/internal/core/domain"
	"github.com/bookstack/catalog-api/internal/core/ports"
)

// BookService implements catalog CRUD over a BookRepository.
type BookService struct {
	repo   ports.BookRepository
	logger zerolog.Logger
}

func NewBookService(repo ports.BookRepository, logger zerolog.Logger) *BookService {
	return &BookService{repo: repo, logger: logger}
}

// ListBooks returns the whole catalog, newest-created-first.
func (s *BookService) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	return s.repo.List(ctx)
}

// GetBook retrieves a single record. A malformed id short-circuits to
// ErrInvalidBookID without touching the store.
func (s *BookService) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	if err := validateBookID(id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// CreateBook adds a record owned by input.OwnerID, the caller's verified
// identity. There is no payload path into the owner field.
func (s *BookService) CreateBook(ctx context.Context, input ports.CreateBookInput) (*domain.Book, error) {
	now := time.Now().UTC()
	book := &domain.Book{
		Title:     input.Title,
		Author:    input.Author,
		ISBN:      input.ISBN,
		Publisher: input.Publisher,
		Genre:     input.Genre,
		Availability: domain.Availability{
			IsAvailable: input.Availability.IsAvailable,
			DueDate:     input.Availability.DueDate,
			Borrower:    input.Availability.Borrower,
		},
		OwnerID:   input.OwnerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, book)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create book")
		return nil, err
	}

	s.logger.Info().Str("book_id", created.ID).Str("owner_id", created.OwnerID).Msg("book created")
	return created, nil
}

// UpdateBook overwrites every payload field of the stored record wholesale,
// the availability sub-record included. Nested fields are not merged.
func (s *BookService) UpdateBook(ctx context.Context, input ports.UpdateBookInput) (*domain.Book, error) {
	if err := validateBookID(input.ID); err != nil {
		return nil, err
	}

	book := &domain.Book{
		ID:        input.ID,
		Title:     input.Title,
		Author:    input.Author,
		ISBN:      input.ISBN,
		Publisher: input.Publisher,
		Genre:     input.Genre,
		Availability: domain.Availability{
			IsAvailable: input.Availability.IsAvailable,
			DueDate:     input.Availability.DueDate,
			Borrower:    input.Availability.Borrower,
		},
		UpdatedAt: time.Now().UTC(),
	}

	updated, err := s.repo.Replace(ctx, book)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("book_id", updated.ID).Msg("book updated")
	return updated, nil
}

// DeleteBook removes a record.
func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	if err := validateBookID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("book_id", id).Msg("book deleted")
	return nil
}

// validateBookID rejects ids that are not well-formed store identifiers
// before any round trip to the store.
func validateBookID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.ErrInvalidBookID
	}
	return nil
}
