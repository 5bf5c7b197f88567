package ports

import (
	"context"
	"time"

	"github.com/bookstack/catalog-api/internal/core/domain"
)

// AvailabilityInput holds the availability sub-record of a book payload.
type AvailabilityInput struct {
	IsAvailable bool
	DueDate     *time.Time
	Borrower    string
}

// CreateBookInput carries all data needed to add a catalog record.
// OwnerID is the verified identity of the caller, never a payload field.
type CreateBookInput struct {
	Title        string
	Author       string
	ISBN         string
	Publisher    string
	Genre        string
	Availability AvailabilityInput
	OwnerID      string
}

// UpdateBookInput carries the replacement payload for an existing record.
// The stored id, owner and creation time survive the replace; every other
// field is overwritten wholesale from this input.
type UpdateBookInput struct {
	ID           string
	Title        string
	Author       string
	ISBN         string
	Publisher    string
	Genre        string
	Availability AvailabilityInput
}

// BookService defines use-case operations for the catalog.
type BookService interface {
	ListBooks(ctx context.Context) ([]*domain.Book, error)
	GetBook(ctx context.Context, id string) (*domain.Book, error)
	CreateBook(ctx context.Context, input CreateBookInput) (*domain.Book, error)
	UpdateBook(ctx context.Context, input UpdateBookInput) (*domain.Book, error)
	DeleteBook(ctx context.Context, id string) error
}
