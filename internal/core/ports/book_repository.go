package ports

import (
	"context"

	"github.com/bookstack/catalog-api/internal/core/domain"
)

// BookRepository defines persistence operations for catalog records.
type BookRepository interface {
	// List returns every book ordered newest-created-first. Ties on
	// created_at keep a stable order within a single query.
	List(ctx context.Context) ([]*domain.Book, error)
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	// Replace overwrites the stored payload fields of book in a single
	// atomic find-and-modify and returns the document as persisted. The
	// stored _id, owner and created_at are retained.
	Replace(ctx context.Context, book *domain.Book) (*domain.Book, error)
	// Delete removes the book atomically, ErrBookNotFound when absent.
	Delete(ctx context.Context, id string) error
}
