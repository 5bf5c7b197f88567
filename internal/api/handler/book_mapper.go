package handler

import (
	"github.com/bookstack/catalog-api/internal/core/domain"
	"github.com/bookstack/catalog-api/internal/core/ports"
)

// --- Request → Service input ---

func toAvailabilityInput(a availabilityRequest) ports.AvailabilityInput {
	in := ports.AvailabilityInput{
		DueDate:  a.DueDate,
		Borrower: a.Borrower,
	}
	if a.IsAvailable != nil {
		in.IsAvailable = *a.IsAvailable
	}
	return in
}

func toCreateInput(req bookRequest, ownerID string) ports.CreateBookInput {
	return ports.CreateBookInput{
		Title:        req.Title,
		Author:       req.Author,
		ISBN:         req.ISBN,
		Publisher:    req.Publisher,
		Genre:        req.Genre,
		Availability: toAvailabilityInput(req.Availability),
		OwnerID:      ownerID,
	}
}

func toUpdateInput(req bookRequest, id string) ports.UpdateBookInput {
	return ports.UpdateBookInput{
		ID:           id,
		Title:        req.Title,
		Author:       req.Author,
		ISBN:         req.ISBN,
		Publisher:    req.Publisher,
		Genre:        req.Genre,
		Availability: toAvailabilityInput(req.Availability),
	}
}

// --- Domain → HTTP response ---

func toBookResponse(b *domain.Book) bookResponse {
	return bookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		ISBN:      b.ISBN,
		Publisher: b.Publisher,
		Genre:     b.Genre,
		Availability: availabilityResponse{
			IsAvailable: b.Availability.IsAvailable,
			DueDate:     b.Availability.DueDate,
			Borrower:    b.Availability.Borrower,
		},
		Owner:     b.OwnerID,
		CreatedAt: b.CreatedAt.UTC(),
		UpdatedAt: b.UpdatedAt.UTC(),
	}
}

func toBookListResponse(books []*domain.Book) []bookResponse {
	out := make([]bookResponse, len(books))
	for i, b := range books {
		out[i] = toBookResponse(b)
	}
	return out
}
