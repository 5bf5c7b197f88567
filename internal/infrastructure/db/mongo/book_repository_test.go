package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The list ordering contract is newest-created-first with _id descending as
// the tiebreak, so equal timestamps keep a stable order within a query.
func TestListSort_NewestFirstWithStableTies(t *testing.T) {
	if len(listSort) != 2 {
		t.Fatalf("expected 2 sort keys, got %d", len(listSort))
	}
	if listSort[0].Key != "created_at" || listSort[0].Value != -1 {
		t.Fatalf("primary sort must be created_at descending, got %+v", listSort[0])
	}
	if listSort[1].Key != "_id" || listSort[1].Value != -1 {
		t.Fatalf("tiebreak must be _id descending, got %+v", listSort[1])
	}
}

func TestMongoBook_ToDomain(t *testing.T) {
	id := primitive.NewObjectID()
	owner := primitive.NewObjectID()
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	book := mongoBook{
		ID:        id,
		Title:     "The Go Programming Language",
		Author:    "Donovan & Kernighan",
		ISBN:      "978-0134190440",
		Publisher: "Addison-Wesley",
		Genre:     "programming",
		Availability: mongoAvailability{
			IsAvailable: false,
			DueDate:     &due,
			Borrower:    "alice",
		},
		OwnerID:   owner,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}.toDomain()

	if book.ID != id.Hex() || book.OwnerID != owner.Hex() {
		t.Fatalf("ids not mapped to hex: %+v", book)
	}
	if book.Availability.Borrower != "alice" || book.Availability.DueDate == nil {
		t.Fatalf("availability not carried: %+v", book.Availability)
	}
}

func TestMongoBook_ToDomain_ZeroOwner(t *testing.T) {
	book := mongoBook{ID: primitive.NewObjectID(), Title: "ownerless"}.toDomain()
	if book.OwnerID != "" {
		t.Fatalf("zero owner must map to empty string, got %q", book.OwnerID)
	}
}
