package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookstack/catalog-api/internal/core/domain"
)

const booksCollection = "books"

type BookRepository struct {
	coll *mongo.Collection
}

func NewBookRepository(db *mongo.Database) *BookRepository {
	return &BookRepository{coll: db.Collection(booksCollection)}
}

type mongoAvailability struct {
	IsAvailable bool       `bson:"is_available"`
	DueDate     *time.Time `bson:"due_date,omitempty"`
	Borrower    string     `bson:"borrower,omitempty"`
}

type mongoBook struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Author       string             `bson:"author"`
	ISBN         string             `bson:"isbn"`
	Publisher    string             `bson:"publisher"`
	Genre        string             `bson:"genre"`
	Availability mongoAvailability  `bson:"availability"`
	OwnerID      primitive.ObjectID `bson:"user,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (b mongoBook) toDomain() *domain.Book {
	book := &domain.Book{
		ID:        b.ID.Hex(),
		Title:     b.Title,
		Author:    b.Author,
		ISBN:      b.ISBN,
		Publisher: b.Publisher,
		Genre:     b.Genre,
		Availability: domain.Availability{
			IsAvailable: b.Availability.IsAvailable,
			DueDate:     b.Availability.DueDate,
			Borrower:    b.Availability.Borrower,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if !b.OwnerID.IsZero() {
		book.OwnerID = b.OwnerID.Hex()
	}
	return book
}

// listSort orders the catalog newest-created-first; _id descending is a
// secondary key so equal timestamps keep a stable order within a query.
var listSort = bson.D{
	{Key: "created_at", Value: -1},
	{Key: "_id", Value: -1},
}

// List returns all books in listSort order.
func (r *BookRepository) List(ctx context.Context) ([]*domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(listSort)

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer cur.Close(ctx)

	books := make([]*domain.Book, 0)
	for cur.Next(ctx) {
		var mb mongoBook
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode book: %w", err)
		}
		books = append(books, mb.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (r *BookRepository) FindByID(ctx context.Context, id string) (*domain.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidBookID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mb mongoBook
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}
	return mb.toDomain(), nil
}

func (r *BookRepository) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBook{
		Title:     book.Title,
		Author:    book.Author,
		ISBN:      book.ISBN,
		Publisher: book.Publisher,
		Genre:     book.Genre,
		Availability: mongoAvailability{
			IsAvailable: book.Availability.IsAvailable,
			DueDate:     book.Availability.DueDate,
			Borrower:    book.Availability.Borrower,
		},
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
	if book.OwnerID != "" {
		oid, err := primitive.ObjectIDFromHex(book.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("owner id: %w", err)
		}
		doc.OwnerID = oid
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert book: %w", err)
	}

	created := *book
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// Replace overwrites every payload field of the stored document in one
// atomic find-and-modify. _id, user and created_at survive untouched.
func (r *BookRepository) Replace(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	oid, err := primitive.ObjectIDFromHex(book.ID)
	if err != nil {
		return nil, domain.ErrInvalidBookID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":     book.Title,
		"author":    book.Author,
		"isbn":      book.ISBN,
		"publisher": book.Publisher,
		"genre":     book.Genre,
		"availability": mongoAvailability{
			IsAvailable: book.Availability.IsAvailable,
			DueDate:     book.Availability.DueDate,
			Borrower:    book.Availability.Borrower,
		},
		"updated_at": book.UpdatedAt,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mb mongoBook
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("replace book: %w", err)
	}
	return mb.toDomain(), nil
}

// Delete removes a book atomically via find-and-delete.
func (r *BookRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidBookID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrBookNotFound
		}
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes backing list ordering.
func (r *BookRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
