package domain

import (
	"errors"
	"time"
)

var ErrBookNotFound = errors.New("book not found")
var ErrInvalidBookID = errors.New("invalid book id")

// Availability tracks whether a book is on the shelf and, when it is not,
// who has it and when it is due back.
type Availability struct {
	IsAvailable bool       `json:"isAvailable"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Borrower    string     `json:"borrower,omitempty"`
}

// Book is a single catalog record. OwnerID is the id of the user that
// created it and is stamped by the service, never taken from a client.
type Book struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Author       string       `json:"author"`
	ISBN         string       `json:"isbn"`
	Publisher    string       `json:"publisher"`
	Genre        string       `json:"genre"`
	Availability Availability `json:"availability"`
	OwnerID      string       `json:"user"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
