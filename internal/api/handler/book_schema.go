package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type availabilityRequest struct {
	// IsAvailable is a pointer so "false" and "absent" stay distinguishable
	// for the required check.
	IsAvailable *bool      `json:"isAvailable" validate:"required"`
	DueDate     *time.Time `json:"dueDate"`
	Borrower    string     `json:"borrower"`
}

// bookRequest is the payload for both create and update. It carries no owner
// field: ownership comes exclusively from the verified caller identity.
type bookRequest struct {
	Title        string              `json:"title"        validate:"required"`
	Author       string              `json:"author"       validate:"required"`
	ISBN         string              `json:"isbn"         validate:"required"`
	Publisher    string              `json:"publisher"    validate:"required"`
	Genre        string              `json:"genre"        validate:"required"`
	Availability availabilityRequest `json:"availability" validate:"required"`
}

// --- Response types ---
// Intentionally separate from domain types so the JSON contract is not
// coupled to internal service changes.

type availabilityResponse struct {
	IsAvailable bool       `json:"isAvailable"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Borrower    string     `json:"borrower,omitempty"`
}

type bookResponse struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Author       string               `json:"author"`
	ISBN         string               `json:"isbn"`
	Publisher    string               `json:"publisher"`
	Genre        string               `json:"genre"`
	Availability availabilityResponse `json:"availability"`
	Owner        string               `json:"user,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}
