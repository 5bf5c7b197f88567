package domain

import (
	"errors"
	"time"
)

var ErrMissingFields = errors.New("Please add all fields")
var ErrUserExists = errors.New("User already exists")
var ErrInvalidCredentials = errors.New("Invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidToken = errors.New("invalid token")

// User models a registered library member.
type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	PhoneNumber      string    `json:"phone_number"`
	Gender           string    `json:"gender"`
	DateOfBirth      time.Time `json:"date_of_birth"`
	MembershipStatus string    `json:"membership_status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
