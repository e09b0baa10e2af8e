package book

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned by the catalog service and its repository.
var (
	// ErrNotFound is returned when no book exists for a given id.
	ErrNotFound = errors.New("book not found")

	// ErrDuplicateISBN is returned when a book with the same ISBN is
	// already in the catalog.
	ErrDuplicateISBN = errors.New("a book with this ISBN already exists")

	// ErrNotAvailable is returned by Borrow when the book is in any
	// status other than AVAILABLE.
	ErrNotAvailable = errors.New("the book is not available for borrowing")

	// ErrNotBorrowed is returned by Return when the book is in any
	// status other than BORROWED.
	ErrNotBorrowed = errors.New("the book is not borrowed")

	// ErrStatusConflict is returned by the repository when a conditional
	// status update matched the id but not the expected current status.
	ErrStatusConflict = errors.New("book status conflict")
)

// Status is the lifecycle state of a book in the catalog.
type Status string

// The five catalog statuses. These are the literal wire values; the
// client depends on the exact casing.
const (
	StatusAvailable Status = "AVAILABLE"
	StatusBorrowed  Status = "BORROWED"
	StatusReserved  Status = "RESERVED"
	StatusLost      Status = "LOST"
	StatusDamaged   Status = "DAMAGED"
)

// Valid reports whether s is one of the five catalog statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusBorrowed, StatusReserved, StatusLost, StatusDamaged:
		return true
	}
	return false
}

// ParseStatus converts a wire literal into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("invalid status: %s", raw)
	}
	return s, nil
}

// Book represents a catalog record.
type Book struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Description     string    `json:"description,omitempty"`
	PublicationYear int       `json:"publicationYear"`
	ISBN            string    `json:"isbn"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
