package book

import (
	"context"
)

// Repository defines the contract for book record storage.
type Repository interface {
	// Insert persists a new book and fills in the generated id and
	// the store-assigned timestamps.
	Insert(ctx context.Context, b *Book) error
	// Update overwrites every mutable field of the book identified by
	// b.ID and refreshes b.UpdatedAt. Returns ErrNotFound when the id
	// does not exist.
	Update(ctx context.Context, b *Book) error
	// DeleteByID removes a book permanently. Returns ErrNotFound when
	// the id does not exist.
	DeleteByID(ctx context.Context, id int64) error
	// GetByID returns the book or ErrNotFound.
	GetByID(ctx context.Context, id int64) (Book, error)
	// List returns every book in insertion order.
	List(ctx context.Context) ([]Book, error)
	// Search returns books whose title, author or ISBN contains the
	// keyword, case-insensitively.
	Search(ctx context.Context, keyword string) ([]Book, error)
	// ListByStatus returns books whose status equals the given value.
	ListByStatus(ctx context.Context, status Status) ([]Book, error)
	// ExistsByISBN reports whether any book carries the given ISBN.
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	// CountByStatus counts books with the given status.
	CountByStatus(ctx context.Context, status Status) (int64, error)
	// UpdateStatusIf atomically moves a book from one status to another
	// and returns the updated record. Returns ErrNotFound when the id
	// does not exist and ErrStatusConflict when the book is not in the
	// expected current status.
	UpdateStatusIf(ctx context.Context, id int64, from, to Status) (Book, error)
}
