package book

import (
	"context"
	"errors"
)

// Stats holds the dashboard counters exposed by GET /books/stats.
// Only AVAILABLE and BORROWED are counted; the remaining statuses are
// not part of the dashboard contract.
type Stats struct {
	Available int64 `json:"available"`
	Borrowed  int64 `json:"borrowed"`
}

// Service applies the catalog's business rules on top of a Repository.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every book in the catalog.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// GetByID returns a single book or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id int64) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts a new book. The ISBN must not already be in the
// catalog; every new book starts out AVAILABLE regardless of input.
func (s *Service) Create(ctx context.Context, b Book) (Book, error) {
	exists, err := s.repo.ExistsByISBN(ctx, b.ISBN)
	if err != nil {
		return Book{}, err
	}
	if exists {
		return Book{}, ErrDuplicateISBN
	}

	b.Status = StatusAvailable
	// Two creates racing past the exists check resolve at the store's
	// unique constraint, which the repository reports as ErrDuplicateISBN.
	if err := s.repo.Insert(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Update overwrites all mutable fields of the book with the given id,
// including status. There is no partial-field update.
func (s *Service) Update(ctx context.Context, id int64, b Book) (Book, error) {
	b.ID = id
	if err := s.repo.Update(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Delete removes a book permanently or returns ErrNotFound.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

// Search returns books matching the keyword in title, author or ISBN.
// An empty keyword matches every book; rejecting it is the caller's call.
func (s *Service) Search(ctx context.Context, keyword string) ([]Book, error) {
	return s.repo.Search(ctx, keyword)
}

// ListByStatus returns books whose status equals the given value.
func (s *Service) ListByStatus(ctx context.Context, status Status) ([]Book, error) {
	return s.repo.ListByStatus(ctx, status)
}

// Borrow moves a book from AVAILABLE to BORROWED and returns the
// updated record. Any other current status yields ErrNotAvailable.
func (s *Service) Borrow(ctx context.Context, id int64) (Book, error) {
	b, err := s.repo.UpdateStatusIf(ctx, id, StatusAvailable, StatusBorrowed)
	if err != nil {
		if errors.Is(err, ErrStatusConflict) {
			return Book{}, ErrNotAvailable
		}
		return Book{}, err
	}
	return b, nil
}

// Return moves a book from BORROWED back to AVAILABLE and returns the
// updated record. Any other current status yields ErrNotBorrowed.
func (s *Service) Return(ctx context.Context, id int64) (Book, error) {
	b, err := s.repo.UpdateStatusIf(ctx, id, StatusBorrowed, StatusAvailable)
	if err != nil {
		if errors.Is(err, ErrStatusConflict) {
			return Book{}, ErrNotBorrowed
		}
		return Book{}, err
	}
	return b, nil
}

// Stats returns the number of available and borrowed books.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	available, err := s.repo.CountByStatus(ctx, StatusAvailable)
	if err != nil {
		return Stats{}, err
	}
	borrowed, err := s.repo.CountByStatus(ctx, StatusBorrowed)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Available: available, Borrowed: borrowed}, nil
}
