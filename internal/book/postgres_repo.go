package book

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepo is the pgx-backed Repository implementation.
type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505), which here can only mean the isbn column.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *PostgresRepo) Insert(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (title, author, description, publication_year, isbn, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		b.Title,
		b.Author,
		b.Description,
		b.PublicationYear,
		b.ISBN,
		b.Status,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicateISBN
	}
	return err
}

func (r *PostgresRepo) Update(ctx context.Context, b *Book) error {
	const query = `
		UPDATE books
		SET title = $2, author = $3, description = $4, publication_year = $5,
		    isbn = $6, status = $7, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		b.ID,
		b.Title,
		b.Author,
		b.Description,
		b.PublicationYear,
		b.ISBN,
		b.Status,
	).Scan(&b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if isUniqueViolation(err) {
			return ErrDuplicateISBN
		}
		return err
	}
	return nil
}

func (r *PostgresRepo) DeleteByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM books WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	const query = `
		SELECT id, title, author, description, publication_year, isbn, status, created_at, updated_at
		FROM books
		WHERE id = $1
		LIMIT 1
	`
	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.Description, &b.PublicationYear,
		&b.ISBN, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	const query = `
		SELECT id, title, author, description, publication_year, isbn, status, created_at, updated_at
		FROM books
		ORDER BY id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Description, &b.PublicationYear,
			&b.ISBN, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *PostgresRepo) Search(ctx context.Context, keyword string) ([]Book, error) {
	const query = `
		SELECT id, title, author, description, publication_year, isbn, status, created_at, updated_at
		FROM books
		WHERE title ILIKE $1 OR author ILIKE $1 OR isbn ILIKE $1
		ORDER BY id
	`
	pattern := "%" + keyword + "%"
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Description, &b.PublicationYear,
			&b.ISBN, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *PostgresRepo) ListByStatus(ctx context.Context, status Status) ([]Book, error) {
	const query = `
		SELECT id, title, author, description, publication_year, isbn, status, created_at, updated_at
		FROM books
		WHERE status = $1
		ORDER BY id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Description, &b.PublicationYear,
			&b.ISBN, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *PostgresRepo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1)`

	var exists bool
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, query, isbn).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresRepo) CountByStatus(ctx context.Context, status Status) (int64, error) {
	const query = `SELECT COUNT(*) FROM books WHERE status = $1`

	var count int64
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, query, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateStatusIf performs the transition as a single conditional UPDATE,
// so two concurrent borrows of the same book cannot both succeed.
func (r *PostgresRepo) UpdateStatusIf(ctx context.Context, id int64, from, to Status) (Book, error) {
	const query = `
		UPDATE books
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING id, title, author, description, publication_year, isbn, status, created_at, updated_at
	`
	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id, from, to).Scan(
		&b.ID, &b.Title, &b.Author, &b.Description, &b.PublicationYear,
		&b.ISBN, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No row matched: either the book is gone or it is not in
			// the expected status. A follow-up read tells the two apart.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return Book{}, getErr
			}
			return Book{}, ErrStatusConflict
		}
		return Book{}, err
	}
	return b, nil
}
