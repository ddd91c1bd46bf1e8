package book

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"bookcatalog/internal/isbn"
)

const bookColumns = `id, public_id, title, author, isbn, price::text, publication_year, created_at`

// PostgresRepo is the pgx-backed Repository implementation. ISBNs are stored
// in their normalized form, so the database unique index on the isbn column
// enforces uniqueness post-normalization and acts as the backstop for
// concurrent creates.
type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) FindByID(ctx context.Context, publicID uuid.UUID) (Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE public_id = $1`, bookColumns)

	b, err := scanBook(r.db.QueryRow(ctx, query, publicID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) FindAll(ctx context.Context) ([]Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books ORDER BY created_at DESC`, bookColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Save inserts the book when it carries no surrogate key and updates the
// existing row otherwise. Inserts generate a fresh public ID and let the
// database stamp created_at; updates never touch either column.
func (r *PostgresRepo) Save(ctx context.Context, b Book) (Book, error) {
	if b.ID == 0 {
		return r.insert(ctx, b)
	}
	return r.update(ctx, b)
}

func (r *PostgresRepo) insert(ctx context.Context, b Book) (Book, error) {
	query := fmt.Sprintf(`
		INSERT INTO books (public_id, title, author, isbn, price, publication_year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s`, bookColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.New(), b.Title, b.Author, isbn.Normalize(b.ISBN), b.Price.String(), b.PublicationYear)

	saved, err := scanBook(row)
	if err != nil {
		return Book{}, translateConstraint(err)
	}
	return saved, nil
}

func (r *PostgresRepo) update(ctx context.Context, b Book) (Book, error) {
	query := fmt.Sprintf(`
		UPDATE books
		SET title = $2, author = $3, isbn = $4, price = $5, publication_year = $6
		WHERE public_id = $1
		RETURNING %s`, bookColumns)

	row := r.db.QueryRow(ctx, query,
		b.PublicID, b.Title, b.Author, isbn.Normalize(b.ISBN), b.Price.String(), b.PublicationYear)

	saved, err := scanBook(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, translateConstraint(err)
	}
	return saved, nil
}

func (r *PostgresRepo) DeleteByID(ctx context.Context, publicID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM books WHERE public_id = $1`, publicID)
	return err
}

func (r *PostgresRepo) ExistsByISBN(ctx context.Context, rawISBN string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1)`,
		isbn.Normalize(rawISBN),
	).Scan(&exists)
	return exists, err
}

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	var price string
	if err := row.Scan(&b.ID, &b.PublicID, &b.Title, &b.Author, &b.ISBN,
		&price, &b.PublicationYear, &b.CreatedAt); err != nil {
		return Book{}, err
	}
	var err error
	b.Price, err = decimal.NewFromString(price)
	if err != nil {
		return Book{}, fmt.Errorf("parse price %q: %w", price, err)
	}
	return b, nil
}

// translateConstraint maps a unique violation on the isbn index to
// ErrAlreadyExists. Every other store fault propagates unmodified.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "isbn") {
		return ErrAlreadyExists
	}
	return err
}
