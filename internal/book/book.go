package book

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrAlreadyExists is returned when another book already uses the same ISBN.
var ErrAlreadyExists = errors.New("book with this ISBN already exists")

// Book represents a book record as persisted.
// ID is the database surrogate key and never leaves the repository layer;
// PublicID is the handle all external callers address a book by.
type Book struct {
	ID              int64
	PublicID        uuid.UUID
	Title           string
	Author          string
	ISBN            string
	Price           decimal.Decimal
	PublicationYear int
	CreatedAt       time.Time
}

// Candidate holds the user-supplied fields of a book. Price and
// PublicationYear are pointers so a missing value can be told apart from a
// zero one during validation.
type Candidate struct {
	Title           string
	Author          string
	ISBN            string
	Price           *decimal.Decimal
	PublicationYear *int
}

// ValidationError carries every validation failure for a candidate, in the
// order the checks are declared.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("book data validation failed: %d error(s)", len(e.Messages))
}

// merge builds the record persisted by an update: identity and creation
// metadata come from the existing row, everything else from the candidate.
func merge(existing Book, c Candidate) Book {
	return Book{
		ID:              existing.ID,
		PublicID:        existing.PublicID,
		Title:           c.Title,
		Author:          c.Author,
		ISBN:            c.ISBN,
		Price:           *c.Price,
		PublicationYear: *c.PublicationYear,
		CreatedAt:       existing.CreatedAt,
	}
}
