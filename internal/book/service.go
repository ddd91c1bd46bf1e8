package book

import (
	"context"
	"log"

	"github.com/google/uuid"

	"bookcatalog/internal/isbn"
)

// Service provides book catalog business logic: validation, ISBN uniqueness
// and existence checks on top of the Repository. It holds no state between
// calls.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetBookByID returns the book addressed by its public ID.
func (s *Service) GetBookByID(ctx context.Context, publicID uuid.UUID) (Book, error) {
	return s.repo.FindByID(ctx, publicID)
}

// GetAllBooks returns every book, newest first.
func (s *Service) GetAllBooks(ctx context.Context) ([]Book, error) {
	return s.repo.FindAll(ctx)
}

// SaveBook validates the candidate, rejects a duplicate ISBN and inserts the
// record. The returned book carries the generated public ID and the creation
// timestamp assigned by the store.
func (s *Service) SaveBook(ctx context.Context, c Candidate) (Book, error) {
	if err := Validate(c); err != nil {
		return Book{}, err
	}

	exists, err := s.repo.ExistsByISBN(ctx, c.ISBN)
	if err != nil {
		return Book{}, err
	}
	if exists {
		return Book{}, ErrAlreadyExists
	}

	saved, err := s.repo.Save(ctx, Book{
		Title:           c.Title,
		Author:          c.Author,
		ISBN:            c.ISBN,
		Price:           *c.Price,
		PublicationYear: *c.PublicationYear,
	})
	if err != nil {
		return Book{}, err
	}

	log.Printf("created book public_id=%s isbn=%s", saved.PublicID, saved.ISBN)
	return saved, nil
}

// UpdateBook validates the candidate and overwrites every user-controlled
// field of the existing record. Surrogate key, public ID and creation
// timestamp are preserved. The ISBN uniqueness check is skipped when the ISBN
// is unchanged, so a self-update never conflicts with itself.
func (s *Service) UpdateBook(ctx context.Context, publicID uuid.UUID, c Candidate) (Book, error) {
	if err := Validate(c); err != nil {
		return Book{}, err
	}

	existing, err := s.repo.FindByID(ctx, publicID)
	if err != nil {
		return Book{}, err
	}

	if isbn.Normalize(c.ISBN) != isbn.Normalize(existing.ISBN) {
		exists, err := s.repo.ExistsByISBN(ctx, c.ISBN)
		if err != nil {
			return Book{}, err
		}
		if exists {
			return Book{}, ErrAlreadyExists
		}
	}

	saved, err := s.repo.Save(ctx, merge(existing, c))
	if err != nil {
		return Book{}, err
	}

	log.Printf("updated book public_id=%s", publicID)
	return saved, nil
}

// DeleteBookByID removes the book addressed by its public ID, failing with
// ErrNotFound when it does not exist.
func (s *Service) DeleteBookByID(ctx context.Context, publicID uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, publicID); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, publicID); err != nil {
		return err
	}

	log.Printf("deleted book public_id=%s", publicID)
	return nil
}
