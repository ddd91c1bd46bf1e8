package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the contract for book storage.
//
// FindByID and DeleteByID address rows by public ID; the surrogate key stays
// internal to the implementation. Absence is reported as ErrNotFound by
// FindByID and is a no-op for DeleteByID — existence checks belong to the
// service.
type Repository interface {
	FindByID(ctx context.Context, publicID uuid.UUID) (Book, error)
	FindAll(ctx context.Context) ([]Book, error)
	Save(ctx context.Context, b Book) (Book, error)
	DeleteByID(ctx context.Context, publicID uuid.UUID) error
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
}
