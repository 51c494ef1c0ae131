package bookinstance

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the book instance data-access contract.
type Repository interface {
	// GetByID returns the copy or ErrInstanceNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*BookInstance, error)

	// GetAll returns every copy, unsorted; callers order by the
	// resolved book.
	GetAll(ctx context.Context) ([]BookInstance, error)

	// GetByBook returns the copies referencing the given book id.
	GetByBook(ctx context.Context, bookID string) ([]BookInstance, error)

	// Create persists a new copy and returns it with its assigned id.
	Create(ctx context.Context, bi *BookInstance) (*BookInstance, error)

	// Update replaces the copy with the given id, keeping the id.
	// Returns ErrInstanceNotFound if no such copy.
	Update(ctx context.Context, id uuid.UUID, bi *BookInstance) (*BookInstance, error)

	// Delete removes the copy; deleting an absent copy is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of copies.
	Count(ctx context.Context) (int64, error)

	// CountByStatus returns the number of copies with the given status.
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
