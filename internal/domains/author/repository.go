package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the author data-access contract.
type Repository interface {
	// GetByID returns the author or ErrAuthorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll returns every author, sorted by family name.
	GetAll(ctx context.Context) ([]Author, error)

	// Create persists a new author and returns it with its assigned id.
	Create(ctx context.Context, a *Author) (*Author, error)

	// Count returns the total number of authors.
	Count(ctx context.Context) (int64, error)
}
