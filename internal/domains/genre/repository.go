package genre

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the genre data-access contract.
type Repository interface {
	// GetByID returns the genre or ErrGenreNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)

	// GetAll returns every genre, sorted by name.
	GetAll(ctx context.Context) ([]Genre, error)

	// FindByName returns the genre with exactly the given (already
	// escaped) name, or ErrGenreNotFound.
	FindByName(ctx context.Context, name string) (*Genre, error)

	// Create persists a new genre and returns it with its assigned id.
	Create(ctx context.Context, g *Genre) (*Genre, error)

	// Count returns the total number of genres.
	Count(ctx context.Context) (int64, error)
}
