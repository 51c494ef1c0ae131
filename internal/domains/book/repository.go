package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the book data-access contract.
type Repository interface {
	// GetByID returns the book or ErrBookNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// GetAll returns every book, unsorted.
	GetAll(ctx context.Context) ([]Book, error)

	// GetAllSortedByTitle returns every book sorted by title, for
	// selection dropdowns.
	GetAllSortedByTitle(ctx context.Context) ([]Book, error)

	// GetByAuthor returns the books referencing the given author.
	GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]Book, error)

	// Create persists a new book and returns it with its assigned id.
	Create(ctx context.Context, b *Book) (*Book, error)

	// Count returns the total number of books.
	Count(ctx context.Context) (int64, error)
}
