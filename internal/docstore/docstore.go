// Package docstore provides a minimal document store: schemaless JSON
// documents grouped into named collections, each addressed by a generated
// UUID. Repositories consume the Store interface and never talk to the
// backing driver directly.
package docstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned by point lookups that resolve to no document.
var ErrNotFound = errors.New("document not found")

// Document is one stored record: its identifier plus the raw JSON body.
// The identifier lives outside the body and is immutable once assigned.
type Document struct {
	ID   uuid.UUID
	Data []byte
}

// Filter matches documents whose top-level fields equal the given values.
// A nil or empty filter matches every document in the collection.
type Filter map[string]string

// FindOption tweaks a Find call.
type FindOption func(*findConfig)

type findConfig struct {
	sortBy string
}

// SortBy orders results ascending by a top-level document field.
func SortBy(field string) FindOption {
	return func(c *findConfig) {
		c.sortBy = field
	}
}

// Store is the collaborator contract for document persistence. Every
// operation is bounded by the caller's context; a single insert, update or
// delete is atomic, and no multi-document transactions are offered.
type Store interface {
	// FindByID returns the document with the given id, or ErrNotFound.
	FindByID(ctx context.Context, collection string, id uuid.UUID) (*Document, error)

	// Find returns the documents matching the filter, optionally sorted.
	Find(ctx context.Context, collection string, filter Filter, opts ...FindOption) ([]Document, error)

	// Count returns the number of documents matching the filter.
	Count(ctx context.Context, collection string, filter Filter) (int64, error)

	// Insert stores doc as a new document and assigns its identifier.
	Insert(ctx context.Context, collection string, doc any) (*Document, error)

	// UpdateByID replaces the body of the document with the given id,
	// keeping the identifier. Returns ErrNotFound if no such document.
	UpdateByID(ctx context.Context, collection string, id uuid.UUID, doc any) (*Document, error)

	// DeleteByID removes the document with the given id. Deleting an
	// absent document is a no-op.
	DeleteByID(ctx context.Context, collection string, id uuid.UUID) error
}
