package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"locallibrary-backend/internal/docstore"
	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/pkg/cache"
)

const (
	collection           = "authors"
	authorCacheKeyPrefix = "author:"
	cacheTTL             = 15 * time.Minute
)

// docstoreRepository implements author.Repository on the document store,
// with read-through caching of point lookups.
type docstoreRepository struct {
	store docstore.Store
	cache cache.Cache
}

func NewDocstoreRepository(store docstore.Store, cache cache.Cache) author.Repository {
	return &docstoreRepository{
		store: store,
		cache: cache,
	}
}

func (r *docstoreRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var cached author.Author
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		cached.ID = id
		return &cached, nil
	}

	doc, err := r.store.FindByID(ctx, collection, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	a, err := decode(doc)
	if err != nil {
		return nil, err
	}

	// Cache failure is non-critical.
	_ = r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return a, nil
}

func (r *docstoreRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	docs, err := r.store.Find(ctx, collection, nil, docstore.SortBy("family_name"))
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	authors := make([]author.Author, 0, len(docs))
	for _, doc := range docs {
		a, err := decode(&doc)
		if err != nil {
			return nil, err
		}
		authors = append(authors, *a)
	}

	return authors, nil
}

func (r *docstoreRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	doc, err := r.store.Insert(ctx, collection, a)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return decode(doc)
}

func (r *docstoreRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.store.Count(ctx, collection, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}

	return count, nil
}

func decode(doc *docstore.Document) (*author.Author, error) {
	var a author.Author
	if err := json.Unmarshal(doc.Data, &a); err != nil {
		return nil, fmt.Errorf("failed to decode author document: %w", err)
	}
	a.ID = doc.ID
	return &a, nil
}
