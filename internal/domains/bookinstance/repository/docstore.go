package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"locallibrary-backend/internal/docstore"
	"locallibrary-backend/internal/domains/bookinstance"
	"locallibrary-backend/pkg/cache"
)

const (
	collection             = "bookinstances"
	instanceCacheKeyPrefix = "bookinstance:"
	cacheTTL               = 15 * time.Minute
)

// docstoreRepository implements bookinstance.Repository on the document
// store, caching point lookups and invalidating on every write.
type docstoreRepository struct {
	store docstore.Store
	cache cache.Cache
}

func NewDocstoreRepository(store docstore.Store, cache cache.Cache) bookinstance.Repository {
	return &docstoreRepository{
		store: store,
		cache: cache,
	}
}

func (r *docstoreRepository) GetByID(ctx context.Context, id uuid.UUID) (*bookinstance.BookInstance, error) {
	cacheKey := instanceCacheKeyPrefix + id.String()

	var cached bookinstance.BookInstance
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		cached.ID = id
		return &cached, nil
	}

	doc, err := r.store.FindByID(ctx, collection, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, bookinstance.ErrInstanceNotFound
		}
		return nil, fmt.Errorf("failed to get book instance by id: %w", err)
	}

	bi, err := decode(doc)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKey, bi, cacheTTL)

	return bi, nil
}

func (r *docstoreRepository) GetAll(ctx context.Context) ([]bookinstance.BookInstance, error) {
	return r.find(ctx, nil)
}

func (r *docstoreRepository) GetByBook(ctx context.Context, bookID string) ([]bookinstance.BookInstance, error) {
	return r.find(ctx, docstore.Filter{"book_id": bookID})
}

func (r *docstoreRepository) find(ctx context.Context, filter docstore.Filter) ([]bookinstance.BookInstance, error) {
	docs, err := r.store.Find(ctx, collection, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list book instances: %w", err)
	}

	instances := make([]bookinstance.BookInstance, 0, len(docs))
	for _, doc := range docs {
		bi, err := decode(&doc)
		if err != nil {
			return nil, err
		}
		instances = append(instances, *bi)
	}

	return instances, nil
}

func (r *docstoreRepository) Create(ctx context.Context, bi *bookinstance.BookInstance) (*bookinstance.BookInstance, error) {
	doc, err := r.store.Insert(ctx, collection, bi)
	if err != nil {
		return nil, fmt.Errorf("failed to create book instance: %w", err)
	}

	return decode(doc)
}

func (r *docstoreRepository) Update(ctx context.Context, id uuid.UUID, bi *bookinstance.BookInstance) (*bookinstance.BookInstance, error) {
	doc, err := r.store.UpdateByID(ctx, collection, id, bi)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, bookinstance.ErrInstanceNotFound
		}
		return nil, fmt.Errorf("failed to update book instance: %w", err)
	}

	r.invalidate(ctx, id)

	return decode(doc)
}

func (r *docstoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.store.DeleteByID(ctx, collection, id); err != nil {
		return fmt.Errorf("failed to delete book instance: %w", err)
	}

	r.invalidate(ctx, id)

	return nil
}

func (r *docstoreRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.store.Count(ctx, collection, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count book instances: %w", err)
	}

	return count, nil
}

func (r *docstoreRepository) CountByStatus(ctx context.Context, status bookinstance.Status) (int64, error) {
	count, err := r.store.Count(ctx, collection, docstore.Filter{"status": string(status)})
	if err != nil {
		return 0, fmt.Errorf("failed to count book instances by status: %w", err)
	}

	return count, nil
}

func (r *docstoreRepository) invalidate(ctx context.Context, id uuid.UUID) {
	// Cache failure is non-critical.
	_ = r.cache.Delete(ctx, instanceCacheKeyPrefix+id.String())
}

func decode(doc *docstore.Document) (*bookinstance.BookInstance, error) {
	var bi bookinstance.BookInstance
	if err := json.Unmarshal(doc.Data, &bi); err != nil {
		return nil, fmt.Errorf("failed to decode book instance document: %w", err)
	}
	bi.ID = doc.ID
	return &bi, nil
}
