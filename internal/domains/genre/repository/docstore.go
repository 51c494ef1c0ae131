package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"locallibrary-backend/internal/docstore"
	"locallibrary-backend/internal/domains/genre"
)

const collection = "genres"

type docstoreRepository struct {
	store docstore.Store
}

func NewDocstoreRepository(store docstore.Store) genre.Repository {
	return &docstoreRepository{store: store}
}

func (r *docstoreRepository) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	doc, err := r.store.FindByID(ctx, collection, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre by id: %w", err)
	}

	return decode(doc)
}

func (r *docstoreRepository) GetAll(ctx context.Context) ([]genre.Genre, error) {
	docs, err := r.store.Find(ctx, collection, nil, docstore.SortBy("name"))
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}

	genres := make([]genre.Genre, 0, len(docs))
	for _, doc := range docs {
		g, err := decode(&doc)
		if err != nil {
			return nil, err
		}
		genres = append(genres, *g)
	}

	return genres, nil
}

func (r *docstoreRepository) FindByName(ctx context.Context, name string) (*genre.Genre, error) {
	docs, err := r.store.Find(ctx, collection, docstore.Filter{"name": name})
	if err != nil {
		return nil, fmt.Errorf("failed to find genre by name: %w", err)
	}
	if len(docs) == 0 {
		return nil, genre.ErrGenreNotFound
	}

	return decode(&docs[0])
}

func (r *docstoreRepository) Create(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	doc, err := r.store.Insert(ctx, collection, g)
	if err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}

	return decode(doc)
}

func (r *docstoreRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.store.Count(ctx, collection, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count genres: %w", err)
	}

	return count, nil
}

func decode(doc *docstore.Document) (*genre.Genre, error) {
	var g genre.Genre
	if err := json.Unmarshal(doc.Data, &g); err != nil {
		return nil, fmt.Errorf("failed to decode genre document: %w", err)
	}
	g.ID = doc.ID
	return &g, nil
}
