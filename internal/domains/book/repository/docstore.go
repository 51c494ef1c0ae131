package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"locallibrary-backend/internal/docstore"
	"locallibrary-backend/internal/domains/book"
)

const collection = "books"

type docstoreRepository struct {
	store docstore.Store
}

func NewDocstoreRepository(store docstore.Store) book.Repository {
	return &docstoreRepository{store: store}
}

func (r *docstoreRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	doc, err := r.store.FindByID(ctx, collection, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return decode(doc)
}

func (r *docstoreRepository) GetAll(ctx context.Context) ([]book.Book, error) {
	return r.find(ctx, nil)
}

func (r *docstoreRepository) GetAllSortedByTitle(ctx context.Context) ([]book.Book, error) {
	return r.find(ctx, nil, docstore.SortBy("title"))
}

func (r *docstoreRepository) GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]book.Book, error) {
	return r.find(ctx, docstore.Filter{"author_id": authorID.String()})
}

func (r *docstoreRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	doc, err := r.store.Insert(ctx, collection, b)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return decode(doc)
}

func (r *docstoreRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.store.Count(ctx, collection, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}

	return count, nil
}

func (r *docstoreRepository) find(ctx context.Context, filter docstore.Filter, opts ...docstore.FindOption) ([]book.Book, error) {
	docs, err := r.store.Find(ctx, collection, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	books := make([]book.Book, 0, len(docs))
	for _, doc := range docs {
		b, err := decode(&doc)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}

	return books, nil
}

func decode(doc *docstore.Document) (*book.Book, error) {
	var b book.Book
	if err := json.Unmarshal(doc.Data, &b); err != nil {
		return nil, fmt.Errorf("failed to decode book document: %w", err)
	}
	b.ID = doc.ID
	return &b, nil
}
