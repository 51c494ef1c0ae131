package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/bookinstance"
)

// ListItem is a copy with its referenced book resolved. Book is nil when
// the reference dangles.
type ListItem struct {
	Instance bookinstance.BookInstance
	Book     *book.Book
}

// Detail is one copy with its referenced book resolved.
type Detail struct {
	Instance *bookinstance.BookInstance
	Book     *book.Book
}

// Service is the book instance business-logic contract.
type Service interface {
	// List returns every copy with its book resolved, ordered by the
	// referenced book's title.
	List(ctx context.Context) ([]ListItem, error)

	// Detail returns the copy with its book resolved, or
	// bookinstance.ErrInstanceNotFound.
	Detail(ctx context.Context, id uuid.UUID) (*Detail, error)

	// CreateFormData returns the books for the create form's dropdown,
	// sorted by title.
	CreateFormData(ctx context.Context) ([]book.Book, error)

	// Create persists a validated candidate as a new copy.
	Create(ctx context.Context, candidate *bookinstance.BookInstance) (*bookinstance.BookInstance, error)

	// UpdateFormData returns the copy's detail and the full book list,
	// fetched concurrently, for the edit form.
	UpdateFormData(ctx context.Context, id uuid.UUID) (*Detail, []book.Book, error)

	// Update replaces the copy with the given id, keeping the id.
	Update(ctx context.Context, id uuid.UUID, candidate *bookinstance.BookInstance) (*bookinstance.BookInstance, error)

	// Delete removes the copy unconditionally; no referential checks.
	Delete(ctx context.Context, id uuid.UUID) error
}

type instanceService struct {
	instances bookinstance.Repository
	books     book.Repository
}

func NewService(instances bookinstance.Repository, books book.Repository) Service {
	return &instanceService{
		instances: instances,
		books:     books,
	}
}

func (s *instanceService) List(ctx context.Context) ([]ListItem, error) {
	// The copies and the books are independent reads; join in memory.
	g, ctx := errgroup.WithContext(ctx)

	var instances []bookinstance.BookInstance
	var books []book.Book

	g.Go(func() error {
		var err error
		instances, err = s.instances.GetAll(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.books.GetAll(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]*book.Book, len(books))
	for i := range books {
		byID[books[i].ID.String()] = &books[i]
	}

	items := make([]ListItem, 0, len(instances))
	for _, bi := range instances {
		items = append(items, ListItem{
			Instance: bi,
			Book:     byID[bi.BookID],
		})
	}

	// Canonical order is the referenced book; dangling references sort first.
	sort.SliceStable(items, func(i, j int) bool {
		return itemTitle(items[i]) < itemTitle(items[j])
	})

	return items, nil
}

func itemTitle(it ListItem) string {
	if it.Book == nil {
		return ""
	}
	return it.Book.Title
}

func (s *instanceService) Detail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	bi, err := s.instances.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Detail{
		Instance: bi,
		Book:     s.resolveBook(ctx, bi.BookID),
	}, nil
}

// resolveBook looks up a referenced book, tolerating dangling or malformed
// references: the store never enforced them.
func (s *instanceService) resolveBook(ctx context.Context, bookID string) *book.Book {
	id, err := uuid.Parse(bookID)
	if err != nil {
		return nil
	}

	b, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil
	}

	return b
}

func (s *instanceService) CreateFormData(ctx context.Context) ([]book.Book, error) {
	return s.books.GetAllSortedByTitle(ctx)
}

func (s *instanceService) Create(ctx context.Context, candidate *bookinstance.BookInstance) (*bookinstance.BookInstance, error) {
	return s.instances.Create(ctx, candidate)
}

func (s *instanceService) UpdateFormData(ctx context.Context, id uuid.UUID) (*Detail, []book.Book, error) {
	g, ctx := errgroup.WithContext(ctx)

	var detail *Detail
	var books []book.Book

	g.Go(func() error {
		var err error
		detail, err = s.Detail(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.books.GetAll(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return detail, books, nil
}

func (s *instanceService) Update(ctx context.Context, id uuid.UUID, candidate *bookinstance.BookInstance) (*bookinstance.BookInstance, error) {
	return s.instances.Update(ctx, id, candidate)
}

func (s *instanceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.instances.Delete(ctx, id)
}
