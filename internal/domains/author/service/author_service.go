package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/book"
)

// Detail is an author together with the books they wrote.
type Detail struct {
	Author *author.Author
	Books  []book.Book
}

// Service is the author business-logic contract consumed by the handlers.
type Service interface {
	// List returns every author sorted by family name.
	List(ctx context.Context) ([]author.Author, error)

	// Detail returns the author and their books, fetched concurrently.
	// Returns author.ErrAuthorNotFound when the id resolves to nothing.
	Detail(ctx context.Context, id uuid.UUID) (*Detail, error)

	// Create persists a validated candidate as a new author.
	Create(ctx context.Context, candidate *author.Author) (*author.Author, error)
}

type authorService struct {
	authors author.Repository
	books   book.Repository
}

func NewService(authors author.Repository, books book.Repository) Service {
	return &authorService{
		authors: authors,
		books:   books,
	}
}

func (s *authorService) List(ctx context.Context) ([]author.Author, error) {
	return s.authors.GetAll(ctx)
}

func (s *authorService) Detail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	// The author and their books have no data dependency on each other,
	// so both reads are issued concurrently.
	g, ctx := errgroup.WithContext(ctx)

	var a *author.Author
	var books []book.Book

	g.Go(func() error {
		var err error
		a, err = s.authors.GetByID(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.books.GetByAuthor(ctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Detail{Author: a, Books: books}, nil
}

func (s *authorService) Create(ctx context.Context, candidate *author.Author) (*author.Author, error) {
	return s.authors.Create(ctx, candidate)
}
