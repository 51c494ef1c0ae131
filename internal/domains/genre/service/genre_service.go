package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/genre"
)

// Detail is a genre with the books tagged with it.
type Detail struct {
	Genre *genre.Genre
	Books []book.Book
}

// Service is the genre business-logic contract.
type Service interface {
	// List returns all genres ordered by name.
	List(ctx context.Context) ([]genre.Genre, error)

	// Detail returns the genre with its books, or genre.ErrGenreNotFound.
	Detail(ctx context.Context, id uuid.UUID) (*Detail, error)

	// Create persists a candidate unless a genre with the same name
	// already exists, in which case that one is returned with
	// existed=true.
	Create(ctx context.Context, candidate *genre.Genre) (created *genre.Genre, existed bool, err error)
}

type genreService struct {
	genres genre.Repository
	books  book.Repository
}

func NewService(genres genre.Repository, books book.Repository) Service {
	return &genreService{
		genres: genres,
		books:  books,
	}
}

func (s *genreService) List(ctx context.Context) ([]genre.Genre, error) {
	return s.genres.GetAll(ctx)
}

func (s *genreService) Detail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	g, ctx := errgroup.WithContext(ctx)

	var gen *genre.Genre
	var books []book.Book

	g.Go(func() error {
		var err error
		gen, err = s.genres.GetByID(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		// Genre membership lives inside each book's tag list, so the
		// filter runs in memory.
		books, err = s.books.GetAllSortedByTitle(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	tagged := make([]book.Book, 0)
	for _, b := range books {
		if b.HasGenre(id.String()) {
			tagged = append(tagged, b)
		}
	}

	return &Detail{Genre: gen, Books: tagged}, nil
}

func (s *genreService) Create(ctx context.Context, candidate *genre.Genre) (*genre.Genre, bool, error) {
	existing, err := s.genres.FindByName(ctx, candidate.Name)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, genre.ErrGenreNotFound) {
		return nil, false, err
	}

	created, err := s.genres.Create(ctx, candidate)
	if err != nil {
		return nil, false, err
	}

	return created, false, nil
}
