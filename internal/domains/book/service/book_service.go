package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/bookinstance"
	"locallibrary-backend/internal/domains/genre"
)

// ListItem is a book with its author resolved. Author is nil when the
// reference dangles.
type ListItem struct {
	Book   book.Book
	Author *author.Author
}

// Detail is a fully resolved book: author, genres and copies.
type Detail struct {
	Book      *book.Book
	Author    *author.Author
	Genres    []genre.Genre
	Instances []bookinstance.BookInstance
}

// FormData holds the reference lists backing the create and update forms.
type FormData struct {
	Authors []author.Author
	Genres  []genre.Genre
}

// Service is the book business-logic contract.
type Service interface {
	// List returns all books ordered by title, each with its author
	// resolved.
	List(ctx context.Context) ([]ListItem, error)

	// Detail returns the book with author, genres and copies resolved, or
	// book.ErrBookNotFound.
	Detail(ctx context.Context, id uuid.UUID) (*Detail, error)

	// FormData returns the author and genre lists for the book form,
	// fetched concurrently.
	FormData(ctx context.Context) (*FormData, error)

	// Create persists a validated candidate as a new book.
	Create(ctx context.Context, candidate *book.Book) (*book.Book, error)
}

type bookService struct {
	books     book.Repository
	authors   author.Repository
	genres    genre.Repository
	instances bookinstance.Repository
}

func NewService(books book.Repository, authors author.Repository, genres genre.Repository, instances bookinstance.Repository) Service {
	return &bookService{
		books:     books,
		authors:   authors,
		genres:    genres,
		instances: instances,
	}
}

func (s *bookService) List(ctx context.Context) ([]ListItem, error) {
	g, ctx := errgroup.WithContext(ctx)

	var books []book.Book
	var authors []author.Author

	g.Go(func() error {
		var err error
		books, err = s.books.GetAllSortedByTitle(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		authors, err = s.authors.GetAll(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]*author.Author, len(authors))
	for i := range authors {
		byID[authors[i].ID.String()] = &authors[i]
	}

	items := make([]ListItem, 0, len(books))
	for _, b := range books {
		items = append(items, ListItem{
			Book:   b,
			Author: byID[b.AuthorID],
		})
	}

	return items, nil
}

func (s *bookService) Detail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	b, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &Detail{Book: b}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		detail.Author = s.resolveAuthor(ctx, b.AuthorID)
		return nil
	})
	g.Go(func() error {
		detail.Genres = s.resolveGenres(ctx, b.GenreIDs)
		return nil
	})
	g.Go(func() error {
		var err error
		detail.Instances, err = s.instances.GetByBook(ctx, b.ID.String())
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

// resolveAuthor tolerates dangling or malformed references.
func (s *bookService) resolveAuthor(ctx context.Context, authorID string) *author.Author {
	id, err := uuid.Parse(authorID)
	if err != nil {
		return nil
	}

	a, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return nil
	}

	return a
}

// resolveGenres skips references that no longer resolve.
func (s *bookService) resolveGenres(ctx context.Context, genreIDs []string) []genre.Genre {
	genres := make([]genre.Genre, 0, len(genreIDs))
	for _, gid := range genreIDs {
		id, err := uuid.Parse(gid)
		if err != nil {
			continue
		}

		gen, err := s.genres.GetByID(ctx, id)
		if err != nil {
			continue
		}

		genres = append(genres, *gen)
	}

	return genres
}

func (s *bookService) FormData(ctx context.Context) (*FormData, error) {
	g, ctx := errgroup.WithContext(ctx)

	data := &FormData{}

	g.Go(func() error {
		var err error
		data.Authors, err = s.authors.GetAll(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.Genres, err = s.genres.GetAll(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return data, nil
}

func (s *bookService) Create(ctx context.Context, candidate *book.Book) (*book.Book, error) {
	return s.books.Create(ctx, candidate)
}
