package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/bookinstance"
	"locallibrary-backend/internal/domains/genre"
)

// Counts aggregates the catalog-wide record totals for the home page.
type Counts struct {
	Books              int64
	Instances          int64
	InstancesAvailable int64
	Authors            int64
	Genres             int64
}

// Service computes catalog-wide aggregates.
type Service interface {
	// Summary counts every entity type concurrently. One failing count
	// fails the whole summary.
	Summary(ctx context.Context) (*Counts, error)
}

type catalogService struct {
	books     book.Repository
	instances bookinstance.Repository
	authors   author.Repository
	genres    genre.Repository
}

func NewService(books book.Repository, instances bookinstance.Repository, authors author.Repository, genres genre.Repository) Service {
	return &catalogService{
		books:     books,
		instances: instances,
		authors:   authors,
		genres:    genres,
	}
}

func (s *catalogService) Summary(ctx context.Context) (*Counts, error) {
	g, ctx := errgroup.WithContext(ctx)

	counts := &Counts{}

	g.Go(func() error {
		var err error
		counts.Books, err = s.books.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		counts.Instances, err = s.instances.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		counts.InstancesAvailable, err = s.instances.CountByStatus(ctx, bookinstance.StatusAvailable)
		return err
	})
	g.Go(func() error {
		var err error
		counts.Authors, err = s.authors.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		counts.Genres, err = s.genres.Count(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return counts, nil
}
