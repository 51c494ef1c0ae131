package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/genre"
)

type fakeGenreRepo struct {
	genre.Repository
	genres  []genre.Genre
	created []genre.Genre
}

func (f *fakeGenreRepo) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	for i := range f.genres {
		if f.genres[i].ID == id {
			return &f.genres[i], nil
		}
	}
	return nil, genre.ErrGenreNotFound
}

func (f *fakeGenreRepo) FindByName(ctx context.Context, name string) (*genre.Genre, error) {
	for i := range f.genres {
		if f.genres[i].Name == name {
			return &f.genres[i], nil
		}
	}
	return nil, genre.ErrGenreNotFound
}

func (f *fakeGenreRepo) Create(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	created := *g
	created.ID = uuid.New()
	f.created = append(f.created, created)
	return &created, nil
}

type fakeBookRepo struct {
	book.Repository
	books []book.Book
}

func (f *fakeBookRepo) GetAllSortedByTitle(ctx context.Context) ([]book.Book, error) {
	return f.books, nil
}

func TestDetail_FiltersBooksByGenreMembership(t *testing.T) {
	fantasy := genre.Genre{ID: uuid.New(), Name: "Fantasy"}
	other := uuid.New().String()

	svc := NewService(
		&fakeGenreRepo{genres: []genre.Genre{fantasy}},
		&fakeBookRepo{books: []book.Book{
			{ID: uuid.New(), Title: "In", GenreIDs: []string{fantasy.ID.String(), other}},
			{ID: uuid.New(), Title: "Out", GenreIDs: []string{other}},
			{ID: uuid.New(), Title: "Untagged"},
		}},
	)

	detail, err := svc.Detail(context.Background(), fantasy.ID)

	require.NoError(t, err)
	assert.Equal(t, "Fantasy", detail.Genre.Name)
	require.Len(t, detail.Books, 1)
	assert.Equal(t, "In", detail.Books[0].Title)
}

func TestDetail_UnknownGenre(t *testing.T) {
	svc := NewService(&fakeGenreRepo{}, &fakeBookRepo{})

	_, err := svc.Detail(context.Background(), uuid.New())

	assert.ErrorIs(t, err, genre.ErrGenreNotFound)
}

func TestCreate_NewName(t *testing.T) {
	repo := &fakeGenreRepo{}
	svc := NewService(repo, &fakeBookRepo{})

	created, existed, err := svc.Create(context.Background(), &genre.Genre{Name: "Fantasy"})

	require.NoError(t, err)
	assert.False(t, existed)
	assert.Equal(t, "Fantasy", created.Name)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Len(t, repo.created, 1)
}

func TestCreate_ExistingNameIsNotDuplicated(t *testing.T) {
	existing := genre.Genre{ID: uuid.New(), Name: "Fantasy"}
	repo := &fakeGenreRepo{genres: []genre.Genre{existing}}
	svc := NewService(repo, &fakeBookRepo{})

	created, existed, err := svc.Create(context.Background(), &genre.Genre{Name: "Fantasy"})

	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, existing.ID, created.ID)
	assert.Empty(t, repo.created)
}
