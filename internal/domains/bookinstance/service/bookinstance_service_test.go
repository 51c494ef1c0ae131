package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/bookinstance"
)

type fakeInstanceRepo struct {
	bookinstance.Repository
	instances []bookinstance.BookInstance
}

func (f *fakeInstanceRepo) GetAll(ctx context.Context) ([]bookinstance.BookInstance, error) {
	return f.instances, nil
}

func (f *fakeInstanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*bookinstance.BookInstance, error) {
	for i := range f.instances {
		if f.instances[i].ID == id {
			return &f.instances[i], nil
		}
	}
	return nil, bookinstance.ErrInstanceNotFound
}

type fakeBookRepo struct {
	book.Repository
	books []book.Book
}

func (f *fakeBookRepo) GetAll(ctx context.Context) ([]book.Book, error) {
	return f.books, nil
}

func (f *fakeBookRepo) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	for i := range f.books {
		if f.books[i].ID == id {
			return &f.books[i], nil
		}
	}
	return nil, book.ErrBookNotFound
}

func TestList_SortsByResolvedBookTitle(t *testing.T) {
	zebra := book.Book{ID: uuid.New(), Title: "Zebra Stories"}
	apple := book.Book{ID: uuid.New(), Title: "Apple Farming"}

	svc := NewService(
		&fakeInstanceRepo{instances: []bookinstance.BookInstance{
			{ID: uuid.New(), BookID: zebra.ID.String(), Imprint: "first"},
			{ID: uuid.New(), BookID: apple.ID.String(), Imprint: "second"},
		}},
		&fakeBookRepo{books: []book.Book{zebra, apple}},
	)

	items, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Apple Farming", items[0].Book.Title)
	assert.Equal(t, "Zebra Stories", items[1].Book.Title)
}

func TestList_DanglingReferenceKeepsTheCopy(t *testing.T) {
	known := book.Book{ID: uuid.New(), Title: "Known"}

	svc := NewService(
		&fakeInstanceRepo{instances: []bookinstance.BookInstance{
			{ID: uuid.New(), BookID: known.ID.String()},
			{ID: uuid.New(), BookID: uuid.New().String()},
		}},
		&fakeBookRepo{books: []book.Book{known}},
	)

	items, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)

	// Dangling references sort first under the empty title.
	assert.Nil(t, items[0].Book)
	require.NotNil(t, items[1].Book)
	assert.Equal(t, "Known", items[1].Book.Title)
}

func TestDetail_ResolvesBook(t *testing.T) {
	b := book.Book{ID: uuid.New(), Title: "The Name of the Wind"}
	bi := bookinstance.BookInstance{ID: uuid.New(), BookID: b.ID.String()}

	svc := NewService(
		&fakeInstanceRepo{instances: []bookinstance.BookInstance{bi}},
		&fakeBookRepo{books: []book.Book{b}},
	)

	detail, err := svc.Detail(context.Background(), bi.ID)

	require.NoError(t, err)
	assert.Equal(t, bi.ID, detail.Instance.ID)
	require.NotNil(t, detail.Book)
	assert.Equal(t, b.Title, detail.Book.Title)
}

func TestDetail_DanglingOrMalformedBookReference(t *testing.T) {
	tests := []struct {
		name   string
		bookID string
	}{
		{name: "unknown id", bookID: uuid.New().String()},
		{name: "malformed id", bookID: "not-a-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bi := bookinstance.BookInstance{ID: uuid.New(), BookID: tt.bookID}

			svc := NewService(
				&fakeInstanceRepo{instances: []bookinstance.BookInstance{bi}},
				&fakeBookRepo{},
			)

			detail, err := svc.Detail(context.Background(), bi.ID)

			require.NoError(t, err)
			assert.Nil(t, detail.Book)
		})
	}
}

func TestDetail_UnknownInstance(t *testing.T) {
	svc := NewService(&fakeInstanceRepo{}, &fakeBookRepo{})

	_, err := svc.Detail(context.Background(), uuid.New())

	assert.ErrorIs(t, err, bookinstance.ErrInstanceNotFound)
}
