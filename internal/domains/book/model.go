package book

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrBookNotFound = errors.New("book not found")
)

// Book is a catalog title. References to authors and genres are held as
// identifier strings; the store enforces no cross-collection integrity, the
// create/update pipeline only checks that a reference was submitted.
type Book struct {
	ID uuid.UUID `json:"-"`

	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	ISBN     string   `json:"isbn"`
	AuthorID string   `json:"author_id"`
	GenreIDs []string `json:"genre_ids,omitempty"`
}

// URL is the canonical detail path for this book.
func (b Book) URL() string {
	return "/catalog/book/" + b.ID.String()
}

// HasGenre reports whether the book references the given genre id. Used to
// pre-check genre boxes on the edit form.
func (b Book) HasGenre(genreID string) bool {
	for _, id := range b.GenreIDs {
		if id == genreID {
			return true
		}
	}
	return false
}
