package genre

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrGenreNotFound = errors.New("genre not found")
)

// Genre is a catalog genre, referenced by books.
type Genre struct {
	ID uuid.UUID `json:"-"`

	Name string `json:"name"` // min 3 chars
}

// URL is the canonical detail path for this genre.
func (g Genre) URL() string {
	return "/catalog/genre/" + g.ID.String()
}
