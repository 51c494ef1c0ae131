package book

import (
	"locallibrary-backend/internal/shared/forms"
)

const (
	FieldTitle   = "title"
	FieldAuthor  = "author"
	FieldSummary = "summary"
	FieldISBN    = "isbn"
	FieldGenre   = "genre"
)

// Form validates and sanitizes a book submission. The genre selection is a
// multi-value field and is escaped separately via CleanGenreIDs.
func Form() *forms.Form {
	return forms.New(
		forms.F(FieldTitle,
			forms.Trim(),
			forms.Required("Title must not be empty."),
			forms.Escape(),
		),
		forms.F(FieldAuthor,
			forms.Trim(),
			forms.Required("Author must not be empty."),
			forms.Escape(),
		),
		forms.F(FieldSummary,
			forms.Trim(),
			forms.Required("Summary must not be empty."),
			forms.Escape(),
		),
		forms.F(FieldISBN,
			forms.Trim(),
			forms.Required("ISBN must not be empty."),
			forms.Escape(),
		),
	)
}

// CleanGenreIDs escapes each submitted genre id, dropping empty entries.
func CleanGenreIDs(raw []string) []string {
	pipeline := forms.New(forms.F(FieldGenre, forms.Trim(), forms.Escape()))

	var ids []string
	for _, r := range raw {
		values, _ := pipeline.Run(map[string]string{FieldGenre: r})
		if id := values.Get(FieldGenre); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// NewCandidate builds a not-yet-persisted book from cleaned values and the
// escaped genre selection.
func NewCandidate(v forms.Values, genreIDs []string) *Book {
	return &Book{
		Title:    v.Get(FieldTitle),
		AuthorID: v.Get(FieldAuthor),
		Summary:  v.Get(FieldSummary),
		ISBN:     v.Get(FieldISBN),
		GenreIDs: genreIDs,
	}
}
