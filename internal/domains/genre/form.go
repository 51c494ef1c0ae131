package genre

import (
	"locallibrary-backend/internal/shared/forms"
)

const FieldName = "name"

// Form validates and sanitizes a genre submission.
func Form() *forms.Form {
	return forms.New(
		forms.F(FieldName,
			forms.Trim(),
			forms.MinLength(3, "Genre name must contain at least 3 characters"),
			forms.Escape(),
		),
	)
}

// NewCandidate builds a not-yet-persisted genre from cleaned form values.
func NewCandidate(v forms.Values) *Genre {
	return &Genre{
		Name: v.Get(FieldName),
	}
}
