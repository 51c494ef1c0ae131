package author

import (
	"locallibrary-backend/internal/shared/forms"
)

// Form field names as submitted by the author create/update form.
const (
	FieldFirstName   = "first_name"
	FieldFamilyName  = "family_name"
	FieldDateOfBirth = "date_of_birth"
	FieldDateOfDeath = "date_of_death"
)

// Form is the validation and sanitization pipeline for author submissions.
// Order matters: each check operates on the output of the transformers
// before it.
func Form() *forms.Form {
	return forms.New(
		forms.F(FieldFirstName,
			forms.Trim(),
			forms.Required("First name must be specified."),
			forms.MaxLength(100, "First name must be at most 100 characters."),
			forms.Escape(),
			forms.Alphanumeric("First name must be alphanumeric characters only."),
		),
		forms.F(FieldFamilyName,
			forms.Trim(),
			forms.Required("Family name must be specified."),
			forms.MaxLength(100, "Family name must be at most 100 characters."),
			forms.Escape(),
			forms.Alphanumeric("Family name must be alphanumeric characters only."),
		),
		forms.F(FieldDateOfBirth,
			forms.OptionalISODate("Invalid date of birth"),
		),
		forms.F(FieldDateOfDeath,
			forms.OptionalISODate("Invalid date of death"),
		),
	)
}

// NewCandidate builds a not-yet-persisted author from cleaned form values.
// The candidate doubles as the object to persist on success and the values
// echoed back into the form on failure, so it always carries the escaped
// data, never the raw submission.
func NewCandidate(v forms.Values) *Author {
	a := &Author{
		FirstName:  v.Get(FieldFirstName),
		FamilyName: v.Get(FieldFamilyName),
	}

	if t, ok := v.Date(FieldDateOfBirth); ok {
		a.DateOfBirth = &t
	}
	if t, ok := v.Date(FieldDateOfDeath); ok {
		a.DateOfDeath = &t
	}

	return a
}
