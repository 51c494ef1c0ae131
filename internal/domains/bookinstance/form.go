package bookinstance

import (
	"time"

	"locallibrary-backend/internal/shared/forms"
)

const (
	FieldBook    = "book"
	FieldImprint = "imprint"
	FieldStatus  = "status"
	FieldDueBack = "due_back"
)

// Form is the validation and sanitization pipeline for book instance
// submissions. Create and update share one policy: the book reference and
// the imprint are required, the status must be one of the enumerated values
// when submitted, the due date is optional but must be a calendar date when
// present.
func Form() *forms.Form {
	return forms.New(
		forms.F(FieldBook,
			forms.Trim(),
			forms.Required("Book must be specified"),
			forms.Escape(),
		),
		forms.F(FieldImprint,
			forms.Trim(),
			forms.Required("Imprint must be specified."),
			forms.Escape(),
		),
		forms.F(FieldStatus,
			forms.Escape(),
			forms.OneOf("Invalid status", statusValues()...),
		),
		forms.F(FieldDueBack,
			forms.OptionalISODate("Invalid date"),
		),
	)
}

func statusValues() []string {
	statuses := Statuses()
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return values
}

// NewCandidate builds a not-yet-persisted copy from cleaned form values.
// An absent status defaults to Maintenance; an absent due date defaults to
// the current time.
func NewCandidate(v forms.Values) *BookInstance {
	bi := &BookInstance{
		BookID:  v.Get(FieldBook),
		Imprint: v.Get(FieldImprint),
		Status:  Status(v.Get(FieldStatus)),
		DueBack: time.Now().UTC(),
	}

	if bi.Status == "" {
		bi.Status = StatusMaintenance
	}
	if t, ok := v.Date(FieldDueBack); ok {
		bi.DueBack = t
	}

	return bi
}
