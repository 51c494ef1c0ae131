package author

import (
	"time"

	"github.com/google/uuid"
)

// Author is a catalog author document. The identifier is assigned by the
// document store and never stored in the document body itself.
type Author struct {
	ID uuid.UUID `json:"-"`

	FirstName  string `json:"first_name"`  // required, max 100 chars
	FamilyName string `json:"family_name"` // required, max 100 chars

	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
}

// mediumDate matches the medium date style used across the catalog views.
const mediumDate = "Jan 2, 2006"

// Name returns "family_name, first_name". When either part is missing it
// returns an empty string rather than a half-formed name.
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

// URL is the canonical detail path for this author.
func (a Author) URL() string {
	return "/catalog/author/" + a.ID.String()
}

// Lifespan formats "date_of_birth - date_of_death", leaving either side
// blank when the date is absent.
func (a Author) Lifespan() string {
	var birth, death string
	if a.DateOfBirth != nil {
		birth = a.DateOfBirth.UTC().Format(mediumDate)
	}
	if a.DateOfDeath != nil {
		death = a.DateOfDeath.UTC().Format(mediumDate)
	}
	return birth + " - " + death
}

// DateOfBirthISO returns the birth date as YYYY-MM-DD for date inputs,
// empty when absent.
func (a Author) DateOfBirthISO() string {
	if a.DateOfBirth == nil {
		return ""
	}
	return a.DateOfBirth.UTC().Format("2006-01-02")
}

// DateOfDeathISO returns the death date as YYYY-MM-DD, empty when absent.
func (a Author) DateOfDeathISO() string {
	if a.DateOfDeath == nil {
		return ""
	}
	return a.DateOfDeath.UTC().Format("2006-01-02")
}
