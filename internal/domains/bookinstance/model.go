package bookinstance

import (
	"time"

	"github.com/google/uuid"
)

// Status of a physical copy. Always one of the four enumerated values;
// an absent submission defaults to StatusMaintenance.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusMaintenance Status = "Maintenance"
	StatusLoaned      Status = "Loaned"
	StatusReserved    Status = "Reserved"
)

// Statuses lists the valid status values in display order.
func Statuses() []Status {
	return []Status{StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved}
}

// BookInstance is one physical copy of a book. The book reference is an
// identifier string: whether it resolves is a trust invariant maintained
// only by the form pipeline's non-emptiness check, never by the store.
type BookInstance struct {
	ID uuid.UUID `json:"-"`

	BookID  string    `json:"book_id"`
	Imprint string    `json:"imprint"`
	Status  Status    `json:"status"`
	DueBack time.Time `json:"due_back"`
}

const mediumDate = "Jan 2, 2006"

// URL is the canonical detail path for this copy.
func (bi BookInstance) URL() string {
	return "/catalog/bookinstance/" + bi.ID.String()
}

// DueBackFormatted renders the due date in medium date style, in UTC.
func (bi BookInstance) DueBackFormatted() string {
	return bi.DueBack.UTC().Format(mediumDate)
}

// DueBackISO renders the due date as YYYY-MM-DD in UTC, for date inputs.
func (bi BookInstance) DueBackISO() string {
	return bi.DueBack.UTC().Format("2006-01-02")
}
