package author

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAuthor_Name(t *testing.T) {
	tests := []struct {
		name   string
		author Author
		want   string
	}{
		{
			name:   "both parts present",
			author: Author{FirstName: "Patrick", FamilyName: "Rothfuss"},
			want:   "Rothfuss, Patrick",
		},
		{
			name:   "missing first name",
			author: Author{FamilyName: "Rothfuss"},
			want:   "",
		},
		{
			name:   "missing family name",
			author: Author{FirstName: "Patrick"},
			want:   "",
		},
		{
			name:   "both missing",
			author: Author{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.author.Name())
		})
	}
}

func TestAuthor_URL(t *testing.T) {
	id := uuid.MustParse("3fa85f64-5717-4562-b3fc-2c963f66afa6")

	a := Author{ID: id}

	assert.Equal(t, "/catalog/author/3fa85f64-5717-4562-b3fc-2c963f66afa6", a.URL())
}

func TestAuthor_Lifespan(t *testing.T) {
	tests := []struct {
		name   string
		author Author
		want   string
	}{
		{
			name: "both dates",
			author: Author{
				DateOfBirth: date(1973, time.June, 6),
				DateOfDeath: date(2020, time.January, 15),
			},
			want: "Jun 6, 1973 - Jan 15, 2020",
		},
		{
			name:   "birth only",
			author: Author{DateOfBirth: date(1973, time.June, 6)},
			want:   "Jun 6, 1973 - ",
		},
		{
			name:   "death only",
			author: Author{DateOfDeath: date(2020, time.January, 15)},
			want:   " - Jan 15, 2020",
		},
		{
			name:   "no dates",
			author: Author{},
			want:   " - ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.author.Lifespan())
		})
	}
}

func TestAuthor_ISODates(t *testing.T) {
	a := Author{DateOfBirth: date(1973, time.June, 6)}

	assert.Equal(t, "1973-06-06", a.DateOfBirthISO())
	assert.Equal(t, "", a.DateOfDeathISO())
}
