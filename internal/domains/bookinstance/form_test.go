package bookinstance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_ValidSubmission(t *testing.T) {
	values, errs := Form().Run(map[string]string{
		FieldBook:    "3fa85f64-5717-4562-b3fc-2c963f66afa6",
		FieldImprint: " Gollancz, 2011 ",
		FieldStatus:  "Loaned",
		FieldDueBack: "2024-12-24",
	})

	require.False(t, errs.HasErrors())

	bi := NewCandidate(values)
	assert.Equal(t, "3fa85f64-5717-4562-b3fc-2c963f66afa6", bi.BookID)
	assert.Equal(t, "Gollancz, 2011", bi.Imprint)
	assert.Equal(t, StatusLoaned, bi.Status)
	assert.Equal(t, time.Date(2024, time.December, 24, 0, 0, 0, 0, time.UTC), bi.DueBack)
}

func TestForm_RequiredFields(t *testing.T) {
	_, errs := Form().Run(map[string]string{})

	assert.Equal(t, []string{"Book must be specified"}, errs.For(FieldBook))
	assert.Equal(t, []string{"Imprint must be specified."}, errs.For(FieldImprint))
	assert.Empty(t, errs.For(FieldStatus))
	assert.Empty(t, errs.For(FieldDueBack))
}

func TestForm_StatusMustBeEnumerated(t *testing.T) {
	base := map[string]string{
		FieldBook:    "some-book",
		FieldImprint: "Gollancz",
	}

	t.Run("unknown status is rejected", func(t *testing.T) {
		submission := map[string]string{FieldStatus: "Exploded"}
		for k, v := range base {
			submission[k] = v
		}

		_, errs := Form().Run(submission)

		assert.Equal(t, []string{"Invalid status"}, errs.For(FieldStatus))
	})

	t.Run("every enumerated status passes", func(t *testing.T) {
		for _, status := range Statuses() {
			submission := map[string]string{FieldStatus: string(status)}
			for k, v := range base {
				submission[k] = v
			}

			_, errs := Form().Run(submission)

			assert.Empty(t, errs.For(FieldStatus), string(status))
		}
	})

	t.Run("absent status stays valid and defaults", func(t *testing.T) {
		values, errs := Form().Run(base)

		require.False(t, errs.HasErrors())
		assert.Equal(t, StatusMaintenance, NewCandidate(values).Status)
	})
}

func TestForm_InvalidDueDate(t *testing.T) {
	_, errs := Form().Run(map[string]string{
		FieldBook:    "some-book",
		FieldImprint: "Gollancz",
		FieldDueBack: "24/12/2024",
	})

	assert.Equal(t, []string{"Invalid date"}, errs.For(FieldDueBack))
}

func TestNewCandidate_Defaults(t *testing.T) {
	values, errs := Form().Run(map[string]string{
		FieldBook:    "some-book",
		FieldImprint: "Gollancz",
	})
	require.False(t, errs.HasErrors())

	before := time.Now().UTC()
	bi := NewCandidate(values)
	after := time.Now().UTC()

	assert.Equal(t, StatusMaintenance, bi.Status)
	assert.False(t, bi.DueBack.Before(before))
	assert.False(t, bi.DueBack.After(after))
}
