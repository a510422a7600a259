package ledger

import (
	"testing"
	"time"

	"github.com/chris/check-ledger/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, models.StatusPending, InitialStatus(models.Outgoing))
	assert.Equal(t, models.StatusWaitingDeposit, InitialStatus(models.Incoming))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(models.Outgoing, models.StatusPending))
	assert.True(t, ValidStatus(models.Outgoing, models.StatusInCollection))
	assert.False(t, ValidStatus(models.Outgoing, models.StatusWaitingDeposit))
	assert.False(t, ValidStatus(models.Outgoing, models.StatusDeposited))

	assert.True(t, ValidStatus(models.Incoming, models.StatusWaitingDeposit))
	assert.True(t, ValidStatus(models.Incoming, models.StatusEndorsed))
	assert.False(t, ValidStatus(models.Incoming, models.StatusPending))
	assert.False(t, ValidStatus(models.Incoming, models.CheckStatus("paid")))
}

func TestTransition(t *testing.T) {
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		check := &models.Check{Ledger: models.Outgoing, Status: models.StatusPending}

		require.NoError(t, Transition(check, models.StatusCleared, "", now))
		assert.Equal(t, models.StatusCleared, check.Status)
		assert.Equal(t, now, check.UpdatedAt)
	})

	t.Run("Invalid Status For Ledger", func(t *testing.T) {
		check := &models.Check{Ledger: models.Outgoing, Status: models.StatusPending}

		err := Transition(check, models.StatusDeposited, "", now)
		var validation *ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, models.StatusPending, check.Status, "check untouched on failure")
	})

	t.Run("Cancel Requires Reason", func(t *testing.T) {
		check := &models.Check{Ledger: models.Outgoing, Status: models.StatusPending}

		err := Transition(check, models.StatusCancelled, "", now)
		var validation *ValidationError
		require.ErrorAs(t, err, &validation)
	})

	t.Run("Cancel With Reason", func(t *testing.T) {
		check := &models.Check{Ledger: models.Outgoing, Status: models.StatusPending}

		require.NoError(t, Transition(check, models.StatusCancelled, "payment dispute", now))
		assert.Equal(t, models.StatusCancelled, check.Status)
		assert.Equal(t, "payment dispute", check.CancellationReason)
	})

	t.Run("Cancel Physical Is A Conflict", func(t *testing.T) {
		check := &models.Check{Ledger: models.Incoming, Status: models.StatusWaitingDeposit, IsPhysical: true}

		err := Transition(check, models.StatusCancelled, "lost", now)
		var conflict *StateConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("Reason Cleared On Non Cancel", func(t *testing.T) {
		check := &models.Check{
			Ledger:             models.Outgoing,
			Status:             models.StatusCancelled,
			CancellationReason: "typo",
		}

		require.NoError(t, Transition(check, models.StatusPending, "", now))
		assert.Empty(t, check.CancellationReason)
	})

	t.Run("Incoming Cleared Stamps ClearedAt", func(t *testing.T) {
		check := &models.Check{Ledger: models.Incoming, Status: models.StatusDeposited}

		require.NoError(t, Transition(check, models.StatusCleared, "", now))
		require.NotNil(t, check.ClearedAt)
		assert.Equal(t, now, *check.ClearedAt)
	})

	t.Run("Outgoing Cleared Does Not Stamp ClearedAt", func(t *testing.T) {
		check := &models.Check{Ledger: models.Outgoing, Status: models.StatusPending}

		require.NoError(t, Transition(check, models.StatusCleared, "", now))
		assert.Nil(t, check.ClearedAt)
	})
}

func TestCanDelete(t *testing.T) {
	assert.NoError(t, CanDelete(&models.Check{Status: models.StatusPending}))

	err := CanDelete(&models.Check{Status: models.StatusCleared})
	var conflict *StateConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestDuplicateTemplate(t *testing.T) {
	amount, _ := models.AmountFromString("1200")
	check := &models.Check{
		Id:          "abc",
		CheckNumber: "100234",
		ContactId:   "contact-1",
		Amount:      amount,
		Notes:       "rent",
	}

	tmpl := DuplicateTemplate(check)

	assert.Equal(t, "contact-1", tmpl.ContactId)
	assert.Equal(t, amount, tmpl.Amount)
	assert.Equal(t, "rent", tmpl.Notes)
}
