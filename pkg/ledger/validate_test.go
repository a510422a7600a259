package ledger

import (
	"testing"
	"time"

	"github.com/chris/check-ledger/pkg/models"
	"github.com/stretchr/testify/assert"
)

func validDigitalCheck() *models.Check {
	amount, _ := models.AmountFromString("1000")
	return &models.Check{
		Ledger:      models.Outgoing,
		CheckNumber: "100234",
		ContactId:   "contact-1",
		Amount:      amount,
		IssueDate:   models.NewDate(2024, time.March, 1),
		DueDate:     models.NewDate(2024, time.April, 1),
	}
}

func TestValidCheckNumber(t *testing.T) {
	assert.True(t, ValidCheckNumber("100234"))
	assert.True(t, ValidCheckNumber("0"))
	assert.False(t, ValidCheckNumber(""))
	assert.False(t, ValidCheckNumber("100-234"))
	assert.False(t, ValidCheckNumber("10023a"))
	assert.False(t, ValidCheckNumber(" 100234"))
}

func TestValidateNewCheck(t *testing.T) {
	t.Run("Valid Digital", func(t *testing.T) {
		assert.NoError(t, ValidateNewCheck(validDigitalCheck()))
	})

	t.Run("Same Day Issue And Due", func(t *testing.T) {
		check := validDigitalCheck()
		check.DueDate = check.IssueDate
		assert.NoError(t, ValidateNewCheck(check))
	})

	t.Run("Missing Number", func(t *testing.T) {
		check := validDigitalCheck()
		check.CheckNumber = ""
		assert.Error(t, ValidateNewCheck(check))
	})

	t.Run("Non Numeric Number", func(t *testing.T) {
		check := validDigitalCheck()
		check.CheckNumber = "CHK-100"
		assert.Error(t, ValidateNewCheck(check))
	})

	t.Run("Non Positive Amount", func(t *testing.T) {
		check := validDigitalCheck()
		check.Amount, _ = models.AmountFromString("0")
		assert.Error(t, ValidateNewCheck(check))
	})

	t.Run("Missing Due Date", func(t *testing.T) {
		check := validDigitalCheck()
		check.DueDate = models.Date{}
		assert.Error(t, ValidateNewCheck(check))
	})

	t.Run("Missing Contact", func(t *testing.T) {
		check := validDigitalCheck()
		check.ContactId = ""
		assert.Error(t, ValidateNewCheck(check))
	})

	t.Run("Missing Issue Date", func(t *testing.T) {
		check := validDigitalCheck()
		check.IssueDate = models.Date{}
		assert.Error(t, ValidateNewCheck(check))
	})

	t.Run("Due Before Issue", func(t *testing.T) {
		check := validDigitalCheck()
		check.DueDate = models.NewDate(2024, time.February, 1)
		assert.Error(t, ValidateNewCheck(check))
	})

	t.Run("Digital With Free Text Counterparty", func(t *testing.T) {
		check := validDigitalCheck()
		check.CounterpartyName = "Someone"
		assert.Error(t, ValidateNewCheck(check))
	})

	t.Run("Valid Physical", func(t *testing.T) {
		check := validDigitalCheck()
		check.IsPhysical = true
		check.ContactId = ""
		check.CounterpartyName = "Mordechai Cohen"
		check.IssueDate = models.Date{} // physical checks don't need one
		assert.NoError(t, ValidateNewCheck(check))
	})

	t.Run("Physical Missing Counterparty", func(t *testing.T) {
		check := validDigitalCheck()
		check.IsPhysical = true
		check.ContactId = ""
		assert.Error(t, ValidateNewCheck(check))
	})

	t.Run("Physical With Contact", func(t *testing.T) {
		check := validDigitalCheck()
		check.IsPhysical = true
		check.CounterpartyName = "Mordechai Cohen"
		assert.Error(t, ValidateNewCheck(check))
	})
}
