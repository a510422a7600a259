package ledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/chris/check-ledger/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSeriesParams(t *testing.T) {
	amount, _ := models.AmountFromString("500")

	assert.NoError(t, ValidateSeriesParams(amount, 15, 12))
	assert.NoError(t, ValidateSeriesParams(amount, 1, MinSeriesChecks))
	assert.NoError(t, ValidateSeriesParams(amount, 31, MaxSeriesChecks))

	assert.Error(t, ValidateSeriesParams(amount, 15, 1), "below minimum checks")
	assert.Error(t, ValidateSeriesParams(amount, 15, 25), "above maximum checks")
	assert.Error(t, ValidateSeriesParams(amount, 0, 12), "day below range")
	assert.Error(t, ValidateSeriesParams(amount, 32, 12), "day above range")

	zero, _ := models.AmountFromString("0")
	assert.Error(t, ValidateSeriesParams(zero, 15, 12), "amount must be positive")
}

func TestBuildSchedule(t *testing.T) {
	t.Run("Plain Months", func(t *testing.T) {
		schedule := BuildSchedule(models.NewDate(2024, time.March, 1), 10, 3)

		assert.Equal(t, []models.Date{
			models.NewDate(2024, time.March, 10),
			models.NewDate(2024, time.April, 10),
			models.NewDate(2024, time.May, 10),
		}, schedule)
	})

	t.Run("Day 31 Clamps And Bounces Back", func(t *testing.T) {
		schedule := BuildSchedule(models.NewDate(2024, time.January, 1), 31, 3)

		assert.Equal(t, []models.Date{
			models.NewDate(2024, time.January, 31),
			models.NewDate(2024, time.February, 29),
			models.NewDate(2024, time.March, 31),
		}, schedule)
	})

	t.Run("Start Month Day Ignored", func(t *testing.T) {
		a := BuildSchedule(models.NewDate(2024, time.June, 1), 20, 2)
		b := BuildSchedule(models.NewDate(2024, time.June, 28), 20, 2)
		assert.Equal(t, a, b)
	})

	t.Run("Crosses Year Boundary", func(t *testing.T) {
		schedule := BuildSchedule(models.NewDate(2024, time.November, 1), 15, 4)
		assert.Equal(t, models.NewDate(2025, time.February, 15), schedule[3])
	})
}

func TestIncomingSeriesNumbers(t *testing.T) {
	now := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	numbers := IncomingSeriesNumbers(now, 3)

	require.Len(t, numbers, 3)
	base := fmt.Sprintf("%d", now.UnixMilli())
	assert.Equal(t, base+"01", numbers[0])
	assert.Equal(t, base+"02", numbers[1])
	assert.Equal(t, base+"03", numbers[2])

	for _, n := range numbers {
		assert.True(t, ValidCheckNumber(n), "series numbers must be digits only")
	}
}

func TestOutgoingSeriesNumbers(t *testing.T) {
	book := &models.CheckBook{
		Id:            "book-1",
		StartNumber:   100001,
		EndNumber:     100050,
		CurrentNumber: 100010,
		Status:        models.BookActive,
	}

	t.Run("Sequential Draw", func(t *testing.T) {
		numbers, err := OutgoingSeriesNumbers(book, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"100010", "100011", "100012"}, numbers)
	})

	t.Run("Exact Remaining Fit", func(t *testing.T) {
		_, err := OutgoingSeriesNumbers(book, 41)
		assert.NoError(t, err)
	})

	t.Run("Exhausted", func(t *testing.T) {
		_, err := OutgoingSeriesNumbers(book, 42)
		assert.ErrorIs(t, err, ErrCheckBookExhausted)
	})

	t.Run("No Book", func(t *testing.T) {
		_, err := OutgoingSeriesNumbers(nil, 3)
		assert.ErrorIs(t, err, ErrNoActiveCheckBook)
	})

	t.Run("Inactive Book", func(t *testing.T) {
		inactive := *book
		inactive.Status = models.BookExhausted
		_, err := OutgoingSeriesNumbers(&inactive, 3)
		assert.ErrorIs(t, err, ErrNoActiveCheckBook)
	})
}

func TestBuildSeriesChecks(t *testing.T) {
	amount, _ := models.AmountFromString("800")
	series := &models.CheckSeries{
		Ledger:      models.Outgoing,
		ContactId:   "contact-1",
		Amount:      amount,
		StartMonth:  models.NewDate(2024, time.April, 1),
		DayOfMonth:  5,
		TotalChecks: 2,
	}
	numbers := []string{"100010", "100011"}
	schedule := BuildSchedule(series.StartMonth, series.DayOfMonth, series.TotalChecks)
	now := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)

	checks := BuildSeriesChecks(series, numbers, schedule, "Leumi", "office rent", now)

	require.Len(t, checks, 2)
	for i, check := range checks {
		assert.Equal(t, models.Outgoing, check.Ledger)
		assert.Equal(t, numbers[i], check.CheckNumber)
		assert.Equal(t, "contact-1", check.ContactId)
		assert.Equal(t, amount, check.Amount)
		assert.Equal(t, models.NewDate(2024, time.March, 20), check.IssueDate)
		assert.Equal(t, schedule[i], check.DueDate)
		assert.Equal(t, models.StatusPending, check.Status)
		assert.True(t, check.IsSeries)
		assert.Equal(t, i+1, check.SeriesNumber)
		assert.Equal(t, "Leumi", check.BankName)
		assert.Equal(t, "office rent", check.Notes)
	}
}
