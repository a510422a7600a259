package ledger

import (
	"fmt"
	"time"

	"github.com/chris/check-ledger/pkg/models"
)

// Bounds for recurring series.
const (
	MinSeriesChecks = 2
	MaxSeriesChecks = 24
	MinDayOfMonth   = 1
	MaxDayOfMonth   = 31
)

// ValidateSeriesParams checks the user-supplied series parameters.
func ValidateSeriesParams(amount models.Amount, dayOfMonth, totalChecks int) error {
	if totalChecks < MinSeriesChecks || totalChecks > MaxSeriesChecks {
		return Validationf("number of checks must be between %d and %d", MinSeriesChecks, MaxSeriesChecks)
	}
	if dayOfMonth < MinDayOfMonth || dayOfMonth > MaxDayOfMonth {
		return Validationf("day of month must be between %d and %d", MinDayOfMonth, MaxDayOfMonth)
	}
	if !amount.Positive() {
		return Validationf("amount must be greater than 0")
	}
	return nil
}

// BuildSchedule computes the due dates of a series: one check per
// calendar month starting at startMonth's month, anchored on
// dayOfMonth. The anchor day is clamped to each month's actual length,
// so day 31 lands on Feb 28/29 and bounces back to the 31st in March.
// startMonth's own day-of-month is ignored; only its month matters.
func BuildSchedule(startMonth models.Date, dayOfMonth, totalChecks int) []models.Date {
	anchor := models.Date{Year: startMonth.Year, Month: startMonth.Month, Day: dayOfMonth}
	schedule := make([]models.Date, totalChecks)
	for i := range schedule {
		schedule[i] = anchor.AddMonthsClamped(i)
	}
	return schedule
}

// IncomingSeriesNumbers generates digits-only check numbers for an
// incoming series from a millisecond timestamp plus the ordinal. Unlike
// outgoing checks there is no pre-printed book to draw from; the
// payer's real numbers can be recorded in the notes if they matter.
func IncomingSeriesNumbers(now time.Time, totalChecks int) []string {
	base := now.UnixMilli()
	numbers := make([]string, totalChecks)
	for i := range numbers {
		numbers[i] = fmt.Sprintf("%d%02d", base, i+1)
	}
	return numbers
}

// BuildSeriesChecks materializes the child checks of a series. Every
// check shares the series' counterparty and amount; due dates and
// numbers are positional. issue_date is the creation day for all of
// them. Ids and timestamps are stamped by the store, which persists the
// result atomically with the series row.
func BuildSeriesChecks(series *models.CheckSeries, numbers []string, schedule []models.Date, bankName, notes string, now time.Time) []models.Check {
	today := models.DateOf(now)
	checks := make([]models.Check, 0, series.TotalChecks)
	for i := 0; i < series.TotalChecks; i++ {
		checks = append(checks, models.Check{
			Ledger:       series.Ledger,
			CheckNumber:  numbers[i],
			ContactId:    series.ContactId,
			BankName:     bankName,
			Amount:       series.Amount,
			Currency:     models.Currency,
			IssueDate:    today,
			DueDate:      schedule[i],
			Status:       InitialStatus(series.Ledger),
			IsSeries:     true,
			SeriesNumber: i + 1,
			Notes:        notes,
		})
	}
	return checks
}

// OutgoingSeriesNumbers draws totalChecks sequential numbers from the
// active check book, starting at its current number. The book must have
// enough numbers left before its printed range ends.
func OutgoingSeriesNumbers(book *models.CheckBook, totalChecks int) ([]string, error) {
	if book == nil || book.Status != models.BookActive {
		return nil, ErrNoActiveCheckBook
	}
	last := book.CurrentNumber + int64(totalChecks) - 1
	if last > book.EndNumber {
		return nil, ErrCheckBookExhausted
	}
	numbers := make([]string, totalChecks)
	for i := range numbers {
		numbers[i] = fmt.Sprintf("%d", book.CurrentNumber+int64(i))
	}
	return numbers, nil
}
