package ledger

import (
	"time"

	"github.com/chris/check-ledger/pkg/models"
)

// Deposit marks an incoming check as deposited right now. The check
// must be waiting for deposit, must not be physical, and today must
// fall inside the deposit window. Before the due date and past the
// window are reported separately because the caller shows different
// guidance for each.
func Deposit(check *models.Check, today models.Date, now time.Time) error {
	if check.Status != models.StatusWaitingDeposit {
		return StateConflictf("only checks waiting for deposit can be deposited")
	}
	if check.IsPhysical {
		return StateConflictf("physical checks are tracking-only and cannot be deposited")
	}
	if today.Before(check.DueDate) {
		return Validationf("check cannot be deposited before its due date (%d days left)",
			DaysUntilDue(check.DueDate, today))
	}
	if WindowExpired(check.DueDate, today) {
		return Validationf("check expired: more than %d months have passed since the due date",
			DepositWindowMonths)
	}

	check.Status = models.StatusDeposited
	check.DepositedAt = &now
	check.DepositScheduledDate = nil
	check.UpdatedAt = now
	return nil
}

// ScheduleDeposit records a future deposit date on a check that is
// still waiting for deposit. The date is deliberately not validated
// against the deposit window: scheduling is advisory, and the actual
// deposit re-checks the window on the day it happens.
func ScheduleDeposit(check *models.Check, date models.Date, now time.Time) error {
	if check.Status != models.StatusWaitingDeposit {
		return StateConflictf("deposits can only be scheduled for checks waiting for deposit")
	}
	if date.IsZero() {
		return Validationf("deposit date is required")
	}
	check.DepositScheduledDate = &date
	check.UpdatedAt = now
	return nil
}

// CancelScheduledDeposit clears a previously scheduled deposit date.
// The check's status never changes.
func CancelScheduledDeposit(check *models.Check, now time.Time) {
	check.DepositScheduledDate = nil
	check.UpdatedAt = now
}

// IssueInvoice stamps an invoice number on an incoming check. Invoicing
// is intentionally unguarded by deposit status and allowed for physical
// checks; only cancelled checks are off limits, and those read as not
// found to match how the rest of the system treats them.
func IssueInvoice(check *models.Check, invoiceNumber string, now time.Time) error {
	if invoiceNumber == "" {
		return Validationf("invoice number is required")
	}
	if check.Status == models.StatusCancelled {
		return ErrNotFound
	}
	check.InvoiceNumber = invoiceNumber
	check.InvoiceIssuedAt = &now
	check.UpdatedAt = now
	return nil
}
