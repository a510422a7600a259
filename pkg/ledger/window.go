package ledger

import (
	"github.com/chris/check-ledger/pkg/models"
)

// DepositWindowMonths is how long an incoming check stays depositable
// after its due date. Both boundaries are inclusive: a check is
// depositable on the due date itself and on the exact six-month mark.
const DepositWindowMonths = 6

// DepositWindowEnd returns the last day on which a check with the given
// due date may be deposited.
func DepositWindowEnd(dueDate models.Date) models.Date {
	return dueDate.AddMonthsClamped(DepositWindowMonths)
}

// Depositable reports whether an incoming check may be deposited today.
// Physical checks are tracking-only and never depositable.
func Depositable(check *models.Check, today models.Date) bool {
	if check.IsPhysical {
		return false
	}
	if today.Before(check.DueDate) {
		return false
	}
	return !today.After(DepositWindowEnd(check.DueDate))
}

// WindowExpired reports whether today is past the deposit window.
func WindowExpired(dueDate models.Date, today models.Date) bool {
	return today.After(DepositWindowEnd(dueDate))
}

// DaysUntilDue returns how many whole days remain until the due date.
// Negative once the due date has passed. Advisory only.
func DaysUntilDue(dueDate models.Date, today models.Date) int {
	return today.DaysUntil(dueDate)
}

// EffectiveStatus computes the display status of a check. An incoming
// check still waiting for deposit past its window reads as expired
// without any stored status change; the persisted status stays
// authoritative for everything else. Outgoing checks are always
// reported as stored: their "expired" value is only ever set manually.
func EffectiveStatus(check *models.Check, today models.Date) models.CheckStatus {
	if check.Ledger == models.Incoming &&
		check.Status == models.StatusWaitingDeposit &&
		WindowExpired(check.DueDate, today) {
		return models.StatusExpired
	}
	return check.Status
}
