package ledger

import (
	"time"

	"github.com/chris/check-ledger/pkg/models"
)

// outgoingStatuses is the full status enum for the outgoing ledger.
// pending is the initial state; every other value is terminal in the
// normal flow, but re-transitioning is deliberately not blocked so a
// mis-click can be corrected (matching the system this replaces).
var outgoingStatuses = map[models.CheckStatus]bool{
	models.StatusPending:      true,
	models.StatusCleared:      true,
	models.StatusBounced:      true,
	models.StatusCancelled:    true,
	models.StatusInCollection: true,
	models.StatusExpired:      true,
}

// incomingStatuses is the full status enum for the incoming ledger.
// waiting_deposit is the initial state. expired is accepted as a manual
// value here but is normally derived at read time, see EffectiveStatus.
var incomingStatuses = map[models.CheckStatus]bool{
	models.StatusWaitingDeposit: true,
	models.StatusDeposited:      true,
	models.StatusCleared:        true,
	models.StatusBounced:        true,
	models.StatusEndorsed:       true,
	models.StatusExpired:        true,
	models.StatusCancelled:      true,
}

// InitialStatus returns the state newly created checks start in.
func InitialStatus(ledger models.Ledger) models.CheckStatus {
	if ledger == models.Outgoing {
		return models.StatusPending
	}
	return models.StatusWaitingDeposit
}

// ValidStatus reports whether status is part of the given ledger's enum.
func ValidStatus(ledger models.Ledger, status models.CheckStatus) bool {
	if ledger == models.Outgoing {
		return outgoingStatuses[status]
	}
	return incomingStatuses[status]
}

// Transition applies a status change to a check in place. It enforces
// the shared transition contract for both ledgers:
//   - the target status must belong to the check's ledger enum;
//   - cancelling requires a reason;
//   - physical checks are record-only and cannot be cancelled.
//
// On success the status and cancellation reason are set (the reason is
// cleared for non-cancel targets) and updated_at is stamped. For
// incoming checks, clearing stamps cleared_at.
func Transition(check *models.Check, status models.CheckStatus, reason string, now time.Time) error {
	if !ValidStatus(check.Ledger, status) {
		return Validationf("invalid status %q for %s checks", status, check.Ledger)
	}
	if status == models.StatusCancelled {
		if reason == "" {
			return Validationf("cancellation reason is required")
		}
		if check.IsPhysical {
			return StateConflictf("physical checks are tracking-only and cannot be cancelled")
		}
	}

	check.Status = status
	if status == models.StatusCancelled {
		check.CancellationReason = reason
	} else {
		check.CancellationReason = ""
	}
	if check.Ledger == models.Incoming && status == models.StatusCleared {
		check.ClearedAt = &now
	}
	check.UpdatedAt = now
	return nil
}

// CanDelete reports whether an outgoing check may be deleted. Deletion
// is only allowed while the check is still pending; everything else has
// already had an externally visible effect.
func CanDelete(check *models.Check) error {
	if check.Status != models.StatusPending {
		return StateConflictf("only pending checks can be deleted")
	}
	return nil
}

// CheckTemplate is the seed returned when duplicating a check. It
// carries only the fields worth copying into a new check form; no
// record is created.
type CheckTemplate struct {
	ContactId string
	Amount    models.Amount
	Notes     string
}

// DuplicateTemplate extracts a template from an existing check.
func DuplicateTemplate(check *models.Check) CheckTemplate {
	return CheckTemplate{
		ContactId: check.ContactId,
		Amount:    check.Amount,
		Notes:     check.Notes,
	}
}
