package storage

import (
	"context"

	"github.com/chris/check-ledger/pkg/models"
)

// DepositManager defines the incoming-ledger deposit operations. Each
// write carries a status condition so concurrent conflicting updates
// fail cleanly instead of clobbering each other.
type DepositManager interface {
	// DepositCheck persists an immediate deposit: status, deposited_at
	// and the cleared schedule. Fails with a state conflict unless the
	// stored check is still waiting for deposit.
	DepositCheck(ctx context.Context, check *models.Check) error

	// ScheduleDeposit persists the deposit_scheduled_date. Fails with a
	// state conflict unless the stored check is still waiting for deposit.
	ScheduleDeposit(ctx context.Context, check *models.Check) error

	// CancelScheduledDeposit removes the deposit_scheduled_date without
	// touching the status.
	CancelScheduledDeposit(ctx context.Context, check *models.Check) error

	// IssueInvoice persists the invoice number and issue timestamp.
	// Fails with not-found if the stored check is cancelled.
	IssueInvoice(ctx context.Context, check *models.Check) error
}
