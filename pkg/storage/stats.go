package storage

import (
	"context"

	"github.com/chris/check-ledger/pkg/models"
)

// StatsReader defines the read-only aggregate queries behind the stats
// and dashboard endpoints.
type StatsReader interface {
	// OutgoingStats aggregates the outgoing ledger. today anchors the
	// due-this-week/month buckets.
	OutgoingStats(ctx context.Context, today models.Date) (*models.OutgoingStats, error)

	// IncomingStats aggregates the incoming ledger.
	IncomingStats(ctx context.Context) (*models.IncomingStats, error)

	// RecentChecks retrieves the most recently created checks across
	// both ledgers, newest first.
	RecentChecks(ctx context.Context, limit int) ([]models.RecentCheck, error)

	// UpcomingDue retrieves open checks from both ledgers due within
	// the given number of days from today, soonest first.
	UpcomingDue(ctx context.Context, today models.Date, days int) ([]models.UpcomingCheck, error)
}
