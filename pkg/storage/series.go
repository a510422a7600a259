package storage

import (
	"context"

	"github.com/chris/check-ledger/pkg/models"
)

// CheckBookDraw describes the numbers an outgoing series takes from a
// check book. ExpectedCurrent is the current_number the caller read;
// the store applies the draw with a compare-and-set on it so two
// concurrent series can never be issued overlapping numbers.
type CheckBookDraw struct {
	BookId          string
	ExpectedCurrent int64
	Count           int
}

// SeriesManager defines the interface for generating check series.
type SeriesManager interface {
	// CreateSeries persists the series row, all generated child checks
	// and their number reservations in one transaction, advancing the
	// check book when draw is non-nil. All-or-nothing: on error nothing
	// was written.
	CreateSeries(ctx context.Context, series *models.CheckSeries, checks []models.Check, draw *CheckBookDraw) error
}

// CheckBookReader defines the interface for reading check books.
type CheckBookReader interface {
	// GetActiveCheckBook retrieves the check book outgoing series draw
	// numbers from. Returns ledger.ErrNoActiveCheckBook when none exists.
	GetActiveCheckBook(ctx context.Context) (*models.CheckBook, error)
}
