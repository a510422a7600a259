package storage

import (
	"context"

	"github.com/chris/check-ledger/pkg/models"
)

// SortKey selects the ordering of a check listing.
type SortKey string

const (
	SortByDueDate   SortKey = "due_date"
	SortByAmount    SortKey = "amount"
	SortByCreatedAt SortKey = "created_at"
)

// ListChecksFilter narrows a check listing. Zero-valued fields are
// ignored. NumberContains is a substring match on the check number.
type ListChecksFilter struct {
	Status         models.CheckStatus
	ContactId      string
	DueFrom        *models.Date
	DueTo          *models.Date
	MinAmount      *models.Amount
	MaxAmount      *models.Amount
	NumberContains string
	Sort           SortKey
}

// CheckReader defines the interface for reading check data.
type CheckReader interface {
	// GetCheck retrieves a check by id, joined with its contact.
	GetCheck(ctx context.Context, ledger models.Ledger, id string) (*models.CheckWithContact, error)

	// ListChecks retrieves checks matching the filter, joined with
	// their contacts and sorted per the filter's sort key.
	ListChecks(ctx context.Context, ledger models.Ledger, filter ListChecksFilter) ([]models.CheckWithContact, error)

	// CheckNumberExists reports whether a check number is already taken
	// within a ledger. This is an optimistic fast path; the authoritative
	// guard is the conditional write inside CreateCheck.
	CheckNumberExists(ctx context.Context, ledger models.Ledger, number string) (bool, error)
}

// CheckManager defines the interface for creating and mutating checks.
type CheckManager interface {
	// CreateCheck persists a new check together with its number
	// reservation. Returns ledger.ErrDuplicateCheckNumber when the
	// number is already reserved in the same ledger.
	CreateCheck(ctx context.Context, check *models.Check) (*models.Check, error)

	// TransitionCheck persists an already-applied status change.
	// expected is the status the caller read before applying the
	// transition; the write fails with a state conflict if someone else
	// moved the check in between.
	TransitionCheck(ctx context.Context, check *models.Check, expected models.CheckStatus) error

	// DeleteCheck removes an outgoing check and frees its number.
	// Guarded: only pending checks can be deleted.
	DeleteCheck(ctx context.Context, ledger models.Ledger, id string) error
}

// CheckStore combines the reader and manager interfaces.
type CheckStore interface {
	CheckReader
	CheckManager
}
