package storage

import (
	"context"

	"github.com/chris/check-ledger/pkg/models"
)

// ContactReader defines read access to the counterparty directory.
// Contact management is a separate system; checks only resolve and
// display contacts.
type ContactReader interface {
	// GetContact retrieves a contact by id. Returns ledger.ErrNotFound
	// for unknown ids.
	GetContact(ctx context.Context, id string) (*models.Contact, error)
}
