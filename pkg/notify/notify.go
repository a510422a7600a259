package notify

import (
	"context"
	"time"

	"github.com/chris/check-ledger/pkg/models"
)

// EventType classifies the notification events the service emits.
type EventType string

const (
	EventCheckCreated     EventType = "check_created"
	EventCheckDeposited   EventType = "check_deposited"
	EventDepositScheduled EventType = "deposit_scheduled"
	EventCheckBounced     EventType = "check_bounced"
	EventCheckCleared     EventType = "check_cleared"
	EventSeriesCreated    EventType = "series_created"
)

// Event is the message published for downstream alerting. The notifier
// turns it into an SMS for the contact's phone when one is known.
type Event struct {
	Type        EventType     `json:"type"`
	Ledger      models.Ledger `json:"ledger"`
	CheckId     string        `json:"check_id,omitempty"`
	SeriesId    string        `json:"series_id,omitempty"`
	CheckNumber string        `json:"check_number,omitempty"`
	Amount      models.Amount `json:"amount"`
	DueDate     models.Date   `json:"due_date,omitempty"`
	ContactName string        `json:"contact_name,omitempty"`
	Phone       string        `json:"phone,omitempty"`
	OccurredAt  time.Time     `json:"occurred_at"`
}

// Publisher defines the interface for a component that publishes
// notification events for asynchronous delivery.
type Publisher interface {
	// Publish enqueues an event. Implementations must not block the
	// request path beyond the enqueue itself.
	Publish(ctx context.Context, event *Event) error
}
