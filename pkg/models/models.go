package models

import (
	"time"
)

// Ledger identifies which of the two check collections a record belongs to.
type Ledger string

const (
	Outgoing Ledger = "outgoing"
	Incoming Ledger = "incoming"
)

// CheckStatus defines the possible lifecycle states of a check.
// The two ledgers use disjoint subsets of these values; the valid set
// per ledger lives in the ledger package.
type CheckStatus string

const (
	// Outgoing statuses.
	StatusPending      CheckStatus = "pending"
	StatusInCollection CheckStatus = "in_collection"

	// Incoming statuses.
	StatusWaitingDeposit CheckStatus = "waiting_deposit"
	StatusDeposited      CheckStatus = "deposited"
	StatusEndorsed       CheckStatus = "endorsed"

	// Shared statuses.
	StatusCleared   CheckStatus = "cleared"
	StatusBounced   CheckStatus = "bounced"
	StatusCancelled CheckStatus = "cancelled"
	StatusExpired   CheckStatus = "expired"
)

// Currency is fixed for the whole system; checks in other currencies are out of scope.
const Currency = "ILS"

// Check represents the internal domain model for a single check in either ledger.
// It includes dynamodbav tags for marshalling.
type Check struct {
	Id          string `dynamodbav:"id"`
	Ledger      Ledger `dynamodbav:"ledger"`
	CheckNumber string `dynamodbav:"check_number"`

	// Exactly one of ContactId or CounterpartyName is set: digital checks
	// link a directory contact, physical checks carry free text.
	ContactId        string `dynamodbav:"contact_id,omitempty"`
	CounterpartyName string `dynamodbav:"counterparty_name,omitempty"`
	BankName         string `dynamodbav:"bank_name,omitempty"`
	BankBranch       string `dynamodbav:"bank_branch,omitempty"`

	Amount   Amount `dynamodbav:"amount"`
	Currency string `dynamodbav:"currency"`

	IssueDate Date `dynamodbav:"issue_date"`
	DueDate   Date `dynamodbav:"due_date"`

	Status             CheckStatus `dynamodbav:"status"`
	CancellationReason string      `dynamodbav:"cancellation_reason,omitempty"`

	IsPhysical bool `dynamodbav:"is_physical"`

	IsSeries     bool   `dynamodbav:"is_series"`
	SeriesId     string `dynamodbav:"series_id,omitempty"`
	SeriesNumber int    `dynamodbav:"series_number,omitempty"`

	// Incoming-only lifecycle stamps.
	DepositedAt          *time.Time `dynamodbav:"deposited_at,omitempty"`
	DepositScheduledDate *Date      `dynamodbav:"deposit_scheduled_date,omitempty"`
	ClearedAt            *time.Time `dynamodbav:"cleared_at,omitempty"`
	InvoiceNumber        string     `dynamodbav:"invoice_number,omitempty"`
	InvoiceIssuedAt      *time.Time `dynamodbav:"invoice_issued_at,omitempty"`

	Notes     string    `dynamodbav:"notes,omitempty"`
	CreatedAt time.Time `dynamodbav:"created_at"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

// SeriesStatus defines the possible states of a check series.
type SeriesStatus string

const (
	SeriesActive    SeriesStatus = "active"
	SeriesCompleted SeriesStatus = "completed"
	SeriesCancelled SeriesStatus = "cancelled"
)

// CheckSeries represents a recurring group of checks generated together,
// one per month, sharing counterparty, amount and anchor day.
type CheckSeries struct {
	Id              string       `dynamodbav:"id"`
	Ledger          Ledger       `dynamodbav:"ledger"`
	ContactId       string       `dynamodbav:"contact_id"`
	Amount          Amount       `dynamodbav:"amount"`
	StartMonth      Date         `dynamodbav:"start_month"`
	DayOfMonth      int          `dynamodbav:"day_of_month"`
	TotalChecks     int          `dynamodbav:"total_checks"`
	CompletedChecks int          `dynamodbav:"completed_checks"`
	Status          SeriesStatus `dynamodbav:"status"`
	CreatedAt       time.Time    `dynamodbav:"created_at"`
	UpdatedAt       time.Time    `dynamodbav:"updated_at"`
}

// CheckBookStatus defines the possible states of a check book.
type CheckBookStatus string

const (
	BookActive    CheckBookStatus = "active"
	BookExhausted CheckBookStatus = "exhausted"
	BookCancelled CheckBookStatus = "cancelled"
)

// CheckBook is a numbered block of pre-printed outgoing check numbers.
// Outgoing series draw sequential numbers from the active book.
type CheckBook struct {
	Id            string          `dynamodbav:"id"`
	BookName      string          `dynamodbav:"book_name"`
	StartNumber   int64           `dynamodbav:"start_number"`
	EndNumber     int64           `dynamodbav:"end_number"`
	CurrentNumber int64           `dynamodbav:"current_number"`
	TotalChecks   int             `dynamodbav:"total_checks"`
	UsedChecks    int             `dynamodbav:"used_checks"`
	Status        CheckBookStatus `dynamodbav:"status"`
	CreatedAt     time.Time       `dynamodbav:"created_at"`
	UpdatedAt     time.Time       `dynamodbav:"updated_at"`
}

// Contact is a counterparty directory entry. Contact management lives
// elsewhere; this system only reads contacts to resolve and display
// counterparty details.
type Contact struct {
	Id            string    `dynamodbav:"id"`
	Name          string    `dynamodbav:"name"`
	IdNumber      string    `dynamodbav:"id_number,omitempty"`
	Phone         string    `dynamodbav:"phone,omitempty"`
	Email         string    `dynamodbav:"email,omitempty"`
	BankName      string    `dynamodbav:"bank_name,omitempty"`
	BankBranch    string    `dynamodbav:"bank_branch,omitempty"`
	AccountNumber string    `dynamodbav:"account_number,omitempty"`
	IsActive      bool      `dynamodbav:"is_active"`
	CreatedAt     time.Time `dynamodbav:"created_at"`
}

// NumberReservation is the uniqueness guard for check numbers. One item
// exists per (ledger, check_number); writing it with a not-exists
// condition in the same transaction as the check makes the store the
// authoritative duplicate check rather than the read-before-write fast path.
type NumberReservation struct {
	Key     string `dynamodbav:"number_key"`
	CheckId string `dynamodbav:"check_id"`
}

// NumberKey builds the reservation key for a check number within a ledger.
func NumberKey(ledger Ledger, checkNumber string) string {
	return string(ledger) + "#" + checkNumber
}
