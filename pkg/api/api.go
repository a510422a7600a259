// Package api holds the wire types for the HTTP surface. Amounts
// travel as decimal strings and dates as YYYY-MM-DD.
package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Check is the wire representation of a check in either ledger.
type Check struct {
	Id                   string              `json:"id"`
	Type                 string              `json:"type"`
	CheckNumber          string              `json:"check_number"`
	ContactId            string              `json:"contact_id,omitempty"`
	ContactName          string              `json:"contact_name,omitempty"`
	ContactPhone         string              `json:"contact_phone,omitempty"`
	CounterpartyName     string              `json:"counterparty_name,omitempty"`
	BankName             string              `json:"bank_name,omitempty"`
	BankBranch           string              `json:"bank_branch,omitempty"`
	Amount               string              `json:"amount"`
	Currency             string              `json:"currency"`
	IssueDate            *openapi_types.Date `json:"issue_date,omitempty"`
	DueDate              openapi_types.Date  `json:"due_date"`
	Status               string              `json:"status"`
	EffectiveStatus      string              `json:"effective_status,omitempty"`
	CancellationReason   string              `json:"cancellation_reason,omitempty"`
	IsPhysical           bool                `json:"is_physical"`
	IsSeries             bool                `json:"is_series"`
	SeriesId             string              `json:"series_id,omitempty"`
	SeriesNumber         int                 `json:"series_number,omitempty"`
	DepositedAt          *time.Time          `json:"deposited_at,omitempty"`
	DepositScheduledDate *openapi_types.Date `json:"deposit_scheduled_date,omitempty"`
	ClearedAt            *time.Time          `json:"cleared_at,omitempty"`
	InvoiceNumber        string              `json:"invoice_number,omitempty"`
	InvoiceIssuedAt      *time.Time          `json:"invoice_issued_at,omitempty"`
	Notes                string              `json:"notes,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

// CheckSeries is the wire representation of a recurring series.
type CheckSeries struct {
	Id          string             `json:"id"`
	Type        string             `json:"type"`
	ContactId   string             `json:"contact_id,omitempty"`
	Amount      string             `json:"amount"`
	StartMonth  openapi_types.Date `json:"start_month"`
	DayOfMonth  int                `json:"day_of_month"`
	TotalChecks int                `json:"total_checks"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
}

// SeriesResult carries a created series together with its checks.
type SeriesResult struct {
	Series CheckSeries `json:"series"`
	Checks []Check     `json:"checks"`
}

// NewCheck is the request body for creating a digital check.
type NewCheck struct {
	CheckNumber string             `json:"check_number" validate:"required,numeric"`
	ContactId   string             `json:"contact_id" validate:"required"`
	BankName    string             `json:"bank_name"`
	BankBranch  string             `json:"bank_branch"`
	Amount      string             `json:"amount" validate:"required"`
	IssueDate   openapi_types.Date `json:"issue_date" validate:"required"`
	DueDate     openapi_types.Date `json:"due_date" validate:"required"`
	Notes       string             `json:"notes"`
}

// NewPhysicalCheck is the request body for registering a handwritten
// check. No contact link, just a free-text counterparty.
type NewPhysicalCheck struct {
	CheckNumber      string             `json:"check_number" validate:"required,numeric"`
	CounterpartyName string             `json:"counterparty_name" validate:"required"`
	BankName         string             `json:"bank_name"`
	BankBranch       string             `json:"bank_branch"`
	Amount           string             `json:"amount" validate:"required"`
	DueDate          openapi_types.Date `json:"due_date" validate:"required"`
	Notes            string             `json:"notes"`
}

// NewCheckSeries is the request body for generating a recurring series.
type NewCheckSeries struct {
	ContactId   string             `json:"contact_id" validate:"required"`
	Amount      string             `json:"amount" validate:"required"`
	StartMonth  openapi_types.Date `json:"start_month" validate:"required"`
	DayOfMonth  int                `json:"day_of_month" validate:"required,min=1,max=31"`
	TotalChecks int                `json:"total_checks" validate:"required,min=2,max=24"`
	BankName    string             `json:"bank_name"`
	Notes       string             `json:"notes"`
}

// UpdateStatus is the request body for a status transition.
type UpdateStatus struct {
	Status             string `json:"status" validate:"required"`
	CancellationReason string `json:"cancellation_reason"`
}

// ScheduleDeposit is the request body for scheduling a deposit date.
type ScheduleDeposit struct {
	ScheduledDate openapi_types.Date `json:"scheduled_date" validate:"required"`
}

// IssueInvoice is the request body for stamping an invoice.
type IssueInvoice struct {
	InvoiceNumber string `json:"invoice_number" validate:"required"`
}

// CheckTemplate is the prefill payload returned when duplicating a
// check. No record is created; the client seeds a new form with it.
type CheckTemplate struct {
	ContactId string `json:"contact_id"`
	Amount    string `json:"amount"`
	Notes     string `json:"notes,omitempty"`
}

// OutgoingStats is the outgoing ledger summary.
type OutgoingStats struct {
	TotalChecks   int    `json:"total_checks"`
	PendingCount  int    `json:"pending_count"`
	PendingAmount string `json:"pending_amount"`
	BouncedCount  int    `json:"bounced_count"`
	DueThisWeek   int    `json:"due_this_week"`
	DueThisMonth  int    `json:"due_this_month"`
}

// IncomingStats is the incoming ledger summary.
type IncomingStats struct {
	WaitingDepositAmount string `json:"waiting_deposit_amount"`
	WaitingDepositCount  int    `json:"waiting_deposit_count"`
	DepositedCount       int    `json:"deposited_count"`
	ClearedCount         int    `json:"cleared_count"`
	BouncedCount         int    `json:"bounced_count"`
}

// DashboardStats combines both ledger summaries.
type DashboardStats struct {
	Outgoing OutgoingStats `json:"outgoing"`
	Incoming IncomingStats `json:"incoming"`
}

// RecentCheck is one row of the dashboard recent-activity feed.
type RecentCheck struct {
	Type        string             `json:"type"`
	CheckNumber string             `json:"check_number"`
	Amount      string             `json:"amount"`
	DueDate     openapi_types.Date `json:"due_date"`
	Status      string             `json:"status"`
	ContactName string             `json:"contact_name,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// UpcomingCheck is one row of the dashboard due-soon feed.
type UpcomingCheck struct {
	Type         string             `json:"type"`
	CheckNumber  string             `json:"check_number"`
	Amount       string             `json:"amount"`
	DueDate      openapi_types.Date `json:"due_date"`
	Status       string             `json:"status"`
	ContactName  string             `json:"contact_name,omitempty"`
	ContactPhone string             `json:"contact_phone,omitempty"`
}

// Response is the success envelope every endpoint wraps its payload in.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

var validate = validator.New()

// Validate runs the struct tags of a request body.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
