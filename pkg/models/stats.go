package models

import "time"

// OutgoingStats aggregates the outgoing ledger for the stats endpoints.
type OutgoingStats struct {
	TotalChecks   int    `json:"total_checks"`
	PendingCount  int    `json:"pending_count"`
	PendingAmount Amount `json:"pending_amount"`
	BouncedCount  int    `json:"bounced_count"`
	DueThisWeek   int    `json:"due_this_week"`
	DueThisMonth  int    `json:"due_this_month"`
}

// IncomingStats aggregates the incoming ledger for the stats endpoints.
type IncomingStats struct {
	WaitingDepositAmount Amount `json:"waiting_deposit_amount"`
	WaitingDepositCount  int    `json:"waiting_deposit_count"`
	DepositedCount       int    `json:"deposited_count"`
	ClearedCount         int    `json:"cleared_count"`
	BouncedCount         int    `json:"bounced_count"`
}

// DashboardStats combines both ledgers for the dashboard.
type DashboardStats struct {
	Outgoing OutgoingStats `json:"outgoing"`
	Incoming IncomingStats `json:"incoming"`
}

// RecentCheck is a cross-ledger row for the dashboard's recent list.
type RecentCheck struct {
	Type        Ledger      `json:"type"`
	CheckNumber string      `json:"check_number"`
	Amount      Amount      `json:"amount"`
	DueDate     Date        `json:"due_date"`
	Status      CheckStatus `json:"status"`
	ContactName string      `json:"contact_name"`
	CreatedAt   time.Time   `json:"created_at"`
}

// UpcomingCheck is a cross-ledger row for checks due soon.
type UpcomingCheck struct {
	Type         Ledger      `json:"type"`
	CheckNumber  string      `json:"check_number"`
	Amount       Amount      `json:"amount"`
	DueDate      Date        `json:"due_date"`
	Status       CheckStatus `json:"status"`
	ContactName  string      `json:"contact_name"`
	ContactPhone string      `json:"contact_phone"`
}

// CheckWithContact is a check joined with its counterparty directory
// entry. Contact is nil for physical checks, which carry their
// counterparty as free text on the check itself.
type CheckWithContact struct {
	Check
	Contact *Contact
}
