// Package mapping converts between the API wire models and the internal
// domain models.
package mapping

import (
	"github.com/chris/check-ledger/pkg/api"
	"github.com/chris/check-ledger/pkg/ledger"
	"github.com/chris/check-ledger/pkg/models"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ToApiDate converts a domain Date to its wire form.
func ToApiDate(d models.Date) openapi_types.Date {
	return openapi_types.Date{Time: d.Time()}
}

// ToDomainDate converts a wire date to its domain form.
func ToDomainDate(d openapi_types.Date) models.Date {
	return models.DateOf(d.Time)
}

// ToApiCheck converts a domain check, with its optional joined contact,
// to an API Check model. The wire status for incoming checks is the
// derived effective status; the stored one rides along unchanged.
func ToApiCheck(check *models.Check, contact *models.Contact, today models.Date) *api.Check {
	out := &api.Check{
		Id:                 check.Id,
		Type:               string(check.Ledger),
		CheckNumber:        check.CheckNumber,
		ContactId:          check.ContactId,
		CounterpartyName:   check.CounterpartyName,
		BankName:           check.BankName,
		BankBranch:         check.BankBranch,
		Amount:             check.Amount.String(),
		Currency:           check.Currency,
		DueDate:            ToApiDate(check.DueDate),
		Status:             string(check.Status),
		EffectiveStatus:    string(ledger.EffectiveStatus(check, today)),
		CancellationReason: check.CancellationReason,
		IsPhysical:         check.IsPhysical,
		IsSeries:           check.IsSeries,
		SeriesId:           check.SeriesId,
		SeriesNumber:       check.SeriesNumber,
		DepositedAt:        check.DepositedAt,
		ClearedAt:          check.ClearedAt,
		InvoiceNumber:      check.InvoiceNumber,
		InvoiceIssuedAt:    check.InvoiceIssuedAt,
		Notes:              check.Notes,
		CreatedAt:          check.CreatedAt,
		UpdatedAt:          check.UpdatedAt,
	}

	if !check.IssueDate.IsZero() {
		issue := ToApiDate(check.IssueDate)
		out.IssueDate = &issue
	}
	if check.DepositScheduledDate != nil {
		scheduled := ToApiDate(*check.DepositScheduledDate)
		out.DepositScheduledDate = &scheduled
	}
	if contact != nil {
		out.ContactName = contact.Name
		out.ContactPhone = contact.Phone
	}

	return out
}

// ToApiCheckWithContact converts a hydrated list row.
func ToApiCheckWithContact(row *models.CheckWithContact, today models.Date) *api.Check {
	return ToApiCheck(&row.Check, row.Contact, today)
}

// ToApiSeries converts a domain CheckSeries to an API CheckSeries model.
func ToApiSeries(series *models.CheckSeries) *api.CheckSeries {
	return &api.CheckSeries{
		Id:          series.Id,
		Type:        string(series.Ledger),
		ContactId:   series.ContactId,
		Amount:      series.Amount.String(),
		StartMonth:  ToApiDate(series.StartMonth),
		DayOfMonth:  series.DayOfMonth,
		TotalChecks: series.TotalChecks,
		Status:      string(series.Status),
		CreatedAt:   series.CreatedAt,
	}
}

// ToDomainNewCheck converts a digital check request to an unsaved domain
// check. Amount parsing failures surface as validation errors.
func ToDomainNewCheck(l models.Ledger, req *api.NewCheck) (*models.Check, error) {
	amount, err := models.AmountFromString(req.Amount)
	if err != nil {
		return nil, ledger.Validationf("invalid amount %q", req.Amount)
	}

	return &models.Check{
		Ledger:      l,
		CheckNumber: req.CheckNumber,
		ContactId:   req.ContactId,
		BankName:    req.BankName,
		BankBranch:  req.BankBranch,
		Amount:      amount,
		IssueDate:   ToDomainDate(req.IssueDate),
		DueDate:     ToDomainDate(req.DueDate),
		Status:      ledger.InitialStatus(l),
		Notes:       req.Notes,
	}, nil
}

// ToDomainNewPhysicalCheck converts a physical check request. Physical
// checks carry a free-text counterparty and no issue date.
func ToDomainNewPhysicalCheck(l models.Ledger, req *api.NewPhysicalCheck) (*models.Check, error) {
	amount, err := models.AmountFromString(req.Amount)
	if err != nil {
		return nil, ledger.Validationf("invalid amount %q", req.Amount)
	}

	return &models.Check{
		Ledger:           l,
		CheckNumber:      req.CheckNumber,
		CounterpartyName: req.CounterpartyName,
		BankName:         req.BankName,
		BankBranch:       req.BankBranch,
		Amount:           amount,
		DueDate:          ToDomainDate(req.DueDate),
		Status:           ledger.InitialStatus(l),
		IsPhysical:       true,
		Notes:            req.Notes,
	}, nil
}

// ToDomainNewSeries converts a series request to an unsaved domain
// series record.
func ToDomainNewSeries(l models.Ledger, req *api.NewCheckSeries) (*models.CheckSeries, error) {
	amount, err := models.AmountFromString(req.Amount)
	if err != nil {
		return nil, ledger.Validationf("invalid amount %q", req.Amount)
	}

	return &models.CheckSeries{
		Ledger:      l,
		ContactId:   req.ContactId,
		Amount:      amount,
		StartMonth:  ToDomainDate(req.StartMonth),
		DayOfMonth:  req.DayOfMonth,
		TotalChecks: req.TotalChecks,
		Status:      models.SeriesActive,
	}, nil
}

// ToApiCheckTemplate converts a duplication template.
func ToApiCheckTemplate(tmpl ledger.CheckTemplate) *api.CheckTemplate {
	return &api.CheckTemplate{
		ContactId: tmpl.ContactId,
		Amount:    tmpl.Amount.String(),
		Notes:     tmpl.Notes,
	}
}

// ToApiOutgoingStats converts the outgoing ledger summary.
func ToApiOutgoingStats(stats *models.OutgoingStats) *api.OutgoingStats {
	return &api.OutgoingStats{
		TotalChecks:   stats.TotalChecks,
		PendingCount:  stats.PendingCount,
		PendingAmount: stats.PendingAmount.String(),
		BouncedCount:  stats.BouncedCount,
		DueThisWeek:   stats.DueThisWeek,
		DueThisMonth:  stats.DueThisMonth,
	}
}

// ToApiIncomingStats converts the incoming ledger summary.
func ToApiIncomingStats(stats *models.IncomingStats) *api.IncomingStats {
	return &api.IncomingStats{
		WaitingDepositAmount: stats.WaitingDepositAmount.String(),
		WaitingDepositCount:  stats.WaitingDepositCount,
		DepositedCount:       stats.DepositedCount,
		ClearedCount:         stats.ClearedCount,
		BouncedCount:         stats.BouncedCount,
	}
}

// ToApiRecentCheck converts one dashboard recent-activity row.
func ToApiRecentCheck(row *models.RecentCheck) api.RecentCheck {
	return api.RecentCheck{
		Type:        string(row.Type),
		CheckNumber: row.CheckNumber,
		Amount:      row.Amount.String(),
		DueDate:     ToApiDate(row.DueDate),
		Status:      string(row.Status),
		ContactName: row.ContactName,
		CreatedAt:   row.CreatedAt,
	}
}

// ToApiUpcomingCheck converts one dashboard due-soon row.
func ToApiUpcomingCheck(row *models.UpcomingCheck) api.UpcomingCheck {
	return api.UpcomingCheck{
		Type:         string(row.Type),
		CheckNumber:  row.CheckNumber,
		Amount:       row.Amount.String(),
		DueDate:      ToApiDate(row.DueDate),
		Status:       string(row.Status),
		ContactName:  row.ContactName,
		ContactPhone: row.ContactPhone,
	}
}
