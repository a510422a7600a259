// Package outgoing holds the HTTP handlers for the outgoing check ledger.
package outgoing

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/chris/check-ledger/pkg/api"
	"github.com/chris/check-ledger/pkg/handlers/render"
	"github.com/chris/check-ledger/pkg/ledger"
	"github.com/chris/check-ledger/pkg/mapping"
	"github.com/chris/check-ledger/pkg/models"
	"github.com/chris/check-ledger/pkg/notify"
	"github.com/chris/check-ledger/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// Handler holds the dependencies for outgoing-check handlers.
type Handler struct {
	Store     storage.ApiStore
	Publisher notify.Publisher
}

// NewHandler creates a new Handler.
func NewHandler(store storage.ApiStore, publisher notify.Publisher) *Handler {
	return &Handler{Store: store, Publisher: publisher}
}

// List handles GET /api/outgoing-checks.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		render.Error(w, err)
		return
	}

	rows, err := h.Store.ListChecks(r.Context(), models.Outgoing, filter)
	if err != nil {
		render.Error(w, err)
		return
	}

	today := models.Today()
	checks := make([]*api.Check, 0, len(rows))
	for i := range rows {
		checks = append(checks, mapping.ToApiCheckWithContact(&rows[i], today))
	}
	render.JSON(w, http.StatusOK, checks)
}

// Get handles GET /api/outgoing-checks/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	row, err := h.Store.GetCheck(r.Context(), models.Outgoing, chi.URLParam(r, "id"))
	if err != nil {
		render.Error(w, err)
		return
	}
	render.JSON(w, http.StatusOK, mapping.ToApiCheckWithContact(row, models.Today()))
}

// Create handles POST /api/outgoing-checks.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.NewCheck
	if err := decode(r, &req); err != nil {
		render.Error(w, err)
		return
	}

	check, err := mapping.ToDomainNewCheck(models.Outgoing, &req)
	if err != nil {
		render.Error(w, err)
		return
	}
	if err := ledger.ValidateNewCheck(check); err != nil {
		render.Error(w, err)
		return
	}

	contact, err := h.Store.GetContact(r.Context(), check.ContactId)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			render.Error(w, ledger.Validationf("unknown contact %q", check.ContactId))
		} else {
			render.Error(w, err)
		}
		return
	}

	if err := h.createCheck(w, r, check); err != nil {
		return
	}

	h.publish(r.Context(), notify.EventCheckCreated, check, contact)
	render.JSON(w, http.StatusCreated, mapping.ToApiCheck(check, contact, models.Today()))
}

// CreatePhysical handles POST /api/outgoing-checks/physical.
func (h *Handler) CreatePhysical(w http.ResponseWriter, r *http.Request) {
	var req api.NewPhysicalCheck
	if err := decode(r, &req); err != nil {
		render.Error(w, err)
		return
	}

	check, err := mapping.ToDomainNewPhysicalCheck(models.Outgoing, &req)
	if err != nil {
		render.Error(w, err)
		return
	}
	if err := ledger.ValidateNewCheck(check); err != nil {
		render.Error(w, err)
		return
	}

	if err := h.createCheck(w, r, check); err != nil {
		return
	}

	h.publish(r.Context(), notify.EventCheckCreated, check, nil)
	render.JSON(w, http.StatusCreated, mapping.ToApiCheck(check, nil, models.Today()))
}

// CreateSeries handles POST /api/outgoing-checks/series. The check
// numbers are drawn from the active check book and the whole series is
// persisted atomically, advancing the book in the same write.
func (h *Handler) CreateSeries(w http.ResponseWriter, r *http.Request) {
	var req api.NewCheckSeries
	if err := decode(r, &req); err != nil {
		render.Error(w, err)
		return
	}

	series, err := mapping.ToDomainNewSeries(models.Outgoing, &req)
	if err != nil {
		render.Error(w, err)
		return
	}
	if err := ledger.ValidateSeriesParams(series.Amount, series.DayOfMonth, series.TotalChecks); err != nil {
		render.Error(w, err)
		return
	}

	contact, err := h.Store.GetContact(r.Context(), series.ContactId)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			render.Error(w, ledger.Validationf("unknown contact %q", series.ContactId))
		} else {
			render.Error(w, err)
		}
		return
	}

	book, err := h.Store.GetActiveCheckBook(r.Context())
	if err != nil {
		render.Error(w, err)
		return
	}
	numbers, err := ledger.OutgoingSeriesNumbers(book, series.TotalChecks)
	if err != nil {
		render.Error(w, err)
		return
	}

	schedule := ledger.BuildSchedule(series.StartMonth, series.DayOfMonth, series.TotalChecks)
	checks := ledger.BuildSeriesChecks(series, numbers, schedule, req.BankName, req.Notes, time.Now())
	draw := &storage.CheckBookDraw{
		BookId:          book.Id,
		ExpectedCurrent: book.CurrentNumber,
		Count:           series.TotalChecks,
	}

	if err := h.Store.CreateSeries(r.Context(), series, checks, draw); err != nil {
		render.Error(w, err)
		return
	}

	h.publishSeries(r.Context(), series, contact)

	today := models.Today()
	result := api.SeriesResult{Series: *mapping.ToApiSeries(series)}
	for i := range checks {
		result.Checks = append(result.Checks, *mapping.ToApiCheck(&checks[i], contact, today))
	}
	render.JSON(w, http.StatusCreated, result)
}

// UpdateStatus handles PUT /api/outgoing-checks/{id}/status.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateStatus
	if err := decode(r, &req); err != nil {
		render.Error(w, err)
		return
	}

	row, err := h.Store.GetCheck(r.Context(), models.Outgoing, chi.URLParam(r, "id"))
	if err != nil {
		render.Error(w, err)
		return
	}

	expected := row.Check.Status
	if err := ledger.Transition(&row.Check, models.CheckStatus(req.Status), req.CancellationReason, time.Now()); err != nil {
		render.Error(w, err)
		return
	}
	if err := h.Store.TransitionCheck(r.Context(), &row.Check, expected); err != nil {
		render.Error(w, err)
		return
	}

	switch row.Check.Status {
	case models.StatusBounced:
		h.publish(r.Context(), notify.EventCheckBounced, &row.Check, row.Contact)
	case models.StatusCleared:
		h.publish(r.Context(), notify.EventCheckCleared, &row.Check, row.Contact)
	}

	render.JSON(w, http.StatusOK, mapping.ToApiCheckWithContact(row, models.Today()))
}

// Delete handles DELETE /api/outgoing-checks/{id}. Only pending checks
// can be deleted.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteCheck(r.Context(), models.Outgoing, chi.URLParam(r, "id")); err != nil {
		render.Error(w, err)
		return
	}
	render.Message(w, http.StatusOK, "check deleted")
}

// Duplicate handles POST /api/outgoing-checks/{id}/duplicate. It
// returns a prefill template; no record is created.
func (h *Handler) Duplicate(w http.ResponseWriter, r *http.Request) {
	row, err := h.Store.GetCheck(r.Context(), models.Outgoing, chi.URLParam(r, "id"))
	if err != nil {
		render.Error(w, err)
		return
	}
	render.JSON(w, http.StatusOK, mapping.ToApiCheckTemplate(ledger.DuplicateTemplate(&row.Check)))
}

// Stats handles GET /api/outgoing-checks/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Store.OutgoingStats(r.Context(), models.Today())
	if err != nil {
		render.Error(w, err)
		return
	}
	render.JSON(w, http.StatusOK, mapping.ToApiOutgoingStats(stats))
}

// createCheck runs the shared uniqueness pre-check and persists. On
// failure the response has already been written and a non-nil error is
// returned so the caller stops.
func (h *Handler) createCheck(w http.ResponseWriter, r *http.Request, check *models.Check) error {
	exists, err := h.Store.CheckNumberExists(r.Context(), check.Ledger, check.CheckNumber)
	if err != nil {
		render.Error(w, err)
		return err
	}
	if exists {
		render.Error(w, ledger.ErrDuplicateCheckNumber)
		return ledger.ErrDuplicateCheckNumber
	}
	if _, err := h.Store.CreateCheck(r.Context(), check); err != nil {
		render.Error(w, err)
		return err
	}
	return nil
}

func (h *Handler) publish(ctx context.Context, eventType notify.EventType, check *models.Check, contact *models.Contact) {
	event := &notify.Event{
		Type:        eventType,
		Ledger:      check.Ledger,
		CheckId:     check.Id,
		CheckNumber: check.CheckNumber,
		Amount:      check.Amount,
		DueDate:     check.DueDate,
		ContactName: check.CounterpartyName,
		OccurredAt:  time.Now(),
	}
	if contact != nil {
		event.ContactName = contact.Name
		event.Phone = contact.Phone
	}
	if err := h.Publisher.Publish(ctx, event); err != nil {
		log.Printf("ERROR: failed to publish %s event for check %s: %v", eventType, check.Id, err)
	}
}

func (h *Handler) publishSeries(ctx context.Context, series *models.CheckSeries, contact *models.Contact) {
	event := &notify.Event{
		Type:       notify.EventSeriesCreated,
		Ledger:     series.Ledger,
		SeriesId:   series.Id,
		Amount:     series.Amount,
		OccurredAt: time.Now(),
	}
	if contact != nil {
		event.ContactName = contact.Name
		event.Phone = contact.Phone
	}
	if err := h.Publisher.Publish(ctx, event); err != nil {
		log.Printf("ERROR: failed to publish series event for series %s: %v", series.Id, err)
	}
}

// decode reads and tag-validates a request body.
func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return ledger.Validationf("invalid request body: %v", err)
	}
	if err := api.Validate(v); err != nil {
		return ledger.Validationf("invalid request: %v", err)
	}
	return nil
}

// parseListFilter builds the listing filter from query parameters.
func parseListFilter(values url.Values) (storage.ListChecksFilter, error) {
	filter := storage.ListChecksFilter{
		Status:         models.CheckStatus(values.Get("status")),
		ContactId:      values.Get("contact_id"),
		NumberContains: values.Get("check_number"),
		Sort:           storage.SortKey(values.Get("sort")),
	}

	if raw := values.Get("due_from"); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			return filter, ledger.Validationf("invalid due_from %q", raw)
		}
		filter.DueFrom = &date
	}
	if raw := values.Get("due_to"); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			return filter, ledger.Validationf("invalid due_to %q", raw)
		}
		filter.DueTo = &date
	}
	if raw := values.Get("min_amount"); raw != "" {
		amount, err := models.AmountFromString(raw)
		if err != nil {
			return filter, ledger.Validationf("invalid min_amount %q", raw)
		}
		filter.MinAmount = &amount
	}
	if raw := values.Get("max_amount"); raw != "" {
		amount, err := models.AmountFromString(raw)
		if err != nil {
			return filter, ledger.Validationf("invalid max_amount %q", raw)
		}
		filter.MaxAmount = &amount
	}

	return filter, nil
}
