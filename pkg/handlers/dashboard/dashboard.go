// Package dashboard holds the HTTP handlers for the cross-ledger
// dashboard feeds.
package dashboard

import (
	"net/http"
	"strconv"

	"github.com/chris/check-ledger/pkg/api"
	"github.com/chris/check-ledger/pkg/handlers/render"
	"github.com/chris/check-ledger/pkg/mapping"
	"github.com/chris/check-ledger/pkg/models"
	"github.com/chris/check-ledger/pkg/storage"
)

// Defaults for the dashboard feeds.
const (
	defaultRecentLimit  = 10
	defaultUpcomingDays = 7
)

// Handler holds the dependencies for dashboard handlers.
type Handler struct {
	Store storage.StatsReader
}

// NewHandler creates a new Handler.
func NewHandler(store storage.StatsReader) *Handler {
	return &Handler{Store: store}
}

// Stats handles GET /api/dashboard/stats, combining both ledger summaries.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	outgoing, err := h.Store.OutgoingStats(r.Context(), models.Today())
	if err != nil {
		render.Error(w, err)
		return
	}
	incoming, err := h.Store.IncomingStats(r.Context())
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, http.StatusOK, api.DashboardStats{
		Outgoing: *mapping.ToApiOutgoingStats(outgoing),
		Incoming: *mapping.ToApiIncomingStats(incoming),
	})
}

// RecentChecks handles GET /api/dashboard/recent-checks.
func (h *Handler) RecentChecks(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", defaultRecentLimit)

	rows, err := h.Store.RecentChecks(r.Context(), limit)
	if err != nil {
		render.Error(w, err)
		return
	}

	recent := make([]api.RecentCheck, 0, len(rows))
	for i := range rows {
		recent = append(recent, mapping.ToApiRecentCheck(&rows[i]))
	}
	render.JSON(w, http.StatusOK, recent)
}

// UpcomingDue handles GET /api/dashboard/upcoming-due.
func (h *Handler) UpcomingDue(w http.ResponseWriter, r *http.Request) {
	days := intQuery(r, "days", defaultUpcomingDays)

	rows, err := h.Store.UpcomingDue(r.Context(), models.Today(), days)
	if err != nil {
		render.Error(w, err)
		return
	}

	upcoming := make([]api.UpcomingCheck, 0, len(rows))
	for i := range rows {
		upcoming = append(upcoming, mapping.ToApiUpcomingCheck(&rows[i]))
	}
	render.JSON(w, http.StatusOK, upcoming)
}

func intQuery(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
