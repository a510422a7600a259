// Package handlers wires the per-resource handler packages onto one
// chi router.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chris/check-ledger/pkg/handlers/dashboard"
	"github.com/chris/check-ledger/pkg/handlers/incoming"
	"github.com/chris/check-ledger/pkg/handlers/outgoing"
	custommiddleware "github.com/chris/check-ledger/pkg/middleware"
	"github.com/chris/check-ledger/pkg/notify"
	"github.com/chris/check-ledger/pkg/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the full API router.
func NewRouter(store storage.ApiStore, publisher notify.Publisher, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(custommiddleware.NewStructuredLogger(logger))

	outgoingHandler := outgoing.NewHandler(store, publisher)
	incomingHandler := incoming.NewHandler(store, publisher)
	dashboardHandler := dashboard.NewHandler(store)

	router.Route("/api/outgoing-checks", func(r chi.Router) {
		r.Get("/", outgoingHandler.List)
		r.Post("/", outgoingHandler.Create)
		r.Post("/physical", outgoingHandler.CreatePhysical)
		r.Post("/series", outgoingHandler.CreateSeries)
		r.Get("/stats", outgoingHandler.Stats)
		r.Get("/{id}", outgoingHandler.Get)
		r.Delete("/{id}", outgoingHandler.Delete)
		r.Put("/{id}/status", outgoingHandler.UpdateStatus)
		r.Post("/{id}/duplicate", outgoingHandler.Duplicate)
	})

	router.Route("/api/incoming-checks", func(r chi.Router) {
		r.Get("/", incomingHandler.List)
		r.Post("/", incomingHandler.Create)
		r.Post("/physical", incomingHandler.CreatePhysical)
		r.Post("/series", incomingHandler.CreateSeries)
		r.Get("/stats", incomingHandler.Stats)
		r.Get("/{id}", incomingHandler.Get)
		r.Put("/{id}/status", incomingHandler.UpdateStatus)
		r.Put("/{id}/deposit", incomingHandler.Deposit)
		r.Put("/{id}/schedule-deposit", incomingHandler.ScheduleDeposit)
		r.Delete("/{id}/cancel-scheduled-deposit", incomingHandler.CancelScheduledDeposit)
		r.Post("/{id}/invoice", incomingHandler.IssueInvoice)
	})

	router.Route("/api/dashboard", func(r chi.Router) {
		r.Get("/stats", dashboardHandler.Stats)
		r.Get("/recent-checks", dashboardHandler.RecentChecks)
		r.Get("/upcoming-due", dashboardHandler.UpcomingDue)
	})

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return router
}
