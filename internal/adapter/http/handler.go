package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"emerald-ads/internal/core/port"
)

// Handler is the inbound HTTP adapter for the campaign form service. Routes
// are registered on a chi.Router under /api/v1.
type Handler struct {
	svc    port.FormUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.FormUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/forms", h.handleOpenForm)
		r.Route("/forms/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetForm)
			r.Delete("/", h.handleCloseForm)
			r.Patch("/fields", h.handleSetField)
			r.Put("/town", h.handleSetTown)
			r.Put("/keywords/input", h.handleKeywordInput)
			r.Post("/keywords", h.handleAddKeyword)
			r.Delete("/keywords/{keyword}", h.handleRemoveKeyword)
			r.Post("/submit", h.handleSubmit)
			r.Post("/deselect", h.handleDeselect)
		})
		r.Get("/campaigns", h.handleListCampaigns)
		r.Put("/sessions/{userID}", h.handlePutSession)
		r.Get("/reservations", h.handleListReservations)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
