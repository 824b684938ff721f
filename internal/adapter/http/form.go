package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"emerald-ads/internal/core/domain"
	"emerald-ads/internal/core/port"
)

type openFormRequest struct {
	UserID   int64            `json:"userId"`
	Campaign *domain.Campaign `json:"campaign,omitempty"`
}

type setFieldRequest struct {
	Name  domain.Field `json:"name"`
	Value string       `json:"value"`
}

type setTownRequest struct {
	Town string `json:"town"`
}

// withForm parses the {id} path parameter and hands it to next. An
// unparsable id answers 404, the same as an unknown form.
func (h *Handler) withForm(w http.ResponseWriter, r *http.Request, next func(uuid.UUID) (*port.FormView, error)) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, port.ErrFormNotFound, nil)
		return
	}
	view, err := next(id)
	if err != nil {
		h.writeError(w, err, view)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

// handleOpenForm mounts a form. A body without a campaign opens a create
// form; a campaign opens it for editing.
func (h *Handler) handleOpenForm(w http.ResponseWriter, r *http.Request) {
	var req openFormRequest
	if err := decode(r, &req); err != nil || req.UserID == 0 {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	view, err := h.svc.Open(r.Context(), req.UserID, req.Campaign)
	if err != nil {
		h.writeError(w, err, nil)
		return
	}
	h.writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) handleGetForm(w http.ResponseWriter, r *http.Request) {
	h.withForm(w, r, h.svc.Get)
}

func (h *Handler) handleCloseForm(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, port.ErrFormNotFound, nil)
		return
	}
	if err = h.svc.Close(id); err != nil {
		h.writeError(w, err, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSetField(w http.ResponseWriter, r *http.Request) {
	var req setFieldRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	h.withForm(w, r, func(id uuid.UUID) (*port.FormView, error) {
		return h.svc.SetField(id, req.Name, req.Value)
	})
}

func (h *Handler) handleSetTown(w http.ResponseWriter, r *http.Request) {
	var req setTownRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	h.withForm(w, r, func(id uuid.UUID) (*port.FormView, error) {
		return h.svc.SetTown(id, req.Town)
	})
}

func (h *Handler) handleDeselect(w http.ResponseWriter, r *http.Request) {
	h.withForm(w, r, h.svc.Deselect)
}

// handleSubmit runs the submit workflow. Validation failures answer 422,
// backend failures 502 and a concurrent submission 409; every response
// carries the settled form.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	h.withForm(w, r, func(id uuid.UUID) (*port.FormView, error) {
		return h.svc.Submit(r.Context(), id)
	})
}
