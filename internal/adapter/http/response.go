package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"emerald-ads/internal/core/domain"
	"emerald-ads/internal/core/port"
)

type errorResponse struct {
	Error string         `json:"error"`
	Stage string         `json:"stage,omitempty"`
	Form  *port.FormView `json:"form,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var (
		se *port.SubmitError
		be *port.BackendError
	)
	switch {
	case errors.Is(err, port.ErrFormNotFound), errors.Is(err, port.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, port.ErrSubmitInFlight), errors.Is(err, domain.ErrFinancialFieldLocked):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownField):
		return http.StatusBadRequest
	case errors.As(err, &se):
		if se.Stage == port.StageValidation {
			return http.StatusUnprocessableEntity
		}
		return http.StatusBadGateway
	case errors.As(err, &be):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// writeError reports err with the form view, when there is one, so the
// client can render the error map next to the message.
func (h *Handler) writeError(w http.ResponseWriter, err error, view *port.FormView) {
	status := statusFor(err)
	resp := errorResponse{Error: err.Error(), Form: view}
	var se *port.SubmitError
	if errors.As(err, &se) {
		resp.Error = se.Message
		resp.Stage = string(se.Stage)
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", slog.Int("status", status), slog.Any("error", err))
		if status == http.StatusInternalServerError {
			resp.Error = "internal error"
		}
	}
	h.writeJSON(w, status, resp)
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
