package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"emerald-ads/internal/core/domain"
)

const (
	defaultReservationLimit = 100
	maxReservationLimit     = 1000
)

// handleListCampaigns returns the campaigns owned by the user_id query
// parameter, or all campaigns when it is omitted.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var userID int64
	if s := r.URL.Query().Get("user_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			http.Error(w, "invalid user_id", http.StatusBadRequest)
			return
		}
		userID = id
	}
	campaigns, err := h.svc.ListCampaigns(r.Context(), userID)
	if err != nil {
		h.writeError(w, err, nil)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// handlePutSession stores the signed-in user as the session collaborator
// would. The path id wins over any id in the body.
func (h *Handler) handlePutSession(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || id == 0 {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}
	var s domain.UserSession
	if err = decode(r, &s); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	s.ID = id
	if err = h.svc.PutSession(r.Context(), s); err != nil {
		h.writeError(w, err, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListReservations is the reconciler feed. It defaults to orphaned
// reservations.
func (h *Handler) handleListReservations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state := domain.ReservationOrphaned
	if s := q.Get("state"); s != "" {
		state = domain.ReservationState(s)
		if !state.Valid() {
			http.Error(w, "invalid state", http.StatusBadRequest)
			return
		}
	}
	limit := defaultReservationLimit
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > maxReservationLimit {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	rs, err := h.svc.ListReservations(r.Context(), state, limit)
	if err != nil {
		h.writeError(w, err, nil)
		return
	}
	h.writeJSON(w, http.StatusOK, rs)
}
