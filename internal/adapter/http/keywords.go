package httpadapter

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"emerald-ads/internal/core/port"
)

type keywordInputRequest struct {
	Text string `json:"text"`
}

type addKeywordRequest struct {
	Keyword string `json:"keyword"`
}

func (h *Handler) handleKeywordInput(w http.ResponseWriter, r *http.Request) {
	var req keywordInputRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	h.withForm(w, r, func(id uuid.UUID) (*port.FormView, error) {
		return h.svc.KeywordInput(id, req.Text)
	})
}

// handleAddKeyword selects the keyword named in the body, or commits the
// typed input when the body is empty or names no keyword.
func (h *Handler) handleAddKeyword(w http.ResponseWriter, r *http.Request) {
	var req addKeywordRequest
	if err := decode(r, &req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	h.withForm(w, r, func(id uuid.UUID) (*port.FormView, error) {
		if req.Keyword == "" {
			return h.svc.AddKeyword(id)
		}
		return h.svc.SelectKeyword(id, req.Keyword)
	})
}

func (h *Handler) handleRemoveKeyword(w http.ResponseWriter, r *http.Request) {
	keyword := chi.URLParam(r, "keyword")
	if r.URL.RawPath != "" {
		// chi matched against the escaped path.
		if k, err := url.PathUnescape(keyword); err == nil {
			keyword = k
		}
	}
	h.withForm(w, r, func(id uuid.UUID) (*port.FormView, error) {
		return h.svc.RemoveKeyword(id, keyword)
	})
}
