package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// POST /sessions/{sessionID}/recommendations/goals
func (h *Handler) RecommendByGoals(w http.ResponseWriter, r *http.Request) {
	var req GoalsRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.Goal == "" && req.Vector == nil {
		h.writeError(w, http.StatusBadRequest, "invalid_input", "Either goal or vector is required")
		return
	}

	page, err := h.service.RecommendByGoals(r.Context(), chi.URLParam(r, "sessionID"), req.Goal, req.Vector)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

// POST /sessions/{sessionID}/recommendations/similar
func (h *Handler) RecommendSimilar(w http.ResponseWriter, r *http.Request) {
	var req SimilarRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	page, err := h.service.RecommendSimilar(r.Context(), chi.URLParam(r, "sessionID"), req.Item)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

// GET /sessions/{sessionID}/recommendations
func (h *Handler) CurrentPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.CurrentPage(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

// POST /sessions/{sessionID}/recommendations/next
func (h *Handler) NextPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.NextPage(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}
