package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// POST /sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusCreated, h.service.CreateSession())
}

// DELETE /sessions/{sessionID}
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSession(chi.URLParam(r, "sessionID")); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
