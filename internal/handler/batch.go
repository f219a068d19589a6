package handler

import "net/http"

const (
	defaultBatchLimit = 20
	maxBatchLimit     = 100
	maxBatchPage      = 10000
)

// GET /items/similar/batch
func (h *Handler) GetBatchSimilar(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(r, "page", 1, 1, maxBatchPage)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid page parameter")
		return
	}
	limit, ok := queryInt(r, "limit", defaultBatchLimit, 1, maxBatchLimit)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
		return
	}

	result, err := h.service.GetBatchSimilar(r.Context(), page, limit)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}
