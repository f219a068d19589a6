package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const readinessTimeout = 2 * time.Second

// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// GET /ready
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	status := http.StatusOK
	for _, c := range h.checks {
		if err := c.Ping(ctx); err != nil {
			h.logger.Warn("readiness check failed", zap.String("check", c.Name), zap.Error(err))
			resp.Checks[c.Name] = "unavailable"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[c.Name] = "ok"
	}
	h.writeJSON(w, status, resp)
}
