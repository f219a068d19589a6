package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/actuallystonmai/nutriguide-service/internal/domain"
	"github.com/actuallystonmai/nutriguide-service/internal/service"
)

const defaultMaxUploadBytes = 8 << 20

// ReadinessCheck is one dependency probed by GET /ready.
type ReadinessCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

type Options struct {
	MaxUploadBytes int64
	Checks         []ReadinessCheck
}

type Handler struct {
	service        *service.Service
	validate       *validator.Validate
	logger         *zap.Logger
	maxUploadBytes int64
	checks         []ReadinessCheck
}

func NewHandler(svc *service.Service, logger *zap.Logger, opts Options) *Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = defaultMaxUploadBytes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		service:        svc,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		logger:         logger,
		maxUploadBytes: opts.MaxUploadBytes,
		checks:         opts.Checks,
	}
}

// write JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("encode response", zap.Int("status", status), zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"internal_error","message":"Response could not be encoded"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// writes JSON error response.
func (h *Handler) writeError(w http.ResponseWriter, status int, errCode, message string) {
	h.writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

// decodeBody reads a JSON request body into dst and runs struct validation.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Request body must be valid JSON")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_input", validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// writeServiceError maps service errors onto the API error taxonomy.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		h.writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, domain.ErrItemNotFound):
		h.writeError(w, http.StatusNotFound, "item_not_found", err.Error())
	case errors.Is(err, domain.ErrSessionNotFound):
		h.writeError(w, http.StatusNotFound, "session_not_found", "Session does not exist or has expired")
	case errors.Is(err, domain.ErrClassifierUnavailable):
		h.writeError(w, http.StatusServiceUnavailable, "classifier_unavailable",
			"Image classifier is temporarily unavailable")
	// Request timeout
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		h.writeError(w, http.StatusServiceUnavailable, "request_timeout",
			"Request timed out, please try again")
	default:
		h.logger.Error("unhandled service error", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}
