package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/actuallystonmai/nutriguide-service/internal/handler"
)

type Options struct {
	Logger             *zap.Logger
	AllowedOrigins     []string
	RateLimitPerMinute int
	// Gatherer backs /metrics; the route is omitted when nil.
	Gatherer prometheus.Gatherer
}

func Setup(h *handler.Handler, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	// Probes
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	// Routes
	r.Group(func(r chi.Router) {
		if opts.RateLimitPerMinute > 0 {
			r.Use(httprate.LimitByIP(opts.RateLimitPerMinute, time.Minute))
		}

		r.Get("/goals", h.ListGoals)
		r.Get("/items", h.ListItems)
		r.Get("/items/similar/batch", h.GetBatchSimilar)
		r.Get("/items/{item}/nutrition", h.GetNutrition)

		r.Post("/sessions", h.CreateSession)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Delete("/", h.DeleteSession)
			r.Get("/recommendations", h.CurrentPage)
			r.Post("/recommendations/goals", h.RecommendByGoals)
			r.Post("/recommendations/similar", h.RecommendSimilar)
			r.Post("/recommendations/next", h.NextPage)
		})

		r.Post("/classify", h.Classify)
	})

	return r
}
