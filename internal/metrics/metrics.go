package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the service's Prometheus metrics. Each Collector registers
// on its own registerer so tests can build fresh instances.
type Collector struct {
	recommendations   *prometheus.CounterVec
	recommendDuration *prometheus.HistogramVec
	cacheLookups      *prometheus.CounterVec
	classifications   *prometheus.CounterVec
	nutritionLookups  *prometheus.CounterVec
	activeSessions    prometheus.GaugeFunc
}

// New registers the collectors on reg. sessions reports the live session count.
func New(reg prometheus.Registerer, sessions func() int) *Collector {
	c := &Collector{
		recommendations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nutriguide_recommendations_total",
				Help: "Recommendation requests by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		recommendDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nutriguide_recommendation_duration_seconds",
				Help:    "Time spent ranking recommendations",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"mode"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nutriguide_cache_lookups_total",
				Help: "Recommendation cache lookups by result",
			},
			[]string{"result"},
		),
		classifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nutriguide_classifications_total",
				Help: "Image classification requests by outcome",
			},
			[]string{"outcome"},
		),
		nutritionLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nutriguide_nutrition_lookups_total",
				Help: "Nutrition table lookups by result",
			},
			[]string{"result"},
		),
	}
	if sessions == nil {
		sessions = func() int { return 0 }
	}
	c.activeSessions = prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "nutriguide_active_sessions",
			Help: "Sessions currently held in memory",
		},
		func() float64 { return float64(sessions()) },
	)

	reg.MustRegister(
		c.recommendations,
		c.recommendDuration,
		c.cacheLookups,
		c.classifications,
		c.nutritionLookups,
		c.activeSessions,
	)
	return c
}

func (c *Collector) ObserveRecommendation(mode, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.recommendations.WithLabelValues(mode, outcome).Inc()
	c.recommendDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

func (c *Collector) CacheLookup(hit bool) {
	if c == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	c.cacheLookups.WithLabelValues(result).Inc()
}

func (c *Collector) Classification(outcome string) {
	if c == nil {
		return
	}
	c.classifications.WithLabelValues(outcome).Inc()
}

func (c *Collector) NutritionLookup(found bool) {
	if c == nil {
		return
	}
	result := "not_found"
	if found {
		result = "found"
	}
	c.nutritionLookups.WithLabelValues(result).Inc()
}
