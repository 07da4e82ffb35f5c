package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "players_cache_hits_total",
			Help: "The total number of collection reads served from the response cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "players_cache_misses_total",
			Help: "The total number of collection reads that went to the store.",
		}),
		CacheInvalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "players_cache_invalidations_total",
			Help: "The total number of times the response cache was cleared after a write.",
		}),
		PersistenceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "players_persistence_failures_total",
			Help: "The total number of storage errors, by operation.",
		}, []string{"operation"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "players_http_request_duration_seconds",
			Help:    "The duration of HTTP requests.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		s.CacheHits,
		s.CacheMisses,
		s.CacheInvalidations,
		s.PersistenceFailures,
		s.RequestDuration,
	)

	return s
}

func (s *Service) IncCacheHit() {
	s.CacheHits.Inc()
}

func (s *Service) IncCacheMiss() {
	s.CacheMisses.Inc()
}

func (s *Service) IncCacheInvalidation() {
	s.CacheInvalidations.Inc()
}

func (s *Service) IncPersistenceFailure(operation string) {
	s.PersistenceFailures.WithLabelValues(operation).Inc()
}

func (s *Service) ObserveRequest(method, route string, status int, seconds float64) {
	s.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}
