package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds the Prometheus collectors of the players API.
type Service struct {
	CacheHits           prometheus.Counter
	CacheMisses         prometheus.Counter
	CacheInvalidations  prometheus.Counter
	PersistenceFailures *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
}
