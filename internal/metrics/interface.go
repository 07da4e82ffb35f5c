package metrics

// Metrics defines the interface for collecting application metrics.
// Handlers and services depend on it rather than on Prometheus directly.
type Metrics interface {
	IncCacheHit()
	IncCacheMiss()
	IncCacheInvalidation()
	IncPersistenceFailure(operation string)
	ObserveRequest(method, route string, status int, seconds float64)
}
