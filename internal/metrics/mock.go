package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	cacheHits           int
	cacheMisses         int
	cacheInvalidations  int
	persistenceFailures map[string]int
	requests            int
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		persistenceFailures: make(map[string]int),
	}
}

func (m *Mock) IncCacheHit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}

func (m *Mock) IncCacheMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMisses++
}

func (m *Mock) IncCacheInvalidation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheInvalidations++
}

func (m *Mock) IncPersistenceFailure(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.persistenceFailures[operation]++
}

func (m *Mock) ObserveRequest(method, route string, status int, seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests++
}

func (m *Mock) CacheHits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheHits
}

func (m *Mock) CacheMisses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheMisses
}

func (m *Mock) CacheInvalidations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheInvalidations
}

func (m *Mock) PersistenceFailures(operation string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.persistenceFailures[operation]
}

func (m *Mock) Requests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}
