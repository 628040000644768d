package metrics

import (
	"strconv"
	"sync"
	"time"
)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu              sync.Mutex
	httpRequests    map[string]int
	storeOperations map[string]int
	circuitStates   map[string]string
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		httpRequests:    make(map[string]int),
		storeOperations: make(map[string]int),
		circuitStates:   make(map[string]string),
	}
}

func (m *Mock) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.httpRequests[httpKey(method, route, status)]++
}

func (m *Mock) ObserveStoreOperation(operation, outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeOperations[operation+"/"+outcome]++
}

func (m *Mock) SetCircuitState(name, state string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.circuitStates[name] = state
}

// HTTPRequests returns how many requests were observed for the route and status.
func (m *Mock) HTTPRequests(method, route string, status int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.httpRequests[httpKey(method, route, status)]
}

// StoreOperations returns how many store operations ended with the outcome.
func (m *Mock) StoreOperations(operation, outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storeOperations[operation+"/"+outcome]
}

// CircuitState returns the last state reported for the breaker.
func (m *Mock) CircuitState(name string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.circuitStates[name]
}

func httpKey(method, route string, status int) string {
	return method + " " + route + " " + strconv.Itoa(status)
}
