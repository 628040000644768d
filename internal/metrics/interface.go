package metrics

import "time"

// Metrics records service measurements. Implementations must be safe for
// concurrent use.
type Metrics interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
	ObserveStoreOperation(operation, outcome string, duration time.Duration)
	SetCircuitState(name, state string)
}

// Store operation outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
	OutcomeCanceled = "canceled"
)

// Nop discards every measurement.
type Nop struct{}

var _ Metrics = Nop{}

func (Nop) ObserveHTTPRequest(string, string, int, time.Duration) {}
func (Nop) ObserveStoreOperation(string, string, time.Duration)   {}
func (Nop) SetCircuitState(string, string)                        {}
