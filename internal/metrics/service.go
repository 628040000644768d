package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

var durationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

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
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fpl_http_requests_total",
			Help: "The total number of HTTP requests served, by route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fpl_http_request_duration_seconds",
			Help:    "The duration of HTTP requests.",
			Buckets: durationBuckets,
		}, []string{"method", "route"}),
		StoreOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fpl_store_operations_total",
			Help: "The total number of player store operations, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		StoreDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fpl_store_operation_duration_seconds",
			Help:    "The duration of player store operations.",
			Buckets: durationBuckets,
		}, []string{"operation"}),
		CircuitBreakerOpen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fpl_circuit_breaker_open",
			Help: "1 while the named circuit breaker rejects calls, 0 otherwise.",
		}, []string{"name"}),
	}

	reg.MustRegister(
		s.HTTPRequests,
		s.HTTPDuration,
		s.StoreOperations,
		s.StoreDuration,
		s.CircuitBreakerOpen,
	)

	return s
}

func (s *Service) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	s.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	s.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (s *Service) ObserveStoreOperation(operation, outcome string, duration time.Duration) {
	s.StoreOperations.WithLabelValues(operation, outcome).Inc()
	s.StoreDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (s *Service) SetCircuitState(name, state string) {
	open := 0.0
	if state == "open" {
		open = 1
	}
	s.CircuitBreakerOpen.WithLabelValues(name).Set(open)
}
