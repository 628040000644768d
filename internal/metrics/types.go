package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds the Prometheus collectors of the API.
type Service struct {
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	StoreOperations    *prometheus.CounterVec
	StoreDuration      *prometheus.HistogramVec
	CircuitBreakerOpen *prometheus.GaugeVec
}
