// Package observability defines the Prometheus collectors for the service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the API and the
// upstream weather fetches.
type Metrics struct {
	APIRequests        *prometheus.CounterVec   // labels: method, route, status
	APIRequestDuration *prometheus.HistogramVec // labels: method, route

	UpstreamFetches     *prometheus.CounterVec // labels: source={forecast,archive}, outcome={success,error}
	HistoricalYearsUsed prometheus.Histogram   // surviving years per historical aggregation
}

// NewMetrics creates and registers all collectors with the given registerer.
// Pass prometheus.DefaultRegisterer in production; tests use a fresh registry
// to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "woodsmoke",
			Name:      "api_requests_total",
			Help:      "Total API requests served.",
		}, []string{"method", "route", "status"}),
		APIRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "woodsmoke",
			Name:      "api_request_duration_seconds",
			Help:      "API request latency.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
		UpstreamFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "woodsmoke",
			Name:      "upstream_fetches_total",
			Help:      "Upstream weather API fetch outcomes.",
		}, []string{"source", "outcome"}),
		HistoricalYearsUsed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "woodsmoke",
			Name:      "historical_years_used",
			Help:      "Number of archive years that contributed to an historical aggregation.",
			Buckets:   []float64{1, 2, 3, 4, 5},
		}),
	}

	reg.MustRegister(
		m.APIRequests,
		m.APIRequestDuration,
		m.UpstreamFetches,
		m.HistoricalYearsUsed,
	)
	return m
}
