// Package metrics owns the Prometheus registry of the service and the
// collectors for HTTP traffic and batch assignment outcomes.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics groups every collector registered on a dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	// HTTPRequests counts requests by method, route and status
	HTTPRequests *prometheus.CounterVec
	// HTTPDuration records request durations in seconds
	HTTPDuration *prometheus.HistogramVec

	batches        prometheus.Counter
	batchFailures  *prometheus.CounterVec
	ordersByResult *prometheus.CounterVec
	batchDuration  prometheus.Histogram
	committed      *prometheus.CounterVec
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		batches: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "assignment_batches_total", Help: "Batch assignments that ran to completion."},
		),
		batchFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "assignment_batch_failures_total", Help: "Batch assignments that did not run, by reason."},
			[]string{"reason"},
		),
		ordersByResult: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "assignment_orders_total", Help: "Orders processed by batch assignments, by result."},
			[]string{"result"},
		),
		committed: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "storage_committed_writes_total", Help: "Aggregate writes made durable by a commit, by aggregate kind."},
			[]string{"aggregate"},
		),
		batchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "assignment_batch_duration_seconds",
				Help:    "Duration of a batch assignment in seconds.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	m.registry.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.batches,
		m.batchFailures,
		m.ordersByResult,
		m.batchDuration,
		m.committed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the registry to expose, e.g. through promhttp.HandlerFor.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.HTTPRequests.WithLabelValues(method, path, code).Inc()
	m.HTTPDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

// ObserveBatch records a completed batch.
func (m *Metrics) ObserveBatch(assigned, rejected int, duration time.Duration) {
	m.batches.Inc()
	m.ordersByResult.WithLabelValues("assigned").Add(float64(assigned))
	m.ordersByResult.WithLabelValues("rejected").Add(float64(rejected))
	m.batchDuration.Observe(duration.Seconds())
}

// ObserveFailure records a batch that stopped before assigning anything.
func (m *Metrics) ObserveFailure(reason string) {
	m.batchFailures.WithLabelValues(reason).Inc()
}

// ObserveCommittedWrites records the aggregate writes of a committed transaction.
func (m *Metrics) ObserveCommittedWrites(writes map[string]int) {
	for kind, n := range writes {
		m.committed.WithLabelValues(kind).Add(float64(n))
	}
}
