// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "purchasing"

// Metrics groups every collector the service reports. It implements
// commands.WorkflowObserver.
type Metrics struct {
	Requests      *prometheus.CounterVec
	LatencyMS     *prometheus.HistogramVec
	Workflows     *prometheus.CounterVec
	AuditFailures *prometheus.CounterVec
	OverdueOrders prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them on reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"handler", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"handler"}),
		Workflows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "workflows_total",
			Help:      "Order create/update/delete workflows by outcome.",
		}, []string{"operation", "outcome"}),
		AuditFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "audit_write_failures_total",
			Help:      "Movements that could not be recorded.",
		}, []string{"kind"}),
		OverdueOrders: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "overdue",
			Help:      "Orders past their expected delivery date and not finalized.",
		}),
		gatherer: reg,
	}

	reg.MustRegister(m.Requests, m.LatencyMS, m.Workflows, m.AuditFailures, m.OverdueOrders)
	return m
}

func (m *Metrics) WorkflowFinished(operation, outcome string) {
	m.Workflows.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) AuditWriteFailed(kind string) {
	m.AuditFailures.WithLabelValues(kind).Inc()
}

func (m *Metrics) SetOverdue(n int) {
	m.OverdueOrders.Set(float64(n))
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
