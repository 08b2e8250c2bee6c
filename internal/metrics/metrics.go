// Package metrics holds the Prometheus collectors of the shoplist server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	rpcs          *prometheus.CounterVec
	rpcDuration   *prometheus.HistogramVec
	listsBuilt    prometheus.Counter
	itemsProduced prometheus.Histogram
	exports       *prometheus.CounterVec
}

// New creates the collectors and registers them, along with the Go runtime
// and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		rpcs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "shoplist",
				Name:      "rpc_requests_total",
				Help:      "RPC calls handled, by procedure and result code",
			},
			[]string{"procedure", "code"},
		),
		rpcDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "shoplist",
				Name:      "rpc_duration_seconds",
				Help:      "RPC handling time",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"procedure"},
		),
		listsBuilt: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "shoplist",
				Name:      "lists_built_total",
				Help:      "Shopping lists computed",
			},
		),
		itemsProduced: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "shoplist",
				Name:      "list_items",
				Help:      "Number of items on each computed list",
				Buckets:   prometheus.LinearBuckets(0, 10, 10),
			},
		),
		exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "shoplist",
				Name:      "exports_total",
				Help:      "List exports, by target and result",
			},
			[]string{"target", "result"},
		),
	}

	registry.MustRegister(
		m.rpcs,
		m.rpcDuration,
		m.listsBuilt,
		m.itemsProduced,
		m.exports,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRPC records one finished call.
func (m *Metrics) ObserveRPC(procedure, code string, elapsed time.Duration) {
	m.rpcs.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())
}

// ObserveList records a computed shopping list of n items.
func (m *Metrics) ObserveList(n int) {
	m.listsBuilt.Inc()
	m.itemsProduced.Observe(float64(n))
}

// ObserveExport records an export attempt to target ("notion", "document").
func (m *Metrics) ObserveExport(target string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.exports.WithLabelValues(target, result).Inc()
}
