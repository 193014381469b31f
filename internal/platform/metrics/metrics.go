package metrics

import (
	"context"
	"net/http"
	"sync"

	"github.com/phrazzld/storefront-api/internal/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Metrics holds the collectors of one server instance.
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	records         *prometheus.GaugeVec

	// revisions holds the newest store revision applied to the record gauge,
	// per resource.
	mu        sync.Mutex
	revisions map[string]uint64
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry:  prometheus.NewRegistry(),
		revisions: make(map[string]uint64),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled, by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds, by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Number of records currently held, by resource.",
		}, []string{"resource"}),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.records,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SetRecordCount sets the record gauge of a resource.
func (m *Metrics) SetRecordCount(resource string, count int) {
	m.records.WithLabelValues(resource).Set(float64(count))
}

// RecordCountHandler returns an event handler keeping the record gauge in
// step with the stores. Events are delivered after the store lock is
// released, so concurrent mutations can arrive out of order; an event whose
// revision is not newer than the last one applied for its resource is
// ignored.
func (m *Metrics) RecordCountHandler() events.EventHandler {
	return events.EventHandlerFunc(func(_ context.Context, event *events.RecordChangedEvent) error {
		m.mu.Lock()
		defer m.mu.Unlock()

		if event.Revision <= m.revisions[event.Resource] {
			return nil
		}
		m.revisions[event.Resource] = event.Revision
		m.SetRecordCount(event.Resource, event.Count)
		return nil
	})
}
