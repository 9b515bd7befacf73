package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CatalogMetrics tracks the organizer's traffic against the remote
// catalog. Long pagination runs can expose these through the optional
// metrics listener. All methods are safe on a nil receiver.
type CatalogMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	assetsFetched   prometheus.Counter
	stacksCreated   prometheus.Counter
}

func NewCatalogMetrics(service string) *CatalogMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "photocat",
			Subsystem: "catalog",
			Name:      "request_total",
			Help:      "Catalog API calls by operation and outcome.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
		[]string{"operation", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "photocat",
			Subsystem: "catalog",
			Name:      "request_duration_seconds",
			Help:      "Catalog API call duration in seconds by operation.",
			Buckets:   prometheus.DefBuckets,
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
		[]string{"operation"},
	)
	assetsFetched := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "photocat",
			Subsystem: "catalog",
			Name:      "assets_fetched_total",
			Help:      "Assets retrieved across all paginated searches.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	stacksCreated := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "photocat",
			Subsystem: "catalog",
			Name:      "stacks_created_total",
			Help:      "Stacks created in the catalog.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registry.MustRegister(requestTotal, requestDuration, assetsFetched, stacksCreated)

	return &CatalogMetrics{
		registry:        registry,
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		assetsFetched:   assetsFetched,
		stacksCreated:   stacksCreated,
	}
}

func (m *CatalogMetrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *CatalogMetrics) ObserveRequest(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.requestTotal.WithLabelValues(operation, status).Inc()
	m.requestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *CatalogMetrics) AddAssetsFetched(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.assetsFetched.Add(float64(n))
}

func (m *CatalogMetrics) IncStacksCreated() {
	if m == nil {
		return
	}
	m.stacksCreated.Inc()
}
