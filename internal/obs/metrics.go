package obs

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks application metrics on a private Prometheus registry.
type Metrics struct {
	registry       *prometheus.Registry
	requests       prometheus.Counter
	cacheHits      prometheus.Counter
	tokenRefreshes prometheus.Counter
	providerErrors *prometheus.CounterVec
	mockFallbacks  *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance with all collectors registered.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travel_requests_total",
			Help: "Number of travel-data requests received",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travel_cache_hits_total",
			Help: "Number of travel-data requests served from cache",
		}),
		tokenRefreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "provider_token_refreshes_total",
			Help: "Number of client-credentials token exchanges performed",
		}),
		providerErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "provider_errors_total",
			Help: "Number of failed upstream provider calls",
		}, []string{"category"}),
		mockFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "provider_mock_fallbacks_total",
			Help: "Number of responses substituted with mock data",
		}, []string{"category"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.requests,
		m.cacheHits,
		m.tokenRefreshes,
		m.providerErrors,
		m.mockFallbacks,
	)

	return m
}

// IncRequests increments the request counter.
func (m *Metrics) IncRequests() {
	m.requests.Inc()
}

// IncCacheHits increments the cache hit counter.
func (m *Metrics) IncCacheHits() {
	m.cacheHits.Inc()
}

// IncTokenRefreshes increments the token exchange counter.
func (m *Metrics) IncTokenRefreshes() {
	m.tokenRefreshes.Inc()
}

// IncProviderErrors increments the provider error counter for a category.
func (m *Metrics) IncProviderErrors(category string) {
	m.providerErrors.WithLabelValues(category).Inc()
}

// IncMockFallbacks increments the mock substitution counter for a category.
func (m *Metrics) IncMockFallbacks(category string) {
	m.mockFallbacks.WithLabelValues(category).Inc()
}

// Handler returns the /metrics handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// HealthHandler returns a handler for /healthz requests.
func HealthHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health response", "error", err)
		}
	}
}
