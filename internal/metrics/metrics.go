package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Provider records the counters and histograms exposed on /metrics.
type Provider interface {
	IncRequestsTotal(route string, status int)
	ObserveRequestDuration(route string, duration time.Duration)
	IncUpstreamRequests(endpoint, outcome string)
	IncCacheHits()
	IncCacheMisses()
}

// Upstream outcomes.
const (
	OutcomeOK           = "ok"
	OutcomeError        = "error"
	OutcomeBadStatus    = "bad_status"
	OutcomeUnsuccessful = "unsuccessful"
)

type prometheusProvider struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	upstreamRequests *prometheus.CounterVec
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
}

// New registers the collectors on reg. When enabled is false a no-op
// provider is returned and nothing is registered.
func New(enabled bool, reg prometheus.Registerer) Provider {
	if !enabled {
		return Noop()
	}

	factory := promauto.With(reg)
	return &prometheusProvider{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "forex_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"route", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "forex_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),

		upstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "forex_upstream_requests_total",
			Help: "Requests issued to the upstream rate API",
		}, []string{"endpoint", "outcome"}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "forex_cache_hits_total",
			Help: "Rate payloads served from the cache",
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "forex_cache_misses_total",
			Help: "Rate payloads fetched from upstream after a cache miss",
		}),
	}
}

func (m *prometheusProvider) IncRequestsTotal(route string, status int) {
	m.requestsTotal.WithLabelValues(route, httpStatusBucket(status)).Inc()
}

func (m *prometheusProvider) ObserveRequestDuration(route string, duration time.Duration) {
	m.requestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

func (m *prometheusProvider) IncUpstreamRequests(endpoint, outcome string) {
	m.upstreamRequests.WithLabelValues(endpoint, outcome).Inc()
}

func (m *prometheusProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *prometheusProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

// Noop returns a provider that discards everything.
func Noop() Provider {
	return noopProvider{}
}

type noopProvider struct{}

func (noopProvider) IncRequestsTotal(_ string, _ int)                 {}
func (noopProvider) ObserveRequestDuration(_ string, _ time.Duration) {}
func (noopProvider) IncUpstreamRequests(_, _ string)                  {}
func (noopProvider) IncCacheHits()                                    {}
func (noopProvider) IncCacheMisses()                                  {}
