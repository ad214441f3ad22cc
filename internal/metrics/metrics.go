package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Cache lookup outcomes.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheStale = "stale"
)

// NewRateLimitExceededTotal returns a counter of requests rejected by the rate limiter.
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewCacheLookupsTotal returns a counter of session cache lookups by result.
func NewCacheLookupsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "session_cache_lookups_total",
		Help: "Session cache lookups by result (hit, miss, stale)",
	}, []string{"result"})
}

// NewUpstreamFailuresTotal returns a counter of failed upstream calls.
func NewUpstreamFailuresTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_failures_total",
		Help: "Failed calls to the GPS provider and CRM by operation",
	}, []string{"upstream", "operation"})
}

// NewWebhooksTotal returns a counter of received webhooks by outcome.
func NewWebhooksTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webhooks_received_total",
		Help: "Webhook callbacks by outcome (accepted, rejected)",
	}, []string{"outcome"})
}

// NewCachePurgedTotal returns a counter of stale records dropped by the janitor.
func NewCachePurgedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "session_cache_purged_total",
		Help: "Total number of stale session records purged",
	})
}

// Register registers c with reg, reusing the already registered collector on conflict.
func Register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// NewHTTPRequestsTotal returns a counter of served HTTP requests.
func NewHTTPRequestsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
}

// NewHTTPRequestDuration returns a histogram of HTTP request latency.
func NewHTTPRequestDuration() *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
}
