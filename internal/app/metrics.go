package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-courier-tracking/internal/http/middleware"
	"service-courier-tracking/internal/metrics"
)

type metricsOut struct {
	dig.Out
	RateLimitExceeded prometheus.Counter     `name:"rate_limit_exceeded_total"`
	CachePurged       prometheus.Counter     `name:"session_cache_purged_total"`
	CacheLookups      *prometheus.CounterVec `name:"session_cache_lookups_total"`
	UpstreamFailures  *prometheus.CounterVec `name:"upstream_failures_total"`
	Webhooks          *prometheus.CounterVec `name:"webhooks_received_total"`
	HTTP              *middleware.HTTPMetrics
}

func newMetrics(reg prometheus.Registerer) (metricsOut, error) {
	var (
		out metricsOut
		err error
	)
	if out.RateLimitExceeded, err = metrics.Register(reg, metrics.NewRateLimitExceededTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.CachePurged, err = metrics.Register(reg, metrics.NewCachePurgedTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.CacheLookups, err = metrics.Register(reg, metrics.NewCacheLookupsTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.UpstreamFailures, err = metrics.Register(reg, metrics.NewUpstreamFailuresTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.Webhooks, err = metrics.Register(reg, metrics.NewWebhooksTotal()); err != nil {
		return metricsOut{}, err
	}

	httpm := &middleware.HTTPMetrics{}
	if httpm.Requests, err = metrics.Register(reg, metrics.NewHTTPRequestsTotal()); err != nil {
		return metricsOut{}, err
	}
	if httpm.Duration, err = metrics.Register(reg, metrics.NewHTTPRequestDuration()); err != nil {
		return metricsOut{}, err
	}
	out.HTTP = httpm
	return out, nil
}
