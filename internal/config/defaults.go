package config

import (
	"time"

	"service-courier-tracking/internal/domain"
)

const (
	defaultPort     = 8080
	defaultLogLevel = "info"
)

// covers login, two CRM hops and the position fetch at default upstream timeouts
const defaultRequestTimeout = 25 * time.Second

var defaultGPS = Upstream{
	BaseURL: "https://hst-api.wialon.com",
	Timeout: 5 * time.Second,
}

var defaultCRM = Upstream{
	BaseURL: "http://localhost:9000",
	Timeout: 5 * time.Second,
}

var defaultCache = Cache{
	TTL:           5 * time.Minute,
	PurgeSchedule: "@every 1m",
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       5,
	Burst:      10,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultRequestTimeout returns the default per-request deadline of the API.
func DefaultRequestTimeout() time.Duration {
	return defaultRequestTimeout
}

// DefaultGPS returns the default GPS provider settings without a token.
func DefaultGPS() Upstream {
	return defaultGPS
}

// DefaultCRM returns the default CRM settings without a token.
func DefaultCRM() Upstream {
	return defaultCRM
}

// DefaultCache returns the default session cache settings.
func DefaultCache() Cache {
	return defaultCache
}

// DefaultLocation returns the built-in depot table with jomiy as fallback.
func DefaultLocation() Location {
	branches := make(map[string]domain.Coordinates, len(domain.DefaultBranches))
	for k, v := range domain.DefaultBranches {
		branches[k] = v
	}
	return Location{
		DefaultBranch: domain.BranchJomiy,
		Branches:      branches,
	}
}

// DefaultRateLimit returns the default inbound rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
