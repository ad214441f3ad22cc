package jobs

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"service-courier-tracking/internal/clock"
	"service-courier-tracking/internal/domain"
	"service-courier-tracking/internal/http/middleware/ratelimit"
	"service-courier-tracking/internal/metrics"
	"service-courier-tracking/internal/sessioncache"
	testlog "service-courier-tracking/internal/testutil"
)

func TestJanitor_RunOncePurgesStaleRecords(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	store := sessioncache.New(clk, 5*time.Minute)

	store.Put("old", domain.ResolutionRecord{LastRequestTime: clk.Now()}, 0)
	clk.Add(4 * time.Minute)
	store.Put("fresh", domain.ResolutionRecord{LastRequestTime: clk.Now()}, 0)
	clk.Add(2 * time.Minute)

	limiter := ratelimit.NewTokenBucketLimiter(clk, ratelimit.Config{Rate: 1, Burst: 1, TTL: time.Minute})
	_ = limiter.Allow("10.0.0.1")
	clk.Add(2 * time.Minute)

	purged := metrics.NewCachePurgedTotal()
	logs := testlog.New()
	j := NewJanitor("@every 1m", store, limiter, purged, logs.Logger())

	j.RunOnce()

	_, ok := store.Get("old")
	require.False(t, ok)
	_, ok = store.Get("fresh")
	require.True(t, ok)
	require.Equal(t, 0, limiter.Len())
	require.Equal(t, float64(1), testutil.ToFloat64(purged))

	e, ok := logs.Find("cache janitor pass")
	require.True(t, ok)
	v, _ := e.Field("component")
	require.Equal(t, "cache_janitor", v)
}

func TestJanitor_RunOnceWithoutOptionalDeps(t *testing.T) {
	t.Parallel()

	store := sessioncache.New(clock.NewManual(time.Unix(0, 0)), 0)
	j := NewJanitor("", store, nil, nil, nil)

	require.NotPanics(t, j.RunOnce)
}

func TestJanitor_StartStop(t *testing.T) {
	t.Parallel()

	store := sessioncache.New(clock.NewManual(time.Unix(0, 0)), 0)

	j := NewJanitor("@every 1h", store, nil, nil, nil)
	require.NoError(t, j.Start())
	j.Stop()

	disabled := NewJanitor("", store, nil, nil, nil)
	require.NoError(t, disabled.Start())
	disabled.Stop()
}

func TestJanitor_StartInvalidSchedule(t *testing.T) {
	t.Parallel()

	j := NewJanitor("not a schedule", sessioncache.New(nil, 0), nil, nil, nil)
	require.Error(t, j.Start())
}
