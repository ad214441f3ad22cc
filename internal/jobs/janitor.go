package jobs

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"service-courier-tracking/internal/logx"
)

// Purger drops stale entries and reports how many were removed.
type Purger interface {
	Purge() int
}

// Sweeper drops idle entries and reports how many were removed.
type Sweeper interface {
	Sweep() int
}

// Janitor periodically purges stale session records and idle rate-limit buckets.
type Janitor struct {
	cache    Purger
	buckets  Sweeper
	purged   prometheus.Counter
	schedule string
	cron     *cron.Cron
	logger   logx.Logger
}

// NewJanitor creates the janitor. buckets and purged may be nil.
// An empty schedule makes Start a no-op.
func NewJanitor(schedule string, cache Purger, buckets Sweeper, purged prometheus.Counter, logger logx.Logger) *Janitor {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Janitor{
		cache:    cache,
		buckets:  buckets,
		purged:   purged,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With(logx.String("component", "cache_janitor")),
	}
}

// Start schedules the janitor.
func (j *Janitor) Start() error {
	if j.schedule == "" {
		j.logger.Info("cache janitor disabled")
		return nil
	}
	if _, err := j.cron.AddFunc(j.schedule, j.RunOnce); err != nil {
		return fmt.Errorf("schedule cache janitor: %w", err)
	}
	j.cron.Start()
	j.logger.Info("cache janitor started", logx.String("schedule", j.schedule))
	return nil
}

// Stop stops scheduling and waits for a running pass to finish.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("cache janitor stopped")
}

// RunOnce performs a single cleanup pass.
func (j *Janitor) RunOnce() {
	n := j.cache.Purge()
	if j.purged != nil {
		j.purged.Add(float64(n))
	}

	swept := 0
	if j.buckets != nil {
		swept = j.buckets.Sweep()
	}

	if n > 0 || swept > 0 {
		j.logger.Debug("cache janitor pass",
			logx.Int("purged_sessions", n),
			logx.Int("swept_buckets", swept),
		)
	}
}
