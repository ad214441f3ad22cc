package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"

	"service-courier-tracking/internal/clock"
	"service-courier-tracking/internal/config"
	"service-courier-tracking/internal/domain"
	"service-courier-tracking/internal/gateway/crm"
	"service-courier-tracking/internal/gateway/gps"
	"service-courier-tracking/internal/http/handlers"
	"service-courier-tracking/internal/http/middleware/ratelimit"
	"service-courier-tracking/internal/http/pprofserver"
	"service-courier-tracking/internal/jobs"
	"service-courier-tracking/internal/logx"
	"service-courier-tracking/internal/service/tracking"
	"service-courier-tracking/internal/service/webhook"
	"service-courier-tracking/internal/sessioncache"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig func() (*config.Config, error)
	registry   *prometheus.Registry
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig: config.Load,
		logFatalf:  log.Fatalf,
	}
}

// WithConfigLoader replaces config.Load.
func (b *ContainerBuilder) WithConfigLoader(fn func() (*config.Config, error)) *ContainerBuilder {
	if fn != nil {
		b.loadConfig = fn
	}
	return b
}

// WithRegistry sets the prometheus registry metrics are registered in.
func (b *ContainerBuilder) WithRegistry(reg *prometheus.Registry) *ContainerBuilder {
	if reg != nil {
		b.registry = reg
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	reg := b.registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	if err := registerCore(container, ctx, b.loadConfig, reg); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerGateways(container); err != nil {
		return nil, fmt.Errorf("gateways: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	if err := registerJobs(container); err != nil {
		return nil, fmt.Errorf("jobs: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(
	container *dig.Container,
	ctx context.Context,
	loadConfig func() (*config.Config, error),
	reg *prometheus.Registry,
) error {
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		newLogger,
		func() clock.Clock { return clock.Real{} },
		func() prometheus.Registerer { return reg },
		func() prometheus.Gatherer { return reg },
		newMetrics,
	)
}

func registerGateways(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) *gps.Client {
			return gps.NewClient(cfg.GPS.BaseURL, nil, cfg.GPS.Timeout)
		},
		func(cfg *config.Config) *crm.Client {
			return crm.NewClient(cfg.CRM.BaseURL, cfg.CRM.Token, nil, cfg.CRM.Timeout)
		},
		func(c clock.Clock, cfg *config.Config) *sessioncache.Store {
			return sessioncache.New(c, cfg.Cache.TTL)
		},
		func(cfg *config.Config) domain.BranchTable {
			return domain.NewBranchTable(cfg.Location.Branches, cfg.Location.DefaultBranch)
		},
	)
}

type trackingIn struct {
	dig.In
	Config   *config.Config
	GPS      *gps.Client
	CRM      *crm.Client
	Cache    *sessioncache.Store
	Branches domain.BranchTable
	Logger   logx.Logger
	Clock    clock.Clock
	Lookups  *prometheus.CounterVec `name:"session_cache_lookups_total"`
	Failures *prometheus.CounterVec `name:"upstream_failures_total"`
}

func newTrackingService(in trackingIn) *tracking.Service {
	return tracking.NewService(tracking.Deps{
		GPS:      in.GPS,
		CRM:      in.CRM,
		Cache:    in.Cache,
		Branches: in.Branches,
		Logger:   in.Logger.With(logx.String("component", "tracking")),
		Clock:    in.Clock,
		Lookups:  in.Lookups,
		Failures: in.Failures,
	}, tracking.Config{
		GPSToken:            in.Config.GPS.Token,
		TTL:                 in.Config.Cache.TTL,
		IncludeCourierPhone: in.Config.Location.IncludeCourierPhone,
	})
}

type webhookIn struct {
	dig.In
	Logger   logx.Logger
	Outcomes *prometheus.CounterVec `name:"webhooks_received_total"`
}

func newWebhookReceiver(in webhookIn) *webhook.Receiver {
	return webhook.NewReceiver(in.Logger.With(logx.String("component", "webhook")), in.Outcomes)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		newTrackingService,
		newWebhookReceiver,
	)
}

// writeGrace leaves room to write the timeout response after the request deadline.
const writeGrace = 5 * time.Second

// debugServer is the optional pprof listener; Server is nil when disabled.
type debugServer struct {
	Server *http.Server
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      cfg.RequestTimeout + writeGrace,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewLocationUsecase,
		handlers.NewLocationHandler,
		handlers.NewWebhookUsecase,
		handlers.NewWebhookHandler,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
		func(cfg *config.Config) debugServer {
			return debugServer{pprofserver.New(pprofserver.Config{
				Addr: cfg.Pprof.Addr,
				User: cfg.Pprof.User,
				Pass: cfg.Pprof.Pass,
			})}
		},
	)
}

type janitorIn struct {
	dig.In
	Config  *config.Config
	Cache   *sessioncache.Store
	Limiter ratelimit.Limiter
	Purged  prometheus.Counter `name:"session_cache_purged_total"`
	Logger  logx.Logger
}

func newJanitor(in janitorIn) *jobs.Janitor {
	var sweeper jobs.Sweeper
	if s, ok := in.Limiter.(jobs.Sweeper); ok {
		sweeper = s
	}
	return jobs.NewJanitor(in.Config.Cache.PurgeSchedule, in.Cache, sweeper, in.Purged, in.Logger)
}

func registerJobs(container *dig.Container) error {
	return provideAll(container, newJanitor)
}
