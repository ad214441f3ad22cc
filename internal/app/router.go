package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-courier-tracking/internal/config"
	"service-courier-tracking/internal/http/handlers"
	"service-courier-tracking/internal/http/middleware"
	"service-courier-tracking/internal/http/middleware/ratelimit"
	"service-courier-tracking/internal/http/router"
	"service-courier-tracking/internal/logx"
)

type routerIn struct {
	dig.In
	Config    *config.Config
	Base      *handlers.Handlers
	Location  *handlers.LocationHandler
	Webhook   *handlers.WebhookHandler
	RateLimit *ratelimit.Middleware
	Metrics   *middleware.HTTPMetrics
	Gatherer  prometheus.Gatherer
	Logger    logx.Logger
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Base:      in.Base,
		Location:  in.Location,
		Webhook:   in.Webhook,
		RateLimit: in.RateLimit,
		Metrics:   in.Metrics,
		Gatherer:  in.Gatherer,
		Logger:    in.Logger,
		Timeout:   in.Config.RequestTimeout,
	})
}
