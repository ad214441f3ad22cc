package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"service-courier-tracking/internal/http/handlers"
	"service-courier-tracking/internal/http/middleware"
	"service-courier-tracking/internal/http/middleware/ratelimit"
	"service-courier-tracking/internal/logx"
)

const defaultTimeout = 25 * time.Second

// Deps are the handlers and middleware mounted by New.
// RateLimit, Metrics and Gatherer may be nil.
type Deps struct {
	Base      *handlers.Handlers
	Location  *handlers.LocationHandler
	Webhook   *handlers.WebhookHandler
	RateLimit *ratelimit.Middleware
	Metrics   *middleware.HTTPMetrics
	Gatherer  prometheus.Gatherer
	Logger    logx.Logger
	Timeout   time.Duration
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	if d.Timeout <= 0 {
		d.Timeout = defaultTimeout
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observability(d.Logger, d.Metrics))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(d.Timeout))

	r.Get("/", d.Base.Index)
	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		if d.RateLimit != nil {
			r.Use(d.RateLimit.Handler())
		}

		r.Get("/api/aircraft/{orderID}/", d.Location.Get)
		r.Get("/api/aircraft/{orderID}", d.Location.Get)

		r.Post("/webhook/", d.Webhook.Receive)
		r.Post("/webhook", d.Webhook.Receive)
	})

	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	return r
}
