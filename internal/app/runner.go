package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go.uber.org/dig"

	"service-courier-tracking/internal/jobs"
	"service-courier-tracking/internal/logx"
)

const shutdownTimeout = 15 * time.Second

// MustRun starts the HTTP server using the provided DI container.
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
			return
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

func run(container *dig.Container) error {
	return container.Invoke(func(
		ctx context.Context,
		server *http.Server,
		debug debugServer,
		janitor *jobs.Janitor,
		logger logx.Logger,
	) error {
		return serve(ctx, []*http.Server{server, debug.Server}, janitor, logger)
	})
}

// serve runs every non-nil server until ctx is done or one of them fails.
func serve(ctx context.Context, servers []*http.Server, janitor *jobs.Janitor, logger logx.Logger) error {
	defer func() { _ = logger.Sync() }()

	if err := janitor.Start(); err != nil {
		return err
	}
	defer janitor.Stop()

	errCh := make(chan error, len(servers))
	var running []*http.Server
	for _, srv := range servers {
		if srv == nil {
			continue
		}
		startServer(srv, logger, errCh)
		running = append(running, srv)
	}

	var runErr error
	select {
	case runErr = <-errCh:
		logger.Error("server failed", logx.Err(runErr))
	case <-ctx.Done():
		logger.Info("shutting down service-tracking")
	}

	for _, srv := range running {
		gracefulShutdown(srv, logger, shutdownTimeout)
	}
	return runErr
}

func startServer(server *http.Server, logger logx.Logger, errCh chan<- error) {
	go func() {
		logger.Info("listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
		if err := srv.Close(); err != nil {
			logger.Error("server close error", logx.Err(err))
		}
	}
}
