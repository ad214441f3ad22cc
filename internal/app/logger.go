package app

import (
	"os"

	"service-courier-tracking/internal/config"
	"service-courier-tracking/internal/logx"
)

func newLogger(cfg *config.Config) logx.Logger {
	return logx.NewJSON(os.Stdout, cfg.LogLevel).With(logx.String("service", "service-tracking"))
}
