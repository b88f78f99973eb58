// Package logger owns the process-wide slog configuration for the personnel
// management service. Production runs emit JSON at info level for ingestion;
// anything else gets debug-level text for local work.
package logger

import (
	"log/slog"
	"os"
)

var defaultLogger *slog.Logger

func Init(env string) {
	var handler slog.Handler

	if env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	defaultLogger = slog.New(handler).With("service", "personnel-management")
	slog.SetDefault(defaultLogger)
}

// Default returns the configured logger, lazily initializing a development
// logger so callers never see nil.
func Default() *slog.Logger {
	if defaultLogger == nil {
		Init("development")
	}
	return defaultLogger
}
