// Package logging provides structured logging configuration using log/slog.
//
// Handlers write to stderr: the normalizer's own output (rendered records,
// summaries) goes to stdout, and the two streams must stay separable when
// the tool is used in a pipeline.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// Use "json" format in production for machine parsing (ELK, CloudWatch, etc.)
// Use "text" format in development for human readability.
func Setup(level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRun returns a logger that carries the ingest run ID.
//
// This enables correlation of all log entries for a single normalization
// run, the same way a request ID ties together the entries of one HTTP
// request.
//
// Usage:
//
//	logger := logging.WithRun(res.RunID)
//	logger.Info("normalization complete", "records", len(res.Periods))
func WithRun(runID string) *slog.Logger {
	logger := slog.Default()

	if runID != "" {
		logger = logger.With("run_id", runID)
	}

	return logger
}
