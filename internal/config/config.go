// Package config provides centralized configuration management for the
// application. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Logging LoggingConfig
	Ingest  IngestConfig
	Output  OutputConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// IngestConfig holds file reading settings.
type IngestConfig struct {
	// MaxLineBytes is the maximum accepted length of a single input line in
	// bytes (default: 1MiB). Supports both INGEST_MAX_LINE_BYTES and
	// MAX_LINE_BYTES env vars for compatibility.
	MaxLineBytes int `env:"INGEST_MAX_LINE_BYTES" envAlt:"MAX_LINE_BYTES" default:"1048576"`
}

// OutputConfig holds default rendering settings for normalized records.
type OutputConfig struct {
	// Format is the default output format: text, jsonl, or csv (default: text)
	Format string `env:"OUTPUT_FORMAT" default:"text"`

	// Path is the default output file; empty means stdout
	Path string `env:"OUTPUT_PATH"`

	// Append opens the output file for appending instead of truncating (default: false)
	Append bool `env:"OUTPUT_APPEND" default:"false"`
}
