// Package logging builds the process-wide structured logger from
// configuration. All components log through *slog.Logger handles created
// here (or slog.Default() in tests).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"adlint-hq/saturn/pkg/config"
)

// NewLogger creates a structured logger from the logging configuration.
// Format "json" emits one JSON object per line; "text" emits logfmt-style
// records. The returned logger is safe for concurrent use.
func NewLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	return NewLoggerWithWriter(cfg, os.Stderr)
}

// NewLoggerWithWriter creates a logger writing to w. Used by tests to
// capture output.
func NewLoggerWithWriter(cfg config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Format {
	case "json", "":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q (expected json or text)", cfg.Format)
	}

	return slog.New(handler), nil
}

// ParseLevel converts a level name to a slog.Level. An empty name means
// info.
func ParseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}
