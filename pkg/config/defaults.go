package config

import "time"

// Default values for configuration fields.
const (
	// Server defaults
	DefaultListenAddress   = "127.0.0.1:8080"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxHeaderBytes  = 1048576 // 1MB

	// Evidence defaults
	DefaultEvidenceEnabled       = true
	DefaultEvidenceBackend       = "sqlite"
	DefaultEvidenceDBPath        = "data/evidence.db"
	DefaultEvidenceAsyncBuffer   = 1000
	DefaultEvidenceRetentionDays = 90
	DefaultEvidencePruneSchedule = "0 3 * * *"

	// Telemetry defaults
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "json"
	DefaultMetricsPath = "/metrics"
)

// ApplyDefaults fills in default values for any unset configuration
// fields. It is called automatically by LoadConfig; Default() builds a
// fully-defaulted Config directly.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.MaxHeaderBytes == 0 {
		cfg.Server.MaxHeaderBytes = DefaultMaxHeaderBytes
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Evidence.Backend == "" {
		cfg.Evidence.Backend = DefaultEvidenceBackend
	}
	if cfg.Evidence.DBPath == "" {
		cfg.Evidence.DBPath = DefaultEvidenceDBPath
	}
	if cfg.Evidence.AsyncBuffer == 0 {
		cfg.Evidence.AsyncBuffer = DefaultEvidenceAsyncBuffer
	}
	if cfg.Evidence.RetentionDays == 0 {
		cfg.Evidence.RetentionDays = DefaultEvidenceRetentionDays
	}
	if cfg.Evidence.PruneSchedule == "" {
		cfg.Evidence.PruneSchedule = DefaultEvidencePruneSchedule
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLogLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLogFormat
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
}

// Default returns a configuration with all defaults applied, evidence
// recording enabled, and metrics enabled.
func Default() *Config {
	cfg := &Config{}
	cfg.Evidence.Enabled = DefaultEvidenceEnabled
	cfg.Telemetry.Metrics.Enabled = true
	ApplyDefaults(cfg)
	return cfg
}
