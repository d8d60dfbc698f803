package config

import "time"

// Config is the root configuration structure for Saturn. It covers the
// HTTP API server, the rule catalog, the scan evidence trail, and
// telemetry.
type Config struct {
	// Server contains HTTP API server configuration including listen
	// address and timeouts.
	Server ServerConfig `yaml:"server"`

	// Catalog contains rule catalog configuration: the optional override
	// file and watch mode.
	Catalog CatalogConfig `yaml:"catalog"`

	// Evidence contains scan-record audit trail configuration including
	// backend selection and retention.
	Evidence EvidenceConfig `yaml:"evidence"`

	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP API server.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Format: "host:port". Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading a request,
	// including the body. Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out response
	// writes. Default: 30s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum time to wait for the next request on a
	// keep-alive connection. Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// MaxHeaderBytes limits request header size. Default: 1MB
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// ShutdownTimeout bounds graceful shutdown. Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// CatalogConfig contains configuration for the rule catalog.
type CatalogConfig struct {
	// Path is the optional YAML override file merged over the builtin
	// catalog. Empty means builtin only.
	Path string `yaml:"path"`

	// Watch enables fsnotify-based hot reload of the override file.
	// Default: false
	Watch bool `yaml:"watch"`
}

// EvidenceConfig contains configuration for the scan evidence trail.
type EvidenceConfig struct {
	// Enabled turns evidence recording on. Default: true
	Enabled bool `yaml:"enabled"`

	// Backend selects the storage backend: "memory" or "sqlite".
	// Default: "sqlite"
	Backend string `yaml:"backend"`

	// DBPath is the SQLite database file path.
	// Default: "data/evidence.db"
	DBPath string `yaml:"db_path"`

	// AsyncBuffer is the size of the recorder's write channel.
	// Default: 1000
	AsyncBuffer int `yaml:"async_buffer"`

	// RetentionDays is how long records are kept before pruning.
	// Zero disables age-based pruning. Default: 90
	RetentionDays int `yaml:"retention_days"`

	// MaxRecords caps the total record count; oldest records are pruned
	// first. Zero disables the cap. Default: 0
	MaxRecords int `yaml:"max_records"`

	// PruneSchedule is the cron expression for scheduled pruning.
	// Empty disables the scheduler. Default: "0 3 * * *"
	PruneSchedule string `yaml:"prune_schedule"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging configures the structured logger.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics configures the Prometheus endpoint.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: "json" or "text". Default: "json"
	Format string `yaml:"format"`
}

// MetricsConfig configures the Prometheus metrics endpoint.
type MetricsConfig struct {
	// Enabled turns the /metrics endpoint on. Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the metrics endpoint path. Default: "/metrics"
	Path string `yaml:"path"`
}
