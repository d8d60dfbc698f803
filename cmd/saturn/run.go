package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"adlint-hq/saturn/pkg/catalog"
	"adlint-hq/saturn/pkg/catalog/source"
	"adlint-hq/saturn/pkg/compliance"
	"adlint-hq/saturn/pkg/config"
	"adlint-hq/saturn/pkg/evidence/recorder"
	"adlint-hq/saturn/pkg/evidence/retention"
	"adlint-hq/saturn/pkg/evidence/storage"
	"adlint-hq/saturn/pkg/server"
	"adlint-hq/saturn/pkg/telemetry/logging"
	"adlint-hq/saturn/pkg/telemetry/metrics"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Saturn API server",
	Long: `Start the Saturn API server with the specified configuration.

The server exposes lint, policy pack, and experiment analysis endpoints,
records scan evidence, and serves Prometheus metrics.

Examples:
  # Start with default config
  saturn run

  # Start with custom config
  saturn run --config /etc/saturn/config.yaml

  # Override listen address
  saturn run --listen 0.0.0.0:8080

  # Validate config without starting server
  saturn run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Apply flag overrides
	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	logger, err := logging.NewLogger(cfg.Telemetry.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	slog.SetDefault(logger)

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Catalog provider: builtin only, or builtin merged with an override
	// file (optionally hot-reloaded).
	var provider catalog.Provider
	if cfg.Catalog.Path != "" {
		fileSource, err := source.NewFileSource(cfg.Catalog.Path, logger)
		if err != nil {
			return fmt.Errorf("failed to load catalog from %s: %w", cfg.Catalog.Path, err)
		}
		if cfg.Catalog.Watch {
			go func() {
				if err := fileSource.Watch(ctx); err != nil {
					logger.Error("catalog watcher exited", "error", err)
				}
			}()
			defer fileSource.Stop()
		}
		provider = fileSource
		fmt.Printf("✓ Catalog loaded from %s (watch=%v)\n", cfg.Catalog.Path, cfg.Catalog.Watch)
	} else {
		provider = catalog.NewStaticProvider(catalog.Default())
		fmt.Println("✓ Built-in catalog loaded")
	}

	// Evidence recording (if enabled)
	var evidenceRecorder *recorder.Recorder
	if cfg.Evidence.Enabled {
		logger.Info("initializing evidence recording", "backend", cfg.Evidence.Backend)

		var backend storage.Backend
		switch cfg.Evidence.Backend {
		case "sqlite":
			backend, err = storage.NewSQLiteBackend(cfg.Evidence.DBPath)
			if err != nil {
				return fmt.Errorf("failed to create SQLite backend: %w", err)
			}
		case "memory":
			backend = storage.NewMemoryBackend()
		default:
			return fmt.Errorf("unsupported evidence backend: %s", cfg.Evidence.Backend)
		}
		defer backend.Close()

		recorderConfig := recorder.DefaultConfig()
		if cfg.Evidence.AsyncBuffer > 0 {
			recorderConfig.AsyncBuffer = cfg.Evidence.AsyncBuffer
		}
		evidenceRecorder = recorder.New(backend, recorderConfig, logger)
		defer evidenceRecorder.Close()

		if cfg.Evidence.PruneSchedule != "" {
			pruner := retention.NewPruner(backend, retention.Config{
				RetentionDays: cfg.Evidence.RetentionDays,
				MaxRecords:    int64(cfg.Evidence.MaxRecords),
				PruneSchedule: cfg.Evidence.PruneSchedule,
			}, logger)
			scheduler := retention.NewScheduler(pruner)
			if err := scheduler.Start(ctx); err != nil {
				logger.Warn("failed to start retention scheduler", "error", err)
			} else {
				defer scheduler.Stop()
				if next := scheduler.NextRun(); next != nil {
					logger.Debug("evidence retention scheduler started", "next_run", next)
				}
			}
		}

		fmt.Println("✓ Evidence store initialized")
	}

	// Metrics collection (if enabled)
	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(nil)
		fmt.Printf("✓ Metrics endpoint: http://%s%s\n", cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}

	srv := server.NewServer(server.Options{
		Config:   cfg.Server,
		Linter:   compliance.NewLinter(provider, logger),
		Catalog:  provider,
		Recorder: evidenceRecorder,
		Metrics:  collector,
		Logger:   logger,
	})

	fmt.Printf("✓ Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Println("\nPress Ctrl+C to stop")

	return srv.Start(ctx)
}

// loadConfig loads the config file named by --config, or the defaults
// when no file was given.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
