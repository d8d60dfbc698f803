// Package server provides the HTTP API for the lint and analysis
// engines. JSON marshaling lives entirely at this edge; the engines
// themselves operate on in-memory values.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"adlint-hq/saturn/pkg/catalog"
	"adlint-hq/saturn/pkg/compliance"
	"adlint-hq/saturn/pkg/config"
	"adlint-hq/saturn/pkg/evidence/recorder"
	"adlint-hq/saturn/pkg/telemetry/metrics"
)

// Server is the HTTP API server.
type Server struct {
	config   config.ServerConfig
	linter   *compliance.Linter
	catalog  catalog.Provider
	recorder *recorder.Recorder
	metrics  *metrics.Collector
	logger   *slog.Logger

	httpServer   *http.Server
	shutdownChan chan struct{}
	shutdownOnce sync.Once

	mu        sync.Mutex
	isRunning bool
}

// Options bundles the server's dependencies. Recorder and Metrics are
// optional; a nil value disables the corresponding feature.
type Options struct {
	Config   config.ServerConfig
	Linter   *compliance.Linter
	Catalog  catalog.Provider
	Recorder *recorder.Recorder
	Metrics  *metrics.Collector
	Logger   *slog.Logger
}

// NewServer creates an API server.
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.NewStaticProvider(catalog.Default())
	}
	if opts.Linter == nil {
		opts.Linter = compliance.NewLinter(opts.Catalog, opts.Logger)
	}

	return &Server{
		config:       opts.Config,
		linter:       opts.Linter,
		catalog:      opts.Catalog,
		recorder:     opts.Recorder,
		metrics:      opts.Metrics,
		logger:       opts.Logger,
		shutdownChan: make(chan struct{}),
	}
}

// Start starts the HTTP server and blocks until shutdown is triggered by
// context cancellation, SIGINT/SIGTERM, or Shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	s.httpServer = &http.Server{
		Addr:           s.config.ListenAddress,
		Handler:        s.routes(),
		ReadTimeout:    s.config.ReadTimeout,
		WriteTimeout:   s.config.WriteTimeout,
		IdleTimeout:    s.config.IdleTimeout,
		MaxHeaderBytes: s.config.MaxHeaderBytes,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting api server", "address", s.config.ListenAddress)

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		s.logger.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		return nil
	}
}

// Shutdown gracefully stops the server within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		defer close(s.shutdownChan)

		if s.httpServer == nil {
			return
		}

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()

		s.logger.Info("shutting down api server")
		err = s.httpServer.Shutdown(shutdownCtx)
	})
	return err
}

// routes builds the request mux.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/lint", s.handleLint)
	mux.HandleFunc("GET /v1/policy-packs", s.handlePolicyPacks)
	mux.HandleFunc("GET /v1/policy-packs/{id}", s.handlePolicyPack)
	mux.HandleFunc("POST /v1/experiments/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /v1/experiments/guardrails", s.handleGuardrails)
	mux.HandleFunc("POST /v1/experiments/sample-size", s.handleSampleSize)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}

	return mux
}
