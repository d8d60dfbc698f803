// Package source provides catalog providers with hot reload.
//
// FileSource loads a catalog override file, merges it over the builtin
// definition, and watches the file with fsnotify. Reloads are debounced
// and swap an atomic snapshot, so concurrent lint calls always see a
// complete catalog: either the old one or the new one, never a mix.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"adlint-hq/saturn/pkg/catalog"
)

// DefaultDebounceInterval is how long the watcher waits after a file
// event before reloading, to coalesce editor write bursts.
const DefaultDebounceInterval = 100 * time.Millisecond

// FileSource is a catalog.Provider backed by a YAML override file on
// disk. The builtin catalog underlies whatever the file overrides.
type FileSource struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger

	current atomic.Pointer[catalog.Catalog]

	mu      sync.Mutex
	timer   *time.Timer
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewFileSource creates a file-backed catalog source and performs the
// initial load. The path may be empty, in which case the builtin catalog
// is served and Watch is a no-op.
func NewFileSource(path string, logger *slog.Logger) (*FileSource, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &FileSource{
		path:     path,
		debounce: DefaultDebounceInterval,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}

	return s, nil
}

// Current returns the current catalog snapshot.
func (s *FileSource) Current() *catalog.Catalog {
	return s.current.Load()
}

// Reload re-reads the override file, recompiles the catalog, and swaps
// the snapshot. On failure the previous snapshot stays in place.
func (s *FileSource) Reload() error {
	cat, err := catalog.LoadCatalog(s.path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	s.current.Store(cat)
	s.logger.Info("catalog loaded",
		"path", s.path,
		"packs", len(cat.Packs(catalog.PackFilter{})),
	)
	return nil
}

// Watch watches the override file for changes and reloads on each change,
// debounced. It blocks until the context is cancelled or Stop is called.
// With an empty path there is nothing to watch and Watch returns nil
// immediately.
func (s *FileSource) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	s.running = true
	s.mu.Unlock()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.path); err != nil {
		return fmt.Errorf("failed to watch %q: %w", s.path, err)
	}

	s.logger.Info("catalog watcher started",
		"path", s.path,
		"debounce_ms", s.debounce.Milliseconds(),
	)

	defer func() {
		s.mu.Lock()
		s.running = false
		if s.timer != nil {
			s.timer.Stop()
		}
		s.mu.Unlock()
		close(s.doneCh)
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("catalog watcher stopped (context cancelled)")
			return nil

		case <-s.stopCh:
			s.logger.Info("catalog watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			s.logger.Debug("catalog file event",
				"path", event.Name,
				"op", event.Op.String(),
			)
			s.scheduleReload()

			// Editors often replace the file, which drops the watch.
			if event.Has(fsnotify.Rename) {
				_ = watcher.Add(s.path)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			s.logger.Error("catalog watcher error", "error", err)
		}
	}
}

// scheduleReload arms the debounce timer, replacing any pending reload.
func (s *FileSource) scheduleReload() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		if err := s.Reload(); err != nil {
			s.logger.Error("catalog reload failed, keeping previous snapshot",
				"error", err,
			)
		}
	})
}

// Stop stops the watcher and waits for it to exit. Safe to call when the
// watcher never started.
func (s *FileSource) Stop() {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()

	close(s.stopCh)
	if running {
		<-s.doneCh
	}
}
