// Package recorder writes scan records asynchronously. Recording never
// blocks the lint or analysis path: records go onto a buffered channel
// and a single writer goroutine drains it. When the buffer is full the
// record is dropped and counted rather than stalling a request.
package recorder

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"adlint-hq/saturn/pkg/compliance"
	"adlint-hq/saturn/pkg/evidence"
	"adlint-hq/saturn/pkg/evidence/storage"
	"adlint-hq/saturn/pkg/experiment"
)

// Config contains configuration for the recorder.
type Config struct {
	// AsyncBuffer is the size of the write channel. Default: 1000
	AsyncBuffer int

	// WriteTimeout bounds each storage write. Default: 5s
	WriteTimeout time.Duration
}

// DefaultConfig returns the default recorder configuration.
func DefaultConfig() Config {
	return Config{
		AsyncBuffer:  1000,
		WriteTimeout: 5 * time.Second,
	}
}

// Recorder persists scan records through a storage backend.
type Recorder struct {
	backend storage.Backend
	config  Config
	logger  *slog.Logger

	ch      chan *evidence.Record
	dropped atomic.Int64

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup

	// now is injectable for tests.
	now func() time.Time
}

// New creates a recorder and starts its writer goroutine.
func New(backend storage.Backend, config Config, logger *slog.Logger) *Recorder {
	if config.AsyncBuffer <= 0 {
		config.AsyncBuffer = DefaultConfig().AsyncBuffer
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = DefaultConfig().WriteTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	r := &Recorder{
		backend: backend,
		config:  config,
		logger:  logger,
		ch:      make(chan *evidence.Record, config.AsyncBuffer),
		stopCh:  make(chan struct{}),
		now:     time.Now,
	}

	r.wg.Add(1)
	go r.writeLoop()

	return r
}

// RecordLint enqueues an audit record for one lint call.
func (r *Recorder) RecordLint(content compliance.Content, platform, vertical, region string, result *compliance.Result) {
	r.enqueue(&evidence.Record{
		ID:             uuid.NewString(),
		Kind:           evidence.KindLint,
		Timestamp:      r.now().UTC(),
		ContentHash:    HashContent(content),
		Platform:       platform,
		Vertical:       vertical,
		Region:         region,
		Score:          result.Score,
		Overall:        string(result.Overall),
		ViolationCount: len(result.Violations),
		ErrorCount:     result.ErrorCount(),
	})
}

// RecordAnalysis enqueues an audit record for one experiment analysis.
func (r *Recorder) RecordAnalysis(exp experiment.Experiment, analysis *experiment.Analysis) {
	r.enqueue(&evidence.Record{
		ID:             uuid.NewString(),
		Kind:           evidence.KindAnalysis,
		Timestamp:      r.now().UTC(),
		ExperimentID:   exp.ID,
		Recommendation: string(analysis.Recommendation),
	})
}

// Dropped returns the number of records dropped due to a full buffer.
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

// enqueue adds a record to the write channel, dropping on overflow.
func (r *Recorder) enqueue(record *evidence.Record) {
	select {
	case r.ch <- record:
	default:
		dropped := r.dropped.Add(1)
		r.logger.Warn("evidence buffer full, record dropped",
			"kind", record.Kind,
			"dropped_total", dropped,
		)
	}
}

// writeLoop drains the channel until Close.
func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	for {
		select {
		case record := <-r.ch:
			r.write(record)
		case <-r.stopCh:
			// Drain whatever is left before exiting.
			for {
				select {
				case record := <-r.ch:
					r.write(record)
				default:
					return
				}
			}
		}
	}
}

// write persists one record with the configured timeout.
func (r *Recorder) write(record *evidence.Record) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.WriteTimeout)
	defer cancel()

	if err := r.backend.Save(ctx, record); err != nil {
		r.logger.Error("failed to save evidence record",
			"record_id", record.ID,
			"kind", record.Kind,
			"error", err,
		)
	}
}

// Close stops the writer after flushing buffered records. The backend is
// not closed; the caller owns it.
func (r *Recorder) Close() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
		r.wg.Wait()
	})
}
