// Package retention prunes old scan records on a schedule. Age-based
// pruning removes records past the retention window; count-based pruning
// caps the total record count, oldest first.
package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"adlint-hq/saturn/pkg/evidence"
	"adlint-hq/saturn/pkg/evidence/storage"
)

// Config contains configuration for the retention pruner.
type Config struct {
	// RetentionDays is the number of days to retain records.
	// 0 means keep records forever.
	RetentionDays int

	// MaxRecords caps the total record count. 0 means unlimited.
	MaxRecords int64

	// PruneSchedule is a cron expression for scheduled pruning.
	// Example: "0 3 * * *" (daily at 3 AM). Empty disables scheduling.
	PruneSchedule string
}

// DefaultConfig returns the default retention configuration.
func DefaultConfig() Config {
	return Config{
		RetentionDays: 90,
		PruneSchedule: "0 3 * * *",
	}
}

// Pruner enforces the retention policy on a storage backend.
type Pruner struct {
	backend storage.Backend
	config  Config
	logger  *slog.Logger

	// now is injectable for tests.
	now func() time.Time
}

// NewPruner creates a retention pruner.
func NewPruner(backend storage.Backend, config Config, logger *slog.Logger) *Pruner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pruner{
		backend: backend,
		config:  config,
		logger:  logger.With("component", "evidence.retention"),
		now:     time.Now,
	}
}

// Prune runs one pruning cycle: first by age, then by count. Returns the
// total number of records deleted.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	var totalDeleted int64

	if p.config.RetentionDays > 0 {
		cutoff := p.now().AddDate(0, 0, -p.config.RetentionDays)
		deleted, err := p.backend.DeleteBefore(ctx, cutoff)
		if err != nil {
			return totalDeleted, fmt.Errorf("prune by age failed: %w", err)
		}
		totalDeleted += deleted
	}

	if p.config.MaxRecords > 0 {
		deleted, err := p.pruneByCount(ctx)
		if err != nil {
			return totalDeleted, fmt.Errorf("prune by count failed: %w", err)
		}
		totalDeleted += deleted
	}

	if totalDeleted > 0 {
		p.logger.Info("evidence pruning completed",
			"deleted_count", totalDeleted,
			"retention_days", p.config.RetentionDays,
			"max_records", p.config.MaxRecords,
		)
	}

	return totalDeleted, nil
}

// pruneByCount deletes the oldest records until the total count is back
// under MaxRecords.
func (p *Pruner) pruneByCount(ctx context.Context) (int64, error) {
	count, err := p.backend.Count(ctx)
	if err != nil {
		return 0, err
	}

	excess := count - p.config.MaxRecords
	if excess <= 0 {
		return 0, nil
	}

	// List everything oldest-last, then cut from the tail by timestamp.
	records, err := p.backend.List(ctx, evidence.Query{})
	if err != nil {
		return 0, err
	}
	if int64(len(records)) <= p.config.MaxRecords {
		return 0, nil
	}

	// records is newest-first; the record at MaxRecords-1 is the oldest
	// survivor. Everything strictly older goes.
	boundary := records[p.config.MaxRecords-1].Timestamp
	return p.backend.DeleteBefore(ctx, boundary)
}
