package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"adlint-hq/saturn/pkg/evidence"
)

// SQLiteBackend stores records in a SQLite database. Suitable for
// single-instance deployments where the audit trail must survive
// restarts. WAL mode is enabled for concurrent reader performance.
type SQLiteBackend struct {
	db *sql.DB

	saveStmt   *sql.Stmt
	getStmt    *sql.Stmt
	countStmt  *sql.Stmt
	deleteStmt *sql.Stmt
}

// SQLiteConfig configures the SQLite backend.
type SQLiteConfig struct {
	// DBPath is the path to the database file.
	DBPath string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// NewSQLiteBackend opens (or creates) the database at dbPath with
// default settings.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	return NewSQLiteBackendWithConfig(SQLiteConfig{DBPath: dbPath})
}

// NewSQLiteBackendWithConfig opens the database with custom settings.
func NewSQLiteBackendWithConfig(cfg SQLiteConfig) (*SQLiteBackend, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("db path cannot be empty")
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL",
		cfg.DBPath, int(cfg.BusyTimeout.Milliseconds()))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	backend := &SQLiteBackend{db: db}

	if err := backend.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	if err := backend.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}

	return backend, nil
}

// initSchema creates the scan_records table if it does not exist.
func (s *SQLiteBackend) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scan_records (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		timestamp INTEGER NOT NULL,
		content_hash TEXT,
		platform TEXT,
		vertical TEXT,
		region TEXT,
		score INTEGER,
		overall TEXT,
		violation_count INTEGER,
		error_count INTEGER,
		experiment_id TEXT,
		recommendation TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_scan_records_timestamp ON scan_records(timestamp);
	CREATE INDEX IF NOT EXISTS idx_scan_records_kind ON scan_records(kind);
	`

	_, err := s.db.Exec(schema)
	return err
}

// prepareStatements pre-compiles the hot-path statements.
func (s *SQLiteBackend) prepareStatements() error {
	var err error

	s.saveStmt, err = s.db.Prepare(`
		INSERT INTO scan_records
		(id, kind, timestamp, content_hash, platform, vertical, region,
		 score, overall, violation_count, error_count, experiment_id, recommendation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare save: %w", err)
	}

	s.getStmt, err = s.db.Prepare(`
		SELECT id, kind, timestamp, content_hash, platform, vertical, region,
		       score, overall, violation_count, error_count, experiment_id, recommendation
		FROM scan_records WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("prepare get: %w", err)
	}

	s.countStmt, err = s.db.Prepare(`SELECT COUNT(*) FROM scan_records`)
	if err != nil {
		return fmt.Errorf("prepare count: %w", err)
	}

	s.deleteStmt, err = s.db.Prepare(`DELETE FROM scan_records WHERE timestamp < ?`)
	if err != nil {
		return fmt.Errorf("prepare delete: %w", err)
	}

	return nil
}

// Save persists a record.
func (s *SQLiteBackend) Save(ctx context.Context, record *evidence.Record) error {
	if record == nil {
		return fmt.Errorf("record cannot be nil")
	}
	if record.ID == "" {
		return fmt.Errorf("record ID cannot be empty")
	}

	_, err := s.saveStmt.ExecContext(ctx,
		record.ID,
		string(record.Kind),
		record.Timestamp.UnixNano(),
		record.ContentHash,
		record.Platform,
		record.Vertical,
		record.Region,
		record.Score,
		record.Overall,
		record.ViolationCount,
		record.ErrorCount,
		record.ExperimentID,
		record.Recommendation,
	)
	if err != nil {
		return fmt.Errorf("failed to save record %s: %w", record.ID, err)
	}

	return nil
}

// Get returns the record with the given ID, or ErrNotFound.
func (s *SQLiteBackend) Get(ctx context.Context, id string) (*evidence.Record, error) {
	record, err := scanRecord(s.getStmt.QueryRowContext(ctx, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("record %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record %s: %w", id, err)
	}
	return record, nil
}

// List returns records matching the query, newest first.
func (s *SQLiteBackend) List(ctx context.Context, query evidence.Query) ([]*evidence.Record, error) {
	sqlQuery := `
		SELECT id, kind, timestamp, content_hash, platform, vertical, region,
		       score, overall, violation_count, error_count, experiment_id, recommendation
		FROM scan_records WHERE 1=1`
	var args []any

	if query.Kind != "" {
		sqlQuery += " AND kind = ?"
		args = append(args, string(query.Kind))
	}
	if !query.Since.IsZero() {
		sqlQuery += " AND timestamp >= ?"
		args = append(args, query.Since.UnixNano())
	}

	sqlQuery += " ORDER BY timestamp DESC"
	if query.Limit > 0 {
		sqlQuery += " LIMIT ?"
		args = append(args, query.Limit)
	}

	rows, err := s.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []*evidence.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Count returns the total number of stored records.
func (s *SQLiteBackend) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.countStmt.QueryRowContext(ctx).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// DeleteBefore removes records older than the cutoff.
func (s *SQLiteBackend) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.deleteStmt.ExecContext(ctx, cutoff.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to delete records: %w", err)
	}
	return result.RowsAffected()
}

// Close closes the database.
func (s *SQLiteBackend) Close() error {
	for _, stmt := range []*sql.Stmt{s.saveStmt, s.getStmt, s.countStmt, s.deleteStmt} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return s.db.Close()
}

// rowScanner abstracts *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecord reads one record from a row.
func scanRecord(row rowScanner) (*evidence.Record, error) {
	var record evidence.Record
	var kind string
	var timestamp int64

	err := row.Scan(
		&record.ID,
		&kind,
		&timestamp,
		&record.ContentHash,
		&record.Platform,
		&record.Vertical,
		&record.Region,
		&record.Score,
		&record.Overall,
		&record.ViolationCount,
		&record.ErrorCount,
		&record.ExperimentID,
		&record.Recommendation,
	)
	if err != nil {
		return nil, err
	}

	record.Kind = evidence.Kind(kind)
	record.Timestamp = time.Unix(0, timestamp).UTC()
	return &record, nil
}
