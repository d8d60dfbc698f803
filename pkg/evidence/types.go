// Package evidence defines the immutable scan-record type persisted as
// the service's audit trail. Records capture what was decided, not the
// creative itself: content is stored only as a SHA-256 hash.
package evidence

import "time"

// Kind distinguishes the operation a record documents.
type Kind string

const (
	// KindLint records a compliance lint call.
	KindLint Kind = "lint"
	// KindAnalysis records an experiment analysis call.
	KindAnalysis Kind = "experiment_analysis"
)

// Record is one immutable audit entry. Records are written once by the
// recorder and never updated.
type Record struct {
	// ID is a UUID assigned at record time.
	ID string `json:"id"`

	// Kind is the operation documented.
	Kind Kind `json:"kind"`

	// Timestamp is when the operation ran (UTC).
	Timestamp time.Time `json:"timestamp"`

	// ContentHash is the SHA-256 of the linted creative, hex encoded.
	// Empty for analysis records.
	ContentHash string `json:"content_hash,omitempty"`

	// Platform, Vertical, and Region echo the lint request. Empty for
	// analysis records.
	Platform string `json:"platform,omitempty"`
	Vertical string `json:"vertical,omitempty"`
	Region   string `json:"region,omitempty"`

	// Score and Overall echo the lint result.
	Score   int    `json:"score,omitempty"`
	Overall string `json:"overall,omitempty"`

	// ViolationCount and ErrorCount summarize the lint result.
	ViolationCount int `json:"violation_count,omitempty"`
	ErrorCount     int `json:"error_count,omitempty"`

	// ExperimentID and Recommendation echo the analysis. Empty for lint
	// records.
	ExperimentID   string `json:"experiment_id,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

// Query filters record listings. Zero-value fields match everything.
type Query struct {
	// Kind restricts the record kind.
	Kind Kind

	// Since restricts to records at or after this time.
	Since time.Time

	// Limit caps the number of returned records. Zero means no cap.
	Limit int
}
