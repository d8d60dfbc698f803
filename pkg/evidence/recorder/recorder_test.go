package recorder

import (
	"context"
	"testing"
	"time"

	"adlint-hq/saturn/pkg/compliance"
	"adlint-hq/saturn/pkg/evidence"
	"adlint-hq/saturn/pkg/evidence/storage"
	"adlint-hq/saturn/pkg/experiment"
)

func TestRecorder_RecordLint(t *testing.T) {
	backend := storage.NewMemoryBackend()
	rec := New(backend, DefaultConfig(), nil)

	content := compliance.Content{Headline: "Guaranteed results!"}
	result := &compliance.Result{
		Overall: compliance.StatusFail,
		Score:   60,
		Violations: []compliance.Violation{
			{Severity: compliance.SeverityError},
			{Severity: compliance.SeverityError},
		},
	}
	rec.RecordLint(content, "meta", "health", "us", result)
	rec.Close()

	records, err := backend.List(context.Background(), evidence.Query{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	got := records[0]
	if got.Kind != evidence.KindLint {
		t.Errorf("expected kind lint, got %q", got.Kind)
	}
	if got.ID == "" {
		t.Error("expected a generated ID")
	}
	if got.ContentHash != HashContent(content) {
		t.Errorf("unexpected content hash %q", got.ContentHash)
	}
	if got.Platform != "meta" || got.Vertical != "health" || got.Region != "us" {
		t.Errorf("unexpected request echo: %+v", got)
	}
	if got.Score != 60 || got.Overall != "fail" {
		t.Errorf("unexpected result echo: %+v", got)
	}
	if got.ViolationCount != 2 || got.ErrorCount != 2 {
		t.Errorf("unexpected counts: %+v", got)
	}
}

func TestRecorder_RecordAnalysis(t *testing.T) {
	backend := storage.NewMemoryBackend()
	rec := New(backend, DefaultConfig(), nil)

	exp := experiment.Experiment{ID: "exp-42"}
	analysis := &experiment.Analysis{Recommendation: experiment.RecommendStopWinner}
	rec.RecordAnalysis(exp, analysis)
	rec.Close()

	records, err := backend.List(context.Background(), evidence.Query{Kind: evidence.KindAnalysis})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ExperimentID != "exp-42" {
		t.Errorf("expected experiment ID, got %q", records[0].ExperimentID)
	}
	if records[0].Recommendation != "stop_winner" {
		t.Errorf("expected recommendation echo, got %q", records[0].Recommendation)
	}
	if records[0].ContentHash != "" {
		t.Errorf("expected no content hash on analysis records, got %q", records[0].ContentHash)
	}
}

func TestRecorder_CloseFlushesBuffer(t *testing.T) {
	backend := storage.NewMemoryBackend()
	rec := New(backend, Config{AsyncBuffer: 100, WriteTimeout: time.Second}, nil)

	for i := 0; i < 50; i++ {
		rec.RecordAnalysis(experiment.Experiment{ID: "exp"}, &experiment.Analysis{})
	}
	rec.Close()

	count, err := backend.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 50 {
		t.Errorf("expected all 50 records flushed, got %d", count)
	}
	if rec.Dropped() != 0 {
		t.Errorf("expected no drops, got %d", rec.Dropped())
	}
}

func TestRecorder_CloseIsIdempotent(t *testing.T) {
	rec := New(storage.NewMemoryBackend(), DefaultConfig(), nil)
	rec.Close()
	rec.Close()
}

func TestHashContent(t *testing.T) {
	t.Run("empty content hashes to empty string", func(t *testing.T) {
		if got := HashContent(compliance.Content{}); got != "" {
			t.Errorf("expected empty hash, got %q", got)
		}
	})

	t.Run("field boundaries matter", func(t *testing.T) {
		a := HashContent(compliance.Content{Headline: "ab", Body: "c"})
		b := HashContent(compliance.Content{Headline: "a", Body: "bc"})
		if a == b {
			t.Error("expected different hashes for different field splits")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		content := compliance.Content{Headline: "h", Body: "b", CTA: "c"}
		if HashContent(content) != HashContent(content) {
			t.Error("expected identical hashes")
		}
	})
}
