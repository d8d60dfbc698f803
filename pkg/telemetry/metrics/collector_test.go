package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"adlint-hq/saturn/pkg/compliance"
	"adlint-hq/saturn/pkg/experiment"
)

func TestCollector_ObserveLint(t *testing.T) {
	collector := NewCollector(nil)

	result := &compliance.Result{
		Overall: compliance.StatusFail,
		Score:   60,
		Violations: []compliance.Violation{
			{Severity: compliance.SeverityError, Category: compliance.CategoryProhibitedClaims},
			{Severity: compliance.SeverityError, Category: compliance.CategoryProhibitedClaims},
			{Severity: compliance.SeverityWarning, Category: compliance.CategoryMisleading},
		},
	}

	collector.ObserveLint("meta", "health", result, 500*time.Microsecond)
	collector.ObserveLint("meta", "health", result, 300*time.Microsecond)

	count := testutil.ToFloat64(collector.lintTotal.WithLabelValues("meta", "health", "fail"))
	if count != 2 {
		t.Errorf("expected 2 lint calls, got %v", count)
	}

	errors := testutil.ToFloat64(collector.violationTotal.WithLabelValues("error", "prohibited_claims"))
	if errors != 4 {
		t.Errorf("expected 4 error violations, got %v", errors)
	}

	warnings := testutil.ToFloat64(collector.violationTotal.WithLabelValues("warning", "misleading"))
	if warnings != 2 {
		t.Errorf("expected 2 warning violations, got %v", warnings)
	}
}

func TestCollector_ObserveAnalysis(t *testing.T) {
	collector := NewCollector(nil)

	analysis := &experiment.Analysis{Recommendation: experiment.RecommendStopLoser}
	breaches := []experiment.Breach{
		{Guardrail: experiment.Guardrail{Metric: "bounce_rate"}},
		{Guardrail: experiment.Guardrail{Metric: "bounce_rate"}},
		{Guardrail: experiment.Guardrail{Metric: "cost_per_conversion"}},
	}

	collector.ObserveAnalysis(analysis, breaches)

	count := testutil.ToFloat64(collector.analysisTotal.WithLabelValues("stop_loser"))
	if count != 1 {
		t.Errorf("expected 1 analysis, got %v", count)
	}

	bounces := testutil.ToFloat64(collector.breachTotal.WithLabelValues("bounce_rate"))
	if bounces != 2 {
		t.Errorf("expected 2 bounce_rate breaches, got %v", bounces)
	}
}

func TestCollector_Handler(t *testing.T) {
	collector := NewCollector(nil)
	collector.ObserveLint("meta", "general", &compliance.Result{Overall: compliance.StatusPass, Score: 100}, time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "saturn_lint_total") {
		t.Error("expected saturn_lint_total in the exposition")
	}
	if !strings.Contains(body, "saturn_lint_score") {
		t.Error("expected saturn_lint_score in the exposition")
	}
}

func TestCollector_IsolatedRegistries(t *testing.T) {
	a := NewCollector(nil)
	b := NewCollector(nil)

	a.ObserveAnalysis(&experiment.Analysis{Recommendation: experiment.RecommendContinue}, nil)

	if got := testutil.ToFloat64(b.analysisTotal.WithLabelValues("continue")); got != 0 {
		t.Errorf("expected isolated registries, got %v", got)
	}
}
