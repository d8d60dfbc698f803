package experiment

import (
	"reflect"
	"testing"
)

func outcome(variant string, clicks, conversions, significance, lift float64) Outcome {
	return Outcome{
		Variant: variant,
		Metrics: map[string]float64{
			"clicks":      clicks,
			"conversions": conversions,
		},
		Significance: significance,
		Lift:         lift,
	}
}

func TestAnalyze_NoOutcomes(t *testing.T) {
	analysis := Analyze(Experiment{ID: "exp-1"})

	if analysis.HasWinner {
		t.Error("expected no winner")
	}
	if analysis.Confidence != 0 {
		t.Errorf("expected confidence 0, got %v", analysis.Confidence)
	}
	if analysis.Significance != 1 {
		t.Errorf("expected significance 1, got %v", analysis.Significance)
	}
	if analysis.Recommendation != RecommendContinue {
		t.Errorf("expected continue, got %q", analysis.Recommendation)
	}
	if !reflect.DeepEqual(analysis.Reasoning, []string{"Insufficient data to analyze"}) {
		t.Errorf("unexpected reasoning: %v", analysis.Reasoning)
	}
	if !reflect.DeepEqual(analysis.NextActions, []string{"Wait for more data to collect"}) {
		t.Errorf("unexpected next actions: %v", analysis.NextActions)
	}
}

func TestAnalyze_RecommendationLadder(t *testing.T) {
	tests := []struct {
		name               string
		significance       float64
		wantRecommendation Recommendation
		wantHasWinner      bool
		wantConfidence     float64
	}{
		{
			name:               "confident and significant stops with a winner",
			significance:       0.04,
			wantRecommendation: RecommendStopWinner,
			wantHasWinner:      true,
			wantConfidence:     96,
		},
		{
			name:               "significance boundary counts as a winner",
			significance:       0.05,
			wantRecommendation: RecommendStopWinner,
			wantHasWinner:      true,
			wantConfidence:     95,
		},
		{
			name:               "trending but not significant extends the run",
			significance:       0.08,
			wantRecommendation: RecommendExtendDuration,
			wantHasWinner:      false,
			wantConfidence:     92,
		},
		{
			name:               "extend boundary at 90 percent",
			significance:       0.1,
			wantRecommendation: RecommendExtendDuration,
			wantHasWinner:      false,
			wantConfidence:     90,
		},
		{
			name:               "low confidence continues",
			significance:       0.2,
			wantRecommendation: RecommendContinue,
			wantHasWinner:      false,
			wantConfidence:     80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := Experiment{
				ID:     "exp-ladder",
				Design: Design{SignificanceLevel: 0.05},
				Outcomes: []Outcome{
					outcome("control", 1000, 50, 0.5, 0),
					outcome("variant-a", 1000, 80, tt.significance, 60),
				},
			}

			analysis := Analyze(exp)

			if analysis.Recommendation != tt.wantRecommendation {
				t.Errorf("expected %q, got %q", tt.wantRecommendation, analysis.Recommendation)
			}
			if analysis.HasWinner != tt.wantHasWinner {
				t.Errorf("expected HasWinner=%v, got %v", tt.wantHasWinner, analysis.HasWinner)
			}
			if analysis.Confidence != tt.wantConfidence {
				t.Errorf("expected confidence %v, got %v", tt.wantConfidence, analysis.Confidence)
			}
			if tt.wantHasWinner && analysis.WinnerVariant != "variant-a" {
				t.Errorf("expected winner variant-a, got %q", analysis.WinnerVariant)
			}
			if !tt.wantHasWinner && analysis.WinnerVariant != "" {
				t.Errorf("expected no winner variant, got %q", analysis.WinnerVariant)
			}
		})
	}
}

func TestAnalyze_StopWinnerDetails(t *testing.T) {
	exp := Experiment{
		Design: Design{SignificanceLevel: 0.05},
		Outcomes: []Outcome{
			outcome("control", 1000, 50, 0.5, 0),
			outcome("variant-a", 1000, 80, 0.02, 60),
		},
	}

	analysis := Analyze(exp)

	wantReasoning := []string{
		"Variant variant-a leads with 98.0% confidence",
		"Observed lift of +60.0% versus baseline",
	}
	if !reflect.DeepEqual(analysis.Reasoning, wantReasoning) {
		t.Errorf("expected reasoning %v, got %v", wantReasoning, analysis.Reasoning)
	}

	wantActions := []string{"Scale the winning variant", "Archive losing variants"}
	if !reflect.DeepEqual(analysis.NextActions, wantActions) {
		t.Errorf("expected next actions %v, got %v", wantActions, analysis.NextActions)
	}
}

func TestAnalyze_RanksByConversionRate(t *testing.T) {
	// variant-b has the best conversion rate and must lead the analysis,
	// regardless of outcome order.
	exp := Experiment{
		Design: Design{SignificanceLevel: 0.05},
		Outcomes: []Outcome{
			outcome("control", 1000, 50, 0.5, 0),
			outcome("variant-a", 1000, 60, 0.3, 20),
			outcome("variant-b", 1000, 90, 0.01, 80),
		},
	}

	analysis := Analyze(exp)

	if analysis.WinnerVariant != "variant-b" {
		t.Errorf("expected variant-b to win, got %q", analysis.WinnerVariant)
	}
	if analysis.Significance != 0.01 {
		t.Errorf("expected the leader's significance, got %v", analysis.Significance)
	}
}

func TestAnalyze_ZeroClicksRankByRawConversions(t *testing.T) {
	// Clicks floor at 1, so a zero-click outcome ranks by raw conversions.
	exp := Experiment{
		Design: Design{SignificanceLevel: 0.05},
		Outcomes: []Outcome{
			outcome("control", 1000, 50, 0.5, 0),
			{
				Variant:      "variant-a",
				Metrics:      map[string]float64{"clicks": 0, "conversions": 3},
				Significance: 0.01,
			},
		},
	}

	analysis := Analyze(exp)

	// 3 conversions / 1 floored click beats 50/1000.
	if analysis.WinnerVariant != "variant-a" {
		t.Errorf("expected variant-a to lead, got winner %q", analysis.WinnerVariant)
	}
}

func TestAnalyze_GuardrailOverride(t *testing.T) {
	exp := Experiment{
		Design: Design{SignificanceLevel: 0.05},
		Guardrails: []Guardrail{
			{Metric: "bounce_rate", Operator: OperatorLessThan, Value: 0.6, Action: ActionPause},
		},
		Outcomes: []Outcome{
			outcome("control", 1000, 50, 0.5, 0),
			{
				Variant: "variant-a",
				Metrics: map[string]float64{
					"clicks":      1000,
					"conversions": 90,
					"bounce_rate": 0.75,
				},
				Significance: 0.01,
				Lift:         80,
			},
		},
	}

	analysis := Analyze(exp)

	// The leader is confident and significant, but the breach wins.
	if analysis.Recommendation != RecommendStopLoser {
		t.Errorf("expected stop_loser, got %q", analysis.Recommendation)
	}
	if !analysis.HasWinner {
		t.Error("expected HasWinner to survive the override")
	}

	found := false
	for _, r := range analysis.Reasoning {
		if r == "Guardrail breached on variant variant-a: bounce_rate is 0.75, expected below 0.60" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected breach reasoning, got %v", analysis.Reasoning)
	}

	foundAction := false
	for _, a := range analysis.NextActions {
		if a == "Pause affected variants pending review" {
			foundAction = true
		}
	}
	if !foundAction {
		t.Errorf("expected pause next action, got %v", analysis.NextActions)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	exp := Experiment{
		Design: Design{SignificanceLevel: 0.05},
		Guardrails: []Guardrail{
			{Metric: "cost_per_conversion", Operator: OperatorLessThan, Value: 50, Action: ActionAlert},
		},
		Outcomes: []Outcome{
			outcome("control", 1000, 50, 0.5, 0),
			outcome("variant-a", 1000, 80, 0.03, 60),
		},
	}

	first := Analyze(exp)
	second := Analyze(exp)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical analyses for identical input")
	}
}

func TestGuardrailNextAction(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionPause, "Pause affected variants pending review"},
		{ActionPromote, "Promote the protected variant and stop the rest"},
		{ActionAlert, "Alert the experiment owner"},
		{Action("unknown"), "Alert the experiment owner"},
	}

	for _, tt := range tests {
		if got := guardrailNextAction(tt.action); got != tt.want {
			t.Errorf("guardrailNextAction(%q) = %q, want %q", tt.action, got, tt.want)
		}
	}
}
