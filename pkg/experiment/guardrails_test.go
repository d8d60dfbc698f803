package experiment

import "testing"

func TestCheckGuardrails(t *testing.T) {
	tests := []struct {
		name       string
		guardrails []Guardrail
		outcomes   []Outcome
		wantCount  int
		wantFirst  string
	}{
		{
			name: "greater_than breached at the boundary",
			guardrails: []Guardrail{
				{Metric: "conversion_rate", Operator: OperatorGreaterThan, Value: 0.02, Action: ActionAlert},
			},
			outcomes: []Outcome{
				{Variant: "variant-a", Metrics: map[string]float64{"conversion_rate": 0.02}},
			},
			wantCount: 1,
			wantFirst: "conversion_rate is 0.02, expected above 0.02",
		},
		{
			name: "greater_than holds above the threshold",
			guardrails: []Guardrail{
				{Metric: "conversion_rate", Operator: OperatorGreaterThan, Value: 0.02, Action: ActionAlert},
			},
			outcomes: []Outcome{
				{Variant: "variant-a", Metrics: map[string]float64{"conversion_rate": 0.03}},
			},
			wantCount: 0,
		},
		{
			name: "less_than breached at the boundary",
			guardrails: []Guardrail{
				{Metric: "cost_per_conversion", Operator: OperatorLessThan, Value: 50, Action: ActionPause},
			},
			outcomes: []Outcome{
				{Variant: "variant-a", Metrics: map[string]float64{"cost_per_conversion": 50}},
			},
			wantCount: 1,
			wantFirst: "cost_per_conversion is 50.00, expected below 50.00",
		},
		{
			name: "between holds inside the range",
			guardrails: []Guardrail{
				{Metric: "frequency", Operator: OperatorBetween, Min: 1, Max: 3, Action: ActionAlert},
			},
			outcomes: []Outcome{
				{Variant: "variant-a", Metrics: map[string]float64{"frequency": 2}},
			},
			wantCount: 0,
		},
		{
			name: "between breached below the range",
			guardrails: []Guardrail{
				{Metric: "frequency", Operator: OperatorBetween, Min: 1, Max: 3, Action: ActionAlert},
			},
			outcomes: []Outcome{
				{Variant: "variant-a", Metrics: map[string]float64{"frequency": 0.5}},
			},
			wantCount: 1,
			wantFirst: "frequency is 0.50, expected between 1.00 and 3.00",
		},
		{
			name: "between breached above the range",
			guardrails: []Guardrail{
				{Metric: "frequency", Operator: OperatorBetween, Min: 1, Max: 3, Action: ActionAlert},
			},
			outcomes: []Outcome{
				{Variant: "variant-a", Metrics: map[string]float64{"frequency": 5}},
			},
			wantCount: 1,
			wantFirst: "frequency is 5.00, expected between 1.00 and 3.00",
		},
		{
			name: "missing metric is skipped",
			guardrails: []Guardrail{
				{Metric: "bounce_rate", Operator: OperatorLessThan, Value: 0.6, Action: ActionAlert},
			},
			outcomes: []Outcome{
				{Variant: "variant-a", Metrics: map[string]float64{"clicks": 100}},
			},
			wantCount: 0,
		},
		{
			name: "every pair is evaluated in order",
			guardrails: []Guardrail{
				{Metric: "bounce_rate", Operator: OperatorLessThan, Value: 0.6, Action: ActionAlert},
				{Metric: "conversion_rate", Operator: OperatorGreaterThan, Value: 0.01, Action: ActionPause},
			},
			outcomes: []Outcome{
				{Variant: "control", Metrics: map[string]float64{"bounce_rate": 0.7, "conversion_rate": 0.05}},
				{Variant: "variant-a", Metrics: map[string]float64{"bounce_rate": 0.8, "conversion_rate": 0.005}},
			},
			wantCount: 3,
			wantFirst: "bounce_rate is 0.70, expected below 0.60",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breaches := CheckGuardrails(Experiment{
				Guardrails: tt.guardrails,
				Outcomes:   tt.outcomes,
			})

			if len(breaches) != tt.wantCount {
				t.Fatalf("expected %d breaches, got %d: %+v", tt.wantCount, len(breaches), breaches)
			}
			if tt.wantCount > 0 && breaches[0].Violation != tt.wantFirst {
				t.Errorf("expected first violation %q, got %q", tt.wantFirst, breaches[0].Violation)
			}
		})
	}
}
