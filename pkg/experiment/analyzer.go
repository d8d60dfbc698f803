package experiment

import (
	"fmt"
	"sort"
)

// Thresholds for the recommendation ladder, in confidence percent.
const (
	// stopWinnerConfidence is the confidence at which a significant
	// leader is declared the winner.
	stopWinnerConfidence = 95
	// extendConfidence is the confidence at which the run is extended to
	// chase significance.
	extendConfidence = 90
)

// Analyze ranks the experiment's outcomes, derives confidence from the
// leading variant's caller-supplied p-value, walks the recommendation
// ladder, and overlays guardrail breaches. It is deterministic over the
// experiment's outcomes, design, and guardrails, and never fails: an
// experiment with no outcomes yields the insufficient-data analysis.
//
// Analyze is a ranking and threshold state machine, not a statistical
// test. Each outcome's Significance is trusted as supplied; no p-value
// is computed here.
func Analyze(exp Experiment) *Analysis {
	if len(exp.Outcomes) == 0 {
		return &Analysis{
			HasWinner:      false,
			Confidence:     0,
			Significance:   1,
			Recommendation: RecommendContinue,
			Reasoning:      []string{"Insufficient data to analyze"},
			NextActions:    []string{"Wait for more data to collect"},
		}
	}

	ranked := rankByConversionRate(exp.Outcomes)
	best := ranked[0]

	hasWinner := best.Significance <= exp.Design.SignificanceLevel
	confidence := (1 - best.Significance) * 100

	analysis := &Analysis{
		HasWinner:    hasWinner,
		Confidence:   confidence,
		Significance: best.Significance,
	}
	if hasWinner {
		analysis.WinnerVariant = best.Variant
	}

	switch {
	case confidence >= stopWinnerConfidence && hasWinner:
		analysis.Recommendation = RecommendStopWinner
		analysis.Reasoning = []string{
			fmt.Sprintf("Variant %s leads with %.1f%% confidence", best.Variant, confidence),
			fmt.Sprintf("Observed lift of %+.1f%% versus baseline", best.Lift),
		}
		analysis.NextActions = []string{
			"Scale the winning variant",
			"Archive losing variants",
		}

	case confidence >= extendConfidence:
		analysis.Recommendation = RecommendExtendDuration
		analysis.Reasoning = []string{
			fmt.Sprintf("Variant %s is trending toward significance at %.1f%% confidence but is not yet confirmed", best.Variant, confidence),
		}
		analysis.NextActions = []string{
			"Extend experiment duration by 3-7 days",
			"Monitor for significance threshold",
		}

	default:
		analysis.Recommendation = RecommendContinue
		analysis.Reasoning = []string{
			fmt.Sprintf("Confidence is %.1f%%; not enough evidence to call a winner", confidence),
		}
		analysis.NextActions = []string{
			"Continue collecting data",
			"Check sample size requirements",
		}
	}

	// Guardrails override the ladder: any breach anywhere forces a stop,
	// regardless of how confident the leader looks.
	breaches := CheckGuardrails(exp)
	if len(breaches) > 0 {
		analysis.Recommendation = RecommendStopLoser
		for _, breach := range breaches {
			analysis.Reasoning = append(analysis.Reasoning,
				fmt.Sprintf("Guardrail breached on variant %s: %s", breach.Variant, breach.Violation))
			analysis.NextActions = append(analysis.NextActions, guardrailNextAction(breach.Guardrail.Action))
		}
	}

	return analysis
}

// rankByConversionRate returns the outcomes sorted descending by
// conversions per click. Clicks are floored at 1 so zero-click outcomes
// rank by raw conversions instead of dividing by zero. Ties keep their
// original order.
func rankByConversionRate(outcomes []Outcome) []Outcome {
	ranked := make([]Outcome, len(outcomes))
	copy(ranked, outcomes)

	sort.SliceStable(ranked, func(i, j int) bool {
		return conversionRate(ranked[i]) > conversionRate(ranked[j])
	})

	return ranked
}

// conversionRate is the conversion-per-click proxy used for ranking.
func conversionRate(o Outcome) float64 {
	clicks := o.Metrics["clicks"]
	if clicks < 1 {
		clicks = 1
	}
	return o.Metrics["conversions"] / clicks
}

// guardrailNextAction maps a guardrail action to the operator step it
// calls for.
func guardrailNextAction(action Action) string {
	switch action {
	case ActionPause:
		return "Pause affected variants pending review"
	case ActionPromote:
		return "Promote the protected variant and stop the rest"
	default:
		return "Alert the experiment owner"
	}
}
