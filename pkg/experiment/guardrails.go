package experiment

import "fmt"

// CheckGuardrails evaluates every (guardrail, outcome) pair and returns
// the breaches in evaluation order: guardrails in definition order, each
// checked against outcomes in their original order. Guardrails naming a
// metric an outcome does not report are skipped for that outcome, not
// treated as errors.
func CheckGuardrails(exp Experiment) []Breach {
	var breaches []Breach

	for _, guardrail := range exp.Guardrails {
		for _, outcome := range exp.Outcomes {
			value, ok := outcome.Metrics[guardrail.Metric]
			if !ok {
				continue
			}

			if violation := evaluate(guardrail, value); violation != "" {
				breaches = append(breaches, Breach{
					Guardrail: guardrail,
					Variant:   outcome.Variant,
					Violation: violation,
				})
			}
		}
	}

	return breaches
}

// evaluate checks one metric value against a guardrail and returns a
// description of the breach, or "" when the guardrail holds.
//
// The operators express the healthy condition: greater_than holds when
// the metric exceeds the threshold, less_than when it stays below, and
// between when it lies inside [Min, Max].
func evaluate(g Guardrail, value float64) string {
	switch g.Operator {
	case OperatorGreaterThan:
		if value <= g.Value {
			return fmt.Sprintf("%s is %.2f, expected above %.2f", g.Metric, value, g.Value)
		}
	case OperatorLessThan:
		if value >= g.Value {
			return fmt.Sprintf("%s is %.2f, expected below %.2f", g.Metric, value, g.Value)
		}
	case OperatorBetween:
		if value < g.Min || value > g.Max {
			return fmt.Sprintf("%s is %.2f, expected between %.2f and %.2f", g.Metric, value, g.Min, g.Max)
		}
	}
	return ""
}
