// Package experiment implements the A/B experiment analysis engine.
//
// Analyze ranks variants by conversion rate, derives confidence from the
// leading variant's caller-supplied significance value, and walks a
// threshold ladder (95% stop, 90% extend, otherwise continue). Guardrail
// breaches overlay the ladder and force a stop regardless of confidence.
//
// The engine performs no hypothesis testing: Significance is a p-value
// shaped number supplied by the caller, and the analyzer trusts it.
// CalculateSampleSize provides closed-form experiment planning.
//
// All functions are pure over their inputs and safe for unbounded
// concurrent use.
package experiment
