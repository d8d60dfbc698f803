package experiment

// Recommendation is the analyzer's verdict on what to do next.
type Recommendation string

const (
	// RecommendContinue keeps the experiment running unchanged.
	RecommendContinue Recommendation = "continue"
	// RecommendStopWinner stops the experiment and promotes the winner.
	RecommendStopWinner Recommendation = "stop_winner"
	// RecommendStopLoser stops the experiment because a guardrail broke.
	RecommendStopLoser Recommendation = "stop_loser"
	// RecommendExtendDuration extends the run to reach significance.
	RecommendExtendDuration Recommendation = "extend_duration"
)

// Decision is a per-variant judgment carried on an outcome. It is
// informative input only; the analyzer recomputes its own judgment and
// never trusts a pre-set decision.
type Decision string

const (
	DecisionWinner   Decision = "winner"
	DecisionLoser    Decision = "loser"
	DecisionContinue Decision = "continue"
)

// Operator compares a metric against a guardrail threshold.
type Operator string

const (
	OperatorGreaterThan Operator = "greater_than"
	OperatorLessThan    Operator = "less_than"
	OperatorBetween     Operator = "between"
)

// Action is what a breached guardrail asks for.
type Action string

const (
	ActionPause   Action = "pause"
	ActionAlert   Action = "alert"
	ActionPromote Action = "promote"
)

// Design holds the experiment's statistical parameters.
type Design struct {
	// Type is the experiment type (e.g., "ab", "multivariate").
	Type string `json:"type"`

	// MinSampleSize is the planned minimum sample per variant.
	MinSampleSize int `json:"min_sample_size"`

	// Power is the planned statistical power (e.g., 0.8).
	Power float64 `json:"power"`

	// SignificanceLevel is the alpha threshold a variant's p-value must
	// meet to count as a significant winner (e.g., 0.05).
	SignificanceLevel float64 `json:"significance_level"`

	// DurationDays is the planned run length.
	DurationDays int `json:"duration_days"`
}

// Variant is one arm of the experiment.
type Variant struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Allocation float64 `json:"allocation"`
}

// Outcome is the observed result for one variant. Metrics is an open
// map; impressions, clicks, conversions, ctr, cpa, and spend are the
// conventional keys, with roas optional.
type Outcome struct {
	// Variant is the variant ID the outcome belongs to.
	Variant string `json:"variant"`

	// Metrics maps metric names to observed values.
	Metrics map[string]float64 `json:"metrics"`

	// Significance is the variant's p-value versus baseline, supplied by
	// the caller. Smaller means stronger evidence. The analyzer consumes
	// this figure; it performs no hypothesis test of its own.
	Significance float64 `json:"significance"`

	// Lift is the signed percent change versus baseline.
	Lift float64 `json:"lift"`

	// Decision is the caller's prior judgment, if any. Informative only.
	Decision Decision `json:"decision,omitempty"`
}

// Guardrail is an automated metric threshold checked during analysis.
// Value holds the threshold for greater_than and less_than; Min and Max
// hold the allowed range for between.
type Guardrail struct {
	Metric   string   `json:"metric"`
	Operator Operator `json:"operator"`
	Value    float64  `json:"value,omitempty"`
	Min      float64  `json:"min,omitempty"`
	Max      float64  `json:"max,omitempty"`
	Action   Action   `json:"action"`
}

// Experiment is the record the analyzer consumes. It is owned by the
// caller; the analyzer never mutates it.
type Experiment struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Design     Design      `json:"design"`
	Variants   []Variant   `json:"variants"`
	Guardrails []Guardrail `json:"guardrails"`
	Outcomes   []Outcome   `json:"outcomes"`
	Status     string      `json:"status"`
}

// Breach reports one guardrail violated by one outcome.
type Breach struct {
	// Guardrail is the breached guardrail.
	Guardrail Guardrail `json:"guardrail"`

	// Variant is the outcome whose metric broke the guardrail.
	Variant string `json:"variant"`

	// Violation is a human-readable description of the breach.
	Violation string `json:"violation"`
}

// Analysis is the analyzer's output, created fresh per call and never
// persisted by the engine itself.
type Analysis struct {
	// HasWinner is true when the top-ranked variant's p-value meets the
	// design's significance level.
	HasWinner bool `json:"has_winner"`

	// WinnerVariant is set only when HasWinner is true.
	WinnerVariant string `json:"winner_variant,omitempty"`

	// Confidence is (1 - winner p-value) * 100, in the range 0-100.
	Confidence float64 `json:"confidence"`

	// Significance is the candidate winner's raw p-value.
	Significance float64 `json:"significance"`

	// Recommendation is the verdict: continue, stop_winner, stop_loser,
	// or extend_duration.
	Recommendation Recommendation `json:"recommendation"`

	// Reasoning is the ordered human-readable rationale.
	Reasoning []string `json:"reasoning"`

	// NextActions is the ordered list of suggested operator actions.
	NextActions []string `json:"next_actions"`
}
