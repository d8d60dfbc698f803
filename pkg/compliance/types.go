package compliance

// Severity classifies how serious a violation is.
type Severity string

const (
	// SeverityError blocks publishing.
	SeverityError Severity = "error"
	// SeverityWarning requires review before publishing.
	SeverityWarning Severity = "warning"
	// SeverityInfo is advisory only.
	SeverityInfo Severity = "info"
)

// Category classifies what kind of rule a violation breaks.
type Category string

const (
	CategoryProhibitedClaims    Category = "prohibited_claims"
	CategoryRequiredDisclosures Category = "required_disclosures"
	CategoryContentPolicy       Category = "content_policy"
	CategoryTrademark           Category = "trademark"
	CategoryAdultContent        Category = "adult_content"
	CategoryMisleading          Category = "misleading"
)

// Element identifies which part of the creative a violation was found in.
type Element string

const (
	ElementHeadline Element = "headline"
	ElementBody     Element = "body"
	ElementCTA      Element = "cta"
	ElementImage    Element = "image"
	ElementVideo    Element = "video"
)

// Status is the aggregate outcome of a lint call.
type Status string

const (
	StatusPass    Status = "pass"
	StatusWarning Status = "warning"
	StatusFail    Status = "fail"
)

// Content is the ad creative to lint. All fields are optional; missing
// fields are simply skipped.
type Content struct {
	Headline string `json:"headline,omitempty"`
	Body     string `json:"body,omitempty"`
	CTA      string `json:"cta,omitempty"`
	Media    *Media `json:"media,omitempty"`
}

// Media describes an attached image or video.
type Media struct {
	// Type is "image" or "video".
	Type string `json:"type"`

	// Tags describe the media (e.g., "lifestyle", "before-after").
	Tags []string `json:"tags,omitempty"`

	// DurationSeconds is the video length. Zero for images.
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
}

// Location pins a violation to a character span within one element.
// Present only for text-pattern matches.
type Location struct {
	Element Element `json:"element"`
	Start   int     `json:"start"`
	End     int     `json:"end"`
}

// Regulation names the regulatory basis for a violation.
type Regulation struct {
	// Type is the regulation family: FDA, FTC, GDPR, CCPA, or
	// "Platform Policy".
	Type string `json:"type"`

	// Reference cites the specific rule or guidance.
	Reference string `json:"reference,omitempty"`
}

// Violation is one detected compliance issue. Violations are immutable
// value objects created fresh per lint call; the ID is derived from the
// match itself so repeated scans of the same content produce identical
// violations.
type Violation struct {
	ID          string      `json:"id"`
	Severity    Severity    `json:"severity"`
	Platform    string      `json:"platform"`
	Category    Category    `json:"category"`
	Description string      `json:"description"`
	Suggestion  string      `json:"suggestion,omitempty"`
	Location    *Location   `json:"location,omitempty"`
	Regulation  *Regulation `json:"regulation,omitempty"`
}

// SafeRewrite suggests a compliant replacement for a flagged element.
type SafeRewrite struct {
	// Original is the full element text that was flagged.
	Original string `json:"original"`

	// Rewritten is the element text with the offending phrase replaced.
	Rewritten string `json:"rewritten"`

	// Explanation describes why the rewrite is safer.
	Explanation string `json:"explanation"`
}

// Result is the aggregate outcome of one lint call.
//
// Invariants: Overall is StatusFail exactly when at least one violation
// has SeverityError, and StatusPass exactly when there are no violations.
// ApprovalRequired implies Overall != StatusPass.
type Result struct {
	// Overall is pass, warning, or fail.
	Overall Status `json:"overall"`

	// Score is 0-100: 100 minus 20 per error and 5 per warning,
	// floored at 0.
	Score int `json:"score"`

	// Violations in detection order: headline, body, cta, disclosures,
	// media.
	Violations []Violation `json:"violations"`

	// SafeRewrites holds suggested rewrites, at most one per
	// error-severity violation with a known replacement.
	SafeRewrites []SafeRewrite `json:"safe_rewrites"`

	// ApprovalRequired is true when any error exists, or when the
	// vertical is "health" and any warning exists.
	ApprovalRequired bool `json:"approval_required"`

	// Recommendations is an ordered list of advisory strings.
	Recommendations []string `json:"recommendations"`
}

// ErrorCount returns the number of error-severity violations.
func (r *Result) ErrorCount() int {
	return r.countSeverity(SeverityError)
}

// WarningCount returns the number of warning-severity violations.
func (r *Result) WarningCount() int {
	return r.countSeverity(SeverityWarning)
}

func (r *Result) countSeverity(s Severity) int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == s {
			n++
		}
	}
	return n
}
