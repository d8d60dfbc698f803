package compliance

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"adlint-hq/saturn/pkg/catalog"
)

// healthEscalationTerms escalate a prohibited-claim match to error
// severity when the vertical is "health".
var healthEscalationTerms = []string{"guarantee", "miracle", "instant", "100%"}

// regulatedTerms escalate a prohibited-claim match to error severity on
// every vertical.
var regulatedTerms = []string{"fda", "doctor", "clinical"}

// beforeAfterPattern flags before/after imagery in media tags.
var beforeAfterPattern = regexp.MustCompile(`(?i)before.*after|comparison|transformation`)

// metaVideoMaxSeconds is the video length above which Meta placements
// reduce reach.
const metaVideoMaxSeconds = 15

// Linter scans ad creative against the rule catalog. It is a pure
// function of its inputs and the current catalog snapshot: the same
// content, platform, vertical, and region always produce an identical
// Result, violation IDs included.
type Linter struct {
	catalog catalog.Provider
	logger  *slog.Logger
}

// NewLinter creates a linter over a catalog provider.
func NewLinter(provider catalog.Provider, logger *slog.Logger) *Linter {
	if provider == nil {
		provider = catalog.NewStaticProvider(catalog.Default())
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Linter{
		catalog: provider,
		logger:  logger,
	}
}

// Lint scans the content and returns the aggregate compliance result.
// It never fails on well-formed input: empty content yields a passing
// result with score 100, and unknown platforms or verticals fall back to
// the baseline pattern set and an empty disclosure list.
func (l *Linter) Lint(content Content, platform, vertical, region string) *Result {
	cat := l.catalog.Current()

	var violations []Violation

	// Detection order is fixed: headline, body, cta, disclosures, media.
	violations = append(violations, l.checkText(cat, content.Headline, ElementHeadline, platform, vertical)...)
	violations = append(violations, l.checkText(cat, content.Body, ElementBody, platform, vertical)...)
	violations = append(violations, l.checkText(cat, content.CTA, ElementCTA, platform, vertical)...)
	violations = append(violations, l.checkDisclosures(cat, content, platform, vertical)...)
	violations = append(violations, l.checkMedia(content.Media, platform)...)

	result := &Result{
		Violations:      violations,
		SafeRewrites:    l.safeRewrites(cat, content, violations),
		Recommendations: nil,
	}

	errorCount := result.ErrorCount()
	warningCount := result.WarningCount()

	result.Score = score(errorCount, warningCount)

	switch {
	case errorCount > 0:
		result.Overall = StatusFail
	case warningCount > 0:
		result.Overall = StatusWarning
	default:
		result.Overall = StatusPass
	}

	result.ApprovalRequired = errorCount > 0 || (vertical == "health" && warningCount > 0)
	result.Recommendations = recommendations(violations, platform, vertical, errorCount, warningCount)

	l.logger.Debug("content linted",
		"platform", platform,
		"vertical", vertical,
		"region", region,
		"overall", result.Overall,
		"score", result.Score,
		"violations", len(violations),
	)

	return result
}

// score computes the 0-100 compliance score.
func score(errorCount, warningCount int) int {
	s := 100 - 20*errorCount - 5*warningCount
	if s < 0 {
		return 0
	}
	return s
}

// checkText scans one text element for prohibited claims, misleading
// language, and trademark references.
func (l *Linter) checkText(cat *catalog.Catalog, text string, element Element, platform, vertical string) []Violation {
	if text == "" {
		return nil
	}

	var violations []Violation

	for _, pattern := range cat.ClaimPatterns(platform) {
		for _, match := range pattern.Regexp.FindAllString(text, -1) {
			// Matches of a repeated substring all map to its first
			// occurrence. Known imprecision, kept deliberately.
			start := strings.Index(text, match)

			violations = append(violations, Violation{
				ID:          violationID("pc", element, pattern.Index, start),
				Severity:    claimSeverity(match, vertical),
				Platform:    platform,
				Category:    CategoryProhibitedClaims,
				Description: fmt.Sprintf("Prohibited claim detected: %q", match),
				Suggestion:  "Remove or rephrase the claim; see the safe rewrite suggestions.",
				Location: &Location{
					Element: element,
					Start:   start,
					End:     start + len(match),
				},
			})
		}
	}

	for _, pattern := range cat.MisleadingPatterns() {
		for _, match := range pattern.Regexp.FindAllString(text, -1) {
			start := strings.Index(text, match)

			violations = append(violations, Violation{
				ID:          violationID("ml", element, pattern.Index, start),
				Severity:    SeverityWarning,
				Platform:    platform,
				Category:    CategoryMisleading,
				Description: fmt.Sprintf("Misleading language: %q", match),
				Suggestion:  "Replace with a specific, substantiated statement.",
				Location: &Location{
					Element: element,
					Start:   start,
					End:     start + len(match),
				},
			})
		}
	}

	for _, trademark := range cat.Trademarks() {
		for _, match := range trademark.Regexp.FindAllString(text, -1) {
			start := strings.Index(text, match)

			violations = append(violations, Violation{
				ID:          violationID("tm", element, trademark.Index, start),
				Severity:    SeverityInfo,
				Platform:    platform,
				Category:    CategoryTrademark,
				Description: fmt.Sprintf("Third-party trademark referenced: %q", match),
				Suggestion:  "Remove the mark or document permission to use it.",
				Location: &Location{
					Element: element,
					Start:   start,
					End:     start + len(match),
				},
			})
		}
	}

	return violations
}

// claimSeverity decides whether a prohibited-claim match is an error.
// Health-vertical content escalates on guarantee-style language; claims
// invoking regulators or medical authority escalate everywhere.
func claimSeverity(match, vertical string) Severity {
	matchLower := strings.ToLower(match)

	if vertical == "health" && containsAny(matchLower, healthEscalationTerms) {
		return SeverityError
	}
	if containsAny(matchLower, regulatedTerms) {
		return SeverityError
	}
	return SeverityWarning
}

// checkDisclosures verifies the vertical's required disclosures appear
// somewhere in the combined creative text.
func (l *Linter) checkDisclosures(cat *catalog.Catalog, content Content, platform, vertical string) []Violation {
	required := cat.DisclosuresFor(vertical)
	if len(required) == 0 {
		return nil
	}

	combined := strings.ToLower(content.Headline + " " + content.Body + " " + content.CTA)

	severity := SeverityWarning
	regulation := &Regulation{Type: "FTC", Reference: "16 CFR Part 255 disclosure guidance"}
	if vertical == "health" {
		severity = SeverityError
		regulation = &Regulation{Type: "FDA", Reference: "DSHEA supplement labeling requirements"}
	}

	var violations []Violation
	for i, disclosure := range required {
		if strings.Contains(combined, strings.ToLower(disclosure)) {
			continue
		}

		violations = append(violations, Violation{
			ID:          fmt.Sprintf("rd-%s-%d", vertical, i),
			Severity:    severity,
			Platform:    platform,
			Category:    CategoryRequiredDisclosures,
			Description: fmt.Sprintf("Missing required disclosure: %q", disclosure),
			Suggestion:  "Add the disclosure verbatim to the creative.",
			Regulation:  regulation,
		})
	}

	return violations
}

// checkMedia applies the media content rules: before/after imagery is
// prohibited outright, and long videos get a reach warning on Meta.
func (l *Linter) checkMedia(media *Media, platform string) []Violation {
	if media == nil {
		return nil
	}

	var violations []Violation

	if media.Type == "image" {
		for i, tag := range media.Tags {
			if !beforeAfterPattern.MatchString(tag) {
				continue
			}

			violations = append(violations, Violation{
				ID:          fmt.Sprintf("cp-image-%d", i),
				Severity:    SeverityError,
				Platform:    platform,
				Category:    CategoryContentPolicy,
				Description: fmt.Sprintf("Before/after imagery is prohibited (tag %q)", tag),
				Suggestion:  "Use lifestyle or product imagery without outcome comparisons.",
				Regulation:  &Regulation{Type: "Platform Policy", Reference: "Personal attributes and health imagery rules"},
			})
			break
		}
	}

	if media.Type == "video" && media.DurationSeconds > metaVideoMaxSeconds && platform == "meta" {
		violations = append(violations, Violation{
			ID:          "cp-video-duration",
			Severity:    SeverityWarning,
			Platform:    platform,
			Category:    CategoryContentPolicy,
			Description: fmt.Sprintf("Video runs %.0fs; Meta placements reduce reach beyond %ds", media.DurationSeconds, metaVideoMaxSeconds),
			Suggestion:  "Cut the video to 15 seconds or less for full distribution.",
			Regulation:  &Regulation{Type: "Platform Policy", Reference: "Meta video ad placement guidance"},
		})
	}

	return violations
}

// safeRewrites builds rewrite suggestions for error-severity violations
// that carry a text span. The first rewrite-table phrase contained in the
// flagged span wins, and the replacement is applied to every occurrence
// of that phrase in the whole element text.
func (l *Linter) safeRewrites(cat *catalog.Catalog, content Content, violations []Violation) []SafeRewrite {
	var rewrites []SafeRewrite

	for _, v := range violations {
		if v.Severity != SeverityError || v.Location == nil {
			continue
		}

		elementText := elementText(content, v.Location.Element)
		if elementText == "" || v.Location.End > len(elementText) {
			continue
		}

		span := strings.ToLower(elementText[v.Location.Start:v.Location.End])

		for _, rule := range cat.Rewrites() {
			if !strings.Contains(span, strings.ToLower(rule.Match)) {
				continue
			}

			re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(rule.Match))
			rewrites = append(rewrites, SafeRewrite{
				Original:    elementText,
				Rewritten:   re.ReplaceAllString(elementText, rule.Replace),
				Explanation: rule.Explanation,
			})
			break
		}
	}

	return rewrites
}

// recommendations builds the ordered advisory list. The sequence is
// fixed: errors, warnings, health guidance, Meta guidance, trademark
// guidance, then the all-clear pair when nothing else applied.
func recommendations(violations []Violation, platform, vertical string, errorCount, warningCount int) []string {
	var recs []string

	if errorCount > 0 {
		recs = append(recs,
			"Address all error-level violations before publishing",
			"Apply the suggested safe rewrites to remove prohibited claims",
		)
	}
	if warningCount > 0 {
		recs = append(recs, "Review warning-level violations to reduce the risk of ad rejection")
	}
	if vertical == "health" {
		recs = append(recs,
			"Include FDA disclaimer language in all health-related creative",
			"Avoid treatment or cure claims unless FDA approval can be cited",
		)
	}
	if platform == "meta" || platform == "all" {
		recs = append(recs, "Review Meta advertising policies for restricted content categories")
	}
	for _, v := range violations {
		if v.Category == CategoryTrademark {
			recs = append(recs, "Remove or license third-party trademarks before publishing")
			break
		}
	}
	if len(recs) == 0 {
		recs = append(recs,
			"Content passed all compliance checks",
			"Keep claims specific and substantiated to stay compliant",
		)
	}

	return recs
}

// elementText returns the text of the named element.
func elementText(content Content, element Element) string {
	switch element {
	case ElementHeadline:
		return content.Headline
	case ElementBody:
		return content.Body
	case ElementCTA:
		return content.CTA
	default:
		return ""
	}
}

// violationID builds a deterministic violation ID from the category
// prefix, element, pattern index, and match offset, so repeated scans of
// identical content de-duplicate cleanly.
func violationID(prefix string, element Element, patternIndex, start int) string {
	return fmt.Sprintf("%s-%s-%d-%d", prefix, element, patternIndex, start)
}

// containsAny reports whether s contains any of the needles.
func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
