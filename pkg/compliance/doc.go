// Package compliance implements the ad-creative linting engine.
//
// The Linter scans free-text creative (headline, body, CTA) plus optional
// media metadata against the rule catalog: prohibited-claim regexes per
// platform, misleading-language patterns, trademark references, required
// disclosures per vertical, and media content rules. It emits an ordered
// violation list, a 0-100 score, safe-rewrite suggestions, and a
// publish-approval gate.
//
// Lint calls are synchronous, stateless, and deterministic over their
// inputs plus the catalog snapshot, so any number of calls may run
// concurrently and callers may memoize results keyed on (content,
// platform, vertical, region).
package compliance
