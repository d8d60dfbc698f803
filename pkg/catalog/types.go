package catalog

// Definition is the raw, declarative rule catalog. It is the unit of
// configuration: the builtin catalog is a Definition, and operators can
// override individual sections from a YAML file without touching the
// matching logic.
type Definition struct {
	// ProhibitedClaims maps a platform name to a list of claim regexes.
	// The "meta" list is the baseline and always applies in addition to
	// the platform's own list.
	ProhibitedClaims map[string][]string `yaml:"prohibited_claims"`

	// MisleadingPatterns is a list of regexes for misleading language
	// (exaggerated or unverifiable marketing claims).
	MisleadingPatterns []string `yaml:"misleading_patterns"`

	// Trademarks is a list of third-party brand names matched as whole
	// words, case-insensitively.
	Trademarks []string `yaml:"trademarks"`

	// RequiredDisclosures maps a vertical name to the disclosure strings
	// that must appear verbatim in the creative. Verticals not present
	// require no disclosures.
	RequiredDisclosures map[string][]string `yaml:"required_disclosures"`

	// SafeRewrites is the ordered phrase substitution table used to
	// suggest compliant replacements for flagged claims. First match wins.
	SafeRewrites []RewriteRule `yaml:"safe_rewrites"`

	// Packs is the policy pack list, one pack per (vertical, region) pair.
	Packs []PolicyPack `yaml:"policy_packs"`
}

// RewriteRule is one entry in the safe-rewrite table. Match is compared
// case-insensitively as a substring of the flagged text.
type RewriteRule struct {
	// Match is the phrase to look for in flagged text.
	Match string `yaml:"match"`

	// Replace is the compliant replacement phrase.
	Replace string `yaml:"replace"`

	// Explanation describes why the replacement is safer.
	Explanation string `yaml:"explanation"`
}

// PolicyPack bundles prohibited claims, required disclosures, and platform
// rules for one (vertical, region) pair. Packs are read-only reference
// data: they are loaded once at startup and never mutated.
type PolicyPack struct {
	// ID is the unique pack identifier (e.g., "health-us").
	ID string `yaml:"id" json:"id"`

	// Name is the human-readable pack name.
	Name string `yaml:"name" json:"name"`

	// Vertical is the industry vertical the pack applies to.
	Vertical string `yaml:"vertical" json:"vertical"`

	// Region is the regulatory region the pack applies to.
	Region string `yaml:"region" json:"region"`

	// Description summarizes the pack's coverage.
	Description string `yaml:"description" json:"description"`

	// LastUpdated is the date the pack was last revised (YYYY-MM-DD).
	LastUpdated string `yaml:"last_updated" json:"last_updated"`

	// Rules lists platform-specific rules carried by the pack.
	Rules []PackRule `yaml:"rules" json:"rules"`

	// ProhibitedClaims lists the claim phrases the pack prohibits.
	ProhibitedClaims []string `yaml:"prohibited_claims" json:"prohibited_claims"`

	// RequiredDisclosures lists the disclosures the pack requires.
	RequiredDisclosures []string `yaml:"required_disclosures" json:"required_disclosures"`

	// Examples contains compliant and violating sample copy.
	Examples PackExamples `yaml:"examples" json:"examples"`
}

// PackRule is a single platform rule inside a policy pack.
type PackRule struct {
	// Platform is the ad platform the rule applies to (meta, google,
	// linkedin, or all).
	Platform string `yaml:"platform" json:"platform"`

	// Rule is the rule name.
	Rule string `yaml:"rule" json:"rule"`

	// Severity is the rule severity (error, warning, info).
	Severity string `yaml:"severity" json:"severity"`
}

// PackExamples contains sample copy illustrating a policy pack.
type PackExamples struct {
	// Compliant lists example copy that passes the pack.
	Compliant []string `yaml:"compliant" json:"compliant"`

	// Violations lists example copy that violates the pack.
	Violations []string `yaml:"violations" json:"violations"`
}

// PackFilter selects policy packs by vertical and/or region. Zero-value
// fields match everything.
type PackFilter struct {
	Vertical string
	Region   string
}

// matches reports whether the pack satisfies the filter.
func (f PackFilter) matches(p PolicyPack) bool {
	if f.Vertical != "" && p.Vertical != f.Vertical {
		return false
	}
	if f.Region != "" && p.Region != f.Region {
		return false
	}
	return true
}
