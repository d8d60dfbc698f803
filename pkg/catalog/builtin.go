package catalog

// Builtin returns the default rule catalog shipped with the service.
// The returned Definition is a fresh copy; callers may merge overrides
// into it without affecting later calls.
func Builtin() Definition {
	return Definition{
		ProhibitedClaims: map[string][]string{
			// The meta list is the baseline: it always applies, regardless
			// of which platform is being linted.
			"meta": {
				`guaranteed?\s+(results?|weight\s+loss|income|returns?)`,
				`miracle\s+(cure|product|solution|treatment)`,
				`instant(ly)?\s+(cures?|fix(es)?|results?|relief)`,
				`100%\s+(safe|effective|natural|guaranteed)`,
				`(cures?|treats?|prevents?)\s+(cancer|diabetes|covid|depression|anxiety)`,
				`fda\s+approved`,
				`doctor\s+recommended`,
				`clinical(ly)?\s+proven`,
				`risk[-\s]free`,
				`lose\s+\d+\s+(pounds|lbs|kilos|kg)`,
			},
			"google": {
				`get\s+rich\s+quick`,
				`double\s+your\s+(money|income|investment)`,
				`earn\s+\$?\d+[,\d]*\s+(per|a)\s+(day|week|month)`,
				`no\s+credit\s+check`,
			},
			"linkedin": {
				`guaranteed?\s+(job|employment|placement|interview)`,
				`no\s+experience\s+(necessary|needed|required)`,
				`unlimited\s+earning\s+potential`,
			},
		},
		MisleadingPatterns: []string{
			`as\s+seen\s+on\s+tv`,
			`#1\s+(best|top|leading)`,
			`scientifically\s+proven`,
			`all[-\s]natural`,
			`chemical[-\s]free`,
		},
		Trademarks: []string{
			"nike", "adidas", "apple", "google", "microsoft", "amazon",
			"disney", "coca-cola", "pepsi", "mcdonald's", "starbucks",
			"samsung", "sony", "toyota", "bmw", "gucci", "rolex", "ferrari",
		},
		RequiredDisclosures: map[string][]string{
			"health": {
				"These statements have not been evaluated by the FDA",
				"This product is not intended to diagnose, treat, cure, or prevent any disease",
				"Consult your physician before use",
			},
			"financial": {
				"Past performance does not guarantee future results",
				"Investing involves risk, including possible loss of principal",
			},
			"weight_loss": {
				"Results not typical",
				"Individual results may vary",
			},
			"employment": {
				"Equal opportunity employer",
			},
		},
		SafeRewrites: []RewriteRule{
			{Match: "guaranteed results", Replace: "potential results", Explanation: "Outcome guarantees are prohibited; frame benefits as possibilities."},
			{Match: "guaranteed weight loss", Replace: "support for your weight goals", Explanation: "Weight-loss guarantees are prohibited on all major platforms."},
			{Match: "guaranteed income", Replace: "income opportunity", Explanation: "Earnings guarantees violate financial advertising policies."},
			{Match: "guaranteed", Replace: "designed to help", Explanation: "Absolute guarantees invite rejection; describe intent instead."},
			{Match: "miracle cure", Replace: "promising option", Explanation: "Cure claims require regulatory approval and cannot be implied."},
			{Match: "miracle", Replace: "remarkable", Explanation: "\"Miracle\" overstates efficacy and is flagged by ad review."},
			{Match: "instant results", Replace: "fast-acting support", Explanation: "Instant-effect claims are treated as deceptive."},
			{Match: "instantly", Replace: "quickly", Explanation: "Soften immediacy claims to avoid deception flags."},
			{Match: "100% safe", Replace: "generally well tolerated", Explanation: "Absolute safety claims cannot be substantiated."},
			{Match: "fda approved", Replace: "manufactured in an FDA-registered facility", Explanation: "FDA approval may only be claimed with an actual approval letter."},
			{Match: "doctor recommended", Replace: "developed with healthcare input", Explanation: "Professional endorsements require documented substantiation."},
			{Match: "clinically proven", Replace: "supported by research", Explanation: "\"Proven\" requires published clinical evidence; cite studies instead."},
			{Match: "risk-free", Replace: "backed by our refund policy", Explanation: "Risk-free claims are restricted; point at the concrete policy."},
		},
		Packs: builtinPacks(),
	}
}

// builtinPacks returns the default policy pack list.
func builtinPacks() []PolicyPack {
	return []PolicyPack{
		{
			ID:          "health-us",
			Name:        "Health & Wellness (US)",
			Vertical:    "health",
			Region:      "us",
			Description: "FDA and FTC requirements for supplements, devices, and wellness products marketed in the United States.",
			LastUpdated: "2026-05-12",
			Rules: []PackRule{
				{Platform: "all", Rule: "no_cure_claims", Severity: "error"},
				{Platform: "all", Rule: "fda_disclaimer_required", Severity: "error"},
				{Platform: "meta", Rule: "no_before_after_imagery", Severity: "error"},
			},
			ProhibitedClaims:    []string{"cures", "miracle", "FDA approved", "clinically proven"},
			RequiredDisclosures: []string{"These statements have not been evaluated by the FDA", "This product is not intended to diagnose, treat, cure, or prevent any disease", "Consult your physician before use"},
			Examples: PackExamples{
				Compliant:  []string{"Supports your daily wellness routine.*"},
				Violations: []string{"Miracle cure for joint pain - guaranteed results!"},
			},
		},
		{
			ID:          "health-eu",
			Name:        "Health & Wellness (EU)",
			Vertical:    "health",
			Region:      "eu",
			Description: "EFSA-aligned claim restrictions and GDPR-aware data collection rules for EU health advertising.",
			LastUpdated: "2026-04-03",
			Rules: []PackRule{
				{Platform: "all", Rule: "authorised_claims_only", Severity: "error"},
				{Platform: "all", Rule: "gdpr_consent_language", Severity: "warning"},
			},
			ProhibitedClaims:    []string{"cures", "prevents disease", "clinically proven"},
			RequiredDisclosures: []string{"Food supplements are not a substitute for a varied diet"},
			Examples: PackExamples{
				Compliant:  []string{"Vitamin C contributes to normal immune function."},
				Violations: []string{"Prevents colds and flu all winter long."},
			},
		},
		{
			ID:          "financial-us",
			Name:        "Financial Services (US)",
			Vertical:    "financial",
			Region:      "us",
			Description: "SEC and FTC rules for investment, lending, and credit products.",
			LastUpdated: "2026-06-20",
			Rules: []PackRule{
				{Platform: "all", Rule: "no_return_guarantees", Severity: "error"},
				{Platform: "all", Rule: "risk_disclosure_required", Severity: "warning"},
				{Platform: "google", Rule: "no_get_rich_quick", Severity: "error"},
			},
			ProhibitedClaims:    []string{"guaranteed returns", "risk-free", "double your money"},
			RequiredDisclosures: []string{"Past performance does not guarantee future results", "Investing involves risk, including possible loss of principal"},
			Examples: PackExamples{
				Compliant:  []string{"Build a diversified portfolio with automated rebalancing.*"},
				Violations: []string{"Guaranteed 20% returns - risk-free investing!"},
			},
		},
		{
			ID:          "weight-loss-us",
			Name:        "Weight Loss (US)",
			Vertical:    "weight_loss",
			Region:      "us",
			Description: "FTC substantiation rules for weight-loss products, including the Gut Check red-flag claims.",
			LastUpdated: "2026-03-18",
			Rules: []PackRule{
				{Platform: "all", Rule: "no_specific_loss_claims", Severity: "error"},
				{Platform: "meta", Rule: "no_before_after_imagery", Severity: "error"},
				{Platform: "all", Rule: "typicality_disclosure", Severity: "warning"},
			},
			ProhibitedClaims:    []string{"lose 30 pounds", "no diet required", "works for everyone"},
			RequiredDisclosures: []string{"Results not typical", "Individual results may vary"},
			Examples: PackExamples{
				Compliant:  []string{"A structured program paired with diet and exercise.*"},
				Violations: []string{"Lose 30 pounds in 30 days without changing your diet!"},
			},
		},
		{
			ID:          "employment-us",
			Name:        "Employment & Recruiting (US)",
			Vertical:    "employment",
			Region:      "us",
			Description: "EEOC non-discrimination requirements and earnings-claim rules for job and gig advertising.",
			LastUpdated: "2026-02-27",
			Rules: []PackRule{
				{Platform: "linkedin", Rule: "no_placement_guarantees", Severity: "error"},
				{Platform: "all", Rule: "eeo_statement", Severity: "warning"},
			},
			ProhibitedClaims:    []string{"guaranteed job", "unlimited earning potential"},
			RequiredDisclosures: []string{"Equal opportunity employer"},
			Examples: PackExamples{
				Compliant:  []string{"Join a growing team with competitive benefits. Equal opportunity employer."},
				Violations: []string{"Guaranteed job placement - earn $5,000 per week, no experience needed!"},
			},
		},
		{
			ID:          "general-us",
			Name:        "General Commerce (US)",
			Vertical:    "general",
			Region:      "us",
			Description: "Baseline FTC truth-in-advertising and platform content rules for general e-commerce.",
			LastUpdated: "2026-07-09",
			Rules: []PackRule{
				{Platform: "all", Rule: "truthful_claims", Severity: "warning"},
				{Platform: "all", Rule: "no_trademark_misuse", Severity: "info"},
			},
			ProhibitedClaims:    []string{"#1 best", "as seen on TV"},
			RequiredDisclosures: []string{},
			Examples: PackExamples{
				Compliant:  []string{"Durable everyday gear, designed in Portland."},
				Violations: []string{"The #1 best gear brand, as seen on TV!"},
			},
		},
	}
}
