package catalog

import (
	"regexp"
	"sync"
)

// BaselinePlatform is the platform whose prohibited-claim list always
// applies, in addition to the linted platform's own list.
const BaselinePlatform = "meta"

// ClaimPattern is a compiled prohibited-claim pattern. Index is the
// pattern's position within the active set for a platform and is stable
// across calls, so it can participate in deterministic violation IDs.
type ClaimPattern struct {
	Index  int
	Raw    string
	Regexp *regexp.Regexp
}

// TextPattern is a compiled misleading-language pattern.
type TextPattern struct {
	Index  int
	Raw    string
	Regexp *regexp.Regexp
}

// TrademarkPattern is a compiled whole-word trademark matcher.
type TrademarkPattern struct {
	Index  int
	Name   string
	Regexp *regexp.Regexp
}

// Catalog is a compiled, immutable rule catalog. It is built once from a
// Definition and shared by-value across concurrent lint calls; nothing in
// it is mutated after Compile returns.
type Catalog struct {
	def Definition

	// claims holds the per-platform active pattern sets, already unioned
	// with the baseline list and deduplicated.
	claims map[string][]ClaimPattern

	misleading []TextPattern
	trademarks []TrademarkPattern
}

// Compile builds a Catalog from a raw definition, compiling every regex
// up front. It returns a CompileError naming the offending pattern when
// any regex is invalid.
func Compile(def Definition) (*Catalog, error) {
	if len(def.ProhibitedClaims) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		def:    def,
		claims: make(map[string][]ClaimPattern, len(def.ProhibitedClaims)+1),
	}

	baseline := def.ProhibitedClaims[BaselinePlatform]

	// Build the active set for every platform named in the definition.
	// The baseline list always applies on top of the platform's own list;
	// platforms without a dedicated list fall back to the baseline alone.
	for platform := range def.ProhibitedClaims {
		patterns, err := compileClaimSet(def.ProhibitedClaims[platform], baseline)
		if err != nil {
			return nil, err
		}
		c.claims[platform] = patterns
	}

	// "all" targets every platform at once; its active set is the baseline.
	if _, ok := c.claims["all"]; !ok {
		patterns, err := compileClaimSet(nil, baseline)
		if err != nil {
			return nil, err
		}
		c.claims["all"] = patterns
	}

	for i, raw := range def.MisleadingPatterns {
		re, err := regexp.Compile(`(?i)` + raw)
		if err != nil {
			return nil, &CompileError{Section: "misleading_patterns", Pattern: raw, Cause: err}
		}
		c.misleading = append(c.misleading, TextPattern{Index: i, Raw: raw, Regexp: re})
	}

	for i, name := range def.Trademarks {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
		if err != nil {
			return nil, &CompileError{Section: "trademarks", Pattern: name, Cause: err}
		}
		c.trademarks = append(c.trademarks, TrademarkPattern{Index: i, Name: name, Regexp: re})
	}

	return c, nil
}

// compileClaimSet compiles own∪baseline, keeping own's order first and
// skipping baseline patterns that duplicate an own pattern.
func compileClaimSet(own, baseline []string) ([]ClaimPattern, error) {
	if len(own) == 0 {
		own = baseline
		baseline = nil
	}

	seen := make(map[string]bool, len(own)+len(baseline))
	var patterns []ClaimPattern

	add := func(raw string) error {
		if seen[raw] {
			return nil
		}
		seen[raw] = true
		re, err := regexp.Compile(`(?i)` + raw)
		if err != nil {
			return &CompileError{Section: "prohibited_claims", Pattern: raw, Cause: err}
		}
		patterns = append(patterns, ClaimPattern{Index: len(patterns), Raw: raw, Regexp: re})
		return nil
	}

	for _, raw := range own {
		if err := add(raw); err != nil {
			return nil, err
		}
	}
	for _, raw := range baseline {
		if err := add(raw); err != nil {
			return nil, err
		}
	}

	return patterns, nil
}

// ClaimPatterns returns the active prohibited-claim set for a platform:
// the platform's own patterns followed by the baseline patterns. Unknown
// platforms get the baseline set.
func (c *Catalog) ClaimPatterns(platform string) []ClaimPattern {
	if patterns, ok := c.claims[platform]; ok {
		return patterns
	}
	return c.claims[BaselinePlatform]
}

// MisleadingPatterns returns the compiled misleading-language patterns.
func (c *Catalog) MisleadingPatterns() []TextPattern {
	return c.misleading
}

// Trademarks returns the compiled trademark matchers.
func (c *Catalog) Trademarks() []TrademarkPattern {
	return c.trademarks
}

// DisclosuresFor returns the disclosure strings required for a vertical.
// Unknown verticals require none.
func (c *Catalog) DisclosuresFor(vertical string) []string {
	return c.def.RequiredDisclosures[vertical]
}

// Rewrites returns the ordered safe-rewrite table.
func (c *Catalog) Rewrites() []RewriteRule {
	return c.def.SafeRewrites
}

// Packs returns the policy packs matching the filter, in catalog order.
func (c *Catalog) Packs(filter PackFilter) []PolicyPack {
	packs := make([]PolicyPack, 0, len(c.def.Packs))
	for _, p := range c.def.Packs {
		if filter.matches(p) {
			packs = append(packs, p)
		}
	}
	return packs
}

// Pack returns the policy pack with the given ID, or a NotFoundError.
func (c *Catalog) Pack(id string) (PolicyPack, error) {
	for _, p := range c.def.Packs {
		if p.ID == id {
			return p, nil
		}
	}
	return PolicyPack{}, &NotFoundError{PackID: id}
}

// Provider supplies the current catalog snapshot. Implementations that
// support hot reload swap the snapshot atomically; consumers must treat
// every returned *Catalog as immutable.
type Provider interface {
	Current() *Catalog
}

// StaticProvider is a Provider that always returns the same catalog.
type StaticProvider struct {
	catalog *Catalog
}

// NewStaticProvider wraps a compiled catalog in a Provider.
func NewStaticProvider(c *Catalog) *StaticProvider {
	return &StaticProvider{catalog: c}
}

// Current returns the wrapped catalog.
func (p *StaticProvider) Current() *Catalog {
	return p.catalog
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the compiled builtin catalog. The builtin definition is
// known-good, so compilation cannot fail; the result is cached.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Compile(Builtin())
		if err != nil {
			panic("catalog: builtin definition failed to compile: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
