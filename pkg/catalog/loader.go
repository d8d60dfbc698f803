package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDefinition reads a catalog definition from a YAML file.
func LoadDefinition(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to read catalog file %q: %w", path, err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("failed to parse catalog file %q: %w", path, err)
	}

	return def, nil
}

// Merge overlays an override definition on top of a base definition.
// Override semantics are section-granular: a non-empty section in the
// override replaces the base section wholesale, and empty sections keep
// the base. Per-platform and per-vertical map entries merge individually.
func Merge(base, override Definition) Definition {
	merged := base

	if len(override.ProhibitedClaims) > 0 {
		claims := make(map[string][]string, len(base.ProhibitedClaims))
		for platform, patterns := range base.ProhibitedClaims {
			claims[platform] = patterns
		}
		for platform, patterns := range override.ProhibitedClaims {
			claims[platform] = patterns
		}
		merged.ProhibitedClaims = claims
	}

	if len(override.MisleadingPatterns) > 0 {
		merged.MisleadingPatterns = override.MisleadingPatterns
	}

	if len(override.Trademarks) > 0 {
		merged.Trademarks = override.Trademarks
	}

	if len(override.RequiredDisclosures) > 0 {
		disclosures := make(map[string][]string, len(base.RequiredDisclosures))
		for vertical, required := range base.RequiredDisclosures {
			disclosures[vertical] = required
		}
		for vertical, required := range override.RequiredDisclosures {
			disclosures[vertical] = required
		}
		merged.RequiredDisclosures = disclosures
	}

	if len(override.SafeRewrites) > 0 {
		merged.SafeRewrites = override.SafeRewrites
	}

	if len(override.Packs) > 0 {
		merged.Packs = override.Packs
	}

	return merged
}

// LoadCatalog loads a YAML override file, merges it over the builtin
// definition, and compiles the result. An empty path compiles the builtin
// definition alone.
func LoadCatalog(path string) (*Catalog, error) {
	def := Builtin()

	if path != "" {
		override, err := LoadDefinition(path)
		if err != nil {
			return nil, err
		}
		def = Merge(def, override)
	}

	return Compile(def)
}
