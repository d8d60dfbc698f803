// Package catalog provides the static rule and policy catalog consumed by
// the compliance linter.
//
// The catalog is declarative data, not code: prohibited-claim regexes per
// platform, misleading-language patterns, a trademark list, required
// disclosures per vertical, the safe-rewrite table, and the policy pack
// list all live in a Definition that can be overridden from YAML without
// touching the matching engines.
//
// # Lifecycle
//
// A Definition is compiled once into an immutable Catalog:
//
//	cat, err := catalog.LoadCatalog("catalog.yaml") // builtin + overrides
//	cat := catalog.Default()                        // builtin only
//
// Compiled catalogs are never mutated. Hot reload (see the source
// subpackage) builds a fresh Catalog and swaps the Provider's snapshot
// atomically, so in-flight lint calls keep the snapshot they started with.
//
// # Baseline union
//
// The "meta" prohibited-claim list is the baseline: it applies to every
// platform in addition to the platform's own list. Platforms without a
// dedicated list fall back to the baseline alone.
package catalog
