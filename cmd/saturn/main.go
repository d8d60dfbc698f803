// Saturn is an ad creative compliance and experimentation toolkit.
//
// It scans ad copy and media metadata against platform and regulatory
// rule catalogs, suggests safe rewrites for prohibited claims, and
// evaluates A/B experiments with guardrail enforcement.
//
// Usage:
//
//	# Start the API server with default configuration
//	saturn run
//
//	# Start with a custom configuration file
//	saturn run --config /path/to/config.yaml
//
//	# Lint a creative from the command line
//	saturn lint --headline "Guaranteed results!" --platform meta --vertical health
//
//	# Analyze an experiment definition
//	saturn analyze --file experiment.json
//
//	# List the built-in policy packs
//	saturn packs --vertical health
//
//	# Validate a catalog override file
//	saturn validate --file catalog-override.yaml
//
//	# Show version information
//	saturn version
package main

func main() {
	Execute()
}
