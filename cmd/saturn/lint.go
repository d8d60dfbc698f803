package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"adlint-hq/saturn/pkg/catalog"
	"adlint-hq/saturn/pkg/compliance"
)

var lintFlags struct {
	file     string
	headline string
	body     string
	cta      string
	platform string
	vertical string
	region   string
	catalog  string
	strict   bool
	format   string
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Scan ad creative for compliance violations",
	Long: `Scan ad creative against the prohibited-claim, disclosure, and media
policy catalogs for the given platform and vertical.

The creative can be given inline with --headline/--body/--cta, or as a
JSON file matching the /v1/lint request body.

The command exits non-zero when the scan result is a failure, or, with
--strict, when it contains any warnings.

Examples:
  # Lint inline copy
  saturn lint --headline "Guaranteed results in 7 days!" --platform meta --vertical health

  # Lint a creative file
  saturn lint --file creative.json

  # Strict mode (warnings fail)
  saturn lint --file creative.json --strict

  # JSON output for CI/CD
  saturn lint --file creative.json --format json`,
	RunE: lintCreative,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "creative JSON file")
	lintCmd.Flags().StringVar(&lintFlags.headline, "headline", "", "headline text")
	lintCmd.Flags().StringVar(&lintFlags.body, "body", "", "body text")
	lintCmd.Flags().StringVar(&lintFlags.cta, "cta", "", "call-to-action text")
	lintCmd.Flags().StringVarP(&lintFlags.platform, "platform", "p", "meta", "target platform")
	lintCmd.Flags().StringVar(&lintFlags.vertical, "vertical", "general", "advertiser vertical")
	lintCmd.Flags().StringVar(&lintFlags.region, "region", "us", "target region")
	lintCmd.Flags().StringVar(&lintFlags.catalog, "catalog", "", "catalog override file")
	lintCmd.Flags().BoolVar(&lintFlags.strict, "strict", false, "treat warnings as failures")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
}

type creativeFile struct {
	Content  compliance.Content `json:"content"`
	Platform string             `json:"platform"`
	Vertical string             `json:"vertical"`
	Region   string             `json:"region"`
}

func lintCreative(cmd *cobra.Command, args []string) error {
	content := compliance.Content{
		Headline: lintFlags.headline,
		Body:     lintFlags.body,
		CTA:      lintFlags.cta,
	}
	platform := lintFlags.platform
	vertical := lintFlags.vertical
	region := lintFlags.region

	if lintFlags.file != "" {
		data, err := os.ReadFile(lintFlags.file)
		if err != nil {
			return fmt.Errorf("failed to read creative file: %w", err)
		}
		var cf creativeFile
		if err := json.Unmarshal(data, &cf); err != nil {
			return fmt.Errorf("failed to parse creative file: %w", err)
		}
		content = cf.Content
		if cf.Platform != "" {
			platform = cf.Platform
		}
		if cf.Vertical != "" {
			vertical = cf.Vertical
		}
		if cf.Region != "" {
			region = cf.Region
		}
	}

	if content.Headline == "" && content.Body == "" && content.CTA == "" && content.Media == nil {
		return fmt.Errorf("no creative content given: use --file or --headline/--body/--cta")
	}

	provider, err := catalogProvider(lintFlags.catalog)
	if err != nil {
		return err
	}

	linter := compliance.NewLinter(provider, nil)
	result := linter.Lint(content, platform, vertical, region)

	switch lintFlags.format {
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(out))
	case "text":
		printLintResult(result)
	default:
		return fmt.Errorf("unsupported format: %s", lintFlags.format)
	}

	if result.Overall == compliance.StatusFail {
		return fmt.Errorf("compliance scan failed with %d error(s)", result.ErrorCount())
	}
	if lintFlags.strict && result.Overall == compliance.StatusWarning {
		return fmt.Errorf("compliance scan produced %d warning(s) (strict mode)", result.WarningCount())
	}
	return nil
}

func printLintResult(result *compliance.Result) {
	fmt.Printf("Status: %s (score %d/100)\n", result.Overall, result.Score)
	if result.ApprovalRequired {
		fmt.Println("Approval required before publishing")
	}

	if len(result.Violations) > 0 {
		fmt.Printf("\nViolations (%d):\n", len(result.Violations))
		for _, v := range result.Violations {
			loc := ""
			if v.Location != nil {
				loc = fmt.Sprintf(" [%s %d:%d]", v.Location.Element, v.Location.Start, v.Location.End)
			}
			fmt.Printf("  %-7s %s%s\n", strings.ToUpper(string(v.Severity)), v.Description, loc)
			if v.Suggestion != "" {
				fmt.Printf("          → %s\n", v.Suggestion)
			}
		}
	}

	if len(result.SafeRewrites) > 0 {
		fmt.Printf("\nSafe rewrites (%d):\n", len(result.SafeRewrites))
		for _, r := range result.SafeRewrites {
			fmt.Printf("  %q → %q\n", r.Original, r.Rewritten)
		}
	}

	if len(result.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, rec := range result.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
}

// catalogProvider builds a catalog provider from an optional override
// file path.
func catalogProvider(path string) (catalog.Provider, error) {
	if path == "" {
		return catalog.NewStaticProvider(catalog.Default()), nil
	}
	cat, err := catalog.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return catalog.NewStaticProvider(cat), nil
}
