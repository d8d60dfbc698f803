package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"adlint-hq/saturn/pkg/experiment"
)

var analyzeFlags struct {
	file   string
	format string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze an A/B experiment",
	Long: `Analyze an A/B experiment definition: rank variant outcomes, apply
the confidence decision ladder, and report guardrail breaches.

The experiment file is JSON matching the /v1/experiments/analyze request
body.

Examples:
  # Analyze an experiment
  saturn analyze --file experiment.json

  # JSON output
  saturn analyze --file experiment.json --format json`,
	RunE: analyzeExperiment,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFlags.file, "file", "f", "", "experiment JSON file (required)")
	analyzeCmd.Flags().StringVar(&analyzeFlags.format, "format", "text", "output format: text, json")
	analyzeCmd.MarkFlagRequired("file")
}

func analyzeExperiment(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(analyzeFlags.file)
	if err != nil {
		return fmt.Errorf("failed to read experiment file: %w", err)
	}

	var exp experiment.Experiment
	if err := json.Unmarshal(data, &exp); err != nil {
		return fmt.Errorf("failed to parse experiment file: %w", err)
	}

	analysis := experiment.Analyze(exp)
	breaches := experiment.CheckGuardrails(exp)

	switch analyzeFlags.format {
	case "json":
		out, err := json.MarshalIndent(struct {
			Analysis *experiment.Analysis `json:"analysis"`
			Breaches []experiment.Breach  `json:"breaches"`
		}{analysis, breaches}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal analysis: %w", err)
		}
		fmt.Println(string(out))
	case "text":
		printAnalysis(analysis, breaches)
	default:
		return fmt.Errorf("unsupported format: %s", analyzeFlags.format)
	}

	return nil
}

func printAnalysis(analysis *experiment.Analysis, breaches []experiment.Breach) {
	fmt.Printf("Recommendation: %s\n", analysis.Recommendation)
	if analysis.HasWinner {
		fmt.Printf("Winner: %s (%.1f%% confidence)\n", analysis.WinnerVariant, analysis.Confidence)
	} else {
		fmt.Printf("No winner yet (%.1f%% confidence)\n", analysis.Confidence)
	}

	if len(analysis.Reasoning) > 0 {
		fmt.Println("\nReasoning:")
		for _, r := range analysis.Reasoning {
			fmt.Printf("  - %s\n", r)
		}
	}

	if len(breaches) > 0 {
		fmt.Printf("\nGuardrail breaches (%d):\n", len(breaches))
		for _, b := range breaches {
			fmt.Printf("  %s on %s: %s (action: %s)\n", b.Guardrail.Metric, b.Variant, b.Violation, b.Guardrail.Action)
		}
	}

	if len(analysis.NextActions) > 0 {
		fmt.Println("\nNext actions:")
		for _, a := range analysis.NextActions {
			fmt.Printf("  - %s\n", a)
		}
	}
}
