package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "saturn",
	Short: "Saturn - ad creative compliance and experimentation toolkit",
	Long: `Saturn scans ad creative against platform and regulatory rule catalogs
and evaluates A/B experiments.

It provides:
  - Prohibited-claim and misleading-pattern detection per platform
  - Required-disclosure and media policy checks per vertical
  - Safe rewrite suggestions for flagged copy
  - Experiment analysis with guardrail enforcement
  - Audit-trail recording of every scan and analysis`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
