package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"adlint-hq/saturn/pkg/catalog"
	"adlint-hq/saturn/pkg/config"
)

var validateFlags struct {
	file       string
	configFile string
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate catalog and configuration files",
	Long: `Validate a catalog override file and/or a configuration file without
starting the server.

Catalog validation merges the override over the builtin catalog and
compiles every pattern, reporting the first regex that does not compile.

Examples:
  # Validate a catalog override
  saturn validate --file catalog-override.yaml

  # Validate a config file
  saturn validate --config-file /etc/saturn/config.yaml

  # Validate both
  saturn validate --file catalog-override.yaml --config-file config.yaml`,
	RunE: validateFiles,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.file, "file", "f", "", "catalog override file")
	validateCmd.Flags().StringVar(&validateFlags.configFile, "config-file", "", "configuration file")
}

func validateFiles(cmd *cobra.Command, args []string) error {
	if validateFlags.file == "" && validateFlags.configFile == "" {
		return fmt.Errorf("either --file or --config-file must be specified")
	}

	if validateFlags.file != "" {
		cat, err := catalog.LoadCatalog(validateFlags.file)
		if err != nil {
			var compileErr *catalog.CompileError
			if errors.As(err, &compileErr) {
				return fmt.Errorf("catalog validation failed: section %s, pattern %q: %v",
					compileErr.Section, compileErr.Pattern, compileErr.Cause)
			}
			return fmt.Errorf("catalog validation failed: %w", err)
		}
		fmt.Printf("✓ Catalog valid (%d policy packs)\n", len(cat.Packs(catalog.PackFilter{})))
	}

	if validateFlags.configFile != "" {
		if _, err := config.LoadConfig(validateFlags.configFile); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
		fmt.Println("✓ Configuration valid")
	}

	return nil
}
