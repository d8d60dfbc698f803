package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"adlint-hq/saturn/pkg/catalog"
)

var packsFlags struct {
	vertical string
	region   string
	catalog  string
	format   string
}

var packsCmd = &cobra.Command{
	Use:   "packs [pack-id]",
	Short: "List or show policy packs",
	Long: `List the policy packs in the catalog, or show a single pack in full.

Examples:
  # List all packs
  saturn packs

  # Filter by vertical and region
  saturn packs --vertical health --region us

  # Show a single pack
  saturn packs health-us`,
	Args: cobra.MaximumNArgs(1),
	RunE: showPacks,
}

func init() {
	rootCmd.AddCommand(packsCmd)

	packsCmd.Flags().StringVar(&packsFlags.vertical, "vertical", "", "filter by vertical")
	packsCmd.Flags().StringVar(&packsFlags.region, "region", "", "filter by region")
	packsCmd.Flags().StringVar(&packsFlags.catalog, "catalog", "", "catalog override file")
	packsCmd.Flags().StringVar(&packsFlags.format, "format", "text", "output format: text, json")
}

func showPacks(cmd *cobra.Command, args []string) error {
	provider, err := catalogProvider(packsFlags.catalog)
	if err != nil {
		return err
	}
	cat := provider.Current()

	if len(args) == 1 {
		pack, err := cat.Pack(args[0])
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(pack, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal pack: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	packs := cat.Packs(catalog.PackFilter{
		Vertical: packsFlags.vertical,
		Region:   packsFlags.region,
	})

	if packsFlags.format == "json" {
		out, err := json.MarshalIndent(packs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal packs: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if len(packs) == 0 {
		fmt.Println("No policy packs match the filter")
		return nil
	}
	for _, p := range packs {
		fmt.Printf("%-18s %-12s %-6s %s\n", p.ID, p.Vertical, p.Region, p.Name)
	}
	return nil
}
