// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubflow/internal/sankey"
)

var sankeyCmd = &cobra.Command{
	Use:   "sankey",
	Short: "Build the publication flow graph",
	Long: `Sankey groups publications into four stages (publication type, usage type,
research domain, geographic reach) and links adjacent stages. Values are
recency weighted. The output carries nodes, links, metrics, and insights.`,
	RunE: runSankey,
}

func runSankey(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	criteria, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}
	minLink, _ := cmd.Flags().GetFloat64("min-link-value")
	if minLink < 0 {
		return fmt.Errorf("--min-link-value must not be negative")
	}
	snap, err := loadSnapshot(cmd, cfg, logger)
	if err != nil {
		return err
	}

	flow, err := sankey.Build(snap.Records, sankey.Filter{
		YearFrom:         criteria.YearFrom,
		YearTo:           criteria.YearTo,
		PublicationTypes: criteria.PublicationTypes,
		UsageTypes:       criteria.UsageTypes,
		Domains:          criteria.Domains,
		MinLinkValue:     minLink,
	}, sankey.Options{AsOfYear: snap.AsOfYear})
	if err != nil {
		return fmt.Errorf("building flow graph: %w", err)
	}
	return writeOutput(cmd, flow)
}

func init() {
	addFilterFlags(sankeyCmd)
	sankeyCmd.Flags().Float64("min-link-value", 0, "drop links whose weighted value is below this")
	addOutputFlags(sankeyCmd)

	rootCmd.AddCommand(sankeyCmd)
}
