// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pubflow/internal/stats"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the dashboard summary figures",
	Long: `Summary counts publications overall and since the cut-off years, high
impact studies, domains, and the breakdowns by publication type, usage type,
year, reach, and author-field quality. Missing-value counts show which
columns need cleaning.`,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(cmd, cfg, logger)
	if err != nil {
		return err
	}
	since, _ := cmd.Flags().GetInt("since")
	recent, _ := cmd.Flags().GetInt("recent")
	return writeOutput(cmd, stats.Summarize(snap.Records, stats.Options{SinceYear: since, RecentYear: recent}))
}

func init() {
	summaryCmd.Flags().Int("since", stats.DefaultSinceYear, "cut-off year for the publications-since count")
	summaryCmd.Flags().Int("recent", stats.DefaultRecentYear, "cut-off year for the recent publications count")
	addOutputFlags(summaryCmd)

	rootCmd.AddCommand(summaryCmd)
}
