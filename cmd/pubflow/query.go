// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubflow/internal/query"
	"github.com/pdiddy/pubflow/pkg/types"
)

var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Answer a free-text question with a structured lookup",
	Long: `Query classifies a question (author, domain, year, impact ranking, usage,
trend, collaboration, or general search) and runs the matching operation.
Filter flags act like the dashboard's active filters and apply first.

Use --explain to print only the classified intent.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	criteria, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}
	text := strings.Join(args, " ")
	qctx := types.QueryContext{
		YearFrom:         criteria.YearFrom,
		YearTo:           criteria.YearTo,
		PublicationTypes: criteria.PublicationTypes,
		UsageTypes:       criteria.UsageTypes,
		Domains:          criteria.Domains,
		AsOfYear:         cfg.Data.AsOfYear,
	}

	if explain, _ := cmd.Flags().GetBool("explain"); explain {
		return writeOutput(cmd, query.Route(text, qctx))
	}

	snap, err := loadSnapshot(cmd, cfg, logger)
	if err != nil {
		return err
	}
	qctx.AsOfYear = snap.AsOfYear
	result := query.Ask(text, snap.Records, qctx)
	fmt.Fprintln(cmd.ErrOrStderr(), result.Summary)
	return writeOutput(cmd, result)
}

func init() {
	addFilterFlags(queryCmd)
	queryCmd.Flags().Bool("explain", false, "print the classified intent without running it")
	addOutputFlags(queryCmd)

	rootCmd.AddCommand(queryCmd)
}
