// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pubflow/internal/authors"
	"github.com/pdiddy/pubflow/pkg/types"
)

// authorReport is the parsed form of one author field.
type authorReport struct {
	ID      int                  `json:"id,omitempty" yaml:"id,omitempty"`
	Raw     string               `json:"raw" yaml:"raw"`
	Quality types.AuthorQuality  `json:"quality" yaml:"quality"`
	Authors []types.ParsedAuthor `json:"authors" yaml:"authors"`
}

var authorsCmd = &cobra.Command{
	Use:   "authors [field...]",
	Short: "Parse author fields into people and institutions",
	Long: `Authors normalizes free-text author fields. Each argument is parsed on its
own; with no arguments every record in the dataset is parsed. Use
--needs-review to keep only fields whose format needs a human look.`,
	RunE: runAuthors,
}

func runAuthors(cmd *cobra.Command, args []string) error {
	onlyReview, _ := cmd.Flags().GetBool("needs-review")

	var reports []authorReport
	if len(args) > 0 {
		for _, raw := range args {
			reports = append(reports, parseAuthorField(0, raw))
		}
	} else {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		snap, err := loadSnapshot(cmd, cfg, logger)
		if err != nil {
			return err
		}
		for _, r := range snap.Records {
			reports = append(reports, parseAuthorField(r.ID, r.AuthorsRaw))
		}
	}

	if onlyReview {
		kept := reports[:0]
		for _, r := range reports {
			if r.Quality != types.AuthorsGood {
				kept = append(kept, r)
			}
		}
		reports = kept
	}
	return writeOutput(cmd, reports)
}

func parseAuthorField(id int, raw string) authorReport {
	parsed := authors.Parse(raw)
	if parsed == nil {
		parsed = []types.ParsedAuthor{}
	}
	return authorReport{ID: id, Raw: raw, Quality: authors.Assess(raw), Authors: parsed}
}

func init() {
	authorsCmd.Flags().Bool("needs-review", false, "only report fields not in good format")
	addOutputFlags(authorsCmd)

	rootCmd.AddCommand(authorsCmd)
}
