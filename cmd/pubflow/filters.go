// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubflow/internal/aggregate"
	"github.com/pdiddy/pubflow/internal/enrich"
)

// addScopeFlags registers the year and domain filters.
func addScopeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("year-from", 0, "earliest publication year (0 = unbounded)")
	cmd.Flags().Int("year-to", 0, "latest publication year (0 = unbounded)")
	cmd.Flags().StringSlice("domain", nil, "research domain to include (repeatable)")
}

// addFilterFlags registers the scope filters plus publication and usage type.
func addFilterFlags(cmd *cobra.Command) {
	addScopeFlags(cmd)
	cmd.Flags().StringSlice("type", nil, "publication type to include: academic, government, policy, other (repeatable)")
	cmd.Flags().StringSlice("usage", nil, "usage type to include: primary_analysis, research_enabler, contextual_reference (repeatable)")
}

// criteriaFromFlags reads the filters registered by addFilterFlags or
// addScopeFlags. Type names must be recognized.
func criteriaFromFlags(cmd *cobra.Command) (aggregate.Criteria, error) {
	var c aggregate.Criteria
	c.YearFrom, _ = cmd.Flags().GetInt("year-from")
	c.YearTo, _ = cmd.Flags().GetInt("year-to")
	c.Domains, _ = cmd.Flags().GetStringSlice("domain")
	if c.YearFrom > 0 && c.YearTo > 0 && c.YearFrom > c.YearTo {
		return c, fmt.Errorf("--year-from %d is after --year-to %d", c.YearFrom, c.YearTo)
	}

	pubTypes, _ := cmd.Flags().GetStringSlice("type")
	for _, raw := range pubTypes {
		pt, _, ok := enrich.NormalizePublicationType(raw, "", "")
		if !ok {
			return c, fmt.Errorf("unknown publication type %q", raw)
		}
		c.PublicationTypes = append(c.PublicationTypes, pt)
	}
	usages, _ := cmd.Flags().GetStringSlice("usage")
	for _, raw := range usages {
		ut, _, ok := enrich.NormalizeUsageType(raw)
		if !ok {
			return c, fmt.Errorf("unknown usage type %q", raw)
		}
		c.UsageTypes = append(c.UsageTypes, ut)
	}
	return c, nil
}
