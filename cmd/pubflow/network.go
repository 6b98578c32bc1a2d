// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubflow/internal/network"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Build the co-authorship network",
	Long: `Network parses every author field, links people who share a publication,
and weights each collaboration by how recently it happened. Institutions are
not nodes. The output lists nodes, edges, and graph metrics including the
most connected authors.`,
	RunE: runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	criteria, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(cmd, cfg, logger)
	if err != nil {
		return err
	}

	minCollab, _ := cmd.Flags().GetInt("min-collaborations")
	author, _ := cmd.Flags().GetString("author")
	graph := network.Build(snap.Records, network.Filter{
		YearFrom:          criteria.YearFrom,
		YearTo:            criteria.YearTo,
		Domains:           criteria.Domains,
		MinCollaborations: minCollab,
		MaxNodes:          cfg.Network.MaxNodes,
		AuthorContains:    author,
	}, network.Options{AsOfYear: snap.AsOfYear, TopK: cfg.Network.TopK})

	logger.Debug("network built", "nodes", graph.Metrics.NodeCount, "edges", graph.Metrics.EdgeCount)
	return writeOutput(cmd, graph)
}

func init() {
	addScopeFlags(networkCmd)
	networkCmd.Flags().Int("min-collaborations", 0, "drop collaborations seen fewer times than this")
	networkCmd.Flags().Int("max-nodes", 0, "keep only the most published authors (0 = no cap)")
	networkCmd.Flags().Int("top-k", network.DefaultTopK, "length of the most-connected list")
	networkCmd.Flags().String("author", "", "only publications crediting an author whose name contains this")
	addOutputFlags(networkCmd)

	_ = viper.BindPFlag("network.max_nodes", networkCmd.Flags().Lookup("max-nodes"))
	_ = viper.BindPFlag("network.top_k", networkCmd.Flags().Lookup("top-k"))

	rootCmd.AddCommand(networkCmd)
}
