// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubflow/internal/dataset"
	"github.com/pdiddy/pubflow/internal/enrich"
	"github.com/pdiddy/pubflow/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analytics REST API",
	Long: `Serve loads the dataset once and answers the dashboard's requests:
summary, publications, network, sankey, query, and chat. POST /api/reload
re-reads the CSV; a failed reload keeps the previous data.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := dataset.NewStore(cfg.Data.File, enrich.New(logger, cfg.Data.AsOfYear), logger)
	if _, err := store.Load(ctx); err != nil {
		return err
	}

	e := server.New(store, newAssistant(cfg, logger), cfg, logger)
	return server.Run(ctx, e, cfg.Server.Addr, logger)
}

func init() {
	serveCmd.Flags().String("addr", server.DefaultAddr, "listen address")
	serveCmd.Flags().Duration("request-timeout", 0, "per-request timeout (0 = config default)")

	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.request_timeout", serveCmd.Flags().Lookup("request-timeout"))

	rootCmd.AddCommand(serveCmd)
}
