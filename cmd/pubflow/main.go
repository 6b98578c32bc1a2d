// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubflow CLI: collaboration
// networks, categorical flow graphs, and question routing over a
// publication dataset, plus the REST server behind the dashboard.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubflow/internal/chat"
	"github.com/pdiddy/pubflow/internal/dataset"
	"github.com/pdiddy/pubflow/internal/enrich"
	"github.com/pdiddy/pubflow/internal/export"
	"github.com/pdiddy/pubflow/internal/logging"
	"github.com/pdiddy/pubflow/internal/network"
	"github.com/pdiddy/pubflow/internal/secrets"
	"github.com/pdiddy/pubflow/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// dotenv holds values read from .env at startup.
var dotenv map[string]string

// rootCmd is the base command for the pubflow CLI.
var rootCmd = &cobra.Command{
	Use:   "pubflow",
	Short: "Analytics over research publications that cite a dataset",
	Long: `pubflow reads a CSV of publications that used a research dataset and
derives analytics from it: a weighted co-authorship network, a four-stage
flow graph (publication type, usage type, research domain, geographic reach),
dashboard summary figures, and answers to free-text questions.

Each analysis is a subcommand that prints JSON or YAML. The serve subcommand
exposes the same analyses over a REST API for the dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/", nil)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(cmd.ErrOrStderr(), "Loaded secrets: %v\n", keys)
		}

		env, err := secrets.LoadDotenv(".env")
		if err != nil {
			return err
		}
		dotenv = env
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./pubflow.yaml or ~/.config/pubflow/pubflow.yaml)")
	pf.StringP("data", "d", "", "publication CSV file")
	pf.Int("as-of", 0, "year used for clamping and recency weights (0 = current year)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text, logfmt, json")

	_ = viper.BindPFlag("data.file", pf.Lookup("data"))
	_ = viper.BindPFlag("data.as_of_year", pf.Lookup("as-of"))
	_ = viper.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("log.format", pf.Lookup("log-format"))

	setDefaults()
}

func setDefaults() {
	viper.SetDefault("data.file", "publications.csv")
	viper.SetDefault("data.as_of_year", 0)
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.request_timeout", "30s")
	viper.SetDefault("chat.model", chat.DefaultModel)
	viper.SetDefault("chat.base_url", chat.DefaultURL)
	viper.SetDefault("chat.api_key", "")
	viper.SetDefault("chat.max_retries", 3)
	viper.SetDefault("chat.sample_size", chat.DefaultSampleSize)
	viper.SetDefault("chat.timeout", "60s")
	viper.SetDefault("chat.user_agent", "pubflow/"+version)
	viper.SetDefault("network.top_k", network.DefaultTopK)
	viper.SetDefault("network.max_nodes", 0)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubflow")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubflow"))
		}
	}

	viper.SetEnvPrefix("PUBFLOW")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged flags, environment, and config file.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Chat.APIKey == "" {
		cfg.Chat.APIKey = secrets.Lookup(secrets.OpenRouterKey, loadedSecrets, dotenv)
	}
	return cfg, nil
}

// setup loads the config and builds the stderr logger.
func setup(cmd *cobra.Command) (types.Config, *log.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}

// loadSnapshot reads and enriches the configured dataset.
func loadSnapshot(cmd *cobra.Command, cfg types.Config, logger *log.Logger) (*dataset.Snapshot, error) {
	snap, err := dataset.ReadFile(cfg.Data.File, enrich.New(logger, cfg.Data.AsOfYear))
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Loaded %d publications from %s\n", len(snap.Records), snap.Source)
	return snap, nil
}

// addOutputFlags registers --output and --format on cmd.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "write to this file instead of stdout (format from extension)")
	cmd.Flags().String("format", "json", "stdout format: json or yaml")
}

// writeOutput encodes v to --output or stdout.
func writeOutput(cmd *cobra.Command, v any) error {
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := export.WriteFile(path, v); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
		return nil
	}
	name, _ := cmd.Flags().GetString("format")
	f, err := export.ParseFormat(name)
	if err != nil {
		return err
	}
	return export.Write(cmd.OutOrStdout(), v, f)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
