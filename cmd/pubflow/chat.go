// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubflow/internal/chat"
	"github.com/pdiddy/pubflow/internal/secrets"
	"github.com/pdiddy/pubflow/pkg/types"
)

var chatCmd = &cobra.Command{
	Use:   "chat [question]",
	Short: "Ask the assistant a question about the dataset",
	Long: `Chat routes the question like query does, then asks an OpenRouter-hosted
model to phrase the answer from the matching records. Without an API key
(.secrets/openrouter-api-key, OPENROUTER_API_KEY, or chat.api_key) the
router summary is printed instead.

Use --json to print the full reply including the structured result.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
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

	reply := newAssistant(cfg, logger).Respond(context.Background(), chat.Request{
		Question: strings.Join(args, " "),
		Context: types.QueryContext{
			YearFrom:         criteria.YearFrom,
			YearTo:           criteria.YearTo,
			PublicationTypes: criteria.PublicationTypes,
			UsageTypes:       criteria.UsageTypes,
			Domains:          criteria.Domains,
			AsOfYear:         snap.AsOfYear,
		},
	}, snap.Records)

	asJSON, _ := cmd.Flags().GetBool("json")
	if output, _ := cmd.Flags().GetString("output"); asJSON || output != "" {
		return writeOutput(cmd, reply)
	}
	if reply.Source == chat.SourceRouter {
		fmt.Fprintln(cmd.ErrOrStderr(), "(answered from the query router)")
	}
	fmt.Fprintln(cmd.OutOrStdout(), reply.Answer)
	return nil
}

// newAssistant builds the chat assistant from cfg. Without an API key the
// assistant answers from the router alone.
func newAssistant(cfg types.Config, logger *log.Logger) *chat.Assistant {
	if cfg.Chat.APIKey == "" {
		logger.Debug("no chat API key configured", "secret", secrets.OpenRouterKey, "env", secrets.EnvName(secrets.OpenRouterKey))
		return chat.NewAssistant(nil, cfg.Chat.SampleSize, logger)
	}
	client := &chat.OpenRouterClient{
		APIKey:     cfg.Chat.APIKey,
		Model:      cfg.Chat.Model,
		URL:        cfg.Chat.BaseURL,
		UserAgent:  cfg.Chat.UserAgent,
		MaxRetries: cfg.Chat.MaxRetries,
		Client:     &http.Client{Timeout: cfg.Chat.Timeout},
		Logger:     logger,
	}
	return chat.NewAssistant(client, cfg.Chat.SampleSize, logger)
}

func init() {
	addFilterFlags(chatCmd)
	chatCmd.Flags().String("model", "", "OpenRouter model identifier")
	chatCmd.Flags().Bool("json", false, "print the full reply instead of the answer text")
	addOutputFlags(chatCmd)

	_ = viper.BindPFlag("chat.model", chatCmd.Flags().Lookup("model"))

	rootCmd.AddCommand(chatCmd)
}
