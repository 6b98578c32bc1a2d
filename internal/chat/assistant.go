// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chat answers dashboard questions. Each question is routed and
// executed against the record snapshot; a hosted LLM then phrases the
// answer from that result. Without a model, or when the call fails, the
// router's own summary is the answer.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/pdiddy/pubflow/internal/logging"
	"github.com/pdiddy/pubflow/internal/query"
	"github.com/pdiddy/pubflow/pkg/types"
)

// DefaultSampleSize is how many records are quoted to the model when the
// Assistant is built with a zero sample size.
const DefaultSampleSize = 8

// maxHistory bounds the prior turns forwarded to the model.
const maxHistory = 10

// Reply sources.
const (
	SourceModel  = "model"
	SourceRouter = "router"
)

// Request is one chat turn. History holds earlier turns, oldest first; the
// caller owns it and the Assistant never stores it.
type Request struct {
	Question string             `json:"question"`
	History  []Message          `json:"history,omitempty"`
	Context  types.QueryContext `json:"context"`
}

// Reply is the answer to one Request together with the structured result
// it was based on.
type Reply struct {
	Answer string            `json:"answer"`
	Source string            `json:"source"`
	Result types.QueryResult `json:"result"`
}

// Assistant answers questions over a record collection.
type Assistant struct {
	completer  Completer
	sampleSize int
	logger     *log.Logger
}

// NewAssistant returns an Assistant backed by c. A nil c answers every
// question with the router summary.
func NewAssistant(c Completer, sampleSize int, logger *log.Logger) *Assistant {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	return &Assistant{completer: c, sampleSize: sampleSize, logger: logging.OrDiscard(logger)}
}

// Respond answers req over records. It always returns a usable reply.
func (a *Assistant) Respond(ctx context.Context, req Request, records []types.PublicationRecord) Reply {
	result := query.Ask(req.Question, records, req.Context)
	reply := Reply{Answer: result.Summary, Source: SourceRouter, Result: result}
	if a.completer == nil || strings.TrimSpace(req.Question) == "" {
		return reply
	}

	sample := result.Data
	if len(sample) > a.sampleSize {
		sample = sample[:a.sampleSize]
	}
	prompt, err := renderPrompt(promptData{
		Question: req.Question,
		Result:   result,
		Sample:   sample,
		Filters:  describeContext(req.Context),
	})
	if err != nil {
		a.logger.Error("rendering chat prompt", "err", err)
		return reply
	}

	history := req.History
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: systemPrompt})
	for _, m := range history {
		if m.Role == RoleUser || m.Role == RoleAssistant {
			messages = append(messages, m)
		}
	}
	messages = append(messages, Message{Role: RoleUser, Content: prompt})

	answer, err := a.completer.Complete(ctx, messages)
	if err != nil {
		if errors.Is(err, ErrNoAPIKey) {
			a.logger.Debug("chat model disabled, using router summary")
		} else {
			a.logger.Warn("chat model failed, using router summary", "intent", result.Intent.Kind, "err", err)
		}
		return reply
	}
	reply.Answer = answer
	reply.Source = SourceModel
	return reply
}

func describeContext(c types.QueryContext) string {
	var parts []string
	switch {
	case c.YearFrom > 0 && c.YearTo > 0:
		parts = append(parts, fmt.Sprintf("years %d-%d", c.YearFrom, c.YearTo))
	case c.YearFrom > 0:
		parts = append(parts, fmt.Sprintf("years from %d", c.YearFrom))
	case c.YearTo > 0:
		parts = append(parts, fmt.Sprintf("years up to %d", c.YearTo))
	}
	if len(c.PublicationTypes) > 0 {
		parts = append(parts, fmt.Sprintf("publication types %v", c.PublicationTypes))
	}
	if len(c.UsageTypes) > 0 {
		parts = append(parts, fmt.Sprintf("usage types %v", c.UsageTypes))
	}
	if len(c.Domains) > 0 {
		parts = append(parts, "domains "+strings.Join(c.Domains, ", "))
	}
	return strings.Join(parts, "; ")
}
