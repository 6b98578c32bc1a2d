// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/segmentio/encoding/json"

	"github.com/pdiddy/pubflow/internal/httputil"
)

// DefaultURL is the OpenRouter chat-completions endpoint.
const DefaultURL = "https://openrouter.ai/api/v1/chat/completions"

// DefaultModel is used when no model is configured.
const DefaultModel = "openai/gpt-4o-mini"

// ErrNoAPIKey is returned by Complete when the client has no key.
var ErrNoAPIKey = errors.New("chat: no OpenRouter API key configured")

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Roles used in Message.Role.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Completer produces the next assistant message for a conversation.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// OpenRouterClient calls an OpenAI-compatible chat-completions endpoint
// hosted by OpenRouter.
type OpenRouterClient struct {
	APIKey     string
	Model      string
	URL        string
	UserAgent  string
	MaxRetries int
	Client     *http.Client
	Logger     *log.Logger
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends messages and returns the first choice's content. Rate
// limiting and upstream unavailability are retried.
func (c *OpenRouterClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if c.APIKey == "" {
		return "", ErrNoAPIKey
	}
	model := c.Model
	if model == "" {
		model = DefaultModel
	}
	url := c.URL
	if url == "" {
		url = DefaultURL
	}

	body, err := json.Marshal(completionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: 0.2,
		MaxTokens:   800,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
		req.Header.Set("X-Title", c.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.Client, req, c.MaxRetries, c.Logger)
	if err != nil {
		return "", fmt.Errorf("calling OpenRouter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("OpenRouter returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding OpenRouter response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("OpenRouter error: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", errors.New("OpenRouter returned no content")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
