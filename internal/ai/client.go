// Package ai provides the chat-completion client used to answer /ask
// questions, backed by OpenAI's API or compatible services.
package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/anica-blip/aurion-bot/internal/config"
)

// Client generates a single-turn completion for a user question.
// Each call is stateless; no conversation history is sent.
type Client interface {
	Complete(ctx context.Context, question string) (string, error)
}

type client struct {
	api         *openai.Client
	model       string
	temperature float32
	maxTokens   int
	instruction string
	timeout     time.Duration
	logger      *slog.Logger
}

// New creates a new AI client from the OpenAI configuration section.
// The base URL can be overridden for API-compatible services.
func New(cfg config.OpenAIConfig, logger *slog.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key cannot be empty")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	apiConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiConfig.BaseURL = cfg.BaseURL
	}

	return &client{
		api:         openai.NewClientWithConfig(apiConfig),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		instruction: cfg.Instruction,
		timeout:     cfg.Timeout,
		logger:      logger.With("component", "ai_client"),
	}, nil
}

// Complete sends the question as the sole user turn, preceded by the fixed
// system instruction, and returns the completion text.
func (c *client) Complete(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.New("empty question")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	startTime := time.Now()
	resp, err := c.api.CreateChatCompletion(timeoutCtx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.instruction},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	duration := time.Since(startTime)

	if err != nil {
		c.logger.ErrorContext(ctx, "Chat completion failed", "error", err, "duration", duration)
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		c.logger.ErrorContext(ctx, "No response choices returned", "duration", duration)
		return "", errors.New("no response choices returned")
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	c.logger.DebugContext(ctx, "Chat completion succeeded",
		"duration", duration,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	return answer, nil
}
