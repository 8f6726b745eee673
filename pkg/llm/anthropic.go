package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/liushuangls/go-anthropic/v2"
	"go.uber.org/zap"
)

// AnthropicClient talks to the Anthropic Messages API behind the same
// Client interface as the OpenAI implementation.
type AnthropicClient struct {
	client *anthropic.Client
	model  string
	logger *zap.Logger
}

const anthropicMaxTokens = 2048

// NewAnthropicClient creates a client for the Anthropic Messages API.
func NewAnthropicClient(cfg *Config, logger *zap.Logger) (*AnthropicClient, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	return &AnthropicClient{
		client: anthropic.NewClient(cfg.APIKey),
		model:  cfg.Model,
		logger: logger.Named("llm"),
	}, nil
}

// GenerateResponse implements Client.
func (c *AnthropicClient) GenerateResponse(ctx context.Context, prompt string, systemMessage string, temperature float64) (string, error) {
	c.logger.Debug("LLM request",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(prompt)),
		zap.Float64("temperature", temperature))

	start := time.Now()
	temp := float32(temperature)

	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:       anthropic.Model(c.model),
		System:      systemMessage,
		MaxTokens:   anthropicMaxTokens,
		Temperature: &temp,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(prompt),
		},
	})
	if err != nil {
		c.logger.Error("LLM request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", ClassifyError(err)
	}

	if len(resp.Content) == 0 {
		return "", &Error{Type: ErrTypeServer, Message: "no content in response", Retryable: true}
	}

	c.logger.Info("LLM request completed",
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
		zap.Duration("elapsed", time.Since(start)))

	return strings.TrimSpace(resp.Content[0].GetText()), nil
}

// Ping implements Client with a minimal one-token completion.
func (c *AnthropicClient) Ping(ctx context.Context) error {
	_, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(c.model),
		MaxTokens: 1,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage("ping"),
		},
	})
	if err != nil {
		return ClassifyError(err)
	}
	return nil
}

// GetModel implements Client.
func (c *AnthropicClient) GetModel() string {
	return c.model
}
