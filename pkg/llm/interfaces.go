// Package llm provides the completion clients used by the analytics agent.
package llm

import "context"

// Client is the completion capability injected into the generator,
// interpreter and casual-conversation paths. Use this interface for
// dependency injection to enable mocking in tests.
type Client interface {
	// GenerateResponse returns a single chat completion for the prompt.
	GenerateResponse(ctx context.Context, prompt string, systemMessage string, temperature float64) (string, error)

	// Ping performs a minimal round trip to verify connectivity.
	Ping(ctx context.Context) error

	// GetModel returns the configured model name.
	GetModel() string
}

// Compile-time interface checks.
var (
	_ Client = (*OpenAIClient)(nil)
	_ Client = (*AnthropicClient)(nil)
	_ Client = (*MockClient)(nil)
)
