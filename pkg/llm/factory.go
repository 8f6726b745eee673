package llm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jLucasZ1/contele-app/pkg/config"
)

// NewFromConfig builds the completion client selected by configuration.
// Supported providers: "openai" (default, also covers OpenAI-compatible
// endpoints) and "anthropic".
func NewFromConfig(cfg *config.LLMConfig, logger *zap.Logger) (Client, error) {
	switch cfg.Provider {
	case "", "openai":
		return NewOpenAIClient(&Config{
			Endpoint: cfg.Endpoint,
			Model:    cfg.Model,
			APIKey:   cfg.APIKey,
		}, logger)
	case "anthropic":
		return NewAnthropicClient(&Config{
			Model:  cfg.Model,
			APIKey: cfg.AnthKey,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
