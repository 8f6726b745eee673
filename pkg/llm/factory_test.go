package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jLucasZ1/contele-app/pkg/config"
)

func TestNewFromConfig(t *testing.T) {
	t.Run("openai", func(t *testing.T) {
		client, err := NewFromConfig(&config.LLMConfig{
			Provider: "openai",
			Endpoint: "https://api.openai.com/v1",
			Model:    "gpt-4o-mini",
			APIKey:   "sk-test",
		}, zap.NewNop())
		require.NoError(t, err)
		assert.IsType(t, &OpenAIClient{}, client)
		assert.Equal(t, "gpt-4o-mini", client.GetModel())
	})

	t.Run("empty provider defaults to openai", func(t *testing.T) {
		client, err := NewFromConfig(&config.LLMConfig{
			Model:  "gpt-4o-mini",
			APIKey: "sk-test",
		}, zap.NewNop())
		require.NoError(t, err)
		assert.IsType(t, &OpenAIClient{}, client)
	})

	t.Run("anthropic", func(t *testing.T) {
		client, err := NewFromConfig(&config.LLMConfig{
			Provider: "anthropic",
			Model:    "claude-3-5-haiku-latest",
			AnthKey:  "sk-ant-test",
		}, zap.NewNop())
		require.NoError(t, err)
		assert.IsType(t, &AnthropicClient{}, client)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewFromConfig(&config.LLMConfig{Provider: "cohere"}, zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cohere")
	})
}
