// Package config loads process configuration once at startup.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the analytics agent.
// Values come from config.yaml when present, with environment variables
// overriding. Secrets (DATABASE_URL, API keys) come only from the
// environment. Components never read ambient environment state directly;
// the loaded struct is passed into every constructor.
type Config struct {
	Env string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`

	Database DatabaseConfig `yaml:"database"`
	LLM      LLMConfig      `yaml:"llm"`
	Persona  PersonaConfig  `yaml:"persona"`
}

// DatabaseConfig holds PostgreSQL settings for the visit store.
type DatabaseConfig struct {
	URL             string `yaml:"-" env:"DATABASE_URL"` // Secret - not in YAML
	MaxConnections  int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"10"`
	QueryTimeoutSec int    `yaml:"query_timeout_sec" env:"PGQUERY_TIMEOUT_SEC" env-default:"30"`
}

// LLMConfig selects and configures the completion provider.
type LLMConfig struct {
	Provider string `yaml:"provider" env:"LLM_PROVIDER" env-default:"openai"` // "openai" or "anthropic"
	Endpoint string `yaml:"endpoint" env:"LLM_ENDPOINT" env-default:"https://api.openai.com/v1"`
	Model    string `yaml:"model" env:"LLM_MODEL" env-default:"gpt-4o-mini"`
	APIKey   string `yaml:"-" env:"OPENAI_API_KEY"`    // Secret - not in YAML
	AnthKey  string `yaml:"-" env:"ANTHROPIC_API_KEY"` // Secret - not in YAML
}

// Key returns the API key for the configured provider.
func (c *LLMConfig) Key() string {
	if c.Provider == "anthropic" {
		return c.AnthKey
	}
	return c.APIKey
}

// PersonaConfig describes the assistant identity used in prompts and in the
// self-description reply.
type PersonaConfig struct {
	Name      string `yaml:"name" env:"AGENT_NAME" env-default:"John"`
	Role      string `yaml:"role" env:"AGENT_ROLE" env-default:"Analista de Dados Sênior"`
	Company   string `yaml:"company" env:"AGENT_COMPANY" env-default:"TecnoTop Automação"`
	Tone      string `yaml:"tone" env:"AGENT_TONE" env-default:"Profissional com senso de humor aguçado, sem perder objetividade"`
	Specialty string `yaml:"specialty" env:"AGENT_SPECIALTY" env-default:"análise de visitas técnicas e relacionamento com clientes B2B nos setores industrial e comercial"`
}

// Load reads configuration from config.yaml (optional) with environment
// variable overrides.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("read environment: %w", err)
		}
	}

	return cfg, nil
}

// Configured reports whether the agent has what it needs to answer data
// questions. The pipeline refuses politely instead of crashing when this
// is false.
func (c *Config) Configured() bool {
	return c.Database.URL != "" && c.LLM.Key() != ""
}
