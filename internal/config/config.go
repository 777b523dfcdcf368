package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/Mohamad-Mousa/readiness/internal/llm"
)

// Config is the application configuration, read from READINESS_*
// environment variables. Cobra flags override individual fields after
// parsing.
type Config struct {
	// DBPath is the SQLite database file. Empty means the default XDG
	// data path.
	DBPath string `env:"READINESS_DB"`

	// CatalogPath is the JSON question-catalog file.
	CatalogPath string `env:"READINESS_CATALOG"`

	LLMProvider    string `env:"READINESS_LLM_PROVIDER"`
	AnthropicKey   string `env:"READINESS_ANTHROPIC_API_KEY"`
	AnthropicModel string `env:"READINESS_ANTHROPIC_MODEL"`
	OpenAIKey      string `env:"READINESS_OPENAI_API_KEY"`
	OpenAIModel    string `env:"READINESS_OPENAI_MODEL"`
	OpenAIBaseURL  string `env:"READINESS_OPENAI_BASE_URL"`
	GeminiKey      string `env:"READINESS_GEMINI_API_KEY"`
	GeminiModel    string `env:"READINESS_GEMINI_MODEL"`
}

// Load parses the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// LLM builds the provider configuration, overlaying the environment on
// the provider defaults.
func (c *Config) LLM() llm.Config {
	cfg := llm.DefaultConfig()

	if c.LLMProvider != "" {
		cfg.Provider = c.LLMProvider
	}
	if c.AnthropicKey != "" {
		cfg.Anthropic.APIKey = c.AnthropicKey
	}
	if c.AnthropicModel != "" {
		cfg.Anthropic.Model = c.AnthropicModel
	}
	if c.OpenAIKey != "" {
		cfg.OpenAI.APIKey = c.OpenAIKey
	}
	if c.OpenAIModel != "" {
		cfg.OpenAI.Model = c.OpenAIModel
	}
	if c.OpenAIBaseURL != "" {
		cfg.OpenAI.BaseURL = c.OpenAIBaseURL
	}
	if c.GeminiKey != "" {
		cfg.Gemini.APIKey = c.GeminiKey
	}
	if c.GeminiModel != "" {
		cfg.Gemini.Model = c.GeminiModel
	}

	return cfg
}
