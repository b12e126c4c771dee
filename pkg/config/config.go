package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mindling-ai/mindling/pkg/xlog"
)

// Config holds everything mindling reads from the environment.
// The model settings are optional: without them the agent keeps
// working with its rule-based responder only.
type Config struct {
	Model         string `env:"MINDLING_MODEL"`
	LLMAPIURL     string `env:"MINDLING_LLM_API_URL"`
	LLMAPIKey     string `env:"MINDLING_LLM_API_KEY"`
	LLMTimeout    string `env:"MINDLING_LLM_TIMEOUT" envDefault:"150s"`
	ListenAddr    string `env:"MINDLING_LISTEN_ADDR"`
	SearchResults int    `env:"MINDLING_SEARCH_RESULTS" envDefault:"3"`
	SafetyMode    string `env:"MINDLING_SAFETY_MODE" envDefault:"standard"`
	IdleTickCron  string `env:"MINDLING_IDLE_TICK_CRON"`
}

// New loads .env (if present) and parses the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		xlog.Debug("No .env file found, using system environment")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ModelConfigured reports whether the optional LLM path is usable.
func (c *Config) ModelConfigured() bool {
	return c.Model != "" && c.LLMAPIURL != ""
}
