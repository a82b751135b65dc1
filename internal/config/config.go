package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config is parsed from the process environment. Provider keys are optional
// here: a missing key is reported per request, not at startup.
type Config struct {
	Addr             string        `env:"ADDR"              envDefault:":3000"`
	Provider         string        `env:"PROVIDER"          envDefault:"openai"`
	OpenAIAPIKey     string        `env:"OPENAI_API_KEY"`
	OpenAIModel      string        `env:"OPENAI_MODEL"      envDefault:"gpt-4o-mini"`
	OpenAIBaseURL    string        `env:"OPENAI_BASE_URL"`
	AnthropicAPIKey  string        `env:"ANTHROPIC_API_KEY"`
	AnthropicModel   string        `env:"ANTHROPIC_MODEL"   envDefault:"claude-3-5-haiku-latest"`
	AnthropicBaseURL string        `env:"ANTHROPIC_BASE_URL"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT"  envDefault:"10s"`
	LogLevel         slog.Level    `env:"LOG_LEVEL"         envDefault:"info"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.Provider {
	case ProviderOpenAI, ProviderAnthropic:
	default:
		return Config{}, fmt.Errorf("unknown provider %q", cfg.Provider)
	}

	return cfg, nil
}
