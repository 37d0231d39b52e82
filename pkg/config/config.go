package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP listen address, e.g. ":8080"
	Address string `env:"ADDRESS" envDefault:":8080"`

	// Origins allowed to call the API from the browser (the static frontend).
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://127.0.0.1:8000,http://localhost:8000"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	OpenAI OpenAIConfig
}

type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY,required"`
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`

	// ChatModel answers the persona conversation; VisionModel handles the
	// catalog match against a photo.
	ChatModel   string `env:"OPENAI_CHAT_MODEL" envDefault:"gpt-3.5-turbo"`
	VisionModel string `env:"OPENAI_VISION_MODEL" envDefault:"gpt-4o-mini"`

	ChatTemperature   float64 `env:"OPENAI_CHAT_TEMPERATURE" envDefault:"0.7"`
	VisionTemperature float64 `env:"OPENAI_VISION_TEMPERATURE" envDefault:"0"`

	MaxTokens int `env:"OPENAI_MAX_TOKENS" envDefault:"1024"`
}

// Load loads .env (if present) and parses environment variables into Config.
func Load() (Config, error) {
	// Load .env if available; ignore error if file does not exist
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
