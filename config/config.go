package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// WebhookURL points at the n8n chat webhook. Absence is a valid,
	// handled state: the API answers every dispatch with a
	// not-configured error instead of refusing to start.
	WebhookURL string `env:"N8N_CHAT_WEBHOOK_URL"`
	Port       int    `env:"PORT" envDefault:"3000"`
	AppName    string `env:"APP_NAME" envDefault:"Photo Library Chat"`
}

// Load reads .env.local then .env when present, then parses the
// environment. Dotenv files never override variables already set.
func Load() (Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
