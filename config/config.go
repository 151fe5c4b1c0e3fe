package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds kiosk runtime settings, all sourced from the environment.
type Config struct {
	// Port for the kiosk HTTP API. PORT is what Render/Fly/Railway set.
	Port int `env:"PORT" envDefault:"8081"`
	// DataDir is where the file store keeps its JSON payloads.
	DataDir string `env:"GACHA_DATA_DIR" envDefault:"data"`
	// DatabaseURL, when set, switches persistence to Postgres.
	DatabaseURL string `env:"DATABASE_URL"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
