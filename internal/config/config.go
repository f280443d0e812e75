package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
//
// JWTSecret falls back to a fixed development value when JWT_SECRET is not
// set. Production deployments must set JWT_SECRET themselves; the default
// exists so the server runs out of the box.
type Config struct {
	ServerPort         int    `env:"PORT" envDefault:"8080"`
	DatabasePath       string `env:"DATABASE_PATH" envDefault:"./agenda.db"`
	JWTSecret          string `env:"JWT_SECRET" envDefault:"secret"`
	AllowEmptyUsername bool   `env:"ALLOW_EMPTY_USERNAME" envDefault:"true"`
}

// Load reads configuration from environment variables, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
