// Package config loads game settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries the environment-driven settings. Command-line flags
// take precedence over these; both are optional.
type Config struct {
	// Player overrides the player name shown on the scorecard and
	// recorded in the highscore list.
	Player string `env:"YAHOOZY_PLAYER"`
	// DataDir overrides the platform data directory holding the
	// highscore database.
	DataDir string `env:"YAHOOZY_DATA_DIR"`
	// Theme selects a UI theme by name.
	Theme string `env:"YAHOOZY_THEME" envDefault:"basic"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
