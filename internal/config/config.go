// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime knob for the simulation host.
type Config struct {
	// Seed drives the shared random source. Equal seeds with equal inputs
	// replay identical histories.
	Seed int64 `env:"POLSIM_SEED" envDefault:"1917"`

	// StartYear is the first simulated year for a fresh game.
	StartYear int `env:"POLSIM_START_YEAR" envDefault:"1950"`

	// DBPath is the SQLite save-file location.
	DBPath string `env:"POLSIM_DB" envDefault:"data/politburo.db"`

	// Port serves the observation API. Zero disables the server.
	Port int `env:"POLSIM_PORT" envDefault:"8080"`

	// AdminKey is the bearer token for admin POST endpoints. Empty
	// disables them.
	AdminKey string `env:"POLSIM_ADMIN_KEY"`

	// TickInterval is the wall-clock length of one simulated month.
	TickInterval time.Duration `env:"POLSIM_TICK_INTERVAL" envDefault:"2s"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TickInterval <= 0 {
		return Config{}, fmt.Errorf("tick interval must be positive, got %s", cfg.TickInterval)
	}
	return cfg, nil
}
