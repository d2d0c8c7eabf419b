package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// LoadConfig loads and validates the service configuration.
//
// The loading sequence is:
//  1. Enforce UTC to prevent date-boundary drift between the branch decision
//     and the upstream APIs.
//  2. Load a .env file if present (non-fatal if missing).
//  3. Process envconfig struct tags.
//  4. Validate with go-playground/validator (fail fast).
func LoadConfig() (*Config, error) {
	time.Local = time.UTC

	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}
