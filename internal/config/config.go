// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

const minSecretLength = 32

// Config contains server configuration parameters.
type Config struct {
	Port             string     `env:"PORT" envDefault:"3000"`
	DatabasePath     string     `env:"DATABASE_PATH" envDefault:"users.db"`
	JWTSecret        string     `env:"JWT_SECRET"`
	BcryptCost       int        `env:"BCRYPT_COST" envDefault:"10"`
	LogLevel         slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SeedDefaultUsers bool       `env:"SEED_DEFAULT_USERS" envDefault:"true"`
	AllowedOrigins   []string   `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// Load parses configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings the server cannot start without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is required")
	}
	if len(c.JWTSecret) < minSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters for HMAC-SHA256 security", minSecretLength)
	}
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("BCRYPT_COST must be between 10 and 14, got %d", c.BcryptCost)
	}
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	return nil
}

// String returns a representation of the config with the secret masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %s, DB: %s, BcryptCost: %d, LogLevel: %s, Seed: %t, Origins: %v, JWTSecret: ***}",
		c.Port, c.DatabasePath, c.BcryptCost, c.LogLevel, c.SeedDefaultUsers, c.AllowedOrigins)
}
