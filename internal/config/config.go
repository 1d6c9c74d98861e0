// Package config loads runtime settings from the environment.
//
// An optional .env file in the working directory is loaded first; values
// already present in the process environment win over it.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/vancezuo/adversary-hangman/internal/game"
)

// Config holds every tunable of the server and CLI.
type Config struct {
	Port     string `env:"PORT" envDefault:"5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty   bool   `env:"LOG_PRETTY" envDefault:"false"`

	// WordsFile is a corpus path; empty means the embedded corpus.
	WordsFile string `env:"WORDS_FILE"`

	DefaultMode   string `env:"DEFAULT_MODE" envDefault:"adversary"`
	DefaultLength int    `env:"DEFAULT_LENGTH" envDefault:"4"`
	DefaultLives  int    `env:"DEFAULT_LIVES" envDefault:"7"`
	MaxLives      int    `env:"MAX_LIVES" envDefault:"25"`
	RandomLength  bool   `env:"RANDOM_LENGTH" envDefault:"false"`

	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	DailySalt    string        `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	ClientOrigin string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	// Seed fixes the master random seed when set.
	Seed *int64 `env:"SEED"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Mode returns the parsed default mode.
func (c *Config) Mode() game.Mode {
	m, _ := game.ParseMode(c.DefaultMode)
	return m
}

// Validate checks ranges and cross-field constraints.
func (c *Config) Validate() error {
	var errs []error
	if _, err := game.ParseMode(c.DefaultMode); err != nil {
		errs = append(errs, fmt.Errorf("DEFAULT_MODE: %w", err))
	}
	if c.DefaultLength < 1 {
		errs = append(errs, fmt.Errorf("DEFAULT_LENGTH must be positive, got %d", c.DefaultLength))
	}
	if c.MaxLives < 1 {
		errs = append(errs, fmt.Errorf("MAX_LIVES must be positive, got %d", c.MaxLives))
	}
	if c.DefaultLives < 1 || c.DefaultLives > c.MaxLives {
		errs = append(errs, fmt.Errorf("DEFAULT_LIVES must be in 1..%d, got %d", c.MaxLives, c.DefaultLives))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL))
	}
	return errors.Join(errs...)
}
