// Package config loads msgsource settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvRoot     = "MSGSOURCE_ROOT"
	EnvLogLevel = "MSGSOURCE_LOG_LEVEL"
)

// DefaultRoot is used when no root directory is configured.
const DefaultRoot = "messages"

// Config holds the runtime settings.
type Config struct {
	Root     string
	LogLevel slog.Level
}

// Load reads an optional .env file from the working directory, then the
// environment, and validates the result. Variables already set in the
// environment take precedence over the .env file.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit .env path. A missing file is not an error.
func LoadFile(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: reading %s: %w", envFile, err)
	}

	cfg := &Config{
		Root:     os.Getenv(EnvRoot),
		LogLevel: slog.LevelWarn,
	}
	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("config: %s invalid value %q: %w", EnvLogLevel, level, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("config: %s must not be blank", EnvRoot)
	}
	return nil
}
