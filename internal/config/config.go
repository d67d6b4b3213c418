// Package config holds the library-level defaults, loaded from environment
// variables with the EXCELDIFFY prefix.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config represents the complete application configuration
type Config struct {
	// DefaultTopN caps displayed rows per result when the caller does not
	// ask for a specific limit. Zero disables the cap.
	DefaultTopN int `envconfig:"TOP_N" default:"100"`
	// KeySeparator joins composite key components.
	KeySeparator string `envconfig:"KEY_SEPARATOR" default:"|"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("EXCELDIFFY", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	return &cfg, nil
}

// Logger builds a text slog.Logger on stderr at the configured level.
// Unknown level names fall back to info.
func (c *Config) Logger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
