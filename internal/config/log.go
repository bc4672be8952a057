package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// LogConfig selects the root logger's level and output format.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// SlogLevel returns Level as a slog.Level.
func (c *LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *LogConfig) Finalize() error {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "text"
	}
	if v := os.Getenv("RIZZ_LOG_LEVEL"); v != "" {
		c.Level = v
	}
	if v := os.Getenv("RIZZ_LOG_FORMAT"); v != "" {
		c.Format = v
	}

	c.Format = strings.ToLower(c.Format)
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("invalid format %q: must be text or json", c.Format)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return fmt.Errorf("invalid level: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *LogConfig) Merge(overlay *LogConfig) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}
