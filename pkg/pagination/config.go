// Package pagination provides types and utilities for paginated data queries.
package pagination

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ErrPageSizeRange is returned when the default page size exceeds the max.
var ErrPageSizeRange = errors.New("default_page_size cannot exceed max_page_size")

// Config bounds the page sizes listing endpoints accept.
type Config struct {
	DefaultPageSize int `toml:"default_page_size"`
	MaxPageSize     int `toml:"max_page_size"`
}

// ConfigEnv names the environment variables that override Config.
type ConfigEnv struct {
	DefaultPageSize string
	MaxPageSize     string
}

// Finalize applies environment overrides, fills unset or non-positive sizes
// with defaults, and checks the default fits under the max. A variable that
// is set but not an integer is an error.
func (c *Config) Finalize(env *ConfigEnv) error {
	if env != nil {
		if err := envInt(env.DefaultPageSize, &c.DefaultPageSize); err != nil {
			return err
		}
		if err := envInt(env.MaxPageSize, &c.MaxPageSize); err != nil {
			return err
		}
	}

	c.DefaultPageSize = cmp.Or(max(c.DefaultPageSize, 0), DefaultPageSize)
	c.MaxPageSize = cmp.Or(max(c.MaxPageSize, 0), MaxPageSize)

	if c.DefaultPageSize > c.MaxPageSize {
		return ErrPageSizeRange
	}
	return nil
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	c.DefaultPageSize = cmp.Or(overlay.DefaultPageSize, c.DefaultPageSize)
	c.MaxPageSize = cmp.Or(overlay.MaxPageSize, c.MaxPageSize)
}

func envInt(name string, target *int) error {
	if name == "" {
		return nil
	}
	v := os.Getenv(name)
	if v == "" {
		return nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*target = n
	return nil
}
