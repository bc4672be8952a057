package storage

import (
	"os"
)

// Config holds Azure Blob Storage connection parameters.
// An empty ConnectionString disables attachment storage.
type Config struct {
	ContainerName    string `toml:"container_name"`
	ConnectionString string `toml:"connection_string"`
	KeyPrefix        string `toml:"key_prefix"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	ContainerName    string
	ConnectionString string
	KeyPrefix        string
}

// Enabled reports whether a storage account is configured.
func (c *Config) Enabled() bool {
	return c.ConnectionString != ""
}

// Finalize applies defaults and environment variable overrides.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.ContainerName != "" {
		c.ContainerName = overlay.ContainerName
	}
	if overlay.ConnectionString != "" {
		c.ConnectionString = overlay.ConnectionString
	}
	if overlay.KeyPrefix != "" {
		c.KeyPrefix = overlay.KeyPrefix
	}
}

func (c *Config) loadDefaults() {
	if c.ContainerName == "" {
		c.ContainerName = "attachments"
	}
	if c.KeyPrefix == "" {
		c.KeyPrefix = "screenshots"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.ContainerName != "" {
		if v := os.Getenv(env.ContainerName); v != "" {
			c.ContainerName = v
		}
	}
	if env.ConnectionString != "" {
		if v := os.Getenv(env.ConnectionString); v != "" {
			c.ConnectionString = v
		}
	}
	if env.KeyPrefix != "" {
		if v := os.Getenv(env.KeyPrefix); v != "" {
			c.KeyPrefix = v
		}
	}
}
