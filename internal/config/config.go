// Package config loads the service configuration from config.toml, an
// optional per-environment overlay, and RIZZ_* environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/rizzorrisk/rizz/pkg/auth"
	"github.com/rizzorrisk/rizz/pkg/database"
	"github.com/rizzorrisk/rizz/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvRizzEnv     = "RIZZ_ENV"
	EnvRizzVersion = "RIZZ_VERSION"
)

var databaseEnv = &database.Env{
	URL:             "RIZZ_DB_URL",
	Host:            "RIZZ_DB_HOST",
	Port:            "RIZZ_DB_PORT",
	Name:            "RIZZ_DB_NAME",
	User:            "RIZZ_DB_USER",
	Password:        "RIZZ_DB_PASSWORD",
	SSLMode:         "RIZZ_DB_SSL_MODE",
	MaxOpenConns:    "RIZZ_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "RIZZ_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "RIZZ_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "RIZZ_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	ContainerName:    "RIZZ_STORAGE_CONTAINER_NAME",
	ConnectionString: "RIZZ_STORAGE_CONNECTION_STRING",
	KeyPrefix:        "RIZZ_STORAGE_KEY_PREFIX",
}

var authEnv = &auth.Env{
	Issuer:   "RIZZ_AUTH_ISSUER",
	JWKSURL:  "RIZZ_AUTH_JWKS_URL",
	Audience: "RIZZ_AUTH_AUDIENCE",
}

// Config is the root configuration for the service.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  database.Config `toml:"database"`
	Storage   storage.Config  `toml:"storage"`
	Auth      auth.Config     `toml:"auth"`
	API       APIConfig       `toml:"api"`
	Inference InferenceConfig `toml:"inference"`
	Log       LogConfig       `toml:"log"`
	Version   string          `toml:"version"`
}

// Env returns the RIZZ_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvRizzEnv); env != "" {
		return env
	}
	return "local"
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.Auth.Merge(&overlay.Auth)
	c.API.Merge(&overlay.API)
	c.Inference.Merge(&overlay.Inference)
	c.Log.Merge(&overlay.Log)
}

func (c *Config) finalize() error {
	if c.Version == "" {
		c.Version = "0.1.0"
	}
	if v := os.Getenv(EnvRizzVersion); v != "" {
		c.Version = v
	}

	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Auth.Finalize(authEnv); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Inference.Finalize(); err != nil {
		return fmt.Errorf("inference: %w", err)
	}
	if err := c.Log.Finalize(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvRizzEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
