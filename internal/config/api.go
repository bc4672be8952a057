package config

import (
	"fmt"
	"os"

	"github.com/rizzorrisk/rizz/pkg/formatting"
	"github.com/rizzorrisk/rizz/pkg/middleware"
	"github.com/rizzorrisk/rizz/pkg/openapi"
	"github.com/rizzorrisk/rizz/pkg/pagination"
)

const defaultMaxUploadSize = 10 * 1024 * 1024

var corsEnv = &middleware.CORSEnv{
	Enabled:          "RIZZ_CORS_ENABLED",
	Origins:          "RIZZ_CORS_ORIGINS",
	AllowedMethods:   "RIZZ_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "RIZZ_CORS_ALLOWED_HEADERS",
	AllowCredentials: "RIZZ_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "RIZZ_CORS_MAX_AGE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "RIZZ_OPENAPI_TITLE",
	Description: "RIZZ_OPENAPI_DESCRIPTION",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "RIZZ_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "RIZZ_PAGINATION_MAX_PAGE_SIZE",
}

// APIConfig holds API routing, upload limits, CORS, pagination, and OpenAPI
// document settings.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	MaxUploadSize string                `toml:"max_upload_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
	Pagination    pagination.Config     `toml:"pagination"`
	OpenAPI       openapi.Config        `toml:"openapi"`
}

// MaxUploadSizeBytes returns MaxUploadSize in bytes.
func (c *APIConfig) MaxUploadSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return defaultMaxUploadSize
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and pagination configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("RIZZ_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("RIZZ_API_MAX_UPLOAD_SIZE"); v != "" {
		c.MaxUploadSize = v
	}
}

func (c *APIConfig) validate() error {
	if _, err := formatting.ParseBytes(c.MaxUploadSize); err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	return nil
}
