package auth

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Config holds bearer token verification settings. An empty Issuer
// disables verification and every request is served anonymously.
type Config struct {
	Issuer   string `toml:"issuer"`
	JWKSURL  string `toml:"jwks_url"`
	Audience string `toml:"audience"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Issuer   string
	JWKSURL  string
	Audience string
}

// Enabled reports whether an issuer is configured.
func (c *Config) Enabled() bool {
	return c.Issuer != ""
}

// Finalize applies environment overrides, derives defaults, and validates.
func (c *Config) Finalize(env *Env) error {
	if env != nil {
		c.loadEnv(env)
	}
	c.loadDefaults()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Issuer != "" {
		c.Issuer = overlay.Issuer
	}
	if overlay.JWKSURL != "" {
		c.JWKSURL = overlay.JWKSURL
	}
	if overlay.Audience != "" {
		c.Audience = overlay.Audience
	}
}

func (c *Config) loadDefaults() {
	if c.Issuer != "" && c.JWKSURL == "" {
		c.JWKSURL = strings.TrimSuffix(c.Issuer, "/") + "/.well-known/jwks.json"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Issuer != "" {
		if v := os.Getenv(env.Issuer); v != "" {
			c.Issuer = v
		}
	}
	if env.JWKSURL != "" {
		if v := os.Getenv(env.JWKSURL); v != "" {
			c.JWKSURL = v
		}
	}
	if env.Audience != "" {
		if v := os.Getenv(env.Audience); v != "" {
			c.Audience = v
		}
	}
}

func (c *Config) validate() error {
	if !c.Enabled() {
		return nil
	}
	u, err := url.Parse(c.JWKSURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid jwks_url %q", c.JWKSURL)
	}
	return nil
}
