// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/rizzorrisk/rizz/internal/config"
	"github.com/rizzorrisk/rizz/internal/infrastructure"
	"github.com/rizzorrisk/rizz/pkg/auth"
	"github.com/rizzorrisk/rizz/pkg/middleware"
	"github.com/rizzorrisk/rizz/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// Requests pass through CORS, then request logging, then session resolution.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime, err := NewRuntime(cfg, infra)
	if err != nil {
		return nil, err
	}
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	if err := registerRoutes(mux, domain, cfg, runtime); err != nil {
		return nil, err
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(auth.Middleware(runtime.Auth, runtime.Logger))

	return m, nil
}
