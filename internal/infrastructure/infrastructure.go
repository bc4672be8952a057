// Package infrastructure assembles the shared systems every domain package
// depends on: lifecycle, logging, database, attachment storage, and token
// verification.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rizzorrisk/rizz/internal/config"
	"github.com/rizzorrisk/rizz/pkg/auth"
	"github.com/rizzorrisk/rizz/pkg/database"
	"github.com/rizzorrisk/rizz/pkg/lifecycle"
	"github.com/rizzorrisk/rizz/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	Auth      auth.Verifier
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := NewLogger(&cfg.Log, os.Stderr).With("version", cfg.Version)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Storage:   store,
		Auth:      auth.New(lc.Context(), &cfg.Auth, logger),
	}, nil
}

// NewLogger builds the root logger described by cfg, writing to w.
func NewLogger(cfg *config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Start registers database and storage hooks with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}
