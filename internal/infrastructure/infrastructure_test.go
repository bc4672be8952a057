package infrastructure_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rizzorrisk/rizz/internal/config"
	"github.com/rizzorrisk/rizz/internal/infrastructure"
	"github.com/rizzorrisk/rizz/pkg/database"
)

func validConfig() *config.Config {
	return &config.Config{
		Database: database.Config{
			Host:            "localhost",
			Port:            5432,
			Name:            "rizz",
			User:            "rizz",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: "15m",
			ConnTimeout:     "5s",
		},
		Log:     config.LogConfig{Level: "info", Format: "text"},
		Version: "0.1.0",
	}
}

func TestNew(t *testing.T) {
	infra, err := infrastructure.New(validConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if infra.Lifecycle == nil {
		t.Error("Lifecycle is nil")
	}
	if infra.Logger == nil {
		t.Error("Logger is nil")
	}
	if infra.Database == nil {
		t.Error("Database is nil")
	}
	if infra.Storage == nil || infra.Storage.Enabled() {
		t.Error("Storage should be present and disabled without a connection string")
	}
	if infra.Auth == nil || infra.Auth.Enabled() {
		t.Error("Auth should be present and disabled without an issuer")
	}
}

func TestStartRegistersHooks(t *testing.T) {
	infra, err := infrastructure.New(validConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := infra.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
}

func TestNewLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	logger := infrastructure.NewLogger(&config.LogConfig{Level: "info", Format: "json"}, &buf)
	logger.Info("hello", "k", "v")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("json handler output not JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "hello" || entry["k"] != "v" {
		t.Errorf("entry = %v", entry)
	}

	buf.Reset()
	logger = infrastructure.NewLogger(&config.LogConfig{Level: "warn", Format: "text"}, &buf)
	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, "msg=kept") {
		t.Errorf("text output missing warn entry: %s", out)
	}
}
