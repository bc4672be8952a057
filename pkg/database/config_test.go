package database_test

import (
	"testing"

	"github.com/rizzorrisk/rizz/pkg/database"
)

func TestFinalizeDefaults(t *testing.T) {
	cfg := database.Config{Name: "rizz", User: "rizz"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"host", cfg.Host, "localhost"},
		{"port", cfg.Port, 5432},
		{"ssl_mode", cfg.SSLMode, "disable"},
		{"max_open_conns", cfg.MaxOpenConns, 25},
		{"max_idle_conns", cfg.MaxIdleConns, 5},
		{"conn_max_lifetime", cfg.ConnMaxLifetime, "15m"},
		{"conn_timeout", cfg.ConnTimeout, "5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}
}

func TestFinalizeRequiresNameWithoutURL(t *testing.T) {
	cfg := database.Config{User: "rizz"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("expected error when neither name nor url is set")
	}
}

func TestURLTakesPrecedence(t *testing.T) {
	t.Setenv("TEST_DB_URL", "postgres://u:p@db.example.com:6543/postgres?sslmode=require")

	cfg := database.Config{Host: "ignored", Name: "ignored", User: "ignored"}
	if err := cfg.Finalize(&database.Env{URL: "TEST_DB_URL"}); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if got := cfg.Dsn(); got != "postgres://u:p@db.example.com:6543/postgres?sslmode=require" {
		t.Errorf("dsn = %q, want the configured url", got)
	}
}

func TestDsnFromFields(t *testing.T) {
	cfg := database.Config{Name: "rizz", User: "app", Password: "secret"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	want := "host=localhost port=5432 dbname=rizz user=app password=secret sslmode=disable"
	if got := cfg.Dsn(); got != want {
		t.Errorf("dsn = %q, want %q", got, want)
	}
}

func TestMergeOverlay(t *testing.T) {
	base := database.Config{Host: "localhost", Port: 5432, Name: "rizz"}
	base.Merge(&database.Config{Host: "prodhost", URL: "postgres://x"})

	if base.Host != "prodhost" {
		t.Errorf("host = %q, want prodhost", base.Host)
	}
	if base.Port != 5432 {
		t.Errorf("port = %d, want 5432", base.Port)
	}
	if base.URL != "postgres://x" {
		t.Errorf("url = %q, want postgres://x", base.URL)
	}
}
