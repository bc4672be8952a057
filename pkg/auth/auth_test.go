package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rizzorrisk/rizz/pkg/auth"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubVerifier struct {
	enabled bool
	tokens  map[string]*auth.Session
}

func (s *stubVerifier) Enabled() bool { return s.enabled }

func (s *stubVerifier) Verify(_ context.Context, raw string) (*auth.Session, error) {
	if session, ok := s.tokens[raw]; ok {
		return session, nil
	}
	return nil, auth.ErrInvalidToken
}

func newStub() *stubVerifier {
	return &stubVerifier{
		enabled: true,
		tokens: map[string]*auth.Session{
			"good": {UserID: "user-1", Email: "a@example.com"},
		},
	}
}

func capture(got **auth.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = auth.SessionFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddlewareSessions(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantCode int
		wantUser string
	}{
		{"anonymous", "", http.StatusOK, ""},
		{"non bearer scheme", "Basic abc", http.StatusOK, ""},
		{"valid token", "Bearer good", http.StatusOK, "user-1"},
		{"case insensitive scheme", "bearer good", http.StatusOK, "user-1"},
		{"invalid token", "Bearer forged", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *auth.Session
			handler := auth.Middleware(newStub(), discard())(capture(&got))

			req := httptest.NewRequest("GET", "/dashboard", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("status: got %d, want %d", rec.Code, tt.wantCode)
			}

			gotUser := ""
			if got != nil {
				gotUser = got.UserID
			}
			if gotUser != tt.wantUser {
				t.Errorf("user: got %q, want %q", gotUser, tt.wantUser)
			}
		})
	}
}

func TestMiddlewareRejectsWithJSON(t *testing.T) {
	var got *auth.Session
	handler := auth.Middleware(newStub(), discard())(capture(&got))

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "Unauthorized" {
		t.Errorf("error: got %q, want Unauthorized", body["error"])
	}
}

func TestMiddlewareDisabledIgnoresTokens(t *testing.T) {
	stub := newStub()
	stub.enabled = false

	var got *auth.Session
	handler := auth.Middleware(stub, discard())(capture(&got))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
	if got != nil {
		t.Errorf("session should be nil when verification is disabled, got %+v", got)
	}
}

func TestRequireSession(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := auth.RequireSession(discard())(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: got %d, want 401", rec.Code)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(auth.WithSession(req.Context(), &auth.Session{UserID: "u"}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("signed in: got %d, want 200", rec.Code)
	}
}

func TestNewDisabledWithoutIssuer(t *testing.T) {
	cfg := auth.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	v := auth.New(context.Background(), &cfg, discard())
	if v.Enabled() {
		t.Fatal("verifier should be disabled")
	}
	if _, err := v.Verify(context.Background(), "x"); !errors.Is(err, auth.ErrDisabled) {
		t.Errorf("verify error = %v, want ErrDisabled", err)
	}
}

func TestConfigDerivesJWKSURL(t *testing.T) {
	t.Setenv("TEST_AUTH_ISSUER", "https://project.supabase.co/auth/v1/")

	cfg := auth.Config{}
	if err := cfg.Finalize(&auth.Env{Issuer: "TEST_AUTH_ISSUER"}); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	want := "https://project.supabase.co/auth/v1/.well-known/jwks.json"
	if cfg.JWKSURL != want {
		t.Errorf("jwks url = %q, want %q", cfg.JWKSURL, want)
	}
}

func TestConfigRejectsBadJWKSURL(t *testing.T) {
	cfg := auth.Config{Issuer: "https://issuer.example.com", JWKSURL: "not a url"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("expected validation error for relative jwks url")
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{auth.ErrInvalidToken, http.StatusUnauthorized},
		{auth.ErrUnauthorized, http.StatusUnauthorized},
		{auth.ErrDisabled, http.StatusNotImplemented},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := auth.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
