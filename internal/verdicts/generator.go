// Package verdicts produces free-form model verdicts through a
// chat-completion provider, with a deterministic fallback on failure.
package verdicts

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Prompt is a single chat-completion request. Zero Model, Temperature, and
// MaxTokens use the provider defaults.
type Prompt struct {
	System      string
	User        string
	Model       string
	Temperature *float32
	MaxTokens   int
}

// Generator sends a prompt to a chat model and returns the first choice.
// Errors wrap ErrUnavailable, ErrEmptyResponse, or ErrTransport.
type Generator interface {
	Complete(ctx context.Context, p Prompt) (string, error)
}

// Provider names accepted by NewGenerator.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Options configures a Generator.
type Options struct {
	Provider   string
	BaseURL    string
	Token      string
	Model      string
	HTTPClient *http.Client
}

// NewGenerator creates the Generator named by opts.Provider.
func NewGenerator(ctx context.Context, opts Options, logger *slog.Logger) (Generator, error) {
	logger = logger.With("system", "verdicts", "provider", opts.Provider)

	switch opts.Provider {
	case ProviderOpenAI, "":
		return newOpenAI(opts, logger), nil
	case ProviderGemini:
		return newGemini(ctx, opts, logger)
	default:
		return nil, fmt.Errorf("unknown generator provider %q", opts.Provider)
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
