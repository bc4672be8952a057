package verdicts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

type geminiGenerator struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

func newGemini(ctx context.Context, opts Options, logger *slog.Logger) (*geminiGenerator, error) {
	cfg := &genai.ClientConfig{
		APIKey:     opts.Token,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions.BaseURL = opts.BaseURL
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &geminiGenerator{
		client: client,
		model:  opts.Model,
		logger: logger,
	}, nil
}

func (g *geminiGenerator) Complete(ctx context.Context, p Prompt) (string, error) {
	model := p.Model
	if model == "" {
		model = g.model
	}

	cfg := &genai.GenerateContentConfig{}
	if p.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(p.System, genai.RoleUser)
	}
	if p.Temperature != nil {
		cfg.Temperature = genai.Ptr(*p.Temperature)
	}
	if p.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(p.MaxTokens)
	}

	result, err := g.client.Models.GenerateContent(ctx, model, genai.Text(p.User), cfg)
	if err != nil {
		return "", mapGeminiError(err)
	}
	if result == nil || len(result.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	g.logger.Debug("completion received", "model", model)
	return result.Text(), nil
}

func mapGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %d %s", ErrUnavailable, apiErr.Code, apiErr.Message)
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return fmt.Errorf("%w: %d %s", ErrUnavailable, apiErrPtr.Code, apiErrPtr.Message)
	}

	return fmt.Errorf("%w: %v", ErrTransport, err)
}
