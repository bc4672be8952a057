package verdicts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
)

type openAIGenerator struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

func newOpenAI(opts Options, logger *slog.Logger) *openAIGenerator {
	cfg := openai.DefaultConfig(opts.Token)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	}

	return &openAIGenerator{
		client: openai.NewClientWithConfig(cfg),
		model:  opts.Model,
		logger: logger,
	}
}

func (g *openAIGenerator) Complete(ctx context.Context, p Prompt) (string, error) {
	model := p.Model
	if model == "" {
		model = g.model
	}

	var messages []openai.ChatCompletionMessage
	if p.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleSystem, Content: p.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: p.User,
	})

	req := openai.ChatCompletionRequest{
		Model:     model,
		Messages:  messages,
		MaxTokens: p.MaxTokens,
	}
	if p.Temperature != nil {
		req.Temperature = *p.Temperature
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	g.logger.Debug("completion received", "model", model, "tokens", resp.Usage.TotalTokens)
	return resp.Choices[0].Message.Content, nil
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %d %s", ErrUnavailable, apiErr.HTTPStatusCode, apiErr.Message)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("%w: %d", ErrUnavailable, reqErr.HTTPStatusCode)
	}

	return fmt.Errorf("%w: %v", ErrTransport, err)
}
