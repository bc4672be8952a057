package verdicts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rizzorrisk/rizz/internal/emotions"
	"github.com/rizzorrisk/rizz/internal/prompts"
)

// Outcome is the result of asking for a verdict. Exactly one of Message and
// Err is meaningful: on failure Message is empty and Fallback holds the
// apology shown to the user instead.
type Outcome struct {
	Message  string
	Err      error
	Fallback string
}

// OK reports whether the model produced a verdict.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Judge request parameters for the swipe game.
const (
	JudgeTemperature float32 = 0.7
	JudgeMaxTokens           = 200
)

// Service wraps a Generator with per-call timeouts and the verdict and
// judgment prompts.
type Service struct {
	gen        Generator
	timeout    time.Duration
	judgeModel string
	logger     *slog.Logger
}

// NewService creates a Service. judgeModel selects the model for swipe
// judgments; an empty value uses the generator default.
func NewService(gen Generator, timeout time.Duration, judgeModel string, logger *slog.Logger) *Service {
	return &Service{
		gen:        gen,
		timeout:    timeout,
		judgeModel: judgeModel,
		logger:     logger.With("system", "verdicts"),
	}
}

// Verdict asks the model for a reality check on scenario given its detected
// emotions. It never returns a Go error; failures are carried in the Outcome.
func (s *Service) Verdict(ctx context.Context, scenario string, scores []emotions.Score, tone emotions.Tone) Outcome {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	labels := emotions.Labels(scores)
	prompt, err := prompts.Analyze(scenario, labels)
	if err != nil {
		return Outcome{Err: err, Fallback: Fallback(labels, tone)}
	}

	msg, err := s.gen.Complete(ctx, Prompt{User: prompt})
	if err != nil {
		s.logger.Warn("verdict generation failed", "error", err)
		return Outcome{Err: err, Fallback: Fallback(labels, tone)}
	}
	return Outcome{Message: msg}
}

// Judge sends a swipe judgment prompt with the judge model settings and
// returns the raw model text.
func (s *Service) Judge(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	temp := JudgeTemperature
	msg, err := s.gen.Complete(ctx, Prompt{
		User:        prompt,
		Model:       s.judgeModel,
		Temperature: &temp,
		MaxTokens:   JudgeMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("judge: %w", err)
	}
	return msg, nil
}

// Fallback is the apology returned when the model cannot be reached.
func Fallback(labels []string, tone emotions.Tone) string {
	return "Sorry, I couldn't analyze your scenario right now. But it sounds like a mix of " +
		strings.Join(labels, ", ") + ". " +
		"Based on this, " + string(tone) + " Try again in a few moments?"
}
