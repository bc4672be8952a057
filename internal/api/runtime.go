package api

import (
	"fmt"

	"github.com/rizzorrisk/rizz/internal/config"
	"github.com/rizzorrisk/rizz/internal/emotions"
	"github.com/rizzorrisk/rizz/internal/infrastructure"
	"github.com/rizzorrisk/rizz/internal/verdicts"
	"github.com/rizzorrisk/rizz/pkg/pagination"
)

// Runtime extends Infrastructure with the API's inference clients and
// pagination settings.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Classifier emotions.Classifier
	Verdicts   *verdicts.Service
}

// NewRuntime creates an API runtime with a module-scoped logger and the
// configured classifier and verdict generator.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) (*Runtime, error) {
	logger := infra.Logger.With("module", "api")

	classifier := cfg.Inference.Classifier
	detector := emotions.New(emotions.Options{
		Endpoint: classifier.Endpoint,
		Token:    classifier.Token,
		Timeout:  classifier.TimeoutDuration(),
	}, logger)

	generator := cfg.Inference.Generator
	gen, err := verdicts.NewGenerator(infra.Lifecycle.Context(), verdicts.Options{
		Provider: generator.Provider,
		BaseURL:  generator.BaseURL,
		Token:    generator.Token,
		Model:    generator.Model,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("verdict generator init failed: %w", err)
	}

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logger,
			Database:  infra.Database,
			Storage:   infra.Storage,
			Auth:      infra.Auth,
		},
		Pagination: cfg.API.Pagination,
		Classifier: detector,
		Verdicts:   verdicts.NewService(gen, generator.TimeoutDuration(), generator.JudgeModel, logger),
	}, nil
}
