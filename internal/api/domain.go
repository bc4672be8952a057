package api

import (
	"github.com/rizzorrisk/rizz/internal/analysis"
	"github.com/rizzorrisk/rizz/internal/responses"
	"github.com/rizzorrisk/rizz/internal/swipes"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Responses responses.System
	Analysis  analysis.System
	Swipes    swipes.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	responsesSystem := responses.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	analysisSystem := analysis.New(
		runtime.Classifier,
		runtime.Verdicts,
		responsesSystem,
		runtime.Storage,
		runtime.Logger,
	)

	swipesSystem := swipes.New(
		runtime.Verdicts,
		responsesSystem,
		runtime.Logger,
	)

	return &Domain{
		Responses: responsesSystem,
		Analysis:  analysisSystem,
		Swipes:    swipesSystem,
	}
}
