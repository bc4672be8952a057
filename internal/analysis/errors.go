package analysis

import (
	"errors"
	"net/http"
)

var (
	ErrScenarioRequired = errors.New("Scenario is required")
	ErrProcessing       = errors.New("Error processing request")
)

// MapHTTPStatus maps analysis domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrScenarioRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
