package verdicts

import "errors"

var (
	ErrUnavailable   = errors.New("generator returned non-success status")
	ErrEmptyResponse = errors.New("generator returned no choices")
	ErrTransport     = errors.New("generator request failed")
)

// Describe returns the client-facing error text for a generator failure.
func Describe(err error) string {
	switch {
	case errors.Is(err, ErrUnavailable):
		return "AI service temporarily unavailable"
	case errors.Is(err, ErrEmptyResponse):
		return "AI service returned invalid response"
	default:
		return "Network error while processing request"
	}
}
