package swipes

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidSwipes = errors.New("Invalid swipeResults data")
	ErrInvalidCount  = fmt.Errorf("count must be between %d and %d", MinHand, len(deck))
	ErrGenerator     = errors.New("Failed to get AI response")
)

// MapHTTPStatus maps swipe domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidSwipes), errors.Is(err, ErrInvalidCount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
