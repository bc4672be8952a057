package auth

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidToken = errors.New("invalid bearer token")
	ErrDisabled     = errors.New("token verification disabled")
	ErrUnauthorized = errors.New("Unauthorized")
)

// MapHTTPStatus maps auth errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrDisabled):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
