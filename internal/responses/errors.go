package responses

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidOwner   = errors.New("response owner requires a user id")
	ErrCorruptLog     = errors.New("stored response log is not a JSON array")
	ErrUnavailable    = errors.New("response store unavailable")
	ErrEncodingRecord = errors.New("encode response record")
)

// MapHTTPStatus maps persistence errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidOwner):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
