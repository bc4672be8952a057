package storage

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound indicates the requested blob does not exist.
	ErrNotFound = errors.New("blob not found")
	// ErrEmptyKey indicates an empty storage key was provided.
	ErrEmptyKey = errors.New("storage key must not be empty")
	// ErrInvalidKey indicates the storage key contains a path traversal segment.
	ErrInvalidKey = errors.New("storage key contains invalid path segment")
	// ErrDisabled indicates no storage account is configured.
	ErrDisabled = errors.New("attachment storage is disabled")
)

// MapHTTPStatus maps storage errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmptyKey), errors.Is(err, ErrInvalidKey):
		return http.StatusBadRequest
	case errors.Is(err, ErrDisabled):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
