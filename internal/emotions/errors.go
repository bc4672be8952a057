package emotions

import "errors"

var (
	ErrUpstreamStatus   = errors.New("classifier returned non-success status")
	ErrMalformedPayload = errors.New("classifier returned malformed payload")
	ErrEmptyPayload     = errors.New("classifier returned no scores")
	ErrTransport        = errors.New("classifier request failed")
)
