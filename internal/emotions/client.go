package emotions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Detection is the outcome of a classification attempt. Scores is always
// usable: on failure it holds Defaults and Err records why.
type Detection struct {
	Scores []Score
	Err    error
}

// Failed reports whether Scores are the defaults substituted for a failure.
func (d Detection) Failed() bool {
	return d.Err != nil
}

// Classifier detects emotions in free text.
type Classifier interface {
	Detect(ctx context.Context, text string) Detection
}

// Options configures a Client.
type Options struct {
	Endpoint   string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client calls a Hugging Face style text-classification endpoint.
type Client struct {
	endpoint string
	token    string
	timeout  time.Duration
	http     *http.Client
	logger   *slog.Logger
}

// New creates a Client. A nil HTTPClient uses http.DefaultClient.
func New(opts Options, logger *slog.Logger) *Client {
	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		endpoint: opts.Endpoint,
		token:    opts.Token,
		timeout:  opts.Timeout,
		http:     client,
		logger:   logger.With("system", "emotions"),
	}
}

// Detect classifies text and returns its top scores. Failures never
// propagate: they are logged and reported through Detection.Err alongside
// the default scores.
func (c *Client) Detect(ctx context.Context, text string) Detection {
	scores, err := c.classify(ctx, text)
	if err != nil {
		c.logger.Warn("using default emotions", "error", err)
		return Detection{Scores: Defaults(), Err: err}
	}
	return Detection{Scores: Top(scores, TopN)}
}

func (c *Client) classify(ctx context.Context, text string) ([]Score, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var batches [][]Score
	if err := json.NewDecoder(resp.Body).Decode(&batches); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if len(batches) == 0 || len(batches[0]) == 0 {
		return nil, ErrEmptyPayload
	}
	for _, s := range batches[0] {
		if s.Label == "" {
			return nil, fmt.Errorf("%w: score without label", ErrMalformedPayload)
		}
	}

	return batches[0], nil
}
