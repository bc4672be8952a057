// Package analysis turns a submitted scenario into a verdict: it detects
// the scenario's emotions, derives the flag classification, and asks the
// chat model for a reality check.
package analysis

import (
	"github.com/rizzorrisk/rizz/internal/emotions"
	"github.com/rizzorrisk/rizz/internal/responses"
)

// Attachment is an optional screenshot sent with a scenario.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Submission is one scenario to analyze.
type Submission struct {
	Scenario   string
	Attachment *Attachment
}

// Result is the outcome of an analysis. Emotions and Classification are
// always populated. When Err is set the verdict failed, Message is empty,
// and Fallback holds the apology shown instead.
type Result struct {
	Emotions       []emotions.Score
	Classification emotions.Tone
	Message        string
	Err            error
	Fallback       string
	AttachmentKey  string
}

// OK reports whether the verdict succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Record builds the log entry for a successful result.
func (r Result) Record(scenario string) responses.Record {
	return responses.Record{
		Scenario:       scenario,
		Classification: string(r.Classification),
		Message:        r.Message,
		Emotions:       r.Emotions,
		AttachmentKey:  r.AttachmentKey,
	}
}
