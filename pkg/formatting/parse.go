package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParseFailed is returned when model output cannot be parsed as JSON.
var ErrParseFailed = errors.New("failed to parse response")

var fenceRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// StripFence returns the body of the first markdown code fence in content,
// trimmed of surrounding whitespace. Content without a complete fence is
// returned trimmed but otherwise unchanged.
func StripFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.Contains(content, "```") {
		return content
	}

	if matches := fenceRegex.FindStringSubmatch(content); len(matches) >= 2 {
		return strings.TrimSpace(matches[1])
	}
	return content
}

// Parse strips any code fence wrapper from content and unmarshals the
// remainder as JSON into T.
func Parse[T any](content string) (T, error) {
	var result T

	cleaned := StripFence(content)
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return result, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	return result, nil
}
