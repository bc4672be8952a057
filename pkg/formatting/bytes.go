// Package formatting parses and renders loosely formatted values: byte sizes
// from configuration and JSON objects embedded in model output.
package formatting

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

const kibi = 1024.0

var units = []string{"B", "KB", "MB", "GB", "TB"}

var bytesPattern = regexp.MustCompile(`^(\d+\.?\d*)\s*([A-Za-z]*)$`)

// FormatBytes renders a byte count with base-1024 units and the given precision.
func FormatBytes(n int64, precision int) string {
	if n <= 0 {
		return "0 B"
	}
	precision = max(precision, 0)

	exp := min(int(math.Floor(math.Log(float64(n))/math.Log(kibi))), len(units)-1)
	size := float64(n) / math.Pow(kibi, float64(exp))

	return strconv.FormatFloat(size, 'f', precision, 64) + " " + units[exp]
}

// ParseBytes parses sizes such as "10MB", "512 kb" or "2048" (bytes) into a byte count.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size string")
	}

	matches := bytesPattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid byte size: %q", s)
	}

	value, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size number: %w", err)
	}

	unit := strings.ToUpper(matches[2])
	if unit == "" {
		return int64(value), nil
	}

	exp := slices.Index(units, unit)
	if exp == -1 {
		return 0, fmt.Errorf("unknown byte size unit: %q", unit)
	}

	return int64(value * math.Pow(kibi, float64(exp))), nil
}
