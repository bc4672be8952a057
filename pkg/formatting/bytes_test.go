package formatting_test

import (
	"testing"

	"github.com/rizzorrisk/rizz/pkg/formatting"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"2048", 2048},
		{"1KB", 1024},
		{"10MB", 10 * 1024 * 1024},
		{"10 mb", 10 * 1024 * 1024},
		{"1.5KB", 1536},
		{"1GB", 1024 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.input)
			if err != nil {
				t.Fatalf("ParseBytes(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBytesErrors(t *testing.T) {
	for _, input := range []string{"", "abc", "10XB", "-5MB"} {
		t.Run(input, func(t *testing.T) {
			if _, err := formatting.ParseBytes(input); err == nil {
				t.Errorf("ParseBytes(%q) expected error", input)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n         int64
		precision int
		want      string
	}{
		{0, 0, "0 B"},
		{512, 0, "512 B"},
		{1024, 0, "1 KB"},
		{10 * 1024 * 1024, 0, "10 MB"},
		{1536, 1, "1.5 KB"},
	}

	for _, tt := range tests {
		if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
			t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
		}
	}
}
