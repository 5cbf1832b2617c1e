package roadmap

import (
	"strings"
	"testing"
)

func TestExtractDuration_ExplicitUnits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"hours and minutes", "This lesson takes 2 hours and 30 minutes to complete", "2 hours 30 minutes"},
		{"minutes only", "Duration: 45 minutes", "45 minutes"},
		{"single hour", "Plan for 1 hour of focused work", "1 hour"},
		{"whole hours", "Expect 3 hours of exercises", "3 hours"},
		{"fractional hours", "About 1.5 hours total", "1 hours 30 minutes"},
		{"days", "Takes 2 days to work through", "16 hours"},
		{"weeks", "A 1 week sprint", "40 hours"},
		{"abbreviated", "Roughly 90 mins", "1 hours 30 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractDuration(tt.input); got != tt.want {
				t.Errorf("extractDuration(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractDuration_Estimated(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tiny content", "just a few words here", "15-30 minutes"},
		{"medium content", strings.Repeat("word ", 3000), "30-60 minutes"},
		{"long content", strings.Repeat("word ", 10000), "2 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractDuration(tt.input); got != tt.want {
				t.Errorf("extractDuration(len %d) = %q, want %q", len(tt.input), got, tt.want)
			}
		})
	}
}
