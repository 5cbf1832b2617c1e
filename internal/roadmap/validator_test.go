package roadmap

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantValid  bool
		wantReason string
	}{
		{
			name:       "empty",
			input:      "",
			wantValid:  false,
			wantReason: "PDF content is too short or empty",
		},
		{
			name:       "too short",
			input:      "Day 1: intro",
			wantValid:  false,
			wantReason: "PDF content is too short or empty",
		},
		{
			name:      "day marker",
			input:     "Day 1: Introduction to the course material and setup steps.",
			wantValid: true,
		},
		{
			name:      "roadmap keyword",
			input:     "A complete roadmap for getting productive with the platform.",
			wantValid: true,
		},
		{
			name:      "module marker",
			input:     "Module 3 builds on the previous two and adds persistence.",
			wantValid: true,
		},
		{
			name:      "case insensitive",
			input:     "WEEK 2 continues from where the first week left off nicely.",
			wantValid: true,
		},
		{
			name:      "prose without markers",
			input:     strings.Repeat("Plain narrative text with no teaching structure. ", 4),
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.input)
			if result.Valid != tt.wantValid {
				t.Fatalf("Validate(%q).Valid = %v, want %v", tt.input, result.Valid, tt.wantValid)
			}
			if tt.wantReason != "" && result.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", result.Reason, tt.wantReason)
			}
			if !tt.wantValid && result.Reason == "" {
				t.Error("invalid result carries no reason")
			}
		})
	}
}
