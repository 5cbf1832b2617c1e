package roadmap

import (
	"strings"
	"testing"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "indicator line",
			lines: []string{"Course: Practical Backend Engineering", "some body"},
			want:  "Practical Backend Engineering",
		},
		{
			name:  "keyword line",
			lines: []string{"ix", "Python Learning Path 2024"},
			want:  "Python Learning Path 2024",
		},
		{
			name:  "all caps prominent line",
			lines: []string{"MASTERING DISTRIBUTED SYSTEMS", "body text"},
			want:  "MASTERING DISTRIBUTED SYSTEMS",
		},
		{
			name:  "page heading rejected",
			lines: []string{"Page 1 of 44 printed output", "then a reasonably long opening sentence here"},
			want:  "then a reasonably long opening sentence here",
		},
		{
			name:  "fallback",
			lines: []string{"x", "y", "z"},
			want:  "Learning Course",
		},
		{
			name:  "empty input",
			lines: nil,
			want:  "Learning Course",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractTitle(tt.lines); got != tt.want {
				t.Errorf("extractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractDescription(t *testing.T) {
	t.Run("indicator with continuation", func(t *testing.T) {
		lines := []string{
			"Overview: this material walks through every layer of a web stack",
			"from sockets up to templating, with exercises in each chapter",
		}
		got := extractDescription(lines)
		if !strings.HasPrefix(got, "this material walks") {
			t.Errorf("description = %q", got)
		}
		if !strings.Contains(got, "from sockets up to templating") {
			t.Errorf("continuation line not appended: %q", got)
		}
	})

	t.Run("keyword scored line", func(t *testing.T) {
		lines := []string{
			"short",
			"Develop the fundamentals and build production systems with a complete set of exercises.",
		}
		got := extractDescription(lines)
		if got != lines[1] {
			t.Errorf("description = %q, want keyword line", got)
		}
	})

	t.Run("fallback", func(t *testing.T) {
		if got := extractDescription([]string{"tiny"}); got != fallbackDescription {
			t.Errorf("description = %q, want fallback", got)
		}
	})

	t.Run("bounded length", func(t *testing.T) {
		lines := []string{"Description: " + strings.Repeat("all about learning and building systems ", 30)}
		got := extractDescription(lines)
		if len(got) > maxDescriptionLen {
			t.Errorf("description length %d exceeds %d", len(got), maxDescriptionLen)
		}
	})
}
