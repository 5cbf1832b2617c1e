package roadmap

import (
	"encoding/json"
	"log/slog"
	"testing"
)

func TestValidatePayload_ParsedCourseConforms(t *testing.T) {
	inputs := []string{
		"",
		"Day 1: Introduction\nGetting familiar with the basics and setting up tools.\nDay 2: Practice\nHands-on exercises with the full toolchain installed.",
		"short text no structure at all here ok",
	}

	parser := NewParser(slog.New(slog.DiscardHandler))
	for _, input := range inputs {
		course := parser.Parse(input)
		data, err := json.Marshal(course)
		if err != nil {
			t.Fatal(err)
		}
		if err := ValidatePayload(data); err != nil {
			t.Errorf("parsed course fails its own schema for input %q: %v", input, err)
		}
	}
}

func TestValidatePayload_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "{{{"},
		{"missing lessons", `{"course_title": "t", "course_description": "d"}`},
		{"empty lessons", `{"course_title": "t", "course_description": "d", "lessons": []}`},
		{"extra field", `{"course_title": "t", "course_description": "d", "lessons": [{"lesson_number": 1, "title": "a", "topics": [], "duration": "1 hour", "content": "c", "bogus": true}]}`},
		{"bad lesson number", `{"course_title": "t", "course_description": "d", "lessons": [{"lesson_number": 0, "title": "a", "topics": [], "duration": "1 hour", "content": "c"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidatePayload([]byte(tt.payload)); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestBuildCourseJSONSchema_Compiles(t *testing.T) {
	schema := BuildCourseJSONSchema()
	if schema["type"] != "object" {
		t.Errorf("schema type = %v", schema["type"])
	}
	if _, err := json.Marshal(schema); err != nil {
		t.Fatalf("schema is not serializable: %v", err)
	}
}
