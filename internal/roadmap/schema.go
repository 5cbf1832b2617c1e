package roadmap

import (
	"bytes"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/coursekit/roadmap-parser/internal/common"
)

// BuildCourseJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the Course payload contract.
func BuildCourseJSONSchema() map[string]any {
	lessonProps := map[string]any{
		"lesson_number": map[string]any{"type": "integer", "minimum": 1},
		"title":         map[string]any{"type": "string", "minLength": 1},
		"topics": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string", "minLength": 1},
			"maxItems": maxTopicsPerLesson,
		},
		"duration": map[string]any{"type": "string", "minLength": 1},
		"content":  map[string]any{"type": "string", "minLength": 1},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"course_title":       map[string]any{"type": "string", "minLength": 1},
			"course_description": map[string]any{"type": "string", "minLength": 1},
			"lessons": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties":           lessonProps,
					"required":             []string{"lesson_number", "title", "topics", "duration", "content"},
				},
			},
		},
		"required": []string{"course_title", "course_description", "lessons"},
	}
}

var courseSchema = mustCompileCourseSchema()

func mustCompileCourseSchema() *jsonschema.Schema {
	raw, err := json.Marshal(BuildCourseJSONSchema())
	if err != nil {
		panic(err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("course.schema.json", bytes.NewReader(raw)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("course.schema.json")
}

// ValidatePayload checks a serialized Course against the schema.
func ValidatePayload(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return common.NewAppError("SCHEMA_ERROR", "payload is not valid JSON", err)
	}
	if err := courseSchema.Validate(doc); err != nil {
		return common.NewAppError("SCHEMA_ERROR", "payload does not match course schema", err)
	}
	return nil
}
