package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Course represents a stored course for data transfer between layers.
type Course struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	EstimatedHours float64         `json:"estimated_hours"`
	Difficulty     string          `json:"difficulty"`
	Meta           json.RawMessage `json:"meta,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Lessons        []Lesson        `json:"lessons,omitempty"`
}

// Lesson represents a stored lesson for data transfer between layers.
type Lesson struct {
	ID           uuid.UUID       `json:"id"`
	CourseID     uuid.UUID       `json:"course_id"`
	LessonNumber int             `json:"lesson_number"`
	Title        string          `json:"title"`
	Topics       []string        `json:"topics"`
	Duration     string          `json:"duration"`
	Content      string          `json:"content"`
	SkillTags    []string        `json:"skill_tags,omitempty"`
	Resources    json.RawMessage `json:"resources,omitempty"`
}
