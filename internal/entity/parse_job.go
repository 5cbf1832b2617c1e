package entity

import (
	"time"

	"github.com/google/uuid"
)

// ParseJob represents a parse job for data transfer between layers.
type ParseJob struct {
	ID               uuid.UUID  `json:"id"`
	FileID           uuid.UUID  `json:"file_id"`
	CourseID         *uuid.UUID `json:"course_id,omitempty"`
	Format           string     `json:"format"`
	StartedAt        time.Time  `json:"started_at"`
	FinishedAt       *time.Time `json:"finished_at,omitempty"`
	Status           *string    `json:"status,omitempty"`
	ErrorMessage     *string    `json:"error_message,omitempty"`
	RejectionReason  *string    `json:"rejection_reason,omitempty"`
	ExtractionMethod *string    `json:"extraction_method,omitempty"`
	Pages            int        `json:"pages,omitempty"`
	ExtractedText    string     `json:"extracted_text,omitempty"`
}
