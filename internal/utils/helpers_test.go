package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/coursekit/roadmap-parser/gen/ent"
)

func TestToPBCourse(t *testing.T) {
	courseID := uuid.New()
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	row := &ent.Course{
		ID:             courseID,
		Title:          "Python Learning Path",
		Description:    "A structured path through Python.",
		EstimatedHours: 4.5,
		Difficulty:     "Beginner",
		CreatedAt:      created,
		UpdatedAt:      created,
	}
	lessons := []*ent.Lesson{
		{
			CourseID:     courseID,
			LessonNumber: 1,
			Title:        "Introduction",
			Topics:       []string{"Setup", "Syntax"},
			Duration:     "1 hour",
			Content:      "Getting started.",
			SkillTags:    []string{"learn"},
		},
	}

	pb := ToPBCourse(row, lessons)
	if pb.Id != courseID.String() {
		t.Errorf("Id = %q, want %q", pb.Id, courseID.String())
	}
	if pb.CreatedAt != "2026-03-01T10:00:00Z" {
		t.Errorf("CreatedAt = %q", pb.CreatedAt)
	}
	if len(pb.Lessons) != 1 {
		t.Fatalf("lessons = %d, want 1", len(pb.Lessons))
	}
	if pb.Lessons[0].LessonNumber != 1 || pb.Lessons[0].Title != "Introduction" {
		t.Errorf("lesson mapped wrong: %+v", pb.Lessons[0])
	}
	if len(pb.Lessons[0].Topics) != 2 {
		t.Errorf("topics = %v", pb.Lessons[0].Topics)
	}
}

func TestToLesson(t *testing.T) {
	lessonID := uuid.New()
	courseID := uuid.New()
	row := &ent.Lesson{
		ID:           lessonID,
		CourseID:     courseID,
		LessonNumber: 2,
		Title:        "Advanced Topics",
		Topics:       []string{"Patterns"},
		Duration:     "2 hours",
		Content:      "Deep dive.",
	}

	dto := ToLesson(row)
	if dto.ID != lessonID || dto.CourseID != courseID || dto.LessonNumber != 2 {
		t.Errorf("mapped wrong: %+v", dto)
	}
}

func TestToDocumentFile(t *testing.T) {
	id := uuid.New()
	uploaded := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	row := &ent.DocumentFile{
		ID:          id,
		SourcePath:  "/srv/roadmaps/go.md",
		ContentHash: []byte{0xde, 0xad},
		Filename:    "go.md",
		FileExt:     "md",
		FileSize:    1024,
		UploadedAt:  uploaded,
	}

	dto := ToDocumentFile(row)
	if dto.ID != id || dto.SourcePath != row.SourcePath || dto.FileSize != 1024 {
		t.Errorf("mapped wrong: %+v", dto)
	}
	if !dto.UploadedAt.Equal(uploaded) {
		t.Errorf("UploadedAt = %v", dto.UploadedAt)
	}
}

func TestToParseJob(t *testing.T) {
	jobID := uuid.New()
	fileID := uuid.New()
	courseID := uuid.New()
	status := "PARSED"
	row := &ent.ParseJob{
		ID:            jobID,
		FileID:        fileID,
		CourseID:      &courseID,
		Format:        "TEXT",
		StartedAt:     time.Date(2026, 2, 14, 9, 31, 0, 0, time.UTC),
		Status:        &status,
		Pages:         3,
		ExtractedText: "Day 1: Introduction",
	}

	dto := ToParseJob(row)
	if dto.ID != jobID || dto.FileID != fileID {
		t.Errorf("ids mapped wrong: %+v", dto)
	}
	if dto.CourseID == nil || *dto.CourseID != courseID {
		t.Error("CourseID not carried over")
	}
	if dto.Status == nil || *dto.Status != "PARSED" {
		t.Error("Status not carried over")
	}
	if dto.Pages != 3 || dto.ExtractedText != "Day 1: Introduction" {
		t.Errorf("payload fields mapped wrong: %+v", dto)
	}
}
