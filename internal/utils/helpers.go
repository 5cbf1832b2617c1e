package utils

import (
	"time"

	"github.com/coursekit/roadmap-parser/gen/ent"
	coursespb "github.com/coursekit/roadmap-parser/gen/proto/courses/v1"
	"github.com/coursekit/roadmap-parser/internal/entity"
	"github.com/coursekit/roadmap-parser/internal/roadmap"
)

func ToPBCourse(c *ent.Course, lessons []*ent.Lesson) *coursespb.Course {
	out := &coursespb.Course{
		Id:             c.ID.String(),
		Title:          c.Title,
		Description:    c.Description,
		EstimatedHours: c.EstimatedHours,
		Difficulty:     c.Difficulty,
		CreatedAt:      c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      c.UpdatedAt.UTC().Format(time.RFC3339),
	}
	for _, l := range lessons {
		out.Lessons = append(out.Lessons, ToPBLesson(l))
	}
	return out
}

func ToPBLesson(l *ent.Lesson) *coursespb.Lesson {
	return &coursespb.Lesson{
		LessonNumber: int32(l.LessonNumber),
		Title:        l.Title,
		Topics:       l.Topics,
		Duration:     l.Duration,
		Content:      l.Content,
		SkillTags:    l.SkillTags,
	}
}

func ToPBCourseSummary(c *ent.Course, lessonCount int) *coursespb.CourseSummary {
	return &coursespb.CourseSummary{
		Id:             c.ID.String(),
		Title:          c.Title,
		Description:    c.Description,
		EstimatedHours: c.EstimatedHours,
		Difficulty:     c.Difficulty,
		LessonCount:    int32(lessonCount),
		CreatedAt:      c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToPBParsedCourse maps an unpersisted parse result.
func ToPBParsedCourse(c roadmap.Course) *coursespb.Course {
	out := &coursespb.Course{
		Title:       c.CourseTitle,
		Description: c.CourseDescription,
	}
	for _, l := range c.Lessons {
		out.Lessons = append(out.Lessons, &coursespb.Lesson{
			LessonNumber: int32(l.LessonNumber),
			Title:        l.Title,
			Topics:       l.Topics,
			Duration:     l.Duration,
			Content:      l.Content,
		})
	}
	return out
}

func ToCourse(e *ent.Course) *entity.Course {
	return &entity.Course{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		EstimatedHours: e.EstimatedHours,
		Difficulty:     e.Difficulty,
		Meta:           e.Meta,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToDocumentFile(e *ent.DocumentFile) *entity.DocumentFile {
	return &entity.DocumentFile{
		ID:          e.ID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
	}
}

func ToParseJob(e *ent.ParseJob) *entity.ParseJob {
	return &entity.ParseJob{
		ID:               e.ID,
		FileID:           e.FileID,
		CourseID:         e.CourseID,
		Format:           e.Format,
		StartedAt:        e.StartedAt,
		FinishedAt:       e.FinishedAt,
		Status:           e.Status,
		ErrorMessage:     e.ErrorMessage,
		RejectionReason:  e.RejectionReason,
		ExtractionMethod: e.ExtractionMethod,
		Pages:            e.Pages,
		ExtractedText:    e.ExtractedText,
	}
}

func ToLesson(e *ent.Lesson) *entity.Lesson {
	return &entity.Lesson{
		ID:           e.ID,
		CourseID:     e.CourseID,
		LessonNumber: e.LessonNumber,
		Title:        e.Title,
		Topics:       e.Topics,
		Duration:     e.Duration,
		Content:      e.Content,
		SkillTags:    e.SkillTags,
		Resources:    e.Resources,
	}
}
