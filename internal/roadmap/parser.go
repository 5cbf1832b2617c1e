package roadmap

import (
	"fmt"
	"log/slog"
	"strings"
)

// Parser converts extracted roadmap text into a Course. Parse never fails:
// strategies escalate from structured headers down to an emergency chunker,
// and a recover guard converts any panic into a marked fallback course.
type Parser struct {
	log *slog.Logger
}

func NewParser(log *slog.Logger) *Parser {
	return &Parser{log: log}
}

// Parse builds a Course from text. The result always has a title, a
// description and at least one lesson.
func (p *Parser) Parse(text string) (course Course) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("roadmap.parse.recovered", "panic", fmt.Sprint(r))
			course = errorFallbackCourse(text, fmt.Sprint(r))
		}
	}()

	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 20 {
		p.log.Warn("roadmap.parse.minimal", "length", len(trimmed))
		return minimalCourse()
	}

	lines := nonEmptyLines(trimmed)
	lessons, strategy := p.selectLessons(trimmed)

	course = cleanCourse(Course{
		CourseTitle:       extractTitle(lines),
		CourseDescription: extractDescription(lines),
		Lessons:           lessons,
	})
	p.log.Info("roadmap.parse.ok",
		"strategy", strategy,
		"lessons", len(course.Lessons),
		"title", course.CourseTitle)
	return course
}

// selectLessons escalates through the extraction strategies until one of
// them produces enough lessons.
func (p *Parser) selectLessons(text string) ([]Lesson, string) {
	if lessons := extractStructuredLessons(text); len(lessons) >= 2 {
		return lessons, "structured"
	}
	if lessons := extractBulletLessons(text); len(lessons) >= 1 {
		return lessons, "bullet"
	}
	if lessons := extractSegmentLessons(text); len(lessons) >= 1 {
		return lessons, "segment"
	}
	p.log.Warn("roadmap.parse.emergency")
	return emergencyLessons(text), "emergency"
}

// minimalCourse is returned for empty or near-empty input.
func minimalCourse() Course {
	return Course{
		CourseTitle:       "Learning Course",
		CourseDescription: "A structured learning course extracted from PDF content.",
		Lessons: []Lesson{{
			LessonNumber: 1,
			Title:        "Course Introduction",
			Topics:       []string{"Getting started", "Course overview"},
			Duration:     "30 minutes",
			Content:      "Welcome to this learning course. Please refer to the original material for detailed content.",
		}},
	}
}

// errorFallbackCourse preserves the raw text when parsing panicked, so the
// material is reviewable instead of lost.
func errorFallbackCourse(text, reason string) Course {
	content := strings.TrimSpace(text)
	if len(content) > maxContentLen {
		content = truncateRunes(content, maxContentLen) + "..."
	}
	if content == "" {
		content = "No content available."
	}
	return Course{
		CourseTitle:       "Learning Course (Parsing Error)",
		CourseDescription: "Course extraction encountered an error: " + truncateRunes(reason, 100),
		Lessons: []Lesson{{
			LessonNumber: 1,
			Title:        "Original Content",
			Topics:       []string{"Raw content", "Manual review needed"},
			Duration:     "Variable",
			Content:      content,
		}},
	}
}
