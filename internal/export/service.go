// Package export produces XLSX workbooks from stored courses.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/coursekit/roadmap-parser/internal/repository"
)

// Service is a tiny façade over the course repository that produces XLSX
// bytes for exports.
type Service struct {
	coursesRepo repository.CourseRepository
	logger      *slog.Logger
}

func NewService(repo repository.CourseRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{coursesRepo: repo, logger: logger}
}

// Summary reports the number of rows written to each sheet.
type Summary struct {
	Courses int
	Lessons int
}

// ExportCoursesXLSX returns a workbook with one "Courses" sheet and one
// "Lessons" sheet covering every stored course.
func (s *Service) ExportCoursesXLSX(ctx context.Context) ([]byte, Summary, error) {
	start := time.Now()

	courses, err := s.coursesRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("query courses: %w", err)
	}

	f := excelize.NewFile()
	const coursesSheet = "Courses"
	const lessonsSheet = "Lessons"

	// excelize starts new files with "Sheet1"; rename it for the first
	// sheet and add the second.
	if err := f.SetSheetName("Sheet1", coursesSheet); err != nil {
		return nil, Summary{}, err
	}
	if _, err := f.NewSheet(lessonsSheet); err != nil {
		return nil, Summary{}, err
	}
	activeIndex, _ := f.GetSheetIndex(coursesSheet)
	f.SetActiveSheet(activeIndex)

	courseHeaders := []string{
		"Course ID",
		"Title",
		"Description",
		"Estimated Hours",
		"Difficulty",
		"Lesson Count",
		"Created At",
	}
	for i, h := range courseHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(coursesSheet, cell, h)
	}

	lessonHeaders := []string{
		"Course ID",
		"Course Title",
		"Lesson Number",
		"Lesson Title",
		"Topics",
		"Duration",
		"Content",
	}
	for i, h := range lessonHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(lessonsSheet, cell, h)
	}

	var sum Summary
	courseRow := 2
	lessonRow := 2
	for _, c := range courses {
		_, lessons, err := s.coursesRepo.GetWithLessons(ctx, c.ID)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("query lessons for %s: %w", c.ID, err)
		}

		write := func(sheet string, row, col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(coursesSheet, courseRow, 1, c.ID.String())
		write(coursesSheet, courseRow, 2, c.Title)
		write(coursesSheet, courseRow, 3, truncate(c.Description, 200))
		write(coursesSheet, courseRow, 4, c.EstimatedHours)
		write(coursesSheet, courseRow, 5, c.Difficulty)
		write(coursesSheet, courseRow, 6, len(lessons))
		write(coursesSheet, courseRow, 7, c.CreatedAt.UTC().Format(time.RFC3339))
		courseRow++
		sum.Courses++

		for _, l := range lessons {
			write(lessonsSheet, lessonRow, 1, c.ID.String())
			write(lessonsSheet, lessonRow, 2, c.Title)
			write(lessonsSheet, lessonRow, 3, l.LessonNumber)
			write(lessonsSheet, lessonRow, 4, l.Title)
			write(lessonsSheet, lessonRow, 5, strings.Join(l.Topics, "; "))
			write(lessonsSheet, lessonRow, 6, l.Duration)
			write(lessonsSheet, lessonRow, 7, truncate(l.Content, 140))
			lessonRow++
			sum.Lessons++
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(coursesSheet, "A", "A", 38) // id
	_ = f.SetColWidth(coursesSheet, "B", "B", 36) // title
	_ = f.SetColWidth(coursesSheet, "C", "C", 60) // description
	_ = f.SetColWidth(coursesSheet, "D", "F", 14)
	_ = f.SetColWidth(coursesSheet, "G", "G", 22)
	_ = f.SetColWidth(lessonsSheet, "A", "A", 38)
	_ = f.SetColWidth(lessonsSheet, "B", "B", 36)
	_ = f.SetColWidth(lessonsSheet, "D", "D", 36)
	_ = f.SetColWidth(lessonsSheet, "E", "E", 48)
	_ = f.SetColWidth(lessonsSheet, "G", "G", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, Summary{}, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"courses", sum.Courses,
		"lessons", sum.Lessons,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), sum, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
