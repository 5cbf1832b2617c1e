package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/coursekit/roadmap-parser/constants"
	"github.com/coursekit/roadmap-parser/gen/ent"
	"github.com/coursekit/roadmap-parser/internal/enrich"
	"github.com/coursekit/roadmap-parser/internal/extract"
	"github.com/coursekit/roadmap-parser/internal/ocr"
	"github.com/coursekit/roadmap-parser/internal/roadmap"
)

type fakeFilesRepo struct {
	rows map[uuid.UUID]*ent.DocumentFile
}

func (f *fakeFilesRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.DocumentFile, error) {
	if r, ok := f.rows[id]; ok {
		return r, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeFilesRepo) GetByHash(context.Context, []byte) (*ent.DocumentFile, error) {
	return nil, errors.New("not found")
}

func (f *fakeFilesRepo) Create(context.Context, string, string, string, int, []byte, time.Time) (*ent.DocumentFile, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeFilesRepo) UpsertByHash(context.Context, string, string, string, int, []byte, time.Time) (*ent.DocumentFile, bool, error) {
	return nil, false, errors.New("not implemented")
}

type fakeJobsRepo struct {
	jobs       map[uuid.UUID]*ent.ParseJob
	statuses   map[uuid.UUID]constants.JobStatus
	rejections map[uuid.UUID]string
	failures   map[uuid.UUID]string
}

func newFakeJobsRepo() *fakeJobsRepo {
	return &fakeJobsRepo{
		jobs:       map[uuid.UUID]*ent.ParseJob{},
		statuses:   map[uuid.UUID]constants.JobStatus{},
		rejections: map[uuid.UUID]string{},
		failures:   map[uuid.UUID]string{},
	}
}

func (f *fakeJobsRepo) Start(_ context.Context, fileID uuid.UUID, format string) (*ent.ParseJob, error) {
	job := &ent.ParseJob{ID: uuid.New(), FileID: fileID, Format: format, StartedAt: time.Now().UTC()}
	f.jobs[job.ID] = job
	f.statuses[job.ID] = constants.JobStatusRunning
	return job, nil
}

func (f *fakeJobsRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.ParseJob, error) {
	if j, ok := f.jobs[id]; ok {
		return j, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeJobsRepo) ListByStatus(context.Context, constants.JobStatus, int) ([]*ent.ParseJob, error) {
	return nil, nil
}

func (f *fakeJobsRepo) MarkExtracted(_ context.Context, jobID uuid.UUID, text, method string, pages int) error {
	j, ok := f.jobs[jobID]
	if !ok {
		return errors.New("not found")
	}
	j.ExtractedText = text
	j.Pages = pages
	f.statuses[jobID] = constants.JobStatusExtractOK
	return nil
}

func (f *fakeJobsRepo) MarkParsed(_ context.Context, jobID, courseID uuid.UUID) error {
	f.statuses[jobID] = constants.JobStatusParsed
	return nil
}

func (f *fakeJobsRepo) MarkRejected(_ context.Context, jobID uuid.UUID, reason string) error {
	f.statuses[jobID] = constants.JobStatusRejected
	f.rejections[jobID] = reason
	return nil
}

func (f *fakeJobsRepo) MarkFailed(_ context.Context, jobID uuid.UUID, message string) error {
	f.statuses[jobID] = constants.JobStatusFailed
	f.failures[jobID] = message
	return nil
}

type fakeCoursesRepo struct {
	saved []enrich.Course
}

func (f *fakeCoursesRepo) Save(_ context.Context, course enrich.Course) (*ent.Course, error) {
	f.saved = append(f.saved, course)
	return &ent.Course{ID: uuid.New(), Title: course.CourseTitle}, nil
}

func (f *fakeCoursesRepo) GetByID(context.Context, uuid.UUID) (*ent.Course, error) {
	return nil, errors.New("not found")
}

func (f *fakeCoursesRepo) GetWithLessons(context.Context, uuid.UUID) (*ent.Course, []*ent.Lesson, error) {
	return nil, nil, errors.New("not found")
}

func (f *fakeCoursesRepo) List(context.Context, int, int) ([]*ent.Course, error) {
	return nil, nil
}

func (f *fakeCoursesRepo) Delete(context.Context, uuid.UUID) error {
	return nil
}

func testProcessor(files *fakeFilesRepo, jobs *fakeJobsRepo, courses *fakeCoursesRepo) *Processor {
	logger := slog.New(slog.DiscardHandler)
	textExtractor := extract.NewService(ocr.NewExtractor(ocr.Config{}, logger), logger)
	extractStage := NewExtractStage(files, jobs, textExtractor, logger)
	parseStage := NewParseStage(jobs, courses, roadmap.NewParser(logger), enrich.NewEnricher(logger), logger)
	return NewProcessor(logger, extractStage, parseStage)
}

func stageFile(t *testing.T, files *fakeFilesRepo, name, content string) uuid.UUID {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	id := uuid.New()
	files.rows[id] = &ent.DocumentFile{
		ID:         id,
		SourcePath: path,
		Filename:   name,
		FileExt:    constants.NormalizeExt(filepath.Ext(name)),
	}
	return id
}

func TestProcessFile_TextRoadmap(t *testing.T) {
	files := &fakeFilesRepo{rows: map[uuid.UUID]*ent.DocumentFile{}}
	jobs := newFakeJobsRepo()
	courses := &fakeCoursesRepo{}

	fileID := stageFile(t, files, "roadmap.md",
		"Day 1: Introduction\nGetting familiar with the basics and setting up the environment.\nDay 2: Advanced Topics\nDeep dive into advanced concepts and patterns.\n")

	res, err := testProcessor(files, jobs, courses).ProcessFile(context.Background(), fileID)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if res.RejectionReason != "" {
		t.Fatalf("unexpected rejection: %s", res.RejectionReason)
	}
	if res.CourseID == uuid.Nil {
		t.Error("CourseID should be set")
	}
	if got := jobs.statuses[res.JobID]; got != constants.JobStatusParsed {
		t.Errorf("job status = %s, want %s", got, constants.JobStatusParsed)
	}
	if len(courses.saved) != 1 {
		t.Fatalf("saved courses = %d, want 1", len(courses.saved))
	}
	if got := len(courses.saved[0].Lessons); got != 2 {
		t.Errorf("lessons = %d, want 2", got)
	}
}

func TestProcessFile_Rejected(t *testing.T) {
	files := &fakeFilesRepo{rows: map[uuid.UUID]*ent.DocumentFile{}}
	jobs := newFakeJobsRepo()
	courses := &fakeCoursesRepo{}

	fileID := stageFile(t, files, "memo.txt",
		"This memo has plenty of words but no teaching structure anywhere in it at all, just prose.")

	res, err := testProcessor(files, jobs, courses).ProcessFile(context.Background(), fileID)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if res.RejectionReason == "" {
		t.Fatal("expected a rejection reason")
	}
	if res.CourseID != uuid.Nil {
		t.Error("no course should be stored for rejected input")
	}
	if got := jobs.statuses[res.JobID]; got != constants.JobStatusRejected {
		t.Errorf("job status = %s, want %s", got, constants.JobStatusRejected)
	}
	if len(courses.saved) != 0 {
		t.Errorf("saved courses = %d, want 0", len(courses.saved))
	}
}

func TestProcessFile_UnsupportedFormat(t *testing.T) {
	files := &fakeFilesRepo{rows: map[uuid.UUID]*ent.DocumentFile{}}
	id := uuid.New()
	files.rows[id] = &ent.DocumentFile{ID: id, SourcePath: "/tmp/doc.docx", FileExt: "docx"}

	_, err := testProcessor(files, newFakeJobsRepo(), &fakeCoursesRepo{}).ProcessFile(context.Background(), id)
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
