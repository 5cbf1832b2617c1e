package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/coursekit/roadmap-parser/constants"
	"github.com/coursekit/roadmap-parser/gen/ent"
	entjob "github.com/coursekit/roadmap-parser/gen/ent/parsejob"
)

type ParseJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ParseJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.ParseJob, error)
	ListByStatus(ctx context.Context, status constants.JobStatus, limit int) ([]*ent.ParseJob, error)
	MarkExtracted(ctx context.Context, jobID uuid.UUID, text, method string, pages int) error
	MarkParsed(ctx context.Context, jobID, courseID uuid.UUID) error
	MarkRejected(ctx context.Context, jobID uuid.UUID, reason string) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, message string) error
}

type parseJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewParseJobRepository(entc *ent.Client, log *slog.Logger) ParseJobRepository {
	return &parseJobRepo{ent: entc, log: log}
}

func (r *parseJobRepo) Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ParseJob, error) {
	job, err := r.ent.ParseJob.
		Create().
		SetFileID(fileID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("parse_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job, nil
}

func (r *parseJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.ParseJob, error) {
	return r.ent.ParseJob.Get(ctx, id)
}

func (r *parseJobRepo) ListByStatus(ctx context.Context, status constants.JobStatus, limit int) ([]*ent.ParseJob, error) {
	q := r.ent.ParseJob.Query().
		Where(entjob.Status(string(status))).
		Order(ent.Asc(entjob.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.All(ctx)
}

func (r *parseJobRepo) MarkExtracted(ctx context.Context, jobID uuid.UUID, text, method string, pages int) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetExtractedText(text).
		SetExtractionMethod(method).
		SetPages(pages).
		SetStatus(string(constants.JobStatusExtractOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job mark(EXTRACT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job extracted", "job_id", jobID, "method", method, "pages", pages)
	return nil
}

func (r *parseJobRepo) MarkParsed(ctx context.Context, jobID, courseID uuid.UUID) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetCourseID(courseID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParsed)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job mark(PARSED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job finished (PARSED)", "job_id", jobID, "course_id", courseID)
	return nil
}

func (r *parseJobRepo) MarkRejected(ctx context.Context, jobID uuid.UUID, reason string) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetRejectionReason(reason).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusRejected)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job mark(REJECTED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("parse_job finished (REJECTED)", "job_id", jobID, "reason", reason)
	return nil
}

func (r *parseJobRepo) MarkFailed(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job mark(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("parse_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
