// Package pipeline coordinates extraction and parsing of ingested files
// into stored courses, advancing the parse_job through its statuses.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/coursekit/roadmap-parser/internal/common"
)

// Processor runs text extraction then roadmap parsing for one file.
type Processor struct {
	Logger  *slog.Logger
	Extract *ExtractStage
	Parse   *ParseStage
}

func NewProcessor(logger *slog.Logger, extract *ExtractStage, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Extract: extract, Parse: parse}
}

// Result summarizes one ProcessFile run.
type Result struct {
	JobID           uuid.UUID
	CourseID        uuid.UUID
	RejectionReason string
}

// ProcessFile extracts text for fileID (creating a parse_job), then parses
// the text into a course. Rejection of non-roadmap content ends the run
// without error; extraction and storage failures are returned.
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (Result, error) {
	jobID, extRes, err := p.Extract.Run(ctx, fileID)
	if err != nil {
		p.Logger.Error("processor.extract.failed", "file_id", fileID, "err", err)
		return Result{JobID: jobID}, err
	}
	p.Logger.Info("processor.extract.ok",
		"file_id", fileID,
		"job_id", jobID,
		"method", extRes.Method,
		"pages", extRes.Pages,
	)

	ctx = common.WithJobID(ctx, jobID.String())
	courseID, reason, err := p.Parse.Run(ctx, jobID)
	if err != nil {
		p.Logger.Error("processor.parse.failed", "job_id", jobID, "err", err)
		return Result{JobID: jobID}, err
	}
	if reason != "" {
		return Result{JobID: jobID, RejectionReason: reason}, nil
	}
	p.Logger.Info("processor.parse.ok", "job_id", jobID, "course_id", courseID)
	return Result{JobID: jobID, CourseID: courseID}, nil
}
