package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/coursekit/roadmap-parser/internal/common"
	"github.com/coursekit/roadmap-parser/internal/enrich"
	"github.com/coursekit/roadmap-parser/internal/repository"
	"github.com/coursekit/roadmap-parser/internal/roadmap"
)

type ParseStage struct {
	JobsRepo    repository.ParseJobRepository
	CoursesRepo repository.CourseRepository
	Parser      *roadmap.Parser
	Enricher    *enrich.Enricher
	Logger      *slog.Logger
}

func NewParseStage(jobs repository.ParseJobRepository, courses repository.CourseRepository, parser *roadmap.Parser, enricher *enrich.Enricher, logger *slog.Logger) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseStage{JobsRepo: jobs, CoursesRepo: courses, Parser: parser, Enricher: enricher, Logger: logger}
}

// Run reads the job's extracted text, validates it as roadmap material,
// parses and enriches it, and stores the resulting course. A rejected
// document is not an error: the job moves to REJECTED and the rejection
// reason is returned to the caller.
func (s *ParseStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, string, error) {
	job, err := s.JobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("get job: %w", err)
	}

	text := job.ExtractedText
	if v := roadmap.Validate(text); !v.Valid {
		if err := s.JobsRepo.MarkRejected(ctx, jobID, v.Reason); err != nil {
			return uuid.Nil, "", err
		}
		s.Logger.Info("pipeline.parse.rejected",
			"job_id", jobID,
			"request_id", common.RequestIDFromContext(ctx),
			"reason", v.Reason)
		return uuid.Nil, v.Reason, nil
	}

	course := s.Parser.Parse(text)

	payload, err := json.Marshal(course)
	if err != nil {
		_ = s.JobsRepo.MarkFailed(ctx, jobID, err.Error())
		return uuid.Nil, "", err
	}
	if err := roadmap.ValidatePayload(payload); err != nil {
		_ = s.JobsRepo.MarkFailed(ctx, jobID, err.Error())
		return uuid.Nil, "", err
	}

	blocks := roadmap.ExtractJSONBlocks(text)
	enriched := s.Enricher.Enrich(course, blocks)

	row, err := s.CoursesRepo.Save(ctx, enriched)
	if err != nil {
		_ = s.JobsRepo.MarkFailed(ctx, jobID, err.Error())
		return uuid.Nil, "", err
	}

	if err := s.JobsRepo.MarkParsed(ctx, jobID, row.ID); err != nil {
		return row.ID, "", err
	}
	return row.ID, "", nil
}
