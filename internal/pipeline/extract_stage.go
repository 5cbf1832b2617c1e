package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/coursekit/roadmap-parser/constants"
	"github.com/coursekit/roadmap-parser/internal/extract"
	"github.com/coursekit/roadmap-parser/internal/repository"
)

type ExtractStage struct {
	FilesRepo     repository.DocumentFileRepository
	JobsRepo      repository.ParseJobRepository
	TextExtractor extract.TextExtractor
	Logger        *slog.Logger
}

func NewExtractStage(files repository.DocumentFileRepository, jobs repository.ParseJobRepository, tx extract.TextExtractor, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{FilesRepo: files, JobsRepo: jobs, TextExtractor: tx, Logger: logger}
}

// Run starts a parse_job, extracts text from the stored file, and persists
// the extracted text. The parse stage is NOT called.
func (s *ExtractStage) Run(ctx context.Context, fileID uuid.UUID) (uuid.UUID, extract.TextExtractionResult, error) {
	row, err := s.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := s.JobsRepo.Start(ctx, row.ID, format)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, err
	}

	res, err := s.TextExtractor.Extract(ctx, row.SourcePath)
	if err != nil {
		_ = s.JobsRepo.MarkFailed(ctx, job.ID, err.Error())
		return job.ID, res, err
	}
	if len(res.Warnings) > 0 {
		s.Logger.Warn("pipeline.extract.warnings", "job_id", job.ID, "warnings", res.Warnings)
	}

	if err := s.JobsRepo.MarkExtracted(ctx, job.ID, res.Text, res.Method, res.Pages); err != nil {
		return job.ID, res, err
	}

	return job.ID, res, nil
}
