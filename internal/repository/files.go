package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/coursekit/roadmap-parser/gen/ent"
	entfile "github.com/coursekit/roadmap-parser/gen/ent/documentfile"
)

type DocumentFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.DocumentFile, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.DocumentFile, error)
	Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.DocumentFile, error)
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.DocumentFile, bool, error)
}

type documentFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentFileRepository(entc *ent.Client, logger *slog.Logger) DocumentFileRepository {
	return &documentFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *documentFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.DocumentFile, error) {
	return r.ent.DocumentFile.Get(ctx, id)
}

func (r *documentFileRepo) GetByHash(ctx context.Context, hash []byte) (*ent.DocumentFile, error) {
	row, err := r.ent.DocumentFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *documentFileRepo) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.DocumentFile, error) {
	row, err := r.ent.DocumentFile.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document file", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash reports (row, true) for a file whose content is already
// stored; the second return is the dedupe flag.
func (r *documentFileRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.DocumentFile, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert document file by hash", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}
