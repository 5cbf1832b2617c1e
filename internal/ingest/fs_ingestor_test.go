package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/coursekit/roadmap-parser/gen/ent"
	"github.com/coursekit/roadmap-parser/internal/common"
)

// fakeFilesRepo keeps rows in memory keyed by content hash.
type fakeFilesRepo struct {
	rows map[string]*ent.DocumentFile
}

func newFakeFilesRepo() *fakeFilesRepo {
	return &fakeFilesRepo{rows: map[string]*ent.DocumentFile{}}
}

func (f *fakeFilesRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.DocumentFile, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeFilesRepo) GetByHash(_ context.Context, hash []byte) (*ent.DocumentFile, error) {
	if r, ok := f.rows[hex.EncodeToString(hash)]; ok {
		return r, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeFilesRepo) Create(_ context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.DocumentFile, error) {
	row := &ent.DocumentFile{
		ID:          uuid.New(),
		SourcePath:  sourcePath,
		ContentHash: hash,
		Filename:    filename,
		FileExt:     ext,
		FileSize:    size,
		UploadedAt:  uploadedAt,
	}
	f.rows[hex.EncodeToString(hash)] = row
	return row, nil
}

func (f *fakeFilesRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.DocumentFile, bool, error) {
	if existing, err := f.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := f.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func testIngestor(repo *fakeFilesRepo, maxBytes int64) *FSIngestor {
	return NewFSIngestor(repo, maxBytes, slog.New(slog.DiscardHandler))
}

func TestIngestPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "roadmap.md", "# Python Learning Path\nsome content")

	repo := newFakeFilesRepo()
	ing := testIngestor(repo, 0)

	res, err := ing.IngestPath(context.Background(), path)
	if err != nil {
		t.Fatalf("IngestPath: %v", err)
	}
	if res.Deduplicated {
		t.Error("first ingest should not be deduplicated")
	}
	if res.FileExt != "md" {
		t.Errorf("FileExt = %q, want md", res.FileExt)
	}

	sum := sha256.Sum256([]byte("# Python Learning Path\nsome content"))
	if res.HashHex != hex.EncodeToString(sum[:]) {
		t.Errorf("HashHex = %q, want sha256 of content", res.HashHex)
	}
	if res.FileID == "" {
		t.Error("FileID should be set")
	}
}

func TestIngestPath_Dedupe(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.txt", "identical content")
	second := writeFile(t, dir, "b.txt", "identical content")

	repo := newFakeFilesRepo()
	ing := testIngestor(repo, 0)

	r1, err := ing.IngestPath(context.Background(), first)
	if err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	r2, err := ing.IngestPath(context.Background(), second)
	if err != nil {
		t.Fatalf("second ingest: %v", err)
	}
	if r1.Deduplicated {
		t.Error("first ingest flagged deduplicated")
	}
	if !r2.Deduplicated {
		t.Error("second ingest of identical content should be deduplicated")
	}
	if r1.FileID != r2.FileID {
		t.Errorf("dedupe should return the stored row: %s vs %s", r1.FileID, r2.FileID)
	}
}

func TestIngestPath_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.docx", "binary-ish")

	ing := testIngestor(newFakeFilesRepo(), 0)
	if _, err := ing.IngestPath(context.Background(), path); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestIngestPath_FileTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "big.txt", "this exceeds the tiny limit")

	ing := testIngestor(newFakeFilesRepo(), 5)
	_, err := ing.IngestPath(context.Background(), path)
	if err == nil {
		t.Fatal("expected error for oversized file")
	}
	if !errors.Is(err, common.ErrFileTooLarge) {
		t.Errorf("error = %v, want ErrFileTooLarge", err)
	}
}

func TestIngestDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "one.md", "first roadmap")
	writeFile(t, root, "two.txt", "second roadmap")
	writeFile(t, root, "dup.txt", "second roadmap")
	writeFile(t, root, "skip.docx", "not ingestible")

	hidden := filepath.Join(root, ".cache")
	if err := os.Mkdir(hidden, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, hidden, "stale.md", "hidden roadmap")

	ing := testIngestor(newFakeFilesRepo(), 0)
	results, stats, err := ing.IngestDirectory(context.Background(), root, true)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}

	if stats.Matched != 3 {
		t.Errorf("Matched = %d, want 3", stats.Matched)
	}
	if stats.Succeeded != 3 {
		t.Errorf("Succeeded = %d, want 3", stats.Succeeded)
	}
	if stats.Deduplicated != 1 {
		t.Errorf("Deduplicated = %d, want 1", stats.Deduplicated)
	}
	if stats.Failed != 0 {
		t.Errorf("Failed = %d, want 0", stats.Failed)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	for _, r := range results {
		if r.Err != "" {
			t.Errorf("unexpected per-file error for %s: %s", r.SourcePath, r.Err)
		}
	}
}

func TestIngestDirectory_EmptyRoot(t *testing.T) {
	ing := testIngestor(newFakeFilesRepo(), 0)
	if _, _, err := ing.IngestDirectory(context.Background(), "   ", true); err == nil {
		t.Fatal("expected error for blank root")
	}
}
