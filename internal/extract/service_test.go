package extract

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coursekit/roadmap-parser/internal/common"
	"github.com/coursekit/roadmap-parser/internal/ocr"
)

type fakeBackend struct {
	name  string
	text  string
	pages int
	err   error
}

func (f fakeBackend) method() string { return f.name }

func (f fakeBackend) extract(context.Context, string) (string, int, []string, error) {
	return f.text, f.pages, nil, f.err
}

func newTestService(backends ...pdfBackend) *Service {
	s := NewService(ocr.NewExtractor(ocr.Config{}, slog.New(slog.DiscardHandler)), slog.New(slog.DiscardHandler))
	s.pdfBackends = backends
	return s
}

func usableText() string {
	return strings.Repeat("Day 1: roadmap content for the cascade test. ", 5)
}

func TestExtract_FirstUsableBackendWins(t *testing.T) {
	s := newTestService(
		fakeBackend{name: "pdf-native", text: usableText(), pages: 2},
		fakeBackend{name: "pdf-text", text: "should never run", pages: 9},
	)

	res, err := s.Extract(context.Background(), "/tmp/in.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if res.Method != "pdf-native" {
		t.Errorf("method = %q, want pdf-native", res.Method)
	}
	if res.Pages != 2 {
		t.Errorf("pages = %d, want 2", res.Pages)
	}
}

func TestExtract_ShortTextFallsThrough(t *testing.T) {
	s := newTestService(
		fakeBackend{name: "pdf-native", text: "too short", pages: 1},
		fakeBackend{name: "pdf-text", text: usableText(), pages: 3},
	)

	res, err := s.Extract(context.Background(), "/tmp/in.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if res.Method != "pdf-text" {
		t.Errorf("method = %q, want pdf-text", res.Method)
	}
}

func TestExtract_BackendErrorFallsThrough(t *testing.T) {
	s := newTestService(
		fakeBackend{name: "pdf-native", err: errors.New("corrupt xref")},
		fakeBackend{name: "pdf-ocr", text: usableText(), pages: 1},
	)

	res, err := s.Extract(context.Background(), "/tmp/in.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if res.Method != "pdf-ocr" {
		t.Errorf("method = %q, want pdf-ocr", res.Method)
	}
	if len(res.Warnings) == 0 {
		t.Error("failed backend left no warning")
	}
}

func TestExtract_AllBackendsFail(t *testing.T) {
	s := newTestService(
		fakeBackend{name: "pdf-native", err: errors.New("corrupt")},
		fakeBackend{name: "pdf-text", text: "x"},
	)

	_, err := s.Extract(context.Background(), "/tmp/in.pdf")
	if err == nil {
		t.Fatal("expected error when every backend fails")
	}
	if !errors.Is(err, common.ErrExtraction) {
		t.Errorf("error %v does not wrap ErrExtraction", err)
	}
}

func TestExtract_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roadmap.md")
	if err := os.WriteFile(path, []byte("# Week 1\nsome content"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := newTestService()
	res, err := s.Extract(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if res.Method != "plain-text" {
		t.Errorf("method = %q", res.Method)
	}
	if !strings.Contains(res.Text, "Week 1") {
		t.Errorf("text = %q", res.Text)
	}
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	s := newTestService()

	_, err := s.Extract(context.Background(), "/tmp/in.exe")
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("error %v does not wrap ErrInvalidInput", err)
	}
}
