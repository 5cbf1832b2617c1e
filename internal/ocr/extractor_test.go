package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeRunner records invocations and plays back canned results. For
// pdftoppm calls it drops page images next to the requested prefix so the
// glob in PDFViaOCR has something to find.
type fakeRunner struct {
	stdout    string
	err       error
	pageCount int
	calls     []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	if name == "pdftoppm" && f.err == nil {
		prefix := args[len(args)-1]
		for i := 1; i <= f.pageCount; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
	}
	if f.err != nil {
		return nil, []byte("boom"), f.err
	}
	return []byte(f.stdout), nil, nil
}

func newTestExtractor(r Runner) *Extractor {
	e := NewExtractor(Config{}, slog.New(slog.DiscardHandler))
	e.runner = r
	return e
}

func TestPDFToText(t *testing.T) {
	runner := &fakeRunner{stdout: "page one text\fpage two text"}
	e := newTestExtractor(runner)

	text, pages, warnings, err := e.PDFToText(context.Background(), "/tmp/in.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if pages != 2 {
		t.Errorf("pages = %d, want 2", pages)
	}
	if !strings.Contains(text, "page two text") {
		t.Errorf("text = %q", text)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(runner.calls) != 1 || !strings.HasPrefix(runner.calls[0], "pdftotext -layout") {
		t.Errorf("unexpected invocation: %v", runner.calls)
	}
}

func TestPDFToText_CommandFailure(t *testing.T) {
	runner := &fakeRunner{err: fmt.Errorf("exit status 1")}
	e := newTestExtractor(runner)

	_, _, warnings, err := e.PDFToText(context.Background(), "/tmp/in.pdf")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(warnings) != 1 || warnings[0] != "boom" {
		t.Errorf("stderr not surfaced as warning: %v", warnings)
	}
}

func TestPDFViaOCR_RendersAndCountsPages(t *testing.T) {
	runner := &fakeRunner{pageCount: 3}
	e := newTestExtractor(runner)

	_, pages, warnings, err := e.PDFViaOCR(context.Background(), filepath.Join(t.TempDir(), "in.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if pages != 3 {
		t.Errorf("pages = %d, want 3", pages)
	}
	// Without the ocr build tag every page recognition fails with the stub
	// error; those must surface as warnings, not a hard failure.
	if len(warnings) != 3 {
		t.Errorf("expected one warning per page, got %v", warnings)
	}
}

func TestPDFViaOCR_NoPagesRendered(t *testing.T) {
	runner := &fakeRunner{pageCount: 0}
	e := newTestExtractor(runner)

	_, _, _, err := e.PDFViaOCR(context.Background(), "/tmp/in.pdf")
	if err == nil {
		t.Fatal("expected error when pdftoppm produces no images")
	}
}

func TestNewExtractor_Defaults(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	if e.cfg.Pdftotext != "pdftotext" || e.cfg.Pdftoppm != "pdftoppm" {
		t.Errorf("binary defaults not applied: %+v", e.cfg)
	}
	if e.cfg.TesseractLang != "eng" || e.cfg.DPI != 300 {
		t.Errorf("recognition defaults not applied: %+v", e.cfg)
	}
}
