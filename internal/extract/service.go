// Package extract turns uploaded files into plain text. PDFs go through a
// cascade: the embedded text layer first (pure Go, then pdftotext), and
// rasterize-plus-OCR as the last resort for scanned documents.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/coursekit/roadmap-parser/constants"
	"github.com/coursekit/roadmap-parser/internal/common"
	"github.com/coursekit/roadmap-parser/internal/ocr"
)

// minUsableChars is the acceptance threshold for a cascade stage: anything
// shorter is treated as a failed extraction and the next backend runs.
const minUsableChars = 100

// pdfBackend is one stage of the PDF cascade.
type pdfBackend interface {
	method() string
	extract(ctx context.Context, path string) (text string, pages int, warnings []string, err error)
}

// Service implements TextExtractor over all supported formats.
type Service struct {
	ocr         *ocr.Extractor
	logger      *slog.Logger
	pdfBackends []pdfBackend
}

func NewService(ocrx *ocr.Extractor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		ocr:    ocrx,
		logger: logger,
		pdfBackends: []pdfBackend{
			nativeBackend{},
			popplerBackend{ocrx},
			ocrBackend{ocrx},
		},
	}
}

// Extract picks a strategy based on file extension.
func (s *Service) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	s.logger.Debug("extract.start", "path", path, "ext", ext)

	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err := s.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case constants.IMAGE:
		res, err := s.extractImage(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case constants.TEXT:
		res, err := s.extractPlainText(path)
		res.Duration = time.Since(start)
		return res, err
	default:
		s.logger.Error("extract.unsupported_ext", "extension", ext)
		return TextExtractionResult{}, common.NewAppError("EXTRACT_ERROR",
			fmt.Sprintf("unsupported extension: %q", ext), common.ErrInvalidInput)
	}
}

// extractPDF runs the cascade until a backend yields usable text.
func (s *Service) extractPDF(ctx context.Context, path string) (TextExtractionResult, error) {
	var warnings []string
	for _, backend := range s.pdfBackends {
		text, pages, warns, err := backend.extract(ctx, path)
		warnings = append(warnings, warns...)
		if err != nil {
			warnings = append(warnings, err.Error())
			s.logger.Warn("extract.pdf.backend_failed", "method", backend.method(), "error", err)
			continue
		}
		if len(strings.TrimSpace(text)) < minUsableChars {
			s.logger.Debug("extract.pdf.too_short", "method", backend.method(), "chars", len(strings.TrimSpace(text)))
			continue
		}
		s.logger.Info("extract.pdf.ok", "method", backend.method(), "pages", pages)
		return TextExtractionResult{
			Text:       text,
			Pages:      pages,
			SourceType: constants.PDF,
			Method:     backend.method(),
			Language:   s.ocr.Language(),
			Warnings:   warnings,
		}, nil
	}
	return TextExtractionResult{SourceType: constants.PDF, Warnings: warnings},
		common.NewAppError("EXTRACT_ERROR", "no backend produced usable text", common.ErrExtraction)
}

func (s *Service) extractImage(ctx context.Context, path string) (TextExtractionResult, error) {
	text, err := s.ocr.ImageOCR(ctx, path)
	if err != nil {
		s.logger.Error("extract.image.failed", "path", path, "error", err)
		return TextExtractionResult{SourceType: constants.IMAGE}, err
	}
	s.logger.Info("extract.image.ok", "chars", len(text))
	return TextExtractionResult{
		Text:       text,
		Pages:      1,
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
		Language:   s.ocr.Language(),
	}, nil
}

func (s *Service) extractPlainText(path string) (TextExtractionResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return TextExtractionResult{SourceType: constants.TEXT}, err
	}
	return TextExtractionResult{
		Text:       string(content),
		Pages:      1,
		SourceType: constants.TEXT,
		Method:     "plain-text",
	}, nil
}

type nativeBackend struct{}

func (nativeBackend) method() string { return "pdf-native" }

func (nativeBackend) extract(_ context.Context, path string) (string, int, []string, error) {
	text, pages, err := readPDFNative(path)
	return text, pages, nil, err
}

type popplerBackend struct{ ocr *ocr.Extractor }

func (popplerBackend) method() string { return "pdf-text" }

func (b popplerBackend) extract(ctx context.Context, path string) (string, int, []string, error) {
	return b.ocr.PDFToText(ctx, path)
}

type ocrBackend struct{ ocr *ocr.Extractor }

func (ocrBackend) method() string { return "pdf-ocr" }

func (b ocrBackend) extract(ctx context.Context, path string) (string, int, []string, error) {
	return b.ocr.PDFViaOCR(ctx, path)
}
