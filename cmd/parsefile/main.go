// parsefile converts a roadmap file straight to course JSON on stdout,
// without touching a database. Useful for trying the parser on a single
// document.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/coursekit/roadmap-parser/internal/common"
	"github.com/coursekit/roadmap-parser/internal/enrich"
	"github.com/coursekit/roadmap-parser/internal/extract"
	"github.com/coursekit/roadmap-parser/internal/ocr"
	"github.com/coursekit/roadmap-parser/internal/roadmap"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "parsefile <path-to-roadmap>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Extract.Timeout)
	defer cancel()

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.Extract.Pdftotext,
		Pdftoppm:      cfg.Extract.Pdftoppm,
		TesseractLang: cfg.Extract.TesseractLang,
		DPI:           cfg.Extract.DPI,
		MaxPages:      cfg.Extract.MaxPages,
	}, logger)
	textExtractor := extract.NewService(extractor, logger)

	start := time.Now()
	res, err := textExtractor.Extract(ctx, path)
	if err != nil {
		logger.Error("text extraction failed", "path", path, "error", err)
		os.Exit(1)
	}

	if v := roadmap.Validate(res.Text); !v.Valid {
		logger.Error("not a roadmap", "path", path, "reason", v.Reason)
		os.Exit(1)
	}

	parser := roadmap.NewParser(logger)
	course := parser.Parse(res.Text)

	blocks := roadmap.ExtractJSONBlocks(res.Text)
	enricher := enrich.NewEnricher(logger)
	enriched := enricher.Enrich(course, blocks)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(enriched); err != nil {
		logger.Error("encode course", "error", err)
		os.Exit(1)
	}

	logger.Warn("parsed",
		"method", res.Method,
		"pages", res.Pages,
		"lessons", len(course.Lessons),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
