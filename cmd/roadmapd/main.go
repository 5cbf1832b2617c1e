package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/coursekit/roadmap-parser/gen/proto/courses/v1"
	"github.com/coursekit/roadmap-parser/internal/async"
	"github.com/coursekit/roadmap-parser/internal/common"
	"github.com/coursekit/roadmap-parser/internal/enrich"
	"github.com/coursekit/roadmap-parser/internal/export"
	"github.com/coursekit/roadmap-parser/internal/extract"
	"github.com/coursekit/roadmap-parser/internal/ingest"
	"github.com/coursekit/roadmap-parser/internal/ocr"
	"github.com/coursekit/roadmap-parser/internal/pipeline"
	repo "github.com/coursekit/roadmap-parser/internal/repository"
	"github.com/coursekit/roadmap-parser/internal/roadmap"
	svc "github.com/coursekit/roadmap-parser/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := repo.Config{
		Driver:           cfg.Database.Driver,
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}
	entc, pool, err := repo.Open(ctx, dbConfig, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	filesRepo := repo.NewDocumentFileRepository(entc, logger)
	jobsRepo := repo.NewParseJobRepository(entc, logger)
	coursesRepo := repo.NewCourseRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.Extract.Pdftotext,
		Pdftoppm:      cfg.Extract.Pdftoppm,
		TesseractLang: cfg.Extract.TesseractLang,
		DPI:           cfg.Extract.DPI,
		MaxPages:      cfg.Extract.MaxPages,
	}, logger)
	textExtractor := extract.NewService(extractor, logger)

	parser := roadmap.NewParser(logger)
	enricher := enrich.NewEnricher(logger)

	extractStage := pipeline.NewExtractStage(filesRepo, jobsRepo, textExtractor, logger)
	parseStage := pipeline.NewParseStage(jobsRepo, coursesRepo, parser, enricher, logger)
	processor := pipeline.NewProcessor(logger, extractStage, parseStage)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(cfg.Pipeline.Timeout),
	)

	ingestor := ingest.NewFSIngestor(filesRepo, cfg.Extract.MaxUploadBytes, logger)
	ingestionService := svc.NewIngestionService(ingestor, processor, logger)
	v1.RegisterIngestionServiceServer(grpcServer, ingestionService)

	exporter := export.NewService(coursesRepo, logger)
	coursesService := svc.NewCoursesService(coursesRepo, parser, enricher, exporter, logger)
	v1.RegisterCoursesServiceServer(grpcServer, coursesService)

	// Optional directory watcher: WATCH_DIRS=/path/a,/path/b
	if dirs := os.Getenv("WATCH_DIRS"); dirs != "" {
		roots := strings.Split(dirs, ",")
		events, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       roots,
			InitialScan: true,
			Debounce:    2 * time.Second,
		})
		if err != nil {
			logger.Error("failed to start watcher", "roots", roots, "error", err)
			os.Exit(1)
		}
		go func() {
			for path := range events {
				r, err := ingestor.IngestPath(ctx, path)
				if err != nil {
					logger.Warn("watcher ingest failed", "path", path, "error", err)
					continue
				}
				if r.Deduplicated {
					continue
				}
				if id, err := uuid.Parse(r.FileID); err == nil {
					_ = queue.Enqueue(ctx, async.Job{
						FileID:      id,
						SubmittedAt: time.Now().UTC(),
						TraceID:     uuid.NewString(),
					})
				}
			}
		}()
		go func() {
			for err := range watchErrs {
				logger.Warn("watcher error", "error", err)
			}
		}()
		logger.Info("watching directories", "roots", roots)
	}

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("roadmapd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
