package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	v1 "github.com/coursekit/roadmap-parser/gen/proto/courses/v1"
	"github.com/coursekit/roadmap-parser/internal/common"
	"github.com/coursekit/roadmap-parser/internal/enrich"
	"github.com/coursekit/roadmap-parser/internal/export"
	"github.com/coursekit/roadmap-parser/internal/repository"
	"github.com/coursekit/roadmap-parser/internal/roadmap"
	"github.com/coursekit/roadmap-parser/internal/utils"
)

type CoursesService struct {
	v1.UnimplementedCoursesServiceServer
	coursesRepo repository.CourseRepository
	parser      *roadmap.Parser
	enricher    *enrich.Enricher
	exporter    *export.Service
	logger      *slog.Logger
}

func NewCoursesService(courses repository.CourseRepository, parser *roadmap.Parser, enricher *enrich.Enricher, exporter *export.Service, logger *slog.Logger) *CoursesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CoursesService{
		coursesRepo: courses,
		parser:      parser,
		enricher:    enricher,
		exporter:    exporter,
		logger:      logger,
	}
}

// ParseText converts raw roadmap text into a course. The store is only
// touched when persist is set.
func (s *CoursesService) ParseText(ctx context.Context, req *v1.ParseTextRequest) (*v1.ParseTextResponse, error) {
	text := req.GetText()
	if strings.TrimSpace(text) == "" {
		return nil, common.InvalidArgumentError("text is required")
	}

	if v := roadmap.Validate(text); !v.Valid {
		s.logger.Info("parse_text.rejected", "reason", v.Reason)
		return &v1.ParseTextResponse{RejectionReason: v.Reason}, nil
	}

	course := s.parser.Parse(text)

	payload, err := json.Marshal(course)
	if err != nil {
		return nil, common.InternalError(err.Error())
	}
	if err := roadmap.ValidatePayload(payload); err != nil {
		s.logger.Error("parse_text.schema_failed", "err", err)
		return nil, common.InternalError(err.Error())
	}

	resp := &v1.ParseTextResponse{Course: utils.ToPBParsedCourse(course)}

	if req.GetPersist() {
		blocks := roadmap.ExtractJSONBlocks(text)
		enriched := s.enricher.Enrich(course, blocks)
		row, err := s.coursesRepo.Save(ctx, enriched)
		if err != nil {
			s.logger.Error("parse_text.save_failed", "err", err)
			return nil, common.InternalError("save course failed")
		}
		resp.CourseId = row.ID.String()
		resp.Course.Id = row.ID.String()
	}

	s.logger.Info("parse_text.ok", "lessons", len(course.Lessons), "persisted", req.GetPersist())
	return resp, nil
}

func (s *CoursesService) GetCourse(ctx context.Context, req *v1.GetCourseRequest) (*v1.GetCourseResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetCourseId()))
	if err != nil {
		return nil, common.InvalidArgumentError("course_id must be a UUID")
	}

	row, lessons, err := s.coursesRepo.GetWithLessons(ctx, id)
	if err != nil {
		s.logger.Warn("get course failed", "course_id", id, "err", err)
		return nil, common.NotFoundError("course not found")
	}
	return &v1.GetCourseResponse{Course: utils.ToPBCourse(row, lessons)}, nil
}

func (s *CoursesService) ListCourses(ctx context.Context, req *v1.ListCoursesRequest) (*v1.ListCoursesResponse, error) {
	limit := int(req.GetLimit())
	offset := int(req.GetOffset())
	if limit < 0 || offset < 0 {
		return nil, common.InvalidArgumentError("limit and offset must be non-negative")
	}

	rows, err := s.coursesRepo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("list courses failed", "err", err)
		return nil, common.InternalError("list courses failed")
	}

	out := make([]*v1.CourseSummary, 0, len(rows))
	for _, row := range rows {
		_, lessons, err := s.coursesRepo.GetWithLessons(ctx, row.ID)
		if err != nil {
			s.logger.Error("list courses lesson lookup failed", "course_id", row.ID, "err", err)
			return nil, common.InternalError("list courses failed")
		}
		out = append(out, utils.ToPBCourseSummary(row, len(lessons)))
	}
	return &v1.ListCoursesResponse{Courses: out}, nil
}

func (s *CoursesService) DeleteCourse(ctx context.Context, req *v1.DeleteCourseRequest) (*v1.DeleteCourseResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetCourseId()))
	if err != nil {
		return nil, common.InvalidArgumentError("course_id must be a UUID")
	}

	if _, err := s.coursesRepo.GetByID(ctx, id); err != nil {
		return nil, common.NotFoundError("course not found")
	}
	if err := s.coursesRepo.Delete(ctx, id); err != nil {
		s.logger.Error("delete course failed", "course_id", id, "err", err)
		return nil, common.InternalError("delete course failed")
	}
	s.logger.Info("course deleted", "course_id", id)
	return &v1.DeleteCourseResponse{}, nil
}

func (s *CoursesService) ExportCourses(ctx context.Context, req *v1.ExportCoursesRequest) (*v1.ExportCoursesResponse, error) {
	data, sum, err := s.exporter.ExportCoursesXLSX(ctx)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, common.InternalError(err.Error())
	}

	outPath := strings.TrimSpace(req.GetOutputPath())
	if outPath == "" {
		outPath = filepath.Join(".", "courses-export-"+time.Now().UTC().Format("20060102")+".xlsx")
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		s.logger.Error("export.write_failed", "path", outPath, "err", err)
		return nil, common.InternalError("write workbook failed")
	}

	return &v1.ExportCoursesResponse{
		OutputPath:  outPath,
		CourseCount: uint32(sum.Courses),
		LessonCount: uint32(sum.Lessons),
	}, nil
}
