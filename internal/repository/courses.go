package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/coursekit/roadmap-parser/gen/ent"
	entcourse "github.com/coursekit/roadmap-parser/gen/ent/course"
	entlesson "github.com/coursekit/roadmap-parser/gen/ent/lesson"
	"github.com/coursekit/roadmap-parser/internal/common"
	"github.com/coursekit/roadmap-parser/internal/enrich"
)

type CourseRepository interface {
	Save(ctx context.Context, course enrich.Course) (*ent.Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Course, error)
	GetWithLessons(ctx context.Context, id uuid.UUID) (*ent.Course, []*ent.Lesson, error)
	List(ctx context.Context, limit, offset int) ([]*ent.Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type courseRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewCourseRepository(entc *ent.Client, log *slog.Logger) CourseRepository {
	return &courseRepo{ent: entc, log: log}
}

// Save stores the course and its lessons in one transaction.
func (r *courseRepo) Save(ctx context.Context, course enrich.Course) (*ent.Course, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}

	meta, err := json.Marshal(course.Meta)
	if err != nil {
		return nil, rollback(tx, err)
	}

	row, err := tx.Course.Create().
		SetTitle(course.CourseTitle).
		SetDescription(course.CourseDescription).
		SetEstimatedHours(course.Meta.EstimatedHours).
		SetDifficulty(string(course.Meta.Difficulty)).
		SetMeta(meta).
		Save(ctx)
	if err != nil {
		r.log.Error("course create failed", "title", course.CourseTitle, "err", err)
		return nil, rollback(tx, err)
	}

	for _, lesson := range course.Lessons {
		resources, err := json.Marshal(lesson.Resources)
		if err != nil {
			return nil, rollback(tx, err)
		}
		_, err = tx.Lesson.Create().
			SetCourseID(row.ID).
			SetLessonNumber(lesson.LessonNumber).
			SetTitle(lesson.Title).
			SetTopics(lesson.Topics).
			SetDuration(lesson.Duration).
			SetContent(lesson.Content).
			SetSkillTags(lesson.SkillTags).
			SetResources(resources).
			Save(ctx)
		if err != nil {
			r.log.Error("lesson create failed", "course_id", row.ID, "lesson_number", lesson.LessonNumber, "err", err)
			return nil, rollback(tx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.log.Info("course saved", "course_id", row.ID, "job_id", common.JobIDFromContext(ctx), "lessons", len(course.Lessons))
	return row, nil
}

func (r *courseRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Course, error) {
	return r.ent.Course.Get(ctx, id)
}

func (r *courseRepo) GetWithLessons(ctx context.Context, id uuid.UUID) (*ent.Course, []*ent.Lesson, error) {
	row, err := r.ent.Course.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	lessons, err := r.ent.Lesson.Query().
		Where(entlesson.CourseID(id)).
		Order(ent.Asc(entlesson.FieldLessonNumber)).
		All(ctx)
	if err != nil {
		return nil, nil, err
	}
	return row, lessons, nil
}

func (r *courseRepo) List(ctx context.Context, limit, offset int) ([]*ent.Course, error) {
	q := r.ent.Course.Query().
		Order(ent.Desc(entcourse.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	return q.All(ctx)
}

// Delete removes a course and its lessons in one transaction.
func (r *courseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Lesson.Delete().Where(entlesson.CourseID(id)).Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Course.DeleteOneID(id).Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	r.log.Info("course deleted", "course_id", id)
	return nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return err
	}
	return err
}
