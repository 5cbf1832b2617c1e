// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/coursekit/roadmap-parser/db/ent/schema"
	"github.com/coursekit/roadmap-parser/gen/ent/course"
	"github.com/coursekit/roadmap-parser/gen/ent/documentfile"
	"github.com/coursekit/roadmap-parser/gen/ent/lesson"
	"github.com/coursekit/roadmap-parser/gen/ent/parsejob"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescTitle is the schema descriptor for title field.
	courseDescTitle := courseFields[1].Descriptor()
	// course.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	course.TitleValidator = courseDescTitle.Validators[0].(func(string) error)
	// courseDescEstimatedHours is the schema descriptor for estimated_hours field.
	courseDescEstimatedHours := courseFields[3].Descriptor()
	// course.DefaultEstimatedHours holds the default value on creation for the estimated_hours field.
	course.DefaultEstimatedHours = courseDescEstimatedHours.Default.(float64)
	// course.EstimatedHoursValidator is a validator for the "estimated_hours" field. It is called by the builders before save.
	course.EstimatedHoursValidator = courseDescEstimatedHours.Validators[0].(func(float64) error)
	// courseDescDifficulty is the schema descriptor for difficulty field.
	courseDescDifficulty := courseFields[4].Descriptor()
	// course.DefaultDifficulty holds the default value on creation for the difficulty field.
	course.DefaultDifficulty = courseDescDifficulty.Default.(string)
	// course.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	course.DifficultyValidator = courseDescDifficulty.Validators[0].(func(string) error)
	// courseDescCreatedAt is the schema descriptor for created_at field.
	courseDescCreatedAt := courseFields[6].Descriptor()
	// course.DefaultCreatedAt holds the default value on creation for the created_at field.
	course.DefaultCreatedAt = courseDescCreatedAt.Default.(func() time.Time)
	// courseDescUpdatedAt is the schema descriptor for updated_at field.
	courseDescUpdatedAt := courseFields[7].Descriptor()
	// course.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	course.DefaultUpdatedAt = courseDescUpdatedAt.Default.(func() time.Time)
	// course.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	course.UpdateDefaultUpdatedAt = courseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// courseDescID is the schema descriptor for id field.
	courseDescID := courseFields[0].Descriptor()
	// course.DefaultID holds the default value on creation for the id field.
	course.DefaultID = courseDescID.Default.(func() uuid.UUID)
	documentfileFields := schema.DocumentFile{}.Fields()
	_ = documentfileFields
	// documentfileDescSourcePath is the schema descriptor for source_path field.
	documentfileDescSourcePath := documentfileFields[1].Descriptor()
	// documentfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	documentfile.SourcePathValidator = documentfileDescSourcePath.Validators[0].(func(string) error)
	// documentfileDescContentHash is the schema descriptor for content_hash field.
	documentfileDescContentHash := documentfileFields[2].Descriptor()
	// documentfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	documentfile.ContentHashValidator = documentfileDescContentHash.Validators[0].(func([]byte) error)
	// documentfileDescFilename is the schema descriptor for filename field.
	documentfileDescFilename := documentfileFields[3].Descriptor()
	// documentfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	documentfile.FilenameValidator = documentfileDescFilename.Validators[0].(func(string) error)
	// documentfileDescFileExt is the schema descriptor for file_ext field.
	documentfileDescFileExt := documentfileFields[4].Descriptor()
	// documentfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	documentfile.FileExtValidator = documentfileDescFileExt.Validators[0].(func(string) error)
	// documentfileDescFileSize is the schema descriptor for file_size field.
	documentfileDescFileSize := documentfileFields[5].Descriptor()
	// documentfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	documentfile.FileSizeValidator = documentfileDescFileSize.Validators[0].(func(int) error)
	// documentfileDescUploadedAt is the schema descriptor for uploaded_at field.
	documentfileDescUploadedAt := documentfileFields[6].Descriptor()
	// documentfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	documentfile.DefaultUploadedAt = documentfileDescUploadedAt.Default.(func() time.Time)
	// documentfileDescID is the schema descriptor for id field.
	documentfileDescID := documentfileFields[0].Descriptor()
	// documentfile.DefaultID holds the default value on creation for the id field.
	documentfile.DefaultID = documentfileDescID.Default.(func() uuid.UUID)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescLessonNumber is the schema descriptor for lesson_number field.
	lessonDescLessonNumber := lessonFields[2].Descriptor()
	// lesson.LessonNumberValidator is a validator for the "lesson_number" field. It is called by the builders before save.
	lesson.LessonNumberValidator = lessonDescLessonNumber.Validators[0].(func(int) error)
	// lessonDescTitle is the schema descriptor for title field.
	lessonDescTitle := lessonFields[3].Descriptor()
	// lesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lesson.TitleValidator = lessonDescTitle.Validators[0].(func(string) error)
	// lessonDescDuration is the schema descriptor for duration field.
	lessonDescDuration := lessonFields[5].Descriptor()
	// lesson.DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	lesson.DurationValidator = lessonDescDuration.Validators[0].(func(string) error)
	// lessonDescContent is the schema descriptor for content field.
	lessonDescContent := lessonFields[6].Descriptor()
	// lesson.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	lesson.ContentValidator = lessonDescContent.Validators[0].(func(string) error)
	// lessonDescID is the schema descriptor for id field.
	lessonDescID := lessonFields[0].Descriptor()
	// lesson.DefaultID holds the default value on creation for the id field.
	lesson.DefaultID = lessonDescID.Default.(func() uuid.UUID)
	parsejobFields := schema.ParseJob{}.Fields()
	_ = parsejobFields
	// parsejobDescFormat is the schema descriptor for format field.
	parsejobDescFormat := parsejobFields[3].Descriptor()
	// parsejob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	parsejob.FormatValidator = func() func(string) error {
		validators := parsejobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parsejobDescStartedAt is the schema descriptor for started_at field.
	parsejobDescStartedAt := parsejobFields[4].Descriptor()
	// parsejob.DefaultStartedAt holds the default value on creation for the started_at field.
	parsejob.DefaultStartedAt = parsejobDescStartedAt.Default.(func() time.Time)
	// parsejobDescID is the schema descriptor for id field.
	parsejobDescID := parsejobFields[0].Descriptor()
	// parsejob.DefaultID holds the default value on creation for the id field.
	parsejob.DefaultID = parsejobDescID.Default.(func() uuid.UUID)
}
