// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "estimated_hours", Type: field.TypeFloat64, Default: 0},
		{Name: "difficulty", Type: field.TypeString, Default: "Beginner"},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "course_created_at",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[6]},
			},
		},
	}
	// DocumentFilesColumns holds the columns for the "document_files" table.
	DocumentFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// DocumentFilesTable holds the schema information for the "document_files" table.
	DocumentFilesTable = &schema.Table{
		Name:       "document_files",
		Columns:    DocumentFilesColumns,
		PrimaryKey: []*schema.Column{DocumentFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "documentfile_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentFilesColumns[2]},
			},
			{
				Name:    "documentfile_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentFilesColumns[6]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "lesson_number", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
		{Name: "duration", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "skill_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "resources", Type: field.TypeJSON, Nullable: true},
		{Name: "course_id", Type: field.TypeUUID},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lessons_courses_lessons",
				Columns:    []*schema.Column{LessonsColumns[8]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_course_id_lesson_number",
				Unique:  true,
				Columns: []*schema.Column{LessonsColumns[8], LessonsColumns[1]},
			},
		},
	}
	// ParseJobsColumns holds the columns for the "parse_jobs" table.
	ParseJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "rejection_reason", Type: field.TypeString, Nullable: true},
		{Name: "extraction_method", Type: field.TypeString, Nullable: true},
		{Name: "pages", Type: field.TypeInt, Nullable: true},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "course_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ParseJobsTable holds the schema information for the "parse_jobs" table.
	ParseJobsTable = &schema.Table{
		Name:       "parse_jobs",
		Columns:    ParseJobsColumns,
		PrimaryKey: []*schema.Column{ParseJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "parse_jobs_courses_jobs",
				Columns:    []*schema.Column{ParseJobsColumns[10]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "parse_jobs_document_files_jobs",
				Columns:    []*schema.Column{ParseJobsColumns[11]},
				RefColumns: []*schema.Column{DocumentFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "parsejob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[4], ParseJobsColumns[2]},
			},
			{
				Name:    "parsejob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[11]},
			},
			{
				Name:    "parsejob_course_id",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CoursesTable,
		DocumentFilesTable,
		LessonsTable,
		ParseJobsTable,
	}
)

func init() {
	CoursesTable.Annotation = &entsql.Annotation{
		Table: "courses",
	}
	DocumentFilesTable.Annotation = &entsql.Annotation{
		Table: "document_files",
	}
	LessonsTable.ForeignKeys[0].RefTable = CoursesTable
	LessonsTable.Annotation = &entsql.Annotation{
		Table: "lessons",
	}
	ParseJobsTable.ForeignKeys[0].RefTable = CoursesTable
	ParseJobsTable.ForeignKeys[1].RefTable = DocumentFilesTable
	ParseJobsTable.Annotation = &entsql.Annotation{
		Table: "parse_jobs",
	}
}
