package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/coursekit/roadmap-parser/constants"
	"github.com/coursekit/roadmap-parser/db/ent/schema/utils"
	"github.com/google/uuid"
)

type Course struct{ ent.Schema }

func (Course) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "courses"},
	}
}

func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("title").NotEmpty(),
		field.String("description").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("estimated_hours").Default(0).Min(0),
		field.String("difficulty").Default(string(constants.Beginner)).
			Validate(utils.EnumValidator(constants.DifficultiesAsStringSlice()...)),
		field.JSON("meta", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Course) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE course -> MANY lessons
		edge.To("lessons", Lesson.Type),
		// ONE course -> MANY jobs
		edge.To("jobs", ParseJob.Type),
	}
}

func (Course) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
