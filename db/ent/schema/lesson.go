package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Lesson struct{ ent.Schema }

func (Lesson) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "lessons"},
	}
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("course_id", uuid.UUID{}),
		field.Int("lesson_number").Positive(),
		field.String("title").NotEmpty(),
		field.JSON("topics", []string{}).Optional(),
		field.String("duration").NotEmpty(),
		field.String("content").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("skill_tags", []string{}).Optional(),
		field.JSON("resources", json.RawMessage{}).Optional(),
	}
}

func (Lesson) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY lessons -> ONE course
		edge.From("course", Course.Type).
			Ref("lessons").
			Field("course_id").
			Required().
			Unique(),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "lesson_number").Unique(),
	}
}
