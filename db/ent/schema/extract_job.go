package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/tidebooks/tidebooks/constants"
	"github.com/tidebooks/tidebooks/db/ent/schema/utils"
)

type ExtractJob struct{ ent.Schema }

func (ExtractJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extract_job"},
	}
}

func (ExtractJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("document_id", uuid.UUID{}),
		field.UUID("company_id", uuid.UUID{}),
		field.UUID("entry_id", uuid.UUID{}).Optional().Nillable(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").Optional().Nillable().
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("error_message").Optional().Nillable(),
		field.String("provider").Optional().Nillable(),
		field.Float("recognition_confidence").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (ExtractJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("jobs").
			Field("document_id").
			Unique().
			Required(),
		edge.From("company", Company.Type).
			Ref("jobs").
			Field("company_id").
			Unique().
			Required(),
		edge.From("entry", LedgerEntry.Type).
			Ref("jobs").
			Field("entry_id").
			Unique(),
	}
}

func (ExtractJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "status", "started_at"),
		index.Fields("document_id"),
		index.Fields("entry_id"),
	}
}
