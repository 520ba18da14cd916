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

	"github.com/google/uuid"
)

type LedgerEntry struct{ ent.Schema }

func (LedgerEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ledger_entries"},
	}
}

func (LedgerEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("company_id", uuid.UUID{}),
		field.String("company_name").NotEmpty(),
		// entry dates keep the extractor's verbatim string; parsing happens
		// at report time
		field.String("entry_date").NotEmpty(),
		field.String("store_name").NotEmpty(),
		field.Float("total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.JSON("items", json.RawMessage{}),
		field.Bool("needs_review").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (LedgerEntry) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY entries -> ONE company
		edge.From("company", Company.Type).
			Ref("entries").
			Field("company_id").
			Required().
			Unique(),
		// ONE entry -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (LedgerEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "created_at"),
	}
}
