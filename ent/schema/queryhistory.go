package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueryHistory holds the schema definition for the QueryHistory entity.
// One row per direct SQL execution from the REST query endpoint.
type QueryHistory struct {
	ent.Schema
}

// Fields of the QueryHistory.
func (QueryHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("history_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Text("sql_query").
			Immutable(),
		field.Int64("row_count").
			Default(0),
		field.Int64("execution_time_ms").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the QueryHistory.
func (QueryHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("conversation_id"),
	}
}
