package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Dataset holds the schema definition for the Dataset entity.
// A remote or uploaded columnar file registered in a conversation under a
// table name. At most 50 per conversation; table names unique within one.
type Dataset struct {
	ent.Schema
}

// Fields of the Dataset.
func (Dataset) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("dataset_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Text("url").
			Comment("http(s):// URL or file:// path of an uploaded file"),
		field.String("table_name"),
		field.Int64("row_count").
			Default(0),
		field.Int("column_count").
			Default(0),
		field.JSON("schema", []map[string]interface{}{}).
			Optional().
			Comment("Column records: name, type, sample values, stats"),
		field.Enum("status").
			Values("loading", "ready", "error").
			Default("loading"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("loaded_at").
			Default(time.Now),
		field.Int64("file_size_bytes").
			Optional().
			Nillable(),
		field.JSON("column_descriptions", map[string]string{}).
			Optional(),
	}
}

// Edges of the Dataset.
func (Dataset) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("datasets").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Dataset.
func (Dataset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "table_name").
			Unique(),
		index.Fields("conversation_id", "loaded_at"),
	}
}
