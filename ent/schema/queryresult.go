package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueryResult holds the schema definition for the persistent tier of the
// query result cache. Rows are best-effort: corrupt or expired entries are
// treated as misses, never errors.
type QueryResult struct {
	ent.Schema
}

// Fields of the QueryResult.
func (QueryResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cache_key").
			Unique().
			Immutable().
			Comment("sha256(trimmed sql | sorted dataset urls)"),
		field.Text("sql_query"),
		field.Text("dataset_urls").
			Comment("Pipe-joined sorted URLs, for inspection"),
		field.Text("result_json"),
		field.Int("row_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now),
		field.Time("expires_at"),
	}
}

// Indexes of the QueryResult.
func (QueryResult) Indexes() []ent.Index {
	return []ent.Index{
		// TTL cleanup
		index.Fields("expires_at"),
		// Size-cap eviction, oldest first
		index.Fields("created_at"),
	}
}
