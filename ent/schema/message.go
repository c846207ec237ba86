package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// One row per user or assistant turn; rows are never updated.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.JSON("sql_executions", []map[string]interface{}{}).
			Optional().
			Comment("Full result sets up to 1000 rows per execution"),
		field.Text("reasoning").
			Optional().
			Nillable().
			Comment("Model thinking text, when present"),
		field.JSON("tool_call_trace", []map[string]interface{}{}).
			Optional().
			Comment("Chronological tool-call trace [{tool, args}]"),
		field.Int("input_tokens").
			Default(0).
			Immutable(),
		field.Int("output_tokens").
			Default(0).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("messages").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		// Context assembly order
		index.Fields("conversation_id", "created_at"),
	}
}
