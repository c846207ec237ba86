package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TokenUsage holds the schema definition for the TokenUsage entity.
// Append-only ledger; the rate-limit accountant sums it over a rolling
// 24h window keyed by user.
type TokenUsage struct {
	ent.Schema
}

// Fields of the TokenUsage.
func (TokenUsage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("usage_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("conversation_id").
			Optional().
			Nillable().
			Comment("SET NULL when the conversation is deleted"),
		field.String("model").
			Default(""),
		field.Int("input_tokens").
			Default(0).
			Immutable(),
		field.Int("output_tokens").
			Default(0).
			Immutable(),
		field.Float("cost").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TokenUsage.
func (TokenUsage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("token_usage").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.From("conversation", Conversation.Type).
			Ref("token_usage").
			Field("conversation_id").
			Unique(),
	}
}

// Indexes of the TokenUsage.
func (TokenUsage) Indexes() []ent.Index {
	return []ent.Index{
		// Rolling-window sum
		index.Fields("user_id", "created_at"),
		index.Fields("conversation_id"),
	}
}
