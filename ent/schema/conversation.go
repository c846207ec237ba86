package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity.
// Deleting a conversation cascades to its messages and datasets.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("title").
			Default("").
			Comment("Auto-filled from the first user message when empty"),
		field.Bool("is_pinned").
			Default(false),
		field.String("share_token").
			Optional().
			Nillable().
			Unique().
			Comment("URL-safe random token granting read-only access"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("conversations").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("datasets", Dataset.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("token_usage", TokenUsage.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		// Listing: pinned first, then updated desc
		index.Fields("user_id", "is_pinned", "updated_at"),
		index.Fields("share_token").
			Unique(),
	}
}
