package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("user_id").
			Optional().
			Comment("Learner the session belongs to; empty for guests"),
		field.String("action").
			NotEmpty().
			Comment("start, end, or abort"),
		field.String("mode").
			NotEmpty().
			Comment("quiz or flashcard"),
		field.Int("level").
			Default(0).
			Comment("Level filter: 0 for all levels, else 1-3"),
		field.Int("requested_size").
			Default(0).
			Comment("Word count the learner asked for"),
		field.Int("items_served").
			Default(0).
			Comment("Snapshot size actually drilled (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on end only)"),
		field.Int("accuracy_percent").
			Default(0).
			Comment("Rounded accuracy 0-100 (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("action"),
	}
}
