package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records how a single item was resolved within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.Int("word_id").
			Comment("Catalog word this item drilled"),
		field.String("english").
			NotEmpty().
			Comment("Prompt shown to the learner"),
		field.String("correct_answer").
			NotEmpty().
			Comment("The canonical Japanese translation"),
		field.String("learner_answer").
			Optional().
			Comment("Chosen option; empty on timeout"),
		field.Bool("correct").
			Comment("Whether the item counts as correct"),
		field.String("resolution").
			NotEmpty().
			Comment("answered, marked, or timed_out"),
		field.Int("time_units").
			Comment("Timer units consumed before resolution"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("word_id"),
		index.Fields("correct"),
	}
}
