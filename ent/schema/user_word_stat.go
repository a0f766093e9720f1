package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserWordStat accumulates one learner's history with one word. There
// is at most one row per (user, word) pair; session results update the
// existing row rather than appending.
type UserWordStat struct {
	ent.Schema
}

func (UserWordStat) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Learner identifier; guest sessions never write rows"),
		field.Int("word_id").
			Comment("Catalog word this row tracks"),
		field.String("status").
			Default("学習中").
			Comment("習得済み or 学習中"),
		field.Int("correct_count").
			Default(0),
		field.Int("incorrect_count").
			Default(0),
		field.Time("last_studied_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (UserWordStat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "word_id").
			Unique(),
		index.Fields("user_id", "status"),
	}
}
