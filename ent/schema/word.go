package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Word is one catalog entry: an English headword, its Japanese
// translation, and the school level it is taught at.
type Word struct {
	ent.Schema
}

func (Word) Fields() []ent.Field {
	return []ent.Field{
		field.String("english").
			NotEmpty().
			Comment("Lowercased English headword"),
		field.String("japanese").
			NotEmpty().
			Comment("Japanese translation shown as the answer"),
		field.Int("level").
			Min(1).
			Max(3).
			Comment("School level: 1 (中1) through 3 (中3)"),
	}
}

func (Word) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level"),
		index.Fields("english"),
	}
}
