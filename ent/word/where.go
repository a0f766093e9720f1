// Code generated by ent, DO NOT EDIT.

package word

import (
	"entgo.io/ent/dialect/sql"
	"github.com/fujioka8700/eitan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldID, id))
}

// English applies equality check predicate on the "english" field. It's identical to EnglishEQ.
func English(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldEnglish, v))
}

// Japanese applies equality check predicate on the "japanese" field. It's identical to JapaneseEQ.
func Japanese(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldJapanese, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldLevel, v))
}

// EnglishEQ applies the EQ predicate on the "english" field.
func EnglishEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldEnglish, v))
}

// EnglishNEQ applies the NEQ predicate on the "english" field.
func EnglishNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldEnglish, v))
}

// EnglishIn applies the In predicate on the "english" field.
func EnglishIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldEnglish, vs...))
}

// EnglishNotIn applies the NotIn predicate on the "english" field.
func EnglishNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldEnglish, vs...))
}

// EnglishGT applies the GT predicate on the "english" field.
func EnglishGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldEnglish, v))
}

// EnglishGTE applies the GTE predicate on the "english" field.
func EnglishGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldEnglish, v))
}

// EnglishLT applies the LT predicate on the "english" field.
func EnglishLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldEnglish, v))
}

// EnglishLTE applies the LTE predicate on the "english" field.
func EnglishLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldEnglish, v))
}

// EnglishContains applies the Contains predicate on the "english" field.
func EnglishContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldEnglish, v))
}

// EnglishHasPrefix applies the HasPrefix predicate on the "english" field.
func EnglishHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldEnglish, v))
}

// EnglishHasSuffix applies the HasSuffix predicate on the "english" field.
func EnglishHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldEnglish, v))
}

// EnglishEqualFold applies the EqualFold predicate on the "english" field.
func EnglishEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldEnglish, v))
}

// EnglishContainsFold applies the ContainsFold predicate on the "english" field.
func EnglishContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldEnglish, v))
}

// JapaneseEQ applies the EQ predicate on the "japanese" field.
func JapaneseEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldJapanese, v))
}

// JapaneseNEQ applies the NEQ predicate on the "japanese" field.
func JapaneseNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldJapanese, v))
}

// JapaneseIn applies the In predicate on the "japanese" field.
func JapaneseIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldJapanese, vs...))
}

// JapaneseNotIn applies the NotIn predicate on the "japanese" field.
func JapaneseNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldJapanese, vs...))
}

// JapaneseGT applies the GT predicate on the "japanese" field.
func JapaneseGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldJapanese, v))
}

// JapaneseGTE applies the GTE predicate on the "japanese" field.
func JapaneseGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldJapanese, v))
}

// JapaneseLT applies the LT predicate on the "japanese" field.
func JapaneseLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldJapanese, v))
}

// JapaneseLTE applies the LTE predicate on the "japanese" field.
func JapaneseLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldJapanese, v))
}

// JapaneseContains applies the Contains predicate on the "japanese" field.
func JapaneseContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldJapanese, v))
}

// JapaneseHasPrefix applies the HasPrefix predicate on the "japanese" field.
func JapaneseHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldJapanese, v))
}

// JapaneseHasSuffix applies the HasSuffix predicate on the "japanese" field.
func JapaneseHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldJapanese, v))
}

// JapaneseEqualFold applies the EqualFold predicate on the "japanese" field.
func JapaneseEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldJapanese, v))
}

// JapaneseContainsFold applies the ContainsFold predicate on the "japanese" field.
func JapaneseContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldJapanese, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldLevel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Word) predicate.Word {
	return predicate.Word(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Word) predicate.Word {
	return predicate.Word(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Word) predicate.Word {
	return predicate.Word(sql.NotPredicates(p))
}
