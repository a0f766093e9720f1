// Code generated by ent, DO NOT EDIT.

package userwordstat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fujioka8700/eitan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldEQ(FieldUserID, v))
}

// WordID applies equality check predicate on the "word_id" field. It's identical to WordIDEQ.
func WordID(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldEQ(FieldWordID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldEQ(FieldStatus, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldEQ(FieldCorrectCount, v))
}

// IncorrectCount applies equality check predicate on the "incorrect_count" field. It's identical to IncorrectCountEQ.
func IncorrectCount(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldEQ(FieldIncorrectCount, v))
}

// LastStudiedAt applies equality check predicate on the "last_studied_at" field. It's identical to LastStudiedAtEQ.
func LastStudiedAt(v time.Time) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldEQ(FieldLastStudiedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldContainsFold(FieldUserID, v))
}

// WordIDEQ applies the EQ predicate on the "word_id" field.
func WordIDEQ(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldEQ(FieldWordID, v))
}

// WordIDNEQ applies the NEQ predicate on the "word_id" field.
func WordIDNEQ(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldNEQ(FieldWordID, v))
}

// WordIDIn applies the In predicate on the "word_id" field.
func WordIDIn(vs ...int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldIn(FieldWordID, vs...))
}

// WordIDNotIn applies the NotIn predicate on the "word_id" field.
func WordIDNotIn(vs ...int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldNotIn(FieldWordID, vs...))
}

// WordIDGT applies the GT predicate on the "word_id" field.
func WordIDGT(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldGT(FieldWordID, v))
}

// WordIDGTE applies the GTE predicate on the "word_id" field.
func WordIDGTE(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldGTE(FieldWordID, v))
}

// WordIDLT applies the LT predicate on the "word_id" field.
func WordIDLT(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldLT(FieldWordID, v))
}

// WordIDLTE applies the LTE predicate on the "word_id" field.
func WordIDLTE(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldLTE(FieldWordID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldContainsFold(FieldStatus, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldLTE(FieldCorrectCount, v))
}

// IncorrectCountEQ applies the EQ predicate on the "incorrect_count" field.
func IncorrectCountEQ(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldEQ(FieldIncorrectCount, v))
}

// IncorrectCountNEQ applies the NEQ predicate on the "incorrect_count" field.
func IncorrectCountNEQ(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldNEQ(FieldIncorrectCount, v))
}

// IncorrectCountIn applies the In predicate on the "incorrect_count" field.
func IncorrectCountIn(vs ...int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldIn(FieldIncorrectCount, vs...))
}

// IncorrectCountNotIn applies the NotIn predicate on the "incorrect_count" field.
func IncorrectCountNotIn(vs ...int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldNotIn(FieldIncorrectCount, vs...))
}

// IncorrectCountGT applies the GT predicate on the "incorrect_count" field.
func IncorrectCountGT(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldGT(FieldIncorrectCount, v))
}

// IncorrectCountGTE applies the GTE predicate on the "incorrect_count" field.
func IncorrectCountGTE(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldGTE(FieldIncorrectCount, v))
}

// IncorrectCountLT applies the LT predicate on the "incorrect_count" field.
func IncorrectCountLT(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldLT(FieldIncorrectCount, v))
}

// IncorrectCountLTE applies the LTE predicate on the "incorrect_count" field.
func IncorrectCountLTE(v int) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldLTE(FieldIncorrectCount, v))
}

// LastStudiedAtEQ applies the EQ predicate on the "last_studied_at" field.
func LastStudiedAtEQ(v time.Time) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldEQ(FieldLastStudiedAt, v))
}

// LastStudiedAtNEQ applies the NEQ predicate on the "last_studied_at" field.
func LastStudiedAtNEQ(v time.Time) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldNEQ(FieldLastStudiedAt, v))
}

// LastStudiedAtIn applies the In predicate on the "last_studied_at" field.
func LastStudiedAtIn(vs ...time.Time) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldIn(FieldLastStudiedAt, vs...))
}

// LastStudiedAtNotIn applies the NotIn predicate on the "last_studied_at" field.
func LastStudiedAtNotIn(vs ...time.Time) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldNotIn(FieldLastStudiedAt, vs...))
}

// LastStudiedAtGT applies the GT predicate on the "last_studied_at" field.
func LastStudiedAtGT(v time.Time) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldGT(FieldLastStudiedAt, v))
}

// LastStudiedAtGTE applies the GTE predicate on the "last_studied_at" field.
func LastStudiedAtGTE(v time.Time) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldGTE(FieldLastStudiedAt, v))
}

// LastStudiedAtLT applies the LT predicate on the "last_studied_at" field.
func LastStudiedAtLT(v time.Time) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldLT(FieldLastStudiedAt, v))
}

// LastStudiedAtLTE applies the LTE predicate on the "last_studied_at" field.
func LastStudiedAtLTE(v time.Time) predicate.UserWordStat {
	return predicate.UserWordStat(sql.FieldLTE(FieldLastStudiedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserWordStat) predicate.UserWordStat {
	return predicate.UserWordStat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserWordStat) predicate.UserWordStat {
	return predicate.UserWordStat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserWordStat) predicate.UserWordStat {
	return predicate.UserWordStat(sql.NotPredicates(p))
}
