// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fujioka8700/eitan/ent/userwordstat"
)

// UserWordStat is the model entity for the UserWordStat schema.
type UserWordStat struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Learner identifier; guest sessions never write rows
	UserID string `json:"user_id,omitempty"`
	// Catalog word this row tracks
	WordID int `json:"word_id,omitempty"`
	// 習得済み or 学習中
	Status string `json:"status,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// IncorrectCount holds the value of the "incorrect_count" field.
	IncorrectCount int `json:"incorrect_count,omitempty"`
	// LastStudiedAt holds the value of the "last_studied_at" field.
	LastStudiedAt time.Time `json:"last_studied_at,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserWordStat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userwordstat.FieldID, userwordstat.FieldWordID, userwordstat.FieldCorrectCount, userwordstat.FieldIncorrectCount:
			values[i] = new(sql.NullInt64)
		case userwordstat.FieldUserID, userwordstat.FieldStatus:
			values[i] = new(sql.NullString)
		case userwordstat.FieldLastStudiedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserWordStat fields.
func (_m *UserWordStat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userwordstat.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userwordstat.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userwordstat.FieldWordID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_id", values[i])
			} else if value.Valid {
				_m.WordID = int(value.Int64)
			}
		case userwordstat.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case userwordstat.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case userwordstat.FieldIncorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field incorrect_count", values[i])
			} else if value.Valid {
				_m.IncorrectCount = int(value.Int64)
			}
		case userwordstat.FieldLastStudiedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_studied_at", values[i])
			} else if value.Valid {
				_m.LastStudiedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserWordStat.
// This includes values selected through modifiers, order, etc.
func (_m *UserWordStat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserWordStat.
// Note that you need to call UserWordStat.Unwrap() before calling this method if this UserWordStat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserWordStat) Update() *UserWordStatUpdateOne {
	return NewUserWordStatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserWordStat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserWordStat) Unwrap() *UserWordStat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserWordStat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserWordStat) String() string {
	var builder strings.Builder
	builder.WriteString("UserWordStat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("word_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WordID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("incorrect_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncorrectCount))
	builder.WriteString(", ")
	builder.WriteString("last_studied_at=")
	builder.WriteString(_m.LastStudiedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserWordStats is a parsable slice of UserWordStat.
type UserWordStats []*UserWordStat
