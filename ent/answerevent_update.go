// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fujioka8700/eitan/ent/answerevent"
	"github.com/fujioka8700/eitan/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *AnswerEventUpdate) SetWordID(v int) *AnswerEventUpdate {
	_u.mutation.ResetWordID()
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableWordID(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// AddWordID adds value to the "word_id" field.
func (_u *AnswerEventUpdate) AddWordID(v int) *AnswerEventUpdate {
	_u.mutation.AddWordID(v)
	return _u
}

// SetEnglish sets the "english" field.
func (_u *AnswerEventUpdate) SetEnglish(v string) *AnswerEventUpdate {
	_u.mutation.SetEnglish(v)
	return _u
}

// SetNillableEnglish sets the "english" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableEnglish(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetEnglish(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *AnswerEventUpdate) SetCorrectAnswer(v string) *AnswerEventUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrectAnswer(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *AnswerEventUpdate) SetLearnerAnswer(v string) *AnswerEventUpdate {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableLearnerAnswer(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// ClearLearnerAnswer clears the value of the "learner_answer" field.
func (_u *AnswerEventUpdate) ClearLearnerAnswer() *AnswerEventUpdate {
	_u.mutation.ClearLearnerAnswer()
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *AnswerEventUpdate) SetResolution(v string) *AnswerEventUpdate {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableResolution(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// SetTimeUnits sets the "time_units" field.
func (_u *AnswerEventUpdate) SetTimeUnits(v int) *AnswerEventUpdate {
	_u.mutation.ResetTimeUnits()
	_u.mutation.SetTimeUnits(v)
	return _u
}

// SetNillableTimeUnits sets the "time_units" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeUnits(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeUnits(*v)
	}
	return _u
}

// AddTimeUnits adds value to the "time_units" field.
func (_u *AnswerEventUpdate) AddTimeUnits(v int) *AnswerEventUpdate {
	_u.mutation.AddTimeUnits(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.English(); ok {
		if err := answerevent.EnglishValidator(v); err != nil {
			return &ValidationError{Name: "english", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.english": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := answerevent.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Resolution(); ok {
		if err := answerevent.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.resolution": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(answerevent.FieldWordID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordID(); ok {
		_spec.AddField(answerevent.FieldWordID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.English(); ok {
		_spec.SetField(answerevent.FieldEnglish, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(answerevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(answerevent.FieldLearnerAnswer, field.TypeString, value)
	}
	if _u.mutation.LearnerAnswerCleared() {
		_spec.ClearField(answerevent.FieldLearnerAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(answerevent.FieldResolution, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeUnits(); ok {
		_spec.SetField(answerevent.FieldTimeUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeUnits(); ok {
		_spec.AddField(answerevent.FieldTimeUnits, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *AnswerEventUpdateOne) SetWordID(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetWordID()
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableWordID(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// AddWordID adds value to the "word_id" field.
func (_u *AnswerEventUpdateOne) AddWordID(v int) *AnswerEventUpdateOne {
	_u.mutation.AddWordID(v)
	return _u
}

// SetEnglish sets the "english" field.
func (_u *AnswerEventUpdateOne) SetEnglish(v string) *AnswerEventUpdateOne {
	_u.mutation.SetEnglish(v)
	return _u
}

// SetNillableEnglish sets the "english" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableEnglish(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetEnglish(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *AnswerEventUpdateOne) SetCorrectAnswer(v string) *AnswerEventUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrectAnswer(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *AnswerEventUpdateOne) SetLearnerAnswer(v string) *AnswerEventUpdateOne {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableLearnerAnswer(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// ClearLearnerAnswer clears the value of the "learner_answer" field.
func (_u *AnswerEventUpdateOne) ClearLearnerAnswer() *AnswerEventUpdateOne {
	_u.mutation.ClearLearnerAnswer()
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *AnswerEventUpdateOne) SetResolution(v string) *AnswerEventUpdateOne {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableResolution(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// SetTimeUnits sets the "time_units" field.
func (_u *AnswerEventUpdateOne) SetTimeUnits(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetTimeUnits()
	_u.mutation.SetTimeUnits(v)
	return _u
}

// SetNillableTimeUnits sets the "time_units" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeUnits(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeUnits(*v)
	}
	return _u
}

// AddTimeUnits adds value to the "time_units" field.
func (_u *AnswerEventUpdateOne) AddTimeUnits(v int) *AnswerEventUpdateOne {
	_u.mutation.AddTimeUnits(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.English(); ok {
		if err := answerevent.EnglishValidator(v); err != nil {
			return &ValidationError{Name: "english", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.english": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := answerevent.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Resolution(); ok {
		if err := answerevent.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.resolution": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(answerevent.FieldWordID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordID(); ok {
		_spec.AddField(answerevent.FieldWordID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.English(); ok {
		_spec.SetField(answerevent.FieldEnglish, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(answerevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(answerevent.FieldLearnerAnswer, field.TypeString, value)
	}
	if _u.mutation.LearnerAnswerCleared() {
		_spec.ClearField(answerevent.FieldLearnerAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(answerevent.FieldResolution, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeUnits(); ok {
		_spec.SetField(answerevent.FieldTimeUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeUnits(); ok {
		_spec.AddField(answerevent.FieldTimeUnits, field.TypeInt, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
