// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fujioka8700/eitan/ent/predicate"
	"github.com/fujioka8700/eitan/ent/userwordstat"
)

// UserWordStatUpdate is the builder for updating UserWordStat entities.
type UserWordStatUpdate struct {
	config
	hooks    []Hook
	mutation *UserWordStatMutation
}

// Where appends a list predicates to the UserWordStatUpdate builder.
func (_u *UserWordStatUpdate) Where(ps ...predicate.UserWordStat) *UserWordStatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserWordStatUpdate) SetUserID(v string) *UserWordStatUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserWordStatUpdate) SetNillableUserID(v *string) *UserWordStatUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *UserWordStatUpdate) SetWordID(v int) *UserWordStatUpdate {
	_u.mutation.ResetWordID()
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *UserWordStatUpdate) SetNillableWordID(v *int) *UserWordStatUpdate {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// AddWordID adds value to the "word_id" field.
func (_u *UserWordStatUpdate) AddWordID(v int) *UserWordStatUpdate {
	_u.mutation.AddWordID(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserWordStatUpdate) SetStatus(v string) *UserWordStatUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserWordStatUpdate) SetNillableStatus(v *string) *UserWordStatUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *UserWordStatUpdate) SetCorrectCount(v int) *UserWordStatUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *UserWordStatUpdate) SetNillableCorrectCount(v *int) *UserWordStatUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *UserWordStatUpdate) AddCorrectCount(v int) *UserWordStatUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_u *UserWordStatUpdate) SetIncorrectCount(v int) *UserWordStatUpdate {
	_u.mutation.ResetIncorrectCount()
	_u.mutation.SetIncorrectCount(v)
	return _u
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_u *UserWordStatUpdate) SetNillableIncorrectCount(v *int) *UserWordStatUpdate {
	if v != nil {
		_u.SetIncorrectCount(*v)
	}
	return _u
}

// AddIncorrectCount adds value to the "incorrect_count" field.
func (_u *UserWordStatUpdate) AddIncorrectCount(v int) *UserWordStatUpdate {
	_u.mutation.AddIncorrectCount(v)
	return _u
}

// SetLastStudiedAt sets the "last_studied_at" field.
func (_u *UserWordStatUpdate) SetLastStudiedAt(v time.Time) *UserWordStatUpdate {
	_u.mutation.SetLastStudiedAt(v)
	return _u
}

// Mutation returns the UserWordStatMutation object of the builder.
func (_u *UserWordStatUpdate) Mutation() *UserWordStatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserWordStatUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserWordStatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserWordStatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserWordStatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserWordStatUpdate) defaults() {
	if _, ok := _u.mutation.LastStudiedAt(); !ok {
		v := userwordstat.UpdateDefaultLastStudiedAt()
		_u.mutation.SetLastStudiedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserWordStatUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userwordstat.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserWordStat.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UserWordStatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userwordstat.Table, userwordstat.Columns, sqlgraph.NewFieldSpec(userwordstat.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userwordstat.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(userwordstat.FieldWordID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordID(); ok {
		_spec.AddField(userwordstat.FieldWordID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(userwordstat.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(userwordstat.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(userwordstat.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectCount(); ok {
		_spec.SetField(userwordstat.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(userwordstat.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastStudiedAt(); ok {
		_spec.SetField(userwordstat.FieldLastStudiedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userwordstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserWordStatUpdateOne is the builder for updating a single UserWordStat entity.
type UserWordStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserWordStatMutation
}

// SetUserID sets the "user_id" field.
func (_u *UserWordStatUpdateOne) SetUserID(v string) *UserWordStatUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserWordStatUpdateOne) SetNillableUserID(v *string) *UserWordStatUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *UserWordStatUpdateOne) SetWordID(v int) *UserWordStatUpdateOne {
	_u.mutation.ResetWordID()
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *UserWordStatUpdateOne) SetNillableWordID(v *int) *UserWordStatUpdateOne {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// AddWordID adds value to the "word_id" field.
func (_u *UserWordStatUpdateOne) AddWordID(v int) *UserWordStatUpdateOne {
	_u.mutation.AddWordID(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserWordStatUpdateOne) SetStatus(v string) *UserWordStatUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserWordStatUpdateOne) SetNillableStatus(v *string) *UserWordStatUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *UserWordStatUpdateOne) SetCorrectCount(v int) *UserWordStatUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *UserWordStatUpdateOne) SetNillableCorrectCount(v *int) *UserWordStatUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *UserWordStatUpdateOne) AddCorrectCount(v int) *UserWordStatUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_u *UserWordStatUpdateOne) SetIncorrectCount(v int) *UserWordStatUpdateOne {
	_u.mutation.ResetIncorrectCount()
	_u.mutation.SetIncorrectCount(v)
	return _u
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_u *UserWordStatUpdateOne) SetNillableIncorrectCount(v *int) *UserWordStatUpdateOne {
	if v != nil {
		_u.SetIncorrectCount(*v)
	}
	return _u
}

// AddIncorrectCount adds value to the "incorrect_count" field.
func (_u *UserWordStatUpdateOne) AddIncorrectCount(v int) *UserWordStatUpdateOne {
	_u.mutation.AddIncorrectCount(v)
	return _u
}

// SetLastStudiedAt sets the "last_studied_at" field.
func (_u *UserWordStatUpdateOne) SetLastStudiedAt(v time.Time) *UserWordStatUpdateOne {
	_u.mutation.SetLastStudiedAt(v)
	return _u
}

// Mutation returns the UserWordStatMutation object of the builder.
func (_u *UserWordStatUpdateOne) Mutation() *UserWordStatMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserWordStatUpdate builder.
func (_u *UserWordStatUpdateOne) Where(ps ...predicate.UserWordStat) *UserWordStatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserWordStatUpdateOne) Select(field string, fields ...string) *UserWordStatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserWordStat entity.
func (_u *UserWordStatUpdateOne) Save(ctx context.Context) (*UserWordStat, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserWordStatUpdateOne) SaveX(ctx context.Context) *UserWordStat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserWordStatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserWordStatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserWordStatUpdateOne) defaults() {
	if _, ok := _u.mutation.LastStudiedAt(); !ok {
		v := userwordstat.UpdateDefaultLastStudiedAt()
		_u.mutation.SetLastStudiedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserWordStatUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userwordstat.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserWordStat.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UserWordStatUpdateOne) sqlSave(ctx context.Context) (_node *UserWordStat, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userwordstat.Table, userwordstat.Columns, sqlgraph.NewFieldSpec(userwordstat.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserWordStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userwordstat.FieldID)
		for _, f := range fields {
			if !userwordstat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userwordstat.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userwordstat.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(userwordstat.FieldWordID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordID(); ok {
		_spec.AddField(userwordstat.FieldWordID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(userwordstat.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(userwordstat.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(userwordstat.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectCount(); ok {
		_spec.SetField(userwordstat.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(userwordstat.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastStudiedAt(); ok {
		_spec.SetField(userwordstat.FieldLastStudiedAt, field.TypeTime, value)
	}
	_node = &UserWordStat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userwordstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
