// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fujioka8700/eitan/ent/userwordstat"
)

// UserWordStatCreate is the builder for creating a UserWordStat entity.
type UserWordStatCreate struct {
	config
	mutation *UserWordStatMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserWordStatCreate) SetUserID(v string) *UserWordStatCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetWordID sets the "word_id" field.
func (_c *UserWordStatCreate) SetWordID(v int) *UserWordStatCreate {
	_c.mutation.SetWordID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *UserWordStatCreate) SetStatus(v string) *UserWordStatCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UserWordStatCreate) SetNillableStatus(v *string) *UserWordStatCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *UserWordStatCreate) SetCorrectCount(v int) *UserWordStatCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *UserWordStatCreate) SetNillableCorrectCount(v *int) *UserWordStatCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_c *UserWordStatCreate) SetIncorrectCount(v int) *UserWordStatCreate {
	_c.mutation.SetIncorrectCount(v)
	return _c
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_c *UserWordStatCreate) SetNillableIncorrectCount(v *int) *UserWordStatCreate {
	if v != nil {
		_c.SetIncorrectCount(*v)
	}
	return _c
}

// SetLastStudiedAt sets the "last_studied_at" field.
func (_c *UserWordStatCreate) SetLastStudiedAt(v time.Time) *UserWordStatCreate {
	_c.mutation.SetLastStudiedAt(v)
	return _c
}

// SetNillableLastStudiedAt sets the "last_studied_at" field if the given value is not nil.
func (_c *UserWordStatCreate) SetNillableLastStudiedAt(v *time.Time) *UserWordStatCreate {
	if v != nil {
		_c.SetLastStudiedAt(*v)
	}
	return _c
}

// Mutation returns the UserWordStatMutation object of the builder.
func (_c *UserWordStatCreate) Mutation() *UserWordStatMutation {
	return _c.mutation
}

// Save creates the UserWordStat in the database.
func (_c *UserWordStatCreate) Save(ctx context.Context) (*UserWordStat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserWordStatCreate) SaveX(ctx context.Context) *UserWordStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserWordStatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserWordStatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserWordStatCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := userwordstat.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := userwordstat.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.IncorrectCount(); !ok {
		v := userwordstat.DefaultIncorrectCount
		_c.mutation.SetIncorrectCount(v)
	}
	if _, ok := _c.mutation.LastStudiedAt(); !ok {
		v := userwordstat.DefaultLastStudiedAt()
		_c.mutation.SetLastStudiedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserWordStatCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserWordStat.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userwordstat.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserWordStat.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WordID(); !ok {
		return &ValidationError{Name: "word_id", err: errors.New(`ent: missing required field "UserWordStat.word_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UserWordStat.status"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "UserWordStat.correct_count"`)}
	}
	if _, ok := _c.mutation.IncorrectCount(); !ok {
		return &ValidationError{Name: "incorrect_count", err: errors.New(`ent: missing required field "UserWordStat.incorrect_count"`)}
	}
	if _, ok := _c.mutation.LastStudiedAt(); !ok {
		return &ValidationError{Name: "last_studied_at", err: errors.New(`ent: missing required field "UserWordStat.last_studied_at"`)}
	}
	return nil
}

func (_c *UserWordStatCreate) sqlSave(ctx context.Context) (*UserWordStat, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserWordStatCreate) createSpec() (*UserWordStat, *sqlgraph.CreateSpec) {
	var (
		_node = &UserWordStat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userwordstat.Table, sqlgraph.NewFieldSpec(userwordstat.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userwordstat.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.WordID(); ok {
		_spec.SetField(userwordstat.FieldWordID, field.TypeInt, value)
		_node.WordID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(userwordstat.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(userwordstat.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.IncorrectCount(); ok {
		_spec.SetField(userwordstat.FieldIncorrectCount, field.TypeInt, value)
		_node.IncorrectCount = value
	}
	if value, ok := _c.mutation.LastStudiedAt(); ok {
		_spec.SetField(userwordstat.FieldLastStudiedAt, field.TypeTime, value)
		_node.LastStudiedAt = value
	}
	return _node, _spec
}

// UserWordStatCreateBulk is the builder for creating many UserWordStat entities in bulk.
type UserWordStatCreateBulk struct {
	config
	err      error
	builders []*UserWordStatCreate
}

// Save creates the UserWordStat entities in the database.
func (_c *UserWordStatCreateBulk) Save(ctx context.Context) ([]*UserWordStat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserWordStat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserWordStatMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *UserWordStatCreateBulk) SaveX(ctx context.Context) []*UserWordStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserWordStatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserWordStatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
