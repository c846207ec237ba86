// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chatdf/chatdf/ent/predicate"
	"github.com/chatdf/chatdf/ent/queryhistory"
)

// QueryHistoryUpdate is the builder for updating QueryHistory entities.
type QueryHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *QueryHistoryMutation
}

// Where appends a list predicates to the QueryHistoryUpdate builder.
func (_u *QueryHistoryUpdate) Where(ps ...predicate.QueryHistory) *QueryHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRowCount sets the "row_count" field.
func (_u *QueryHistoryUpdate) SetRowCount(v int64) *QueryHistoryUpdate {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *QueryHistoryUpdate) SetNillableRowCount(v *int64) *QueryHistoryUpdate {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *QueryHistoryUpdate) AddRowCount(v int64) *QueryHistoryUpdate {
	_u.mutation.AddRowCount(v)
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *QueryHistoryUpdate) SetExecutionTimeMs(v int64) *QueryHistoryUpdate {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *QueryHistoryUpdate) SetNillableExecutionTimeMs(v *int64) *QueryHistoryUpdate {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *QueryHistoryUpdate) AddExecutionTimeMs(v int64) *QueryHistoryUpdate {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QueryHistoryUpdate) SetErrorMessage(v string) *QueryHistoryUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QueryHistoryUpdate) SetNillableErrorMessage(v *string) *QueryHistoryUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *QueryHistoryUpdate) ClearErrorMessage() *QueryHistoryUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the QueryHistoryMutation object of the builder.
func (_u *QueryHistoryUpdate) Mutation() *QueryHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueryHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueryHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QueryHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(queryhistory.Table, queryhistory.Columns, sqlgraph.NewFieldSpec(queryhistory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(queryhistory.FieldRowCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(queryhistory.FieldRowCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(queryhistory.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(queryhistory.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(queryhistory.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(queryhistory.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queryhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueryHistoryUpdateOne is the builder for updating a single QueryHistory entity.
type QueryHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueryHistoryMutation
}

// SetRowCount sets the "row_count" field.
func (_u *QueryHistoryUpdateOne) SetRowCount(v int64) *QueryHistoryUpdateOne {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *QueryHistoryUpdateOne) SetNillableRowCount(v *int64) *QueryHistoryUpdateOne {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *QueryHistoryUpdateOne) AddRowCount(v int64) *QueryHistoryUpdateOne {
	_u.mutation.AddRowCount(v)
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *QueryHistoryUpdateOne) SetExecutionTimeMs(v int64) *QueryHistoryUpdateOne {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *QueryHistoryUpdateOne) SetNillableExecutionTimeMs(v *int64) *QueryHistoryUpdateOne {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *QueryHistoryUpdateOne) AddExecutionTimeMs(v int64) *QueryHistoryUpdateOne {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QueryHistoryUpdateOne) SetErrorMessage(v string) *QueryHistoryUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QueryHistoryUpdateOne) SetNillableErrorMessage(v *string) *QueryHistoryUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *QueryHistoryUpdateOne) ClearErrorMessage() *QueryHistoryUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the QueryHistoryMutation object of the builder.
func (_u *QueryHistoryUpdateOne) Mutation() *QueryHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueryHistoryUpdate builder.
func (_u *QueryHistoryUpdateOne) Where(ps ...predicate.QueryHistory) *QueryHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueryHistoryUpdateOne) Select(field string, fields ...string) *QueryHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueryHistory entity.
func (_u *QueryHistoryUpdateOne) Save(ctx context.Context) (*QueryHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryHistoryUpdateOne) SaveX(ctx context.Context) *QueryHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueryHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QueryHistoryUpdateOne) sqlSave(ctx context.Context) (_node *QueryHistory, err error) {
	_spec := sqlgraph.NewUpdateSpec(queryhistory.Table, queryhistory.Columns, sqlgraph.NewFieldSpec(queryhistory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueryHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queryhistory.FieldID)
		for _, f := range fields {
			if !queryhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queryhistory.FieldID {
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
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(queryhistory.FieldRowCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(queryhistory.FieldRowCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(queryhistory.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(queryhistory.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(queryhistory.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(queryhistory.FieldErrorMessage, field.TypeString)
	}
	_node = &QueryHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queryhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
