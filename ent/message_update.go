// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/chatdf/chatdf/ent/message"
	"github.com/chatdf/chatdf/ent/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSQLExecutions sets the "sql_executions" field.
func (_u *MessageUpdate) SetSQLExecutions(v []map[string]interface{}) *MessageUpdate {
	_u.mutation.SetSQLExecutions(v)
	return _u
}

// AppendSQLExecutions appends value to the "sql_executions" field.
func (_u *MessageUpdate) AppendSQLExecutions(v []map[string]interface{}) *MessageUpdate {
	_u.mutation.AppendSQLExecutions(v)
	return _u
}

// ClearSQLExecutions clears the value of the "sql_executions" field.
func (_u *MessageUpdate) ClearSQLExecutions() *MessageUpdate {
	_u.mutation.ClearSQLExecutions()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *MessageUpdate) SetReasoning(v string) *MessageUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableReasoning(v *string) *MessageUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *MessageUpdate) ClearReasoning() *MessageUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetToolCallTrace sets the "tool_call_trace" field.
func (_u *MessageUpdate) SetToolCallTrace(v []map[string]interface{}) *MessageUpdate {
	_u.mutation.SetToolCallTrace(v)
	return _u
}

// AppendToolCallTrace appends value to the "tool_call_trace" field.
func (_u *MessageUpdate) AppendToolCallTrace(v []map[string]interface{}) *MessageUpdate {
	_u.mutation.AppendToolCallTrace(v)
	return _u
}

// ClearToolCallTrace clears the value of the "tool_call_trace" field.
func (_u *MessageUpdate) ClearToolCallTrace() *MessageUpdate {
	_u.mutation.ClearToolCallTrace()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.conversation"`)
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SQLExecutions(); ok {
		_spec.SetField(message.FieldSQLExecutions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSQLExecutions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, message.FieldSQLExecutions, value)
		})
	}
	if _u.mutation.SQLExecutionsCleared() {
		_spec.ClearField(message.FieldSQLExecutions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(message.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(message.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.ToolCallTrace(); ok {
		_spec.SetField(message.FieldToolCallTrace, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCallTrace(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, message.FieldToolCallTrace, value)
		})
	}
	if _u.mutation.ToolCallTraceCleared() {
		_spec.ClearField(message.FieldToolCallTrace, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetSQLExecutions sets the "sql_executions" field.
func (_u *MessageUpdateOne) SetSQLExecutions(v []map[string]interface{}) *MessageUpdateOne {
	_u.mutation.SetSQLExecutions(v)
	return _u
}

// AppendSQLExecutions appends value to the "sql_executions" field.
func (_u *MessageUpdateOne) AppendSQLExecutions(v []map[string]interface{}) *MessageUpdateOne {
	_u.mutation.AppendSQLExecutions(v)
	return _u
}

// ClearSQLExecutions clears the value of the "sql_executions" field.
func (_u *MessageUpdateOne) ClearSQLExecutions() *MessageUpdateOne {
	_u.mutation.ClearSQLExecutions()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *MessageUpdateOne) SetReasoning(v string) *MessageUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableReasoning(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *MessageUpdateOne) ClearReasoning() *MessageUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetToolCallTrace sets the "tool_call_trace" field.
func (_u *MessageUpdateOne) SetToolCallTrace(v []map[string]interface{}) *MessageUpdateOne {
	_u.mutation.SetToolCallTrace(v)
	return _u
}

// AppendToolCallTrace appends value to the "tool_call_trace" field.
func (_u *MessageUpdateOne) AppendToolCallTrace(v []map[string]interface{}) *MessageUpdateOne {
	_u.mutation.AppendToolCallTrace(v)
	return _u
}

// ClearToolCallTrace clears the value of the "tool_call_trace" field.
func (_u *MessageUpdateOne) ClearToolCallTrace() *MessageUpdateOne {
	_u.mutation.ClearToolCallTrace()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.conversation"`)
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
	if value, ok := _u.mutation.SQLExecutions(); ok {
		_spec.SetField(message.FieldSQLExecutions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSQLExecutions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, message.FieldSQLExecutions, value)
		})
	}
	if _u.mutation.SQLExecutionsCleared() {
		_spec.ClearField(message.FieldSQLExecutions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(message.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(message.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.ToolCallTrace(); ok {
		_spec.SetField(message.FieldToolCallTrace, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCallTrace(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, message.FieldToolCallTrace, value)
		})
	}
	if _u.mutation.ToolCallTraceCleared() {
		_spec.ClearField(message.FieldToolCallTrace, field.TypeJSON)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
