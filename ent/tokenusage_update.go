// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chatdf/chatdf/ent/conversation"
	"github.com/chatdf/chatdf/ent/predicate"
	"github.com/chatdf/chatdf/ent/tokenusage"
)

// TokenUsageUpdate is the builder for updating TokenUsage entities.
type TokenUsageUpdate struct {
	config
	hooks    []Hook
	mutation *TokenUsageMutation
}

// Where appends a list predicates to the TokenUsageUpdate builder.
func (_u *TokenUsageUpdate) Where(ps ...predicate.TokenUsage) *TokenUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *TokenUsageUpdate) SetConversationID(v string) *TokenUsageUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableConversationID(v *string) *TokenUsageUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *TokenUsageUpdate) ClearConversationID() *TokenUsageUpdate {
	_u.mutation.ClearConversationID()
	return _u
}

// SetModel sets the "model" field.
func (_u *TokenUsageUpdate) SetModel(v string) *TokenUsageUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableModel(v *string) *TokenUsageUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetCost sets the "cost" field.
func (_u *TokenUsageUpdate) SetCost(v float64) *TokenUsageUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableCost(v *float64) *TokenUsageUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *TokenUsageUpdate) AddCost(v float64) *TokenUsageUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_u *TokenUsageUpdate) SetConversation(v *Conversation) *TokenUsageUpdate {
	return _u.SetConversationID(v.ID)
}

// Mutation returns the TokenUsageMutation object of the builder.
func (_u *TokenUsageUpdate) Mutation() *TokenUsageMutation {
	return _u.mutation
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (_u *TokenUsageUpdate) ClearConversation() *TokenUsageUpdate {
	_u.mutation.ClearConversation()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TokenUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TokenUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenUsageUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TokenUsage.user"`)
	}
	return nil
}

func (_u *TokenUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenusage.Table, tokenusage.Columns, sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(tokenusage.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(tokenusage.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(tokenusage.FieldCost, field.TypeFloat64, value)
	}
	if _u.mutation.ConversationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tokenusage.ConversationTable,
			Columns: []string{tokenusage.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tokenusage.ConversationTable,
			Columns: []string{tokenusage.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TokenUsageUpdateOne is the builder for updating a single TokenUsage entity.
type TokenUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TokenUsageMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *TokenUsageUpdateOne) SetConversationID(v string) *TokenUsageUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableConversationID(v *string) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *TokenUsageUpdateOne) ClearConversationID() *TokenUsageUpdateOne {
	_u.mutation.ClearConversationID()
	return _u
}

// SetModel sets the "model" field.
func (_u *TokenUsageUpdateOne) SetModel(v string) *TokenUsageUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableModel(v *string) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetCost sets the "cost" field.
func (_u *TokenUsageUpdateOne) SetCost(v float64) *TokenUsageUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableCost(v *float64) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *TokenUsageUpdateOne) AddCost(v float64) *TokenUsageUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_u *TokenUsageUpdateOne) SetConversation(v *Conversation) *TokenUsageUpdateOne {
	return _u.SetConversationID(v.ID)
}

// Mutation returns the TokenUsageMutation object of the builder.
func (_u *TokenUsageUpdateOne) Mutation() *TokenUsageMutation {
	return _u.mutation
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (_u *TokenUsageUpdateOne) ClearConversation() *TokenUsageUpdateOne {
	_u.mutation.ClearConversation()
	return _u
}

// Where appends a list predicates to the TokenUsageUpdate builder.
func (_u *TokenUsageUpdateOne) Where(ps ...predicate.TokenUsage) *TokenUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TokenUsageUpdateOne) Select(field string, fields ...string) *TokenUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TokenUsage entity.
func (_u *TokenUsageUpdateOne) Save(ctx context.Context) (*TokenUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenUsageUpdateOne) SaveX(ctx context.Context) *TokenUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TokenUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenUsageUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TokenUsage.user"`)
	}
	return nil
}

func (_u *TokenUsageUpdateOne) sqlSave(ctx context.Context) (_node *TokenUsage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenusage.Table, tokenusage.Columns, sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TokenUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tokenusage.FieldID)
		for _, f := range fields {
			if !tokenusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tokenusage.FieldID {
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
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(tokenusage.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(tokenusage.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(tokenusage.FieldCost, field.TypeFloat64, value)
	}
	if _u.mutation.ConversationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tokenusage.ConversationTable,
			Columns: []string{tokenusage.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tokenusage.ConversationTable,
			Columns: []string{tokenusage.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TokenUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
