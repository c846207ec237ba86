// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chatdf/chatdf/ent/conversation"
	"github.com/chatdf/chatdf/ent/message"
)

// MessageCreate is the builder for creating a Message entity.
type MessageCreate struct {
	config
	mutation *MessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetConversationID sets the "conversation_id" field.
func (_c *MessageCreate) SetConversationID(v string) *MessageCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *MessageCreate) SetRole(v message.Role) *MessageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *MessageCreate) SetContent(v string) *MessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSQLExecutions sets the "sql_executions" field.
func (_c *MessageCreate) SetSQLExecutions(v []map[string]interface{}) *MessageCreate {
	_c.mutation.SetSQLExecutions(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *MessageCreate) SetReasoning(v string) *MessageCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *MessageCreate) SetNillableReasoning(v *string) *MessageCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetToolCallTrace sets the "tool_call_trace" field.
func (_c *MessageCreate) SetToolCallTrace(v []map[string]interface{}) *MessageCreate {
	_c.mutation.SetToolCallTrace(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *MessageCreate) SetInputTokens(v int) *MessageCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *MessageCreate) SetNillableInputTokens(v *int) *MessageCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *MessageCreate) SetOutputTokens(v int) *MessageCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *MessageCreate) SetNillableOutputTokens(v *int) *MessageCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageCreate) SetCreatedAt(v time.Time) *MessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableCreatedAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageCreate) SetID(v string) *MessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_c *MessageCreate) SetConversation(v *Conversation) *MessageCreate {
	return _c.SetConversationID(v.ID)
}

// Mutation returns the MessageMutation object of the builder.
func (_c *MessageCreate) Mutation() *MessageMutation {
	return _c.mutation
}

// Save creates the Message in the database.
func (_c *MessageCreate) Save(ctx context.Context) (*Message, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageCreate) SaveX(ctx context.Context) *Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageCreate) defaults() {
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := message.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := message.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := message.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageCreate) check() error {
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "Message.conversation_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Message.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := message.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Message.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Message.content"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "Message.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "Message.output_tokens"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Message.created_at"`)}
	}
	if len(_c.mutation.ConversationIDs()) == 0 {
		return &ValidationError{Name: "conversation", err: errors.New(`ent: missing required edge "Message.conversation"`)}
	}
	return nil
}

func (_c *MessageCreate) sqlSave(ctx context.Context) (*Message, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Message.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageCreate) createSpec() (*Message, *sqlgraph.CreateSpec) {
	var (
		_node = &Message{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(message.Table, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(message.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.SQLExecutions(); ok {
		_spec.SetField(message.FieldSQLExecutions, field.TypeJSON, value)
		_node.SQLExecutions = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(message.FieldReasoning, field.TypeString, value)
		_node.Reasoning = &value
	}
	if value, ok := _c.mutation.ToolCallTrace(); ok {
		_spec.SetField(message.FieldToolCallTrace, field.TypeJSON, value)
		_node.ToolCallTrace = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(message.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(message.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(message.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.ConversationTable,
			Columns: []string{message.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConversationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.Create().
//		SetConversationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreate) OnConflict(opts ...sql.ConflictOption) *MessageUpsertOne {
	_c.conflict = opts
	return &MessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreate) OnConflictColumns(columns ...string) *MessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertOne{
		create: _c,
	}
}

type (
	// MessageUpsertOne is the builder for "upsert"-ing
	//  one Message node.
	MessageUpsertOne struct {
		create *MessageCreate
	}

	// MessageUpsert is the "OnConflict" setter.
	MessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetSQLExecutions sets the "sql_executions" field.
func (u *MessageUpsert) SetSQLExecutions(v []map[string]interface{}) *MessageUpsert {
	u.Set(message.FieldSQLExecutions, v)
	return u
}

// UpdateSQLExecutions sets the "sql_executions" field to the value that was provided on create.
func (u *MessageUpsert) UpdateSQLExecutions() *MessageUpsert {
	u.SetExcluded(message.FieldSQLExecutions)
	return u
}

// ClearSQLExecutions clears the value of the "sql_executions" field.
func (u *MessageUpsert) ClearSQLExecutions() *MessageUpsert {
	u.SetNull(message.FieldSQLExecutions)
	return u
}

// SetReasoning sets the "reasoning" field.
func (u *MessageUpsert) SetReasoning(v string) *MessageUpsert {
	u.Set(message.FieldReasoning, v)
	return u
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *MessageUpsert) UpdateReasoning() *MessageUpsert {
	u.SetExcluded(message.FieldReasoning)
	return u
}

// ClearReasoning clears the value of the "reasoning" field.
func (u *MessageUpsert) ClearReasoning() *MessageUpsert {
	u.SetNull(message.FieldReasoning)
	return u
}

// SetToolCallTrace sets the "tool_call_trace" field.
func (u *MessageUpsert) SetToolCallTrace(v []map[string]interface{}) *MessageUpsert {
	u.Set(message.FieldToolCallTrace, v)
	return u
}

// UpdateToolCallTrace sets the "tool_call_trace" field to the value that was provided on create.
func (u *MessageUpsert) UpdateToolCallTrace() *MessageUpsert {
	u.SetExcluded(message.FieldToolCallTrace)
	return u
}

// ClearToolCallTrace clears the value of the "tool_call_trace" field.
func (u *MessageUpsert) ClearToolCallTrace() *MessageUpsert {
	u.SetNull(message.FieldToolCallTrace)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertOne) UpdateNewValues() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(message.FieldID)
		}
		if _, exists := u.create.mutation.ConversationID(); exists {
			s.SetIgnore(message.FieldConversationID)
		}
		if _, exists := u.create.mutation.Role(); exists {
			s.SetIgnore(message.FieldRole)
		}
		if _, exists := u.create.mutation.Content(); exists {
			s.SetIgnore(message.FieldContent)
		}
		if _, exists := u.create.mutation.InputTokens(); exists {
			s.SetIgnore(message.FieldInputTokens)
		}
		if _, exists := u.create.mutation.OutputTokens(); exists {
			s.SetIgnore(message.FieldOutputTokens)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(message.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MessageUpsertOne) Ignore() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertOne) DoNothing() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreate.OnConflict
// documentation for more info.
func (u *MessageUpsertOne) Update(set func(*MessageUpsert)) *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSQLExecutions sets the "sql_executions" field.
func (u *MessageUpsertOne) SetSQLExecutions(v []map[string]interface{}) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetSQLExecutions(v)
	})
}

// UpdateSQLExecutions sets the "sql_executions" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateSQLExecutions() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSQLExecutions()
	})
}

// ClearSQLExecutions clears the value of the "sql_executions" field.
func (u *MessageUpsertOne) ClearSQLExecutions() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearSQLExecutions()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *MessageUpsertOne) SetReasoning(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateReasoning() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateReasoning()
	})
}

// ClearReasoning clears the value of the "reasoning" field.
func (u *MessageUpsertOne) ClearReasoning() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearReasoning()
	})
}

// SetToolCallTrace sets the "tool_call_trace" field.
func (u *MessageUpsertOne) SetToolCallTrace(v []map[string]interface{}) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetToolCallTrace(v)
	})
}

// UpdateToolCallTrace sets the "tool_call_trace" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateToolCallTrace() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateToolCallTrace()
	})
}

// ClearToolCallTrace clears the value of the "tool_call_trace" field.
func (u *MessageUpsertOne) ClearToolCallTrace() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearToolCallTrace()
	})
}

// Exec executes the query.
func (u *MessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MessageUpsertOne.ID is not supported by MySQL driver. Use MessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MessageCreateBulk is the builder for creating many Message entities in bulk.
type MessageCreateBulk struct {
	config
	err      error
	builders []*MessageCreate
	conflict []sql.ConflictOption
}

// Save creates the Message entities in the database.
func (_c *MessageCreateBulk) Save(ctx context.Context) ([]*Message, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Message, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *MessageCreateBulk) SaveX(ctx context.Context) []*Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *MessageUpsertBulk {
	_c.conflict = opts
	return &MessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflictColumns(columns ...string) *MessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertBulk{
		create: _c,
	}
}

// MessageUpsertBulk is the builder for "upsert"-ing
// a bulk of Message nodes.
type MessageUpsertBulk struct {
	create *MessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertBulk) UpdateNewValues() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(message.FieldID)
			}
			if _, exists := b.mutation.ConversationID(); exists {
				s.SetIgnore(message.FieldConversationID)
			}
			if _, exists := b.mutation.Role(); exists {
				s.SetIgnore(message.FieldRole)
			}
			if _, exists := b.mutation.Content(); exists {
				s.SetIgnore(message.FieldContent)
			}
			if _, exists := b.mutation.InputTokens(); exists {
				s.SetIgnore(message.FieldInputTokens)
			}
			if _, exists := b.mutation.OutputTokens(); exists {
				s.SetIgnore(message.FieldOutputTokens)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(message.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MessageUpsertBulk) Ignore() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertBulk) DoNothing() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreateBulk.OnConflict
// documentation for more info.
func (u *MessageUpsertBulk) Update(set func(*MessageUpsert)) *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSQLExecutions sets the "sql_executions" field.
func (u *MessageUpsertBulk) SetSQLExecutions(v []map[string]interface{}) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetSQLExecutions(v)
	})
}

// UpdateSQLExecutions sets the "sql_executions" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateSQLExecutions() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSQLExecutions()
	})
}

// ClearSQLExecutions clears the value of the "sql_executions" field.
func (u *MessageUpsertBulk) ClearSQLExecutions() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearSQLExecutions()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *MessageUpsertBulk) SetReasoning(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateReasoning() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateReasoning()
	})
}

// ClearReasoning clears the value of the "reasoning" field.
func (u *MessageUpsertBulk) ClearReasoning() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearReasoning()
	})
}

// SetToolCallTrace sets the "tool_call_trace" field.
func (u *MessageUpsertBulk) SetToolCallTrace(v []map[string]interface{}) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetToolCallTrace(v)
	})
}

// UpdateToolCallTrace sets the "tool_call_trace" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateToolCallTrace() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateToolCallTrace()
	})
}

// ClearToolCallTrace clears the value of the "tool_call_trace" field.
func (u *MessageUpsertBulk) ClearToolCallTrace() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearToolCallTrace()
	})
}

// Exec executes the query.
func (u *MessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
