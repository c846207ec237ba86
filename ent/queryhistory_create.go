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
	"github.com/chatdf/chatdf/ent/queryhistory"
)

// QueryHistoryCreate is the builder for creating a QueryHistory entity.
type QueryHistoryCreate struct {
	config
	mutation *QueryHistoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *QueryHistoryCreate) SetUserID(v string) *QueryHistoryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *QueryHistoryCreate) SetConversationID(v string) *QueryHistoryCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetSQLQuery sets the "sql_query" field.
func (_c *QueryHistoryCreate) SetSQLQuery(v string) *QueryHistoryCreate {
	_c.mutation.SetSQLQuery(v)
	return _c
}

// SetRowCount sets the "row_count" field.
func (_c *QueryHistoryCreate) SetRowCount(v int64) *QueryHistoryCreate {
	_c.mutation.SetRowCount(v)
	return _c
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_c *QueryHistoryCreate) SetNillableRowCount(v *int64) *QueryHistoryCreate {
	if v != nil {
		_c.SetRowCount(*v)
	}
	return _c
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_c *QueryHistoryCreate) SetExecutionTimeMs(v int64) *QueryHistoryCreate {
	_c.mutation.SetExecutionTimeMs(v)
	return _c
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_c *QueryHistoryCreate) SetNillableExecutionTimeMs(v *int64) *QueryHistoryCreate {
	if v != nil {
		_c.SetExecutionTimeMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *QueryHistoryCreate) SetErrorMessage(v string) *QueryHistoryCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *QueryHistoryCreate) SetNillableErrorMessage(v *string) *QueryHistoryCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QueryHistoryCreate) SetCreatedAt(v time.Time) *QueryHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QueryHistoryCreate) SetNillableCreatedAt(v *time.Time) *QueryHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueryHistoryCreate) SetID(v string) *QueryHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueryHistoryMutation object of the builder.
func (_c *QueryHistoryCreate) Mutation() *QueryHistoryMutation {
	return _c.mutation
}

// Save creates the QueryHistory in the database.
func (_c *QueryHistoryCreate) Save(ctx context.Context) (*QueryHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueryHistoryCreate) SaveX(ctx context.Context) *QueryHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueryHistoryCreate) defaults() {
	if _, ok := _c.mutation.RowCount(); !ok {
		v := queryhistory.DefaultRowCount
		_c.mutation.SetRowCount(v)
	}
	if _, ok := _c.mutation.ExecutionTimeMs(); !ok {
		v := queryhistory.DefaultExecutionTimeMs
		_c.mutation.SetExecutionTimeMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := queryhistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueryHistoryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QueryHistory.user_id"`)}
	}
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "QueryHistory.conversation_id"`)}
	}
	if _, ok := _c.mutation.SQLQuery(); !ok {
		return &ValidationError{Name: "sql_query", err: errors.New(`ent: missing required field "QueryHistory.sql_query"`)}
	}
	if _, ok := _c.mutation.RowCount(); !ok {
		return &ValidationError{Name: "row_count", err: errors.New(`ent: missing required field "QueryHistory.row_count"`)}
	}
	if _, ok := _c.mutation.ExecutionTimeMs(); !ok {
		return &ValidationError{Name: "execution_time_ms", err: errors.New(`ent: missing required field "QueryHistory.execution_time_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QueryHistory.created_at"`)}
	}
	return nil
}

func (_c *QueryHistoryCreate) sqlSave(ctx context.Context) (*QueryHistory, error) {
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
			return nil, fmt.Errorf("unexpected QueryHistory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueryHistoryCreate) createSpec() (*QueryHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &QueryHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queryhistory.Table, sqlgraph.NewFieldSpec(queryhistory.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(queryhistory.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(queryhistory.FieldConversationID, field.TypeString, value)
		_node.ConversationID = value
	}
	if value, ok := _c.mutation.SQLQuery(); ok {
		_spec.SetField(queryhistory.FieldSQLQuery, field.TypeString, value)
		_node.SQLQuery = value
	}
	if value, ok := _c.mutation.RowCount(); ok {
		_spec.SetField(queryhistory.FieldRowCount, field.TypeInt64, value)
		_node.RowCount = value
	}
	if value, ok := _c.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(queryhistory.FieldExecutionTimeMs, field.TypeInt64, value)
		_node.ExecutionTimeMs = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(queryhistory.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(queryhistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueryHistory.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueryHistoryUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *QueryHistoryCreate) OnConflict(opts ...sql.ConflictOption) *QueryHistoryUpsertOne {
	_c.conflict = opts
	return &QueryHistoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueryHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueryHistoryCreate) OnConflictColumns(columns ...string) *QueryHistoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueryHistoryUpsertOne{
		create: _c,
	}
}

type (
	// QueryHistoryUpsertOne is the builder for "upsert"-ing
	//  one QueryHistory node.
	QueryHistoryUpsertOne struct {
		create *QueryHistoryCreate
	}

	// QueryHistoryUpsert is the "OnConflict" setter.
	QueryHistoryUpsert struct {
		*sql.UpdateSet
	}
)

// SetRowCount sets the "row_count" field.
func (u *QueryHistoryUpsert) SetRowCount(v int64) *QueryHistoryUpsert {
	u.Set(queryhistory.FieldRowCount, v)
	return u
}

// UpdateRowCount sets the "row_count" field to the value that was provided on create.
func (u *QueryHistoryUpsert) UpdateRowCount() *QueryHistoryUpsert {
	u.SetExcluded(queryhistory.FieldRowCount)
	return u
}

// AddRowCount adds v to the "row_count" field.
func (u *QueryHistoryUpsert) AddRowCount(v int64) *QueryHistoryUpsert {
	u.Add(queryhistory.FieldRowCount, v)
	return u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (u *QueryHistoryUpsert) SetExecutionTimeMs(v int64) *QueryHistoryUpsert {
	u.Set(queryhistory.FieldExecutionTimeMs, v)
	return u
}

// UpdateExecutionTimeMs sets the "execution_time_ms" field to the value that was provided on create.
func (u *QueryHistoryUpsert) UpdateExecutionTimeMs() *QueryHistoryUpsert {
	u.SetExcluded(queryhistory.FieldExecutionTimeMs)
	return u
}

// AddExecutionTimeMs adds v to the "execution_time_ms" field.
func (u *QueryHistoryUpsert) AddExecutionTimeMs(v int64) *QueryHistoryUpsert {
	u.Add(queryhistory.FieldExecutionTimeMs, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *QueryHistoryUpsert) SetErrorMessage(v string) *QueryHistoryUpsert {
	u.Set(queryhistory.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *QueryHistoryUpsert) UpdateErrorMessage() *QueryHistoryUpsert {
	u.SetExcluded(queryhistory.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *QueryHistoryUpsert) ClearErrorMessage() *QueryHistoryUpsert {
	u.SetNull(queryhistory.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QueryHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queryhistory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueryHistoryUpsertOne) UpdateNewValues() *QueryHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(queryhistory.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(queryhistory.FieldUserID)
		}
		if _, exists := u.create.mutation.ConversationID(); exists {
			s.SetIgnore(queryhistory.FieldConversationID)
		}
		if _, exists := u.create.mutation.SQLQuery(); exists {
			s.SetIgnore(queryhistory.FieldSQLQuery)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(queryhistory.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueryHistory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QueryHistoryUpsertOne) Ignore() *QueryHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueryHistoryUpsertOne) DoNothing() *QueryHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueryHistoryCreate.OnConflict
// documentation for more info.
func (u *QueryHistoryUpsertOne) Update(set func(*QueryHistoryUpsert)) *QueryHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueryHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetRowCount sets the "row_count" field.
func (u *QueryHistoryUpsertOne) SetRowCount(v int64) *QueryHistoryUpsertOne {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.SetRowCount(v)
	})
}

// AddRowCount adds v to the "row_count" field.
func (u *QueryHistoryUpsertOne) AddRowCount(v int64) *QueryHistoryUpsertOne {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.AddRowCount(v)
	})
}

// UpdateRowCount sets the "row_count" field to the value that was provided on create.
func (u *QueryHistoryUpsertOne) UpdateRowCount() *QueryHistoryUpsertOne {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.UpdateRowCount()
	})
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (u *QueryHistoryUpsertOne) SetExecutionTimeMs(v int64) *QueryHistoryUpsertOne {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.SetExecutionTimeMs(v)
	})
}

// AddExecutionTimeMs adds v to the "execution_time_ms" field.
func (u *QueryHistoryUpsertOne) AddExecutionTimeMs(v int64) *QueryHistoryUpsertOne {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.AddExecutionTimeMs(v)
	})
}

// UpdateExecutionTimeMs sets the "execution_time_ms" field to the value that was provided on create.
func (u *QueryHistoryUpsertOne) UpdateExecutionTimeMs() *QueryHistoryUpsertOne {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.UpdateExecutionTimeMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *QueryHistoryUpsertOne) SetErrorMessage(v string) *QueryHistoryUpsertOne {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *QueryHistoryUpsertOne) UpdateErrorMessage() *QueryHistoryUpsertOne {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *QueryHistoryUpsertOne) ClearErrorMessage() *QueryHistoryUpsertOne {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *QueryHistoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueryHistoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueryHistoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QueryHistoryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QueryHistoryUpsertOne.ID is not supported by MySQL driver. Use QueryHistoryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QueryHistoryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QueryHistoryCreateBulk is the builder for creating many QueryHistory entities in bulk.
type QueryHistoryCreateBulk struct {
	config
	err      error
	builders []*QueryHistoryCreate
	conflict []sql.ConflictOption
}

// Save creates the QueryHistory entities in the database.
func (_c *QueryHistoryCreateBulk) Save(ctx context.Context) ([]*QueryHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueryHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueryHistoryMutation)
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
func (_c *QueryHistoryCreateBulk) SaveX(ctx context.Context) []*QueryHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueryHistory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueryHistoryUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *QueryHistoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *QueryHistoryUpsertBulk {
	_c.conflict = opts
	return &QueryHistoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueryHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueryHistoryCreateBulk) OnConflictColumns(columns ...string) *QueryHistoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueryHistoryUpsertBulk{
		create: _c,
	}
}

// QueryHistoryUpsertBulk is the builder for "upsert"-ing
// a bulk of QueryHistory nodes.
type QueryHistoryUpsertBulk struct {
	create *QueryHistoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QueryHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queryhistory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueryHistoryUpsertBulk) UpdateNewValues() *QueryHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(queryhistory.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(queryhistory.FieldUserID)
			}
			if _, exists := b.mutation.ConversationID(); exists {
				s.SetIgnore(queryhistory.FieldConversationID)
			}
			if _, exists := b.mutation.SQLQuery(); exists {
				s.SetIgnore(queryhistory.FieldSQLQuery)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(queryhistory.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueryHistory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QueryHistoryUpsertBulk) Ignore() *QueryHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueryHistoryUpsertBulk) DoNothing() *QueryHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueryHistoryCreateBulk.OnConflict
// documentation for more info.
func (u *QueryHistoryUpsertBulk) Update(set func(*QueryHistoryUpsert)) *QueryHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueryHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetRowCount sets the "row_count" field.
func (u *QueryHistoryUpsertBulk) SetRowCount(v int64) *QueryHistoryUpsertBulk {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.SetRowCount(v)
	})
}

// AddRowCount adds v to the "row_count" field.
func (u *QueryHistoryUpsertBulk) AddRowCount(v int64) *QueryHistoryUpsertBulk {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.AddRowCount(v)
	})
}

// UpdateRowCount sets the "row_count" field to the value that was provided on create.
func (u *QueryHistoryUpsertBulk) UpdateRowCount() *QueryHistoryUpsertBulk {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.UpdateRowCount()
	})
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (u *QueryHistoryUpsertBulk) SetExecutionTimeMs(v int64) *QueryHistoryUpsertBulk {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.SetExecutionTimeMs(v)
	})
}

// AddExecutionTimeMs adds v to the "execution_time_ms" field.
func (u *QueryHistoryUpsertBulk) AddExecutionTimeMs(v int64) *QueryHistoryUpsertBulk {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.AddExecutionTimeMs(v)
	})
}

// UpdateExecutionTimeMs sets the "execution_time_ms" field to the value that was provided on create.
func (u *QueryHistoryUpsertBulk) UpdateExecutionTimeMs() *QueryHistoryUpsertBulk {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.UpdateExecutionTimeMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *QueryHistoryUpsertBulk) SetErrorMessage(v string) *QueryHistoryUpsertBulk {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *QueryHistoryUpsertBulk) UpdateErrorMessage() *QueryHistoryUpsertBulk {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *QueryHistoryUpsertBulk) ClearErrorMessage() *QueryHistoryUpsertBulk {
	return u.Update(func(s *QueryHistoryUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *QueryHistoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QueryHistoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueryHistoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueryHistoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
