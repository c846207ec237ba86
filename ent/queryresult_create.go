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
	"github.com/chatdf/chatdf/ent/queryresult"
)

// QueryResultCreate is the builder for creating a QueryResult entity.
type QueryResultCreate struct {
	config
	mutation *QueryResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSQLQuery sets the "sql_query" field.
func (_c *QueryResultCreate) SetSQLQuery(v string) *QueryResultCreate {
	_c.mutation.SetSQLQuery(v)
	return _c
}

// SetDatasetUrls sets the "dataset_urls" field.
func (_c *QueryResultCreate) SetDatasetUrls(v string) *QueryResultCreate {
	_c.mutation.SetDatasetUrls(v)
	return _c
}

// SetResultJSON sets the "result_json" field.
func (_c *QueryResultCreate) SetResultJSON(v string) *QueryResultCreate {
	_c.mutation.SetResultJSON(v)
	return _c
}

// SetRowCount sets the "row_count" field.
func (_c *QueryResultCreate) SetRowCount(v int) *QueryResultCreate {
	_c.mutation.SetRowCount(v)
	return _c
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_c *QueryResultCreate) SetNillableRowCount(v *int) *QueryResultCreate {
	if v != nil {
		_c.SetRowCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QueryResultCreate) SetCreatedAt(v time.Time) *QueryResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QueryResultCreate) SetNillableCreatedAt(v *time.Time) *QueryResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *QueryResultCreate) SetExpiresAt(v time.Time) *QueryResultCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *QueryResultCreate) SetID(v string) *QueryResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueryResultMutation object of the builder.
func (_c *QueryResultCreate) Mutation() *QueryResultMutation {
	return _c.mutation
}

// Save creates the QueryResult in the database.
func (_c *QueryResultCreate) Save(ctx context.Context) (*QueryResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueryResultCreate) SaveX(ctx context.Context) *QueryResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueryResultCreate) defaults() {
	if _, ok := _c.mutation.RowCount(); !ok {
		v := queryresult.DefaultRowCount
		_c.mutation.SetRowCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := queryresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueryResultCreate) check() error {
	if _, ok := _c.mutation.SQLQuery(); !ok {
		return &ValidationError{Name: "sql_query", err: errors.New(`ent: missing required field "QueryResult.sql_query"`)}
	}
	if _, ok := _c.mutation.DatasetUrls(); !ok {
		return &ValidationError{Name: "dataset_urls", err: errors.New(`ent: missing required field "QueryResult.dataset_urls"`)}
	}
	if _, ok := _c.mutation.ResultJSON(); !ok {
		return &ValidationError{Name: "result_json", err: errors.New(`ent: missing required field "QueryResult.result_json"`)}
	}
	if _, ok := _c.mutation.RowCount(); !ok {
		return &ValidationError{Name: "row_count", err: errors.New(`ent: missing required field "QueryResult.row_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QueryResult.created_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "QueryResult.expires_at"`)}
	}
	return nil
}

func (_c *QueryResultCreate) sqlSave(ctx context.Context) (*QueryResult, error) {
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
			return nil, fmt.Errorf("unexpected QueryResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueryResultCreate) createSpec() (*QueryResult, *sqlgraph.CreateSpec) {
	var (
		_node = &QueryResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queryresult.Table, sqlgraph.NewFieldSpec(queryresult.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SQLQuery(); ok {
		_spec.SetField(queryresult.FieldSQLQuery, field.TypeString, value)
		_node.SQLQuery = value
	}
	if value, ok := _c.mutation.DatasetUrls(); ok {
		_spec.SetField(queryresult.FieldDatasetUrls, field.TypeString, value)
		_node.DatasetUrls = value
	}
	if value, ok := _c.mutation.ResultJSON(); ok {
		_spec.SetField(queryresult.FieldResultJSON, field.TypeString, value)
		_node.ResultJSON = value
	}
	if value, ok := _c.mutation.RowCount(); ok {
		_spec.SetField(queryresult.FieldRowCount, field.TypeInt, value)
		_node.RowCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(queryresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(queryresult.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueryResult.Create().
//		SetSQLQuery(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueryResultUpsert) {
//			SetSQLQuery(v+v).
//		}).
//		Exec(ctx)
func (_c *QueryResultCreate) OnConflict(opts ...sql.ConflictOption) *QueryResultUpsertOne {
	_c.conflict = opts
	return &QueryResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueryResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueryResultCreate) OnConflictColumns(columns ...string) *QueryResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueryResultUpsertOne{
		create: _c,
	}
}

type (
	// QueryResultUpsertOne is the builder for "upsert"-ing
	//  one QueryResult node.
	QueryResultUpsertOne struct {
		create *QueryResultCreate
	}

	// QueryResultUpsert is the "OnConflict" setter.
	QueryResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetSQLQuery sets the "sql_query" field.
func (u *QueryResultUpsert) SetSQLQuery(v string) *QueryResultUpsert {
	u.Set(queryresult.FieldSQLQuery, v)
	return u
}

// UpdateSQLQuery sets the "sql_query" field to the value that was provided on create.
func (u *QueryResultUpsert) UpdateSQLQuery() *QueryResultUpsert {
	u.SetExcluded(queryresult.FieldSQLQuery)
	return u
}

// SetDatasetUrls sets the "dataset_urls" field.
func (u *QueryResultUpsert) SetDatasetUrls(v string) *QueryResultUpsert {
	u.Set(queryresult.FieldDatasetUrls, v)
	return u
}

// UpdateDatasetUrls sets the "dataset_urls" field to the value that was provided on create.
func (u *QueryResultUpsert) UpdateDatasetUrls() *QueryResultUpsert {
	u.SetExcluded(queryresult.FieldDatasetUrls)
	return u
}

// SetResultJSON sets the "result_json" field.
func (u *QueryResultUpsert) SetResultJSON(v string) *QueryResultUpsert {
	u.Set(queryresult.FieldResultJSON, v)
	return u
}

// UpdateResultJSON sets the "result_json" field to the value that was provided on create.
func (u *QueryResultUpsert) UpdateResultJSON() *QueryResultUpsert {
	u.SetExcluded(queryresult.FieldResultJSON)
	return u
}

// SetRowCount sets the "row_count" field.
func (u *QueryResultUpsert) SetRowCount(v int) *QueryResultUpsert {
	u.Set(queryresult.FieldRowCount, v)
	return u
}

// UpdateRowCount sets the "row_count" field to the value that was provided on create.
func (u *QueryResultUpsert) UpdateRowCount() *QueryResultUpsert {
	u.SetExcluded(queryresult.FieldRowCount)
	return u
}

// AddRowCount adds v to the "row_count" field.
func (u *QueryResultUpsert) AddRowCount(v int) *QueryResultUpsert {
	u.Add(queryresult.FieldRowCount, v)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *QueryResultUpsert) SetCreatedAt(v time.Time) *QueryResultUpsert {
	u.Set(queryresult.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *QueryResultUpsert) UpdateCreatedAt() *QueryResultUpsert {
	u.SetExcluded(queryresult.FieldCreatedAt)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *QueryResultUpsert) SetExpiresAt(v time.Time) *QueryResultUpsert {
	u.Set(queryresult.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *QueryResultUpsert) UpdateExpiresAt() *QueryResultUpsert {
	u.SetExcluded(queryresult.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QueryResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queryresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueryResultUpsertOne) UpdateNewValues() *QueryResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(queryresult.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueryResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QueryResultUpsertOne) Ignore() *QueryResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueryResultUpsertOne) DoNothing() *QueryResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueryResultCreate.OnConflict
// documentation for more info.
func (u *QueryResultUpsertOne) Update(set func(*QueryResultUpsert)) *QueryResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueryResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetSQLQuery sets the "sql_query" field.
func (u *QueryResultUpsertOne) SetSQLQuery(v string) *QueryResultUpsertOne {
	return u.Update(func(s *QueryResultUpsert) {
		s.SetSQLQuery(v)
	})
}

// UpdateSQLQuery sets the "sql_query" field to the value that was provided on create.
func (u *QueryResultUpsertOne) UpdateSQLQuery() *QueryResultUpsertOne {
	return u.Update(func(s *QueryResultUpsert) {
		s.UpdateSQLQuery()
	})
}

// SetDatasetUrls sets the "dataset_urls" field.
func (u *QueryResultUpsertOne) SetDatasetUrls(v string) *QueryResultUpsertOne {
	return u.Update(func(s *QueryResultUpsert) {
		s.SetDatasetUrls(v)
	})
}

// UpdateDatasetUrls sets the "dataset_urls" field to the value that was provided on create.
func (u *QueryResultUpsertOne) UpdateDatasetUrls() *QueryResultUpsertOne {
	return u.Update(func(s *QueryResultUpsert) {
		s.UpdateDatasetUrls()
	})
}

// SetResultJSON sets the "result_json" field.
func (u *QueryResultUpsertOne) SetResultJSON(v string) *QueryResultUpsertOne {
	return u.Update(func(s *QueryResultUpsert) {
		s.SetResultJSON(v)
	})
}

// UpdateResultJSON sets the "result_json" field to the value that was provided on create.
func (u *QueryResultUpsertOne) UpdateResultJSON() *QueryResultUpsertOne {
	return u.Update(func(s *QueryResultUpsert) {
		s.UpdateResultJSON()
	})
}

// SetRowCount sets the "row_count" field.
func (u *QueryResultUpsertOne) SetRowCount(v int) *QueryResultUpsertOne {
	return u.Update(func(s *QueryResultUpsert) {
		s.SetRowCount(v)
	})
}

// AddRowCount adds v to the "row_count" field.
func (u *QueryResultUpsertOne) AddRowCount(v int) *QueryResultUpsertOne {
	return u.Update(func(s *QueryResultUpsert) {
		s.AddRowCount(v)
	})
}

// UpdateRowCount sets the "row_count" field to the value that was provided on create.
func (u *QueryResultUpsertOne) UpdateRowCount() *QueryResultUpsertOne {
	return u.Update(func(s *QueryResultUpsert) {
		s.UpdateRowCount()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *QueryResultUpsertOne) SetCreatedAt(v time.Time) *QueryResultUpsertOne {
	return u.Update(func(s *QueryResultUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *QueryResultUpsertOne) UpdateCreatedAt() *QueryResultUpsertOne {
	return u.Update(func(s *QueryResultUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *QueryResultUpsertOne) SetExpiresAt(v time.Time) *QueryResultUpsertOne {
	return u.Update(func(s *QueryResultUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *QueryResultUpsertOne) UpdateExpiresAt() *QueryResultUpsertOne {
	return u.Update(func(s *QueryResultUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *QueryResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueryResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueryResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QueryResultUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QueryResultUpsertOne.ID is not supported by MySQL driver. Use QueryResultUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QueryResultUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QueryResultCreateBulk is the builder for creating many QueryResult entities in bulk.
type QueryResultCreateBulk struct {
	config
	err      error
	builders []*QueryResultCreate
	conflict []sql.ConflictOption
}

// Save creates the QueryResult entities in the database.
func (_c *QueryResultCreateBulk) Save(ctx context.Context) ([]*QueryResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueryResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueryResultMutation)
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
func (_c *QueryResultCreateBulk) SaveX(ctx context.Context) []*QueryResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueryResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueryResultUpsert) {
//			SetSQLQuery(v+v).
//		}).
//		Exec(ctx)
func (_c *QueryResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *QueryResultUpsertBulk {
	_c.conflict = opts
	return &QueryResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueryResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueryResultCreateBulk) OnConflictColumns(columns ...string) *QueryResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueryResultUpsertBulk{
		create: _c,
	}
}

// QueryResultUpsertBulk is the builder for "upsert"-ing
// a bulk of QueryResult nodes.
type QueryResultUpsertBulk struct {
	create *QueryResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QueryResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queryresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueryResultUpsertBulk) UpdateNewValues() *QueryResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(queryresult.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueryResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QueryResultUpsertBulk) Ignore() *QueryResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueryResultUpsertBulk) DoNothing() *QueryResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueryResultCreateBulk.OnConflict
// documentation for more info.
func (u *QueryResultUpsertBulk) Update(set func(*QueryResultUpsert)) *QueryResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueryResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetSQLQuery sets the "sql_query" field.
func (u *QueryResultUpsertBulk) SetSQLQuery(v string) *QueryResultUpsertBulk {
	return u.Update(func(s *QueryResultUpsert) {
		s.SetSQLQuery(v)
	})
}

// UpdateSQLQuery sets the "sql_query" field to the value that was provided on create.
func (u *QueryResultUpsertBulk) UpdateSQLQuery() *QueryResultUpsertBulk {
	return u.Update(func(s *QueryResultUpsert) {
		s.UpdateSQLQuery()
	})
}

// SetDatasetUrls sets the "dataset_urls" field.
func (u *QueryResultUpsertBulk) SetDatasetUrls(v string) *QueryResultUpsertBulk {
	return u.Update(func(s *QueryResultUpsert) {
		s.SetDatasetUrls(v)
	})
}

// UpdateDatasetUrls sets the "dataset_urls" field to the value that was provided on create.
func (u *QueryResultUpsertBulk) UpdateDatasetUrls() *QueryResultUpsertBulk {
	return u.Update(func(s *QueryResultUpsert) {
		s.UpdateDatasetUrls()
	})
}

// SetResultJSON sets the "result_json" field.
func (u *QueryResultUpsertBulk) SetResultJSON(v string) *QueryResultUpsertBulk {
	return u.Update(func(s *QueryResultUpsert) {
		s.SetResultJSON(v)
	})
}

// UpdateResultJSON sets the "result_json" field to the value that was provided on create.
func (u *QueryResultUpsertBulk) UpdateResultJSON() *QueryResultUpsertBulk {
	return u.Update(func(s *QueryResultUpsert) {
		s.UpdateResultJSON()
	})
}

// SetRowCount sets the "row_count" field.
func (u *QueryResultUpsertBulk) SetRowCount(v int) *QueryResultUpsertBulk {
	return u.Update(func(s *QueryResultUpsert) {
		s.SetRowCount(v)
	})
}

// AddRowCount adds v to the "row_count" field.
func (u *QueryResultUpsertBulk) AddRowCount(v int) *QueryResultUpsertBulk {
	return u.Update(func(s *QueryResultUpsert) {
		s.AddRowCount(v)
	})
}

// UpdateRowCount sets the "row_count" field to the value that was provided on create.
func (u *QueryResultUpsertBulk) UpdateRowCount() *QueryResultUpsertBulk {
	return u.Update(func(s *QueryResultUpsert) {
		s.UpdateRowCount()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *QueryResultUpsertBulk) SetCreatedAt(v time.Time) *QueryResultUpsertBulk {
	return u.Update(func(s *QueryResultUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *QueryResultUpsertBulk) UpdateCreatedAt() *QueryResultUpsertBulk {
	return u.Update(func(s *QueryResultUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *QueryResultUpsertBulk) SetExpiresAt(v time.Time) *QueryResultUpsertBulk {
	return u.Update(func(s *QueryResultUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *QueryResultUpsertBulk) UpdateExpiresAt() *QueryResultUpsertBulk {
	return u.Update(func(s *QueryResultUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *QueryResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QueryResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueryResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueryResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
