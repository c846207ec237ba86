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
	"github.com/chatdf/chatdf/ent/predicate"
	"github.com/chatdf/chatdf/ent/queryresult"
)

// QueryResultUpdate is the builder for updating QueryResult entities.
type QueryResultUpdate struct {
	config
	hooks    []Hook
	mutation *QueryResultMutation
}

// Where appends a list predicates to the QueryResultUpdate builder.
func (_u *QueryResultUpdate) Where(ps ...predicate.QueryResult) *QueryResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSQLQuery sets the "sql_query" field.
func (_u *QueryResultUpdate) SetSQLQuery(v string) *QueryResultUpdate {
	_u.mutation.SetSQLQuery(v)
	return _u
}

// SetNillableSQLQuery sets the "sql_query" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableSQLQuery(v *string) *QueryResultUpdate {
	if v != nil {
		_u.SetSQLQuery(*v)
	}
	return _u
}

// SetDatasetUrls sets the "dataset_urls" field.
func (_u *QueryResultUpdate) SetDatasetUrls(v string) *QueryResultUpdate {
	_u.mutation.SetDatasetUrls(v)
	return _u
}

// SetNillableDatasetUrls sets the "dataset_urls" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableDatasetUrls(v *string) *QueryResultUpdate {
	if v != nil {
		_u.SetDatasetUrls(*v)
	}
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *QueryResultUpdate) SetResultJSON(v string) *QueryResultUpdate {
	_u.mutation.SetResultJSON(v)
	return _u
}

// SetNillableResultJSON sets the "result_json" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableResultJSON(v *string) *QueryResultUpdate {
	if v != nil {
		_u.SetResultJSON(*v)
	}
	return _u
}

// SetRowCount sets the "row_count" field.
func (_u *QueryResultUpdate) SetRowCount(v int) *QueryResultUpdate {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableRowCount(v *int) *QueryResultUpdate {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *QueryResultUpdate) AddRowCount(v int) *QueryResultUpdate {
	_u.mutation.AddRowCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QueryResultUpdate) SetCreatedAt(v time.Time) *QueryResultUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableCreatedAt(v *time.Time) *QueryResultUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *QueryResultUpdate) SetExpiresAt(v time.Time) *QueryResultUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *QueryResultUpdate) SetNillableExpiresAt(v *time.Time) *QueryResultUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the QueryResultMutation object of the builder.
func (_u *QueryResultUpdate) Mutation() *QueryResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueryResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueryResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QueryResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(queryresult.Table, queryresult.Columns, sqlgraph.NewFieldSpec(queryresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SQLQuery(); ok {
		_spec.SetField(queryresult.FieldSQLQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.DatasetUrls(); ok {
		_spec.SetField(queryresult.FieldDatasetUrls, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(queryresult.FieldResultJSON, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(queryresult.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(queryresult.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(queryresult.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(queryresult.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queryresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueryResultUpdateOne is the builder for updating a single QueryResult entity.
type QueryResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueryResultMutation
}

// SetSQLQuery sets the "sql_query" field.
func (_u *QueryResultUpdateOne) SetSQLQuery(v string) *QueryResultUpdateOne {
	_u.mutation.SetSQLQuery(v)
	return _u
}

// SetNillableSQLQuery sets the "sql_query" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableSQLQuery(v *string) *QueryResultUpdateOne {
	if v != nil {
		_u.SetSQLQuery(*v)
	}
	return _u
}

// SetDatasetUrls sets the "dataset_urls" field.
func (_u *QueryResultUpdateOne) SetDatasetUrls(v string) *QueryResultUpdateOne {
	_u.mutation.SetDatasetUrls(v)
	return _u
}

// SetNillableDatasetUrls sets the "dataset_urls" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableDatasetUrls(v *string) *QueryResultUpdateOne {
	if v != nil {
		_u.SetDatasetUrls(*v)
	}
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *QueryResultUpdateOne) SetResultJSON(v string) *QueryResultUpdateOne {
	_u.mutation.SetResultJSON(v)
	return _u
}

// SetNillableResultJSON sets the "result_json" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableResultJSON(v *string) *QueryResultUpdateOne {
	if v != nil {
		_u.SetResultJSON(*v)
	}
	return _u
}

// SetRowCount sets the "row_count" field.
func (_u *QueryResultUpdateOne) SetRowCount(v int) *QueryResultUpdateOne {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableRowCount(v *int) *QueryResultUpdateOne {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *QueryResultUpdateOne) AddRowCount(v int) *QueryResultUpdateOne {
	_u.mutation.AddRowCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QueryResultUpdateOne) SetCreatedAt(v time.Time) *QueryResultUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableCreatedAt(v *time.Time) *QueryResultUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *QueryResultUpdateOne) SetExpiresAt(v time.Time) *QueryResultUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *QueryResultUpdateOne) SetNillableExpiresAt(v *time.Time) *QueryResultUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the QueryResultMutation object of the builder.
func (_u *QueryResultUpdateOne) Mutation() *QueryResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueryResultUpdate builder.
func (_u *QueryResultUpdateOne) Where(ps ...predicate.QueryResult) *QueryResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueryResultUpdateOne) Select(field string, fields ...string) *QueryResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueryResult entity.
func (_u *QueryResultUpdateOne) Save(ctx context.Context) (*QueryResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryResultUpdateOne) SaveX(ctx context.Context) *QueryResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueryResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QueryResultUpdateOne) sqlSave(ctx context.Context) (_node *QueryResult, err error) {
	_spec := sqlgraph.NewUpdateSpec(queryresult.Table, queryresult.Columns, sqlgraph.NewFieldSpec(queryresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueryResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queryresult.FieldID)
		for _, f := range fields {
			if !queryresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queryresult.FieldID {
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
	if value, ok := _u.mutation.SQLQuery(); ok {
		_spec.SetField(queryresult.FieldSQLQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.DatasetUrls(); ok {
		_spec.SetField(queryresult.FieldDatasetUrls, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(queryresult.FieldResultJSON, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(queryresult.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(queryresult.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(queryresult.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(queryresult.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &QueryResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queryresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
