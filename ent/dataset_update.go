// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/chatdf/chatdf/ent/dataset"
	"github.com/chatdf/chatdf/ent/predicate"
)

// DatasetUpdate is the builder for updating Dataset entities.
type DatasetUpdate struct {
	config
	hooks    []Hook
	mutation *DatasetMutation
}

// Where appends a list predicates to the DatasetUpdate builder.
func (_u *DatasetUpdate) Where(ps ...predicate.Dataset) *DatasetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *DatasetUpdate) SetURL(v string) *DatasetUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableURL(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTableName sets the "table_name" field.
func (_u *DatasetUpdate) SetTableName(v string) *DatasetUpdate {
	_u.mutation.SetTableName(v)
	return _u
}

// SetNillableTableName sets the "table_name" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableTableName(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetTableName(*v)
	}
	return _u
}

// SetRowCount sets the "row_count" field.
func (_u *DatasetUpdate) SetRowCount(v int64) *DatasetUpdate {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableRowCount(v *int64) *DatasetUpdate {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *DatasetUpdate) AddRowCount(v int64) *DatasetUpdate {
	_u.mutation.AddRowCount(v)
	return _u
}

// SetColumnCount sets the "column_count" field.
func (_u *DatasetUpdate) SetColumnCount(v int) *DatasetUpdate {
	_u.mutation.ResetColumnCount()
	_u.mutation.SetColumnCount(v)
	return _u
}

// SetNillableColumnCount sets the "column_count" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableColumnCount(v *int) *DatasetUpdate {
	if v != nil {
		_u.SetColumnCount(*v)
	}
	return _u
}

// AddColumnCount adds value to the "column_count" field.
func (_u *DatasetUpdate) AddColumnCount(v int) *DatasetUpdate {
	_u.mutation.AddColumnCount(v)
	return _u
}

// SetSchema sets the "schema" field.
func (_u *DatasetUpdate) SetSchema(v []map[string]interface{}) *DatasetUpdate {
	_u.mutation.SetSchema(v)
	return _u
}

// AppendSchema appends value to the "schema" field.
func (_u *DatasetUpdate) AppendSchema(v []map[string]interface{}) *DatasetUpdate {
	_u.mutation.AppendSchema(v)
	return _u
}

// ClearSchema clears the value of the "schema" field.
func (_u *DatasetUpdate) ClearSchema() *DatasetUpdate {
	_u.mutation.ClearSchema()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DatasetUpdate) SetStatus(v dataset.Status) *DatasetUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableStatus(v *dataset.Status) *DatasetUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DatasetUpdate) SetErrorMessage(v string) *DatasetUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableErrorMessage(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DatasetUpdate) ClearErrorMessage() *DatasetUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLoadedAt sets the "loaded_at" field.
func (_u *DatasetUpdate) SetLoadedAt(v time.Time) *DatasetUpdate {
	_u.mutation.SetLoadedAt(v)
	return _u
}

// SetNillableLoadedAt sets the "loaded_at" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableLoadedAt(v *time.Time) *DatasetUpdate {
	if v != nil {
		_u.SetLoadedAt(*v)
	}
	return _u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_u *DatasetUpdate) SetFileSizeBytes(v int64) *DatasetUpdate {
	_u.mutation.ResetFileSizeBytes()
	_u.mutation.SetFileSizeBytes(v)
	return _u
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableFileSizeBytes(v *int64) *DatasetUpdate {
	if v != nil {
		_u.SetFileSizeBytes(*v)
	}
	return _u
}

// AddFileSizeBytes adds value to the "file_size_bytes" field.
func (_u *DatasetUpdate) AddFileSizeBytes(v int64) *DatasetUpdate {
	_u.mutation.AddFileSizeBytes(v)
	return _u
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (_u *DatasetUpdate) ClearFileSizeBytes() *DatasetUpdate {
	_u.mutation.ClearFileSizeBytes()
	return _u
}

// SetColumnDescriptions sets the "column_descriptions" field.
func (_u *DatasetUpdate) SetColumnDescriptions(v map[string]string) *DatasetUpdate {
	_u.mutation.SetColumnDescriptions(v)
	return _u
}

// ClearColumnDescriptions clears the value of the "column_descriptions" field.
func (_u *DatasetUpdate) ClearColumnDescriptions() *DatasetUpdate {
	_u.mutation.ClearColumnDescriptions()
	return _u
}

// Mutation returns the DatasetMutation object of the builder.
func (_u *DatasetUpdate) Mutation() *DatasetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DatasetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DatasetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasetUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := dataset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Dataset.status": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Dataset.conversation"`)
	}
	return nil
}

func (_u *DatasetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataset.Table, dataset.Columns, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(dataset.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.TableName(); ok {
		_spec.SetField(dataset.FieldTableName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(dataset.FieldRowCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(dataset.FieldRowCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ColumnCount(); ok {
		_spec.SetField(dataset.FieldColumnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedColumnCount(); ok {
		_spec.AddField(dataset.FieldColumnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Schema(); ok {
		_spec.SetField(dataset.FieldSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchema(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dataset.FieldSchema, value)
		})
	}
	if _u.mutation.SchemaCleared() {
		_spec.ClearField(dataset.FieldSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dataset.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(dataset.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(dataset.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LoadedAt(); ok {
		_spec.SetField(dataset.FieldLoadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FileSizeBytes(); ok {
		_spec.SetField(dataset.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(dataset.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeBytesCleared() {
		_spec.ClearField(dataset.FieldFileSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.ColumnDescriptions(); ok {
		_spec.SetField(dataset.FieldColumnDescriptions, field.TypeJSON, value)
	}
	if _u.mutation.ColumnDescriptionsCleared() {
		_spec.ClearField(dataset.FieldColumnDescriptions, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DatasetUpdateOne is the builder for updating a single Dataset entity.
type DatasetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DatasetMutation
}

// SetURL sets the "url" field.
func (_u *DatasetUpdateOne) SetURL(v string) *DatasetUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableURL(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTableName sets the "table_name" field.
func (_u *DatasetUpdateOne) SetTableName(v string) *DatasetUpdateOne {
	_u.mutation.SetTableName(v)
	return _u
}

// SetNillableTableName sets the "table_name" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableTableName(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetTableName(*v)
	}
	return _u
}

// SetRowCount sets the "row_count" field.
func (_u *DatasetUpdateOne) SetRowCount(v int64) *DatasetUpdateOne {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableRowCount(v *int64) *DatasetUpdateOne {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *DatasetUpdateOne) AddRowCount(v int64) *DatasetUpdateOne {
	_u.mutation.AddRowCount(v)
	return _u
}

// SetColumnCount sets the "column_count" field.
func (_u *DatasetUpdateOne) SetColumnCount(v int) *DatasetUpdateOne {
	_u.mutation.ResetColumnCount()
	_u.mutation.SetColumnCount(v)
	return _u
}

// SetNillableColumnCount sets the "column_count" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableColumnCount(v *int) *DatasetUpdateOne {
	if v != nil {
		_u.SetColumnCount(*v)
	}
	return _u
}

// AddColumnCount adds value to the "column_count" field.
func (_u *DatasetUpdateOne) AddColumnCount(v int) *DatasetUpdateOne {
	_u.mutation.AddColumnCount(v)
	return _u
}

// SetSchema sets the "schema" field.
func (_u *DatasetUpdateOne) SetSchema(v []map[string]interface{}) *DatasetUpdateOne {
	_u.mutation.SetSchema(v)
	return _u
}

// AppendSchema appends value to the "schema" field.
func (_u *DatasetUpdateOne) AppendSchema(v []map[string]interface{}) *DatasetUpdateOne {
	_u.mutation.AppendSchema(v)
	return _u
}

// ClearSchema clears the value of the "schema" field.
func (_u *DatasetUpdateOne) ClearSchema() *DatasetUpdateOne {
	_u.mutation.ClearSchema()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DatasetUpdateOne) SetStatus(v dataset.Status) *DatasetUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableStatus(v *dataset.Status) *DatasetUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DatasetUpdateOne) SetErrorMessage(v string) *DatasetUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableErrorMessage(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DatasetUpdateOne) ClearErrorMessage() *DatasetUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLoadedAt sets the "loaded_at" field.
func (_u *DatasetUpdateOne) SetLoadedAt(v time.Time) *DatasetUpdateOne {
	_u.mutation.SetLoadedAt(v)
	return _u
}

// SetNillableLoadedAt sets the "loaded_at" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableLoadedAt(v *time.Time) *DatasetUpdateOne {
	if v != nil {
		_u.SetLoadedAt(*v)
	}
	return _u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_u *DatasetUpdateOne) SetFileSizeBytes(v int64) *DatasetUpdateOne {
	_u.mutation.ResetFileSizeBytes()
	_u.mutation.SetFileSizeBytes(v)
	return _u
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableFileSizeBytes(v *int64) *DatasetUpdateOne {
	if v != nil {
		_u.SetFileSizeBytes(*v)
	}
	return _u
}

// AddFileSizeBytes adds value to the "file_size_bytes" field.
func (_u *DatasetUpdateOne) AddFileSizeBytes(v int64) *DatasetUpdateOne {
	_u.mutation.AddFileSizeBytes(v)
	return _u
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (_u *DatasetUpdateOne) ClearFileSizeBytes() *DatasetUpdateOne {
	_u.mutation.ClearFileSizeBytes()
	return _u
}

// SetColumnDescriptions sets the "column_descriptions" field.
func (_u *DatasetUpdateOne) SetColumnDescriptions(v map[string]string) *DatasetUpdateOne {
	_u.mutation.SetColumnDescriptions(v)
	return _u
}

// ClearColumnDescriptions clears the value of the "column_descriptions" field.
func (_u *DatasetUpdateOne) ClearColumnDescriptions() *DatasetUpdateOne {
	_u.mutation.ClearColumnDescriptions()
	return _u
}

// Mutation returns the DatasetMutation object of the builder.
func (_u *DatasetUpdateOne) Mutation() *DatasetMutation {
	return _u.mutation
}

// Where appends a list predicates to the DatasetUpdate builder.
func (_u *DatasetUpdateOne) Where(ps ...predicate.Dataset) *DatasetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DatasetUpdateOne) Select(field string, fields ...string) *DatasetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Dataset entity.
func (_u *DatasetUpdateOne) Save(ctx context.Context) (*Dataset, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasetUpdateOne) SaveX(ctx context.Context) *Dataset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DatasetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasetUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := dataset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Dataset.status": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Dataset.conversation"`)
	}
	return nil
}

func (_u *DatasetUpdateOne) sqlSave(ctx context.Context) (_node *Dataset, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataset.Table, dataset.Columns, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Dataset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dataset.FieldID)
		for _, f := range fields {
			if !dataset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dataset.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(dataset.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.TableName(); ok {
		_spec.SetField(dataset.FieldTableName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(dataset.FieldRowCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(dataset.FieldRowCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ColumnCount(); ok {
		_spec.SetField(dataset.FieldColumnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedColumnCount(); ok {
		_spec.AddField(dataset.FieldColumnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Schema(); ok {
		_spec.SetField(dataset.FieldSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchema(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dataset.FieldSchema, value)
		})
	}
	if _u.mutation.SchemaCleared() {
		_spec.ClearField(dataset.FieldSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dataset.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(dataset.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(dataset.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LoadedAt(); ok {
		_spec.SetField(dataset.FieldLoadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FileSizeBytes(); ok {
		_spec.SetField(dataset.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(dataset.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeBytesCleared() {
		_spec.ClearField(dataset.FieldFileSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.ColumnDescriptions(); ok {
		_spec.SetField(dataset.FieldColumnDescriptions, field.TypeJSON, value)
	}
	if _u.mutation.ColumnDescriptionsCleared() {
		_spec.ClearField(dataset.FieldColumnDescriptions, field.TypeJSON)
	}
	_node = &Dataset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
