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
	"github.com/chatdf/chatdf/ent/dataset"
)

// DatasetCreate is the builder for creating a Dataset entity.
type DatasetCreate struct {
	config
	mutation *DatasetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetConversationID sets the "conversation_id" field.
func (_c *DatasetCreate) SetConversationID(v string) *DatasetCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *DatasetCreate) SetURL(v string) *DatasetCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetTableName sets the "table_name" field.
func (_c *DatasetCreate) SetTableName(v string) *DatasetCreate {
	_c.mutation.SetTableName(v)
	return _c
}

// SetRowCount sets the "row_count" field.
func (_c *DatasetCreate) SetRowCount(v int64) *DatasetCreate {
	_c.mutation.SetRowCount(v)
	return _c
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableRowCount(v *int64) *DatasetCreate {
	if v != nil {
		_c.SetRowCount(*v)
	}
	return _c
}

// SetColumnCount sets the "column_count" field.
func (_c *DatasetCreate) SetColumnCount(v int) *DatasetCreate {
	_c.mutation.SetColumnCount(v)
	return _c
}

// SetNillableColumnCount sets the "column_count" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableColumnCount(v *int) *DatasetCreate {
	if v != nil {
		_c.SetColumnCount(*v)
	}
	return _c
}

// SetSchema sets the "schema" field.
func (_c *DatasetCreate) SetSchema(v []map[string]interface{}) *DatasetCreate {
	_c.mutation.SetSchema(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DatasetCreate) SetStatus(v dataset.Status) *DatasetCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableStatus(v *dataset.Status) *DatasetCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DatasetCreate) SetErrorMessage(v string) *DatasetCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableErrorMessage(v *string) *DatasetCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetLoadedAt sets the "loaded_at" field.
func (_c *DatasetCreate) SetLoadedAt(v time.Time) *DatasetCreate {
	_c.mutation.SetLoadedAt(v)
	return _c
}

// SetNillableLoadedAt sets the "loaded_at" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableLoadedAt(v *time.Time) *DatasetCreate {
	if v != nil {
		_c.SetLoadedAt(*v)
	}
	return _c
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_c *DatasetCreate) SetFileSizeBytes(v int64) *DatasetCreate {
	_c.mutation.SetFileSizeBytes(v)
	return _c
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableFileSizeBytes(v *int64) *DatasetCreate {
	if v != nil {
		_c.SetFileSizeBytes(*v)
	}
	return _c
}

// SetColumnDescriptions sets the "column_descriptions" field.
func (_c *DatasetCreate) SetColumnDescriptions(v map[string]string) *DatasetCreate {
	_c.mutation.SetColumnDescriptions(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DatasetCreate) SetID(v string) *DatasetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_c *DatasetCreate) SetConversation(v *Conversation) *DatasetCreate {
	return _c.SetConversationID(v.ID)
}

// Mutation returns the DatasetMutation object of the builder.
func (_c *DatasetCreate) Mutation() *DatasetMutation {
	return _c.mutation
}

// Save creates the Dataset in the database.
func (_c *DatasetCreate) Save(ctx context.Context) (*Dataset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DatasetCreate) SaveX(ctx context.Context) *Dataset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DatasetCreate) defaults() {
	if _, ok := _c.mutation.RowCount(); !ok {
		v := dataset.DefaultRowCount
		_c.mutation.SetRowCount(v)
	}
	if _, ok := _c.mutation.ColumnCount(); !ok {
		v := dataset.DefaultColumnCount
		_c.mutation.SetColumnCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := dataset.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.LoadedAt(); !ok {
		v := dataset.DefaultLoadedAt()
		_c.mutation.SetLoadedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DatasetCreate) check() error {
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "Dataset.conversation_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Dataset.url"`)}
	}
	if _, ok := _c.mutation.TableName(); !ok {
		return &ValidationError{Name: "table_name", err: errors.New(`ent: missing required field "Dataset.table_name"`)}
	}
	if _, ok := _c.mutation.RowCount(); !ok {
		return &ValidationError{Name: "row_count", err: errors.New(`ent: missing required field "Dataset.row_count"`)}
	}
	if _, ok := _c.mutation.ColumnCount(); !ok {
		return &ValidationError{Name: "column_count", err: errors.New(`ent: missing required field "Dataset.column_count"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Dataset.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := dataset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Dataset.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LoadedAt(); !ok {
		return &ValidationError{Name: "loaded_at", err: errors.New(`ent: missing required field "Dataset.loaded_at"`)}
	}
	if len(_c.mutation.ConversationIDs()) == 0 {
		return &ValidationError{Name: "conversation", err: errors.New(`ent: missing required edge "Dataset.conversation"`)}
	}
	return nil
}

func (_c *DatasetCreate) sqlSave(ctx context.Context) (*Dataset, error) {
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
			return nil, fmt.Errorf("unexpected Dataset.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DatasetCreate) createSpec() (*Dataset, *sqlgraph.CreateSpec) {
	var (
		_node = &Dataset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dataset.Table, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(dataset.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.TableName(); ok {
		_spec.SetField(dataset.FieldTableName, field.TypeString, value)
		_node.TableName = value
	}
	if value, ok := _c.mutation.RowCount(); ok {
		_spec.SetField(dataset.FieldRowCount, field.TypeInt64, value)
		_node.RowCount = value
	}
	if value, ok := _c.mutation.ColumnCount(); ok {
		_spec.SetField(dataset.FieldColumnCount, field.TypeInt, value)
		_node.ColumnCount = value
	}
	if value, ok := _c.mutation.Schema(); ok {
		_spec.SetField(dataset.FieldSchema, field.TypeJSON, value)
		_node.Schema = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(dataset.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(dataset.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.LoadedAt(); ok {
		_spec.SetField(dataset.FieldLoadedAt, field.TypeTime, value)
		_node.LoadedAt = value
	}
	if value, ok := _c.mutation.FileSizeBytes(); ok {
		_spec.SetField(dataset.FieldFileSizeBytes, field.TypeInt64, value)
		_node.FileSizeBytes = &value
	}
	if value, ok := _c.mutation.ColumnDescriptions(); ok {
		_spec.SetField(dataset.FieldColumnDescriptions, field.TypeJSON, value)
		_node.ColumnDescriptions = value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dataset.ConversationTable,
			Columns: []string{dataset.ConversationColumn},
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
//	client.Dataset.Create().
//		SetConversationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DatasetUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *DatasetCreate) OnConflict(opts ...sql.ConflictOption) *DatasetUpsertOne {
	_c.conflict = opts
	return &DatasetUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Dataset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DatasetCreate) OnConflictColumns(columns ...string) *DatasetUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DatasetUpsertOne{
		create: _c,
	}
}

type (
	// DatasetUpsertOne is the builder for "upsert"-ing
	//  one Dataset node.
	DatasetUpsertOne struct {
		create *DatasetCreate
	}

	// DatasetUpsert is the "OnConflict" setter.
	DatasetUpsert struct {
		*sql.UpdateSet
	}
)

// SetURL sets the "url" field.
func (u *DatasetUpsert) SetURL(v string) *DatasetUpsert {
	u.Set(dataset.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateURL() *DatasetUpsert {
	u.SetExcluded(dataset.FieldURL)
	return u
}

// SetTableName sets the "table_name" field.
func (u *DatasetUpsert) SetTableName(v string) *DatasetUpsert {
	u.Set(dataset.FieldTableName, v)
	return u
}

// UpdateTableName sets the "table_name" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateTableName() *DatasetUpsert {
	u.SetExcluded(dataset.FieldTableName)
	return u
}

// SetRowCount sets the "row_count" field.
func (u *DatasetUpsert) SetRowCount(v int64) *DatasetUpsert {
	u.Set(dataset.FieldRowCount, v)
	return u
}

// UpdateRowCount sets the "row_count" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateRowCount() *DatasetUpsert {
	u.SetExcluded(dataset.FieldRowCount)
	return u
}

// AddRowCount adds v to the "row_count" field.
func (u *DatasetUpsert) AddRowCount(v int64) *DatasetUpsert {
	u.Add(dataset.FieldRowCount, v)
	return u
}

// SetColumnCount sets the "column_count" field.
func (u *DatasetUpsert) SetColumnCount(v int) *DatasetUpsert {
	u.Set(dataset.FieldColumnCount, v)
	return u
}

// UpdateColumnCount sets the "column_count" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateColumnCount() *DatasetUpsert {
	u.SetExcluded(dataset.FieldColumnCount)
	return u
}

// AddColumnCount adds v to the "column_count" field.
func (u *DatasetUpsert) AddColumnCount(v int) *DatasetUpsert {
	u.Add(dataset.FieldColumnCount, v)
	return u
}

// SetSchema sets the "schema" field.
func (u *DatasetUpsert) SetSchema(v []map[string]interface{}) *DatasetUpsert {
	u.Set(dataset.FieldSchema, v)
	return u
}

// UpdateSchema sets the "schema" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateSchema() *DatasetUpsert {
	u.SetExcluded(dataset.FieldSchema)
	return u
}

// ClearSchema clears the value of the "schema" field.
func (u *DatasetUpsert) ClearSchema() *DatasetUpsert {
	u.SetNull(dataset.FieldSchema)
	return u
}

// SetStatus sets the "status" field.
func (u *DatasetUpsert) SetStatus(v dataset.Status) *DatasetUpsert {
	u.Set(dataset.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateStatus() *DatasetUpsert {
	u.SetExcluded(dataset.FieldStatus)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *DatasetUpsert) SetErrorMessage(v string) *DatasetUpsert {
	u.Set(dataset.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateErrorMessage() *DatasetUpsert {
	u.SetExcluded(dataset.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DatasetUpsert) ClearErrorMessage() *DatasetUpsert {
	u.SetNull(dataset.FieldErrorMessage)
	return u
}

// SetLoadedAt sets the "loaded_at" field.
func (u *DatasetUpsert) SetLoadedAt(v time.Time) *DatasetUpsert {
	u.Set(dataset.FieldLoadedAt, v)
	return u
}

// UpdateLoadedAt sets the "loaded_at" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateLoadedAt() *DatasetUpsert {
	u.SetExcluded(dataset.FieldLoadedAt)
	return u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (u *DatasetUpsert) SetFileSizeBytes(v int64) *DatasetUpsert {
	u.Set(dataset.FieldFileSizeBytes, v)
	return u
}

// UpdateFileSizeBytes sets the "file_size_bytes" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateFileSizeBytes() *DatasetUpsert {
	u.SetExcluded(dataset.FieldFileSizeBytes)
	return u
}

// AddFileSizeBytes adds v to the "file_size_bytes" field.
func (u *DatasetUpsert) AddFileSizeBytes(v int64) *DatasetUpsert {
	u.Add(dataset.FieldFileSizeBytes, v)
	return u
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (u *DatasetUpsert) ClearFileSizeBytes() *DatasetUpsert {
	u.SetNull(dataset.FieldFileSizeBytes)
	return u
}

// SetColumnDescriptions sets the "column_descriptions" field.
func (u *DatasetUpsert) SetColumnDescriptions(v map[string]string) *DatasetUpsert {
	u.Set(dataset.FieldColumnDescriptions, v)
	return u
}

// UpdateColumnDescriptions sets the "column_descriptions" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateColumnDescriptions() *DatasetUpsert {
	u.SetExcluded(dataset.FieldColumnDescriptions)
	return u
}

// ClearColumnDescriptions clears the value of the "column_descriptions" field.
func (u *DatasetUpsert) ClearColumnDescriptions() *DatasetUpsert {
	u.SetNull(dataset.FieldColumnDescriptions)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Dataset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dataset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DatasetUpsertOne) UpdateNewValues() *DatasetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(dataset.FieldID)
		}
		if _, exists := u.create.mutation.ConversationID(); exists {
			s.SetIgnore(dataset.FieldConversationID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Dataset.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DatasetUpsertOne) Ignore() *DatasetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DatasetUpsertOne) DoNothing() *DatasetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DatasetCreate.OnConflict
// documentation for more info.
func (u *DatasetUpsertOne) Update(set func(*DatasetUpsert)) *DatasetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DatasetUpsert{UpdateSet: update})
	}))
	return u
}

// SetURL sets the "url" field.
func (u *DatasetUpsertOne) SetURL(v string) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateURL() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateURL()
	})
}

// SetTableName sets the "table_name" field.
func (u *DatasetUpsertOne) SetTableName(v string) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetTableName(v)
	})
}

// UpdateTableName sets the "table_name" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateTableName() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateTableName()
	})
}

// SetRowCount sets the "row_count" field.
func (u *DatasetUpsertOne) SetRowCount(v int64) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetRowCount(v)
	})
}

// AddRowCount adds v to the "row_count" field.
func (u *DatasetUpsertOne) AddRowCount(v int64) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.AddRowCount(v)
	})
}

// UpdateRowCount sets the "row_count" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateRowCount() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateRowCount()
	})
}

// SetColumnCount sets the "column_count" field.
func (u *DatasetUpsertOne) SetColumnCount(v int) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetColumnCount(v)
	})
}

// AddColumnCount adds v to the "column_count" field.
func (u *DatasetUpsertOne) AddColumnCount(v int) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.AddColumnCount(v)
	})
}

// UpdateColumnCount sets the "column_count" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateColumnCount() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateColumnCount()
	})
}

// SetSchema sets the "schema" field.
func (u *DatasetUpsertOne) SetSchema(v []map[string]interface{}) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetSchema(v)
	})
}

// UpdateSchema sets the "schema" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateSchema() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateSchema()
	})
}

// ClearSchema clears the value of the "schema" field.
func (u *DatasetUpsertOne) ClearSchema() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.ClearSchema()
	})
}

// SetStatus sets the "status" field.
func (u *DatasetUpsertOne) SetStatus(v dataset.Status) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateStatus() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *DatasetUpsertOne) SetErrorMessage(v string) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateErrorMessage() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DatasetUpsertOne) ClearErrorMessage() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.ClearErrorMessage()
	})
}

// SetLoadedAt sets the "loaded_at" field.
func (u *DatasetUpsertOne) SetLoadedAt(v time.Time) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetLoadedAt(v)
	})
}

// UpdateLoadedAt sets the "loaded_at" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateLoadedAt() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateLoadedAt()
	})
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (u *DatasetUpsertOne) SetFileSizeBytes(v int64) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetFileSizeBytes(v)
	})
}

// AddFileSizeBytes adds v to the "file_size_bytes" field.
func (u *DatasetUpsertOne) AddFileSizeBytes(v int64) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.AddFileSizeBytes(v)
	})
}

// UpdateFileSizeBytes sets the "file_size_bytes" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateFileSizeBytes() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateFileSizeBytes()
	})
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (u *DatasetUpsertOne) ClearFileSizeBytes() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.ClearFileSizeBytes()
	})
}

// SetColumnDescriptions sets the "column_descriptions" field.
func (u *DatasetUpsertOne) SetColumnDescriptions(v map[string]string) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetColumnDescriptions(v)
	})
}

// UpdateColumnDescriptions sets the "column_descriptions" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateColumnDescriptions() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateColumnDescriptions()
	})
}

// ClearColumnDescriptions clears the value of the "column_descriptions" field.
func (u *DatasetUpsertOne) ClearColumnDescriptions() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.ClearColumnDescriptions()
	})
}

// Exec executes the query.
func (u *DatasetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DatasetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DatasetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DatasetUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DatasetUpsertOne.ID is not supported by MySQL driver. Use DatasetUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DatasetUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DatasetCreateBulk is the builder for creating many Dataset entities in bulk.
type DatasetCreateBulk struct {
	config
	err      error
	builders []*DatasetCreate
	conflict []sql.ConflictOption
}

// Save creates the Dataset entities in the database.
func (_c *DatasetCreateBulk) Save(ctx context.Context) ([]*Dataset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Dataset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DatasetMutation)
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
func (_c *DatasetCreateBulk) SaveX(ctx context.Context) []*Dataset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Dataset.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DatasetUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *DatasetCreateBulk) OnConflict(opts ...sql.ConflictOption) *DatasetUpsertBulk {
	_c.conflict = opts
	return &DatasetUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Dataset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DatasetCreateBulk) OnConflictColumns(columns ...string) *DatasetUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DatasetUpsertBulk{
		create: _c,
	}
}

// DatasetUpsertBulk is the builder for "upsert"-ing
// a bulk of Dataset nodes.
type DatasetUpsertBulk struct {
	create *DatasetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Dataset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dataset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DatasetUpsertBulk) UpdateNewValues() *DatasetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(dataset.FieldID)
			}
			if _, exists := b.mutation.ConversationID(); exists {
				s.SetIgnore(dataset.FieldConversationID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Dataset.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DatasetUpsertBulk) Ignore() *DatasetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DatasetUpsertBulk) DoNothing() *DatasetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DatasetCreateBulk.OnConflict
// documentation for more info.
func (u *DatasetUpsertBulk) Update(set func(*DatasetUpsert)) *DatasetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DatasetUpsert{UpdateSet: update})
	}))
	return u
}

// SetURL sets the "url" field.
func (u *DatasetUpsertBulk) SetURL(v string) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateURL() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateURL()
	})
}

// SetTableName sets the "table_name" field.
func (u *DatasetUpsertBulk) SetTableName(v string) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetTableName(v)
	})
}

// UpdateTableName sets the "table_name" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateTableName() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateTableName()
	})
}

// SetRowCount sets the "row_count" field.
func (u *DatasetUpsertBulk) SetRowCount(v int64) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetRowCount(v)
	})
}

// AddRowCount adds v to the "row_count" field.
func (u *DatasetUpsertBulk) AddRowCount(v int64) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.AddRowCount(v)
	})
}

// UpdateRowCount sets the "row_count" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateRowCount() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateRowCount()
	})
}

// SetColumnCount sets the "column_count" field.
func (u *DatasetUpsertBulk) SetColumnCount(v int) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetColumnCount(v)
	})
}

// AddColumnCount adds v to the "column_count" field.
func (u *DatasetUpsertBulk) AddColumnCount(v int) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.AddColumnCount(v)
	})
}

// UpdateColumnCount sets the "column_count" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateColumnCount() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateColumnCount()
	})
}

// SetSchema sets the "schema" field.
func (u *DatasetUpsertBulk) SetSchema(v []map[string]interface{}) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetSchema(v)
	})
}

// UpdateSchema sets the "schema" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateSchema() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateSchema()
	})
}

// ClearSchema clears the value of the "schema" field.
func (u *DatasetUpsertBulk) ClearSchema() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.ClearSchema()
	})
}

// SetStatus sets the "status" field.
func (u *DatasetUpsertBulk) SetStatus(v dataset.Status) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateStatus() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *DatasetUpsertBulk) SetErrorMessage(v string) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateErrorMessage() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DatasetUpsertBulk) ClearErrorMessage() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.ClearErrorMessage()
	})
}

// SetLoadedAt sets the "loaded_at" field.
func (u *DatasetUpsertBulk) SetLoadedAt(v time.Time) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetLoadedAt(v)
	})
}

// UpdateLoadedAt sets the "loaded_at" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateLoadedAt() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateLoadedAt()
	})
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (u *DatasetUpsertBulk) SetFileSizeBytes(v int64) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetFileSizeBytes(v)
	})
}

// AddFileSizeBytes adds v to the "file_size_bytes" field.
func (u *DatasetUpsertBulk) AddFileSizeBytes(v int64) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.AddFileSizeBytes(v)
	})
}

// UpdateFileSizeBytes sets the "file_size_bytes" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateFileSizeBytes() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateFileSizeBytes()
	})
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (u *DatasetUpsertBulk) ClearFileSizeBytes() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.ClearFileSizeBytes()
	})
}

// SetColumnDescriptions sets the "column_descriptions" field.
func (u *DatasetUpsertBulk) SetColumnDescriptions(v map[string]string) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetColumnDescriptions(v)
	})
}

// UpdateColumnDescriptions sets the "column_descriptions" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateColumnDescriptions() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateColumnDescriptions()
	})
}

// ClearColumnDescriptions clears the value of the "column_descriptions" field.
func (u *DatasetUpsertBulk) ClearColumnDescriptions() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.ClearColumnDescriptions()
	})
}

// Exec executes the query.
func (u *DatasetUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DatasetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DatasetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DatasetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
