// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chatdf/chatdf/ent/conversation"
	"github.com/chatdf/chatdf/ent/dataset"
)

// Dataset is the model entity for the Dataset schema.
type Dataset struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ConversationID holds the value of the "conversation_id" field.
	ConversationID string `json:"conversation_id,omitempty"`
	// http(s):// URL or file:// path of an uploaded file
	URL string `json:"url,omitempty"`
	// TableName holds the value of the "table_name" field.
	TableName string `json:"table_name,omitempty"`
	// RowCount holds the value of the "row_count" field.
	RowCount int64 `json:"row_count,omitempty"`
	// ColumnCount holds the value of the "column_count" field.
	ColumnCount int `json:"column_count,omitempty"`
	// Column records: name, type, sample values, stats
	Schema []map[string]interface{} `json:"schema,omitempty"`
	// Status holds the value of the "status" field.
	Status dataset.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// LoadedAt holds the value of the "loaded_at" field.
	LoadedAt time.Time `json:"loaded_at,omitempty"`
	// FileSizeBytes holds the value of the "file_size_bytes" field.
	FileSizeBytes *int64 `json:"file_size_bytes,omitempty"`
	// ColumnDescriptions holds the value of the "column_descriptions" field.
	ColumnDescriptions map[string]string `json:"column_descriptions,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DatasetQuery when eager-loading is set.
	Edges        DatasetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DatasetEdges holds the relations/edges for other nodes in the graph.
type DatasetEdges struct {
	// Conversation holds the value of the conversation edge.
	Conversation *Conversation `json:"conversation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ConversationOrErr returns the Conversation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DatasetEdges) ConversationOrErr() (*Conversation, error) {
	if e.Conversation != nil {
		return e.Conversation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: conversation.Label}
	}
	return nil, &NotLoadedError{edge: "conversation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Dataset) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dataset.FieldSchema, dataset.FieldColumnDescriptions:
			values[i] = new([]byte)
		case dataset.FieldRowCount, dataset.FieldColumnCount, dataset.FieldFileSizeBytes:
			values[i] = new(sql.NullInt64)
		case dataset.FieldID, dataset.FieldConversationID, dataset.FieldURL, dataset.FieldTableName, dataset.FieldStatus, dataset.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case dataset.FieldLoadedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Dataset fields.
func (_m *Dataset) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dataset.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dataset.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = value.String
			}
		case dataset.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case dataset.FieldTableName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field table_name", values[i])
			} else if value.Valid {
				_m.TableName = value.String
			}
		case dataset.FieldRowCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_count", values[i])
			} else if value.Valid {
				_m.RowCount = value.Int64
			}
		case dataset.FieldColumnCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field column_count", values[i])
			} else if value.Valid {
				_m.ColumnCount = int(value.Int64)
			}
		case dataset.FieldSchema:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field schema", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Schema); err != nil {
					return fmt.Errorf("unmarshal field schema: %w", err)
				}
			}
		case dataset.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = dataset.Status(value.String)
			}
		case dataset.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case dataset.FieldLoadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field loaded_at", values[i])
			} else if value.Valid {
				_m.LoadedAt = value.Time
			}
		case dataset.FieldFileSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size_bytes", values[i])
			} else if value.Valid {
				_m.FileSizeBytes = new(int64)
				*_m.FileSizeBytes = value.Int64
			}
		case dataset.FieldColumnDescriptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field column_descriptions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ColumnDescriptions); err != nil {
					return fmt.Errorf("unmarshal field column_descriptions: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Dataset.
// This includes values selected through modifiers, order, etc.
func (_m *Dataset) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConversation queries the "conversation" edge of the Dataset entity.
func (_m *Dataset) QueryConversation() *ConversationQuery {
	return NewDatasetClient(_m.config).QueryConversation(_m)
}

// Update returns a builder for updating this Dataset.
// Note that you need to call Dataset.Unwrap() before calling this method if this Dataset
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Dataset) Update() *DatasetUpdateOne {
	return NewDatasetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Dataset entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Dataset) Unwrap() *Dataset {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Dataset is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Dataset) String() string {
	var builder strings.Builder
	builder.WriteString("Dataset(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("conversation_id=")
	builder.WriteString(_m.ConversationID)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("table_name=")
	builder.WriteString(_m.TableName)
	builder.WriteString(", ")
	builder.WriteString("row_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowCount))
	builder.WriteString(", ")
	builder.WriteString("column_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ColumnCount))
	builder.WriteString(", ")
	builder.WriteString("schema=")
	builder.WriteString(fmt.Sprintf("%v", _m.Schema))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("loaded_at=")
	builder.WriteString(_m.LoadedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FileSizeBytes; v != nil {
		builder.WriteString("file_size_bytes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("column_descriptions=")
	builder.WriteString(fmt.Sprintf("%v", _m.ColumnDescriptions))
	builder.WriteByte(')')
	return builder.String()
}

// Datasets is a parsable slice of Dataset.
type Datasets []*Dataset
