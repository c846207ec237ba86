// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chatdf/chatdf/ent/queryhistory"
)

// QueryHistory is the model entity for the QueryHistory schema.
type QueryHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ConversationID holds the value of the "conversation_id" field.
	ConversationID string `json:"conversation_id,omitempty"`
	// SQLQuery holds the value of the "sql_query" field.
	SQLQuery string `json:"sql_query,omitempty"`
	// RowCount holds the value of the "row_count" field.
	RowCount int64 `json:"row_count,omitempty"`
	// ExecutionTimeMs holds the value of the "execution_time_ms" field.
	ExecutionTimeMs int64 `json:"execution_time_ms,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QueryHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case queryhistory.FieldRowCount, queryhistory.FieldExecutionTimeMs:
			values[i] = new(sql.NullInt64)
		case queryhistory.FieldID, queryhistory.FieldUserID, queryhistory.FieldConversationID, queryhistory.FieldSQLQuery, queryhistory.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case queryhistory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QueryHistory fields.
func (_m *QueryHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case queryhistory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case queryhistory.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case queryhistory.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = value.String
			}
		case queryhistory.FieldSQLQuery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sql_query", values[i])
			} else if value.Valid {
				_m.SQLQuery = value.String
			}
		case queryhistory.FieldRowCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_count", values[i])
			} else if value.Valid {
				_m.RowCount = value.Int64
			}
		case queryhistory.FieldExecutionTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_time_ms", values[i])
			} else if value.Valid {
				_m.ExecutionTimeMs = value.Int64
			}
		case queryhistory.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case queryhistory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QueryHistory.
// This includes values selected through modifiers, order, etc.
func (_m *QueryHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QueryHistory.
// Note that you need to call QueryHistory.Unwrap() before calling this method if this QueryHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QueryHistory) Update() *QueryHistoryUpdateOne {
	return NewQueryHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QueryHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QueryHistory) Unwrap() *QueryHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QueryHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QueryHistory) String() string {
	var builder strings.Builder
	builder.WriteString("QueryHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("conversation_id=")
	builder.WriteString(_m.ConversationID)
	builder.WriteString(", ")
	builder.WriteString("sql_query=")
	builder.WriteString(_m.SQLQuery)
	builder.WriteString(", ")
	builder.WriteString("row_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowCount))
	builder.WriteString(", ")
	builder.WriteString("execution_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionTimeMs))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QueryHistories is a parsable slice of QueryHistory.
type QueryHistories []*QueryHistory
