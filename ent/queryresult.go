// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chatdf/chatdf/ent/queryresult"
)

// QueryResult is the model entity for the QueryResult schema.
type QueryResult struct {
	config `json:"-"`
	// ID of the ent.
	// sha256(trimmed sql | sorted dataset urls)
	ID string `json:"id,omitempty"`
	// SQLQuery holds the value of the "sql_query" field.
	SQLQuery string `json:"sql_query,omitempty"`
	// Pipe-joined sorted URLs, for inspection
	DatasetUrls string `json:"dataset_urls,omitempty"`
	// ResultJSON holds the value of the "result_json" field.
	ResultJSON string `json:"result_json,omitempty"`
	// RowCount holds the value of the "row_count" field.
	RowCount int `json:"row_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QueryResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case queryresult.FieldRowCount:
			values[i] = new(sql.NullInt64)
		case queryresult.FieldID, queryresult.FieldSQLQuery, queryresult.FieldDatasetUrls, queryresult.FieldResultJSON:
			values[i] = new(sql.NullString)
		case queryresult.FieldCreatedAt, queryresult.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QueryResult fields.
func (_m *QueryResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case queryresult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case queryresult.FieldSQLQuery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sql_query", values[i])
			} else if value.Valid {
				_m.SQLQuery = value.String
			}
		case queryresult.FieldDatasetUrls:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_urls", values[i])
			} else if value.Valid {
				_m.DatasetUrls = value.String
			}
		case queryresult.FieldResultJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_json", values[i])
			} else if value.Valid {
				_m.ResultJSON = value.String
			}
		case queryresult.FieldRowCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_count", values[i])
			} else if value.Valid {
				_m.RowCount = int(value.Int64)
			}
		case queryresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case queryresult.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QueryResult.
// This includes values selected through modifiers, order, etc.
func (_m *QueryResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QueryResult.
// Note that you need to call QueryResult.Unwrap() before calling this method if this QueryResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QueryResult) Update() *QueryResultUpdateOne {
	return NewQueryResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QueryResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QueryResult) Unwrap() *QueryResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QueryResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QueryResult) String() string {
	var builder strings.Builder
	builder.WriteString("QueryResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sql_query=")
	builder.WriteString(_m.SQLQuery)
	builder.WriteString(", ")
	builder.WriteString("dataset_urls=")
	builder.WriteString(_m.DatasetUrls)
	builder.WriteString(", ")
	builder.WriteString("result_json=")
	builder.WriteString(_m.ResultJSON)
	builder.WriteString(", ")
	builder.WriteString("row_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QueryResults is a parsable slice of QueryResult.
type QueryResults []*QueryResult
