// Code generated by ent, DO NOT EDIT.

package queryhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the queryhistory type in the database.
	Label = "query_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "history_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldSQLQuery holds the string denoting the sql_query field in the database.
	FieldSQLQuery = "sql_query"
	// FieldRowCount holds the string denoting the row_count field in the database.
	FieldRowCount = "row_count"
	// FieldExecutionTimeMs holds the string denoting the execution_time_ms field in the database.
	FieldExecutionTimeMs = "execution_time_ms"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the queryhistory in the database.
	Table = "query_histories"
)

// Columns holds all SQL columns for queryhistory fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldConversationID,
	FieldSQLQuery,
	FieldRowCount,
	FieldExecutionTimeMs,
	FieldErrorMessage,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRowCount holds the default value on creation for the "row_count" field.
	DefaultRowCount int64
	// DefaultExecutionTimeMs holds the default value on creation for the "execution_time_ms" field.
	DefaultExecutionTimeMs int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the QueryHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// BySQLQuery orders the results by the sql_query field.
func BySQLQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSQLQuery, opts...).ToFunc()
}

// ByRowCount orders the results by the row_count field.
func ByRowCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowCount, opts...).ToFunc()
}

// ByExecutionTimeMs orders the results by the execution_time_ms field.
func ByExecutionTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionTimeMs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
