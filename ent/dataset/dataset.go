// Code generated by ent, DO NOT EDIT.

package dataset

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the dataset type in the database.
	Label = "dataset"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "dataset_id"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldTableName holds the string denoting the table_name field in the database.
	FieldTableName = "table_name"
	// FieldRowCount holds the string denoting the row_count field in the database.
	FieldRowCount = "row_count"
	// FieldColumnCount holds the string denoting the column_count field in the database.
	FieldColumnCount = "column_count"
	// FieldSchema holds the string denoting the schema field in the database.
	FieldSchema = "schema"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldLoadedAt holds the string denoting the loaded_at field in the database.
	FieldLoadedAt = "loaded_at"
	// FieldFileSizeBytes holds the string denoting the file_size_bytes field in the database.
	FieldFileSizeBytes = "file_size_bytes"
	// FieldColumnDescriptions holds the string denoting the column_descriptions field in the database.
	FieldColumnDescriptions = "column_descriptions"
	// EdgeConversation holds the string denoting the conversation edge name in mutations.
	EdgeConversation = "conversation"
	// ConversationFieldID holds the string denoting the ID field of the Conversation.
	ConversationFieldID = "conversation_id"
	// Table holds the table name of the dataset in the database.
	Table = "datasets"
	// ConversationTable is the table that holds the conversation relation/edge.
	ConversationTable = "datasets"
	// ConversationInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationInverseTable = "conversations"
	// ConversationColumn is the table column denoting the conversation relation/edge.
	ConversationColumn = "conversation_id"
)

// Columns holds all SQL columns for dataset fields.
var Columns = []string{
	FieldID,
	FieldConversationID,
	FieldURL,
	FieldTableName,
	FieldRowCount,
	FieldColumnCount,
	FieldSchema,
	FieldStatus,
	FieldErrorMessage,
	FieldLoadedAt,
	FieldFileSizeBytes,
	FieldColumnDescriptions,
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
	// DefaultColumnCount holds the default value on creation for the "column_count" field.
	DefaultColumnCount int
	// DefaultLoadedAt holds the default value on creation for the "loaded_at" field.
	DefaultLoadedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusLoading is the default value of the Status enum.
const DefaultStatus = StatusLoading

// Status values.
const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusLoading, StatusReady, StatusError:
		return nil
	default:
		return fmt.Errorf("dataset: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Dataset queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByTableName orders the results by the table_name field.
func ByTableName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTableName, opts...).ToFunc()
}

// ByRowCount orders the results by the row_count field.
func ByRowCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowCount, opts...).ToFunc()
}

// ByColumnCount orders the results by the column_count field.
func ByColumnCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColumnCount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByLoadedAt orders the results by the loaded_at field.
func ByLoadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoadedAt, opts...).ToFunc()
}

// ByFileSizeBytes orders the results by the file_size_bytes field.
func ByFileSizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSizeBytes, opts...).ToFunc()
}

// ByConversationField orders the results by conversation field.
func ByConversationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationStep(), sql.OrderByField(field, opts...))
	}
}
func newConversationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationInverseTable, ConversationFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
	)
}
