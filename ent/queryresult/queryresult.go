// Code generated by ent, DO NOT EDIT.

package queryresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the queryresult type in the database.
	Label = "query_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "cache_key"
	// FieldSQLQuery holds the string denoting the sql_query field in the database.
	FieldSQLQuery = "sql_query"
	// FieldDatasetUrls holds the string denoting the dataset_urls field in the database.
	FieldDatasetUrls = "dataset_urls"
	// FieldResultJSON holds the string denoting the result_json field in the database.
	FieldResultJSON = "result_json"
	// FieldRowCount holds the string denoting the row_count field in the database.
	FieldRowCount = "row_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the queryresult in the database.
	Table = "query_results"
)

// Columns holds all SQL columns for queryresult fields.
var Columns = []string{
	FieldID,
	FieldSQLQuery,
	FieldDatasetUrls,
	FieldResultJSON,
	FieldRowCount,
	FieldCreatedAt,
	FieldExpiresAt,
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
	DefaultRowCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the QueryResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySQLQuery orders the results by the sql_query field.
func BySQLQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSQLQuery, opts...).ToFunc()
}

// ByDatasetUrls orders the results by the dataset_urls field.
func ByDatasetUrls(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatasetUrls, opts...).ToFunc()
}

// ByResultJSON orders the results by the result_json field.
func ByResultJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultJSON, opts...).ToFunc()
}

// ByRowCount orders the results by the row_count field.
func ByRowCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
