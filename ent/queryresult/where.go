// Code generated by ent, DO NOT EDIT.

package queryresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/chatdf/chatdf/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContainsFold(FieldID, id))
}

// SQLQuery applies equality check predicate on the "sql_query" field. It's identical to SQLQueryEQ.
func SQLQuery(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldSQLQuery, v))
}

// DatasetUrls applies equality check predicate on the "dataset_urls" field. It's identical to DatasetUrlsEQ.
func DatasetUrls(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldDatasetUrls, v))
}

// ResultJSON applies equality check predicate on the "result_json" field. It's identical to ResultJSONEQ.
func ResultJSON(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldResultJSON, v))
}

// RowCount applies equality check predicate on the "row_count" field. It's identical to RowCountEQ.
func RowCount(v int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldRowCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldCreatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldExpiresAt, v))
}

// SQLQueryEQ applies the EQ predicate on the "sql_query" field.
func SQLQueryEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldSQLQuery, v))
}

// SQLQueryNEQ applies the NEQ predicate on the "sql_query" field.
func SQLQueryNEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldSQLQuery, v))
}

// SQLQueryIn applies the In predicate on the "sql_query" field.
func SQLQueryIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldSQLQuery, vs...))
}

// SQLQueryNotIn applies the NotIn predicate on the "sql_query" field.
func SQLQueryNotIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldSQLQuery, vs...))
}

// SQLQueryGT applies the GT predicate on the "sql_query" field.
func SQLQueryGT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldSQLQuery, v))
}

// SQLQueryGTE applies the GTE predicate on the "sql_query" field.
func SQLQueryGTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldSQLQuery, v))
}

// SQLQueryLT applies the LT predicate on the "sql_query" field.
func SQLQueryLT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldSQLQuery, v))
}

// SQLQueryLTE applies the LTE predicate on the "sql_query" field.
func SQLQueryLTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldSQLQuery, v))
}

// SQLQueryContains applies the Contains predicate on the "sql_query" field.
func SQLQueryContains(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContains(FieldSQLQuery, v))
}

// SQLQueryHasPrefix applies the HasPrefix predicate on the "sql_query" field.
func SQLQueryHasPrefix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasPrefix(FieldSQLQuery, v))
}

// SQLQueryHasSuffix applies the HasSuffix predicate on the "sql_query" field.
func SQLQueryHasSuffix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasSuffix(FieldSQLQuery, v))
}

// SQLQueryEqualFold applies the EqualFold predicate on the "sql_query" field.
func SQLQueryEqualFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEqualFold(FieldSQLQuery, v))
}

// SQLQueryContainsFold applies the ContainsFold predicate on the "sql_query" field.
func SQLQueryContainsFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContainsFold(FieldSQLQuery, v))
}

// DatasetUrlsEQ applies the EQ predicate on the "dataset_urls" field.
func DatasetUrlsEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldDatasetUrls, v))
}

// DatasetUrlsNEQ applies the NEQ predicate on the "dataset_urls" field.
func DatasetUrlsNEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldDatasetUrls, v))
}

// DatasetUrlsIn applies the In predicate on the "dataset_urls" field.
func DatasetUrlsIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldDatasetUrls, vs...))
}

// DatasetUrlsNotIn applies the NotIn predicate on the "dataset_urls" field.
func DatasetUrlsNotIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldDatasetUrls, vs...))
}

// DatasetUrlsGT applies the GT predicate on the "dataset_urls" field.
func DatasetUrlsGT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldDatasetUrls, v))
}

// DatasetUrlsGTE applies the GTE predicate on the "dataset_urls" field.
func DatasetUrlsGTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldDatasetUrls, v))
}

// DatasetUrlsLT applies the LT predicate on the "dataset_urls" field.
func DatasetUrlsLT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldDatasetUrls, v))
}

// DatasetUrlsLTE applies the LTE predicate on the "dataset_urls" field.
func DatasetUrlsLTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldDatasetUrls, v))
}

// DatasetUrlsContains applies the Contains predicate on the "dataset_urls" field.
func DatasetUrlsContains(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContains(FieldDatasetUrls, v))
}

// DatasetUrlsHasPrefix applies the HasPrefix predicate on the "dataset_urls" field.
func DatasetUrlsHasPrefix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasPrefix(FieldDatasetUrls, v))
}

// DatasetUrlsHasSuffix applies the HasSuffix predicate on the "dataset_urls" field.
func DatasetUrlsHasSuffix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasSuffix(FieldDatasetUrls, v))
}

// DatasetUrlsEqualFold applies the EqualFold predicate on the "dataset_urls" field.
func DatasetUrlsEqualFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEqualFold(FieldDatasetUrls, v))
}

// DatasetUrlsContainsFold applies the ContainsFold predicate on the "dataset_urls" field.
func DatasetUrlsContainsFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContainsFold(FieldDatasetUrls, v))
}

// ResultJSONEQ applies the EQ predicate on the "result_json" field.
func ResultJSONEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldResultJSON, v))
}

// ResultJSONNEQ applies the NEQ predicate on the "result_json" field.
func ResultJSONNEQ(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldResultJSON, v))
}

// ResultJSONIn applies the In predicate on the "result_json" field.
func ResultJSONIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldResultJSON, vs...))
}

// ResultJSONNotIn applies the NotIn predicate on the "result_json" field.
func ResultJSONNotIn(vs ...string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldResultJSON, vs...))
}

// ResultJSONGT applies the GT predicate on the "result_json" field.
func ResultJSONGT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldResultJSON, v))
}

// ResultJSONGTE applies the GTE predicate on the "result_json" field.
func ResultJSONGTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldResultJSON, v))
}

// ResultJSONLT applies the LT predicate on the "result_json" field.
func ResultJSONLT(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldResultJSON, v))
}

// ResultJSONLTE applies the LTE predicate on the "result_json" field.
func ResultJSONLTE(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldResultJSON, v))
}

// ResultJSONContains applies the Contains predicate on the "result_json" field.
func ResultJSONContains(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContains(FieldResultJSON, v))
}

// ResultJSONHasPrefix applies the HasPrefix predicate on the "result_json" field.
func ResultJSONHasPrefix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasPrefix(FieldResultJSON, v))
}

// ResultJSONHasSuffix applies the HasSuffix predicate on the "result_json" field.
func ResultJSONHasSuffix(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldHasSuffix(FieldResultJSON, v))
}

// ResultJSONEqualFold applies the EqualFold predicate on the "result_json" field.
func ResultJSONEqualFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEqualFold(FieldResultJSON, v))
}

// ResultJSONContainsFold applies the ContainsFold predicate on the "result_json" field.
func ResultJSONContainsFold(v string) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldContainsFold(FieldResultJSON, v))
}

// RowCountEQ applies the EQ predicate on the "row_count" field.
func RowCountEQ(v int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldRowCount, v))
}

// RowCountNEQ applies the NEQ predicate on the "row_count" field.
func RowCountNEQ(v int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldRowCount, v))
}

// RowCountIn applies the In predicate on the "row_count" field.
func RowCountIn(vs ...int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldRowCount, vs...))
}

// RowCountNotIn applies the NotIn predicate on the "row_count" field.
func RowCountNotIn(vs ...int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldRowCount, vs...))
}

// RowCountGT applies the GT predicate on the "row_count" field.
func RowCountGT(v int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldRowCount, v))
}

// RowCountGTE applies the GTE predicate on the "row_count" field.
func RowCountGTE(v int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldRowCount, v))
}

// RowCountLT applies the LT predicate on the "row_count" field.
func RowCountLT(v int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldRowCount, v))
}

// RowCountLTE applies the LTE predicate on the "row_count" field.
func RowCountLTE(v int) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldRowCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldCreatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.QueryResult {
	return predicate.QueryResult(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueryResult) predicate.QueryResult {
	return predicate.QueryResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueryResult) predicate.QueryResult {
	return predicate.QueryResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueryResult) predicate.QueryResult {
	return predicate.QueryResult(sql.NotPredicates(p))
}
