// Code generated by ent, DO NOT EDIT.

package queryhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/chatdf/chatdf/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEQ(FieldUserID, v))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEQ(FieldConversationID, v))
}

// SQLQuery applies equality check predicate on the "sql_query" field. It's identical to SQLQueryEQ.
func SQLQuery(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEQ(FieldSQLQuery, v))
}

// RowCount applies equality check predicate on the "row_count" field. It's identical to RowCountEQ.
func RowCount(v int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEQ(FieldRowCount, v))
}

// ExecutionTimeMs applies equality check predicate on the "execution_time_ms" field. It's identical to ExecutionTimeMsEQ.
func ExecutionTimeMs(v int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldContainsFold(FieldUserID, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldContainsFold(FieldConversationID, v))
}

// SQLQueryEQ applies the EQ predicate on the "sql_query" field.
func SQLQueryEQ(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEQ(FieldSQLQuery, v))
}

// SQLQueryNEQ applies the NEQ predicate on the "sql_query" field.
func SQLQueryNEQ(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldNEQ(FieldSQLQuery, v))
}

// SQLQueryIn applies the In predicate on the "sql_query" field.
func SQLQueryIn(vs ...string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldIn(FieldSQLQuery, vs...))
}

// SQLQueryNotIn applies the NotIn predicate on the "sql_query" field.
func SQLQueryNotIn(vs ...string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldNotIn(FieldSQLQuery, vs...))
}

// SQLQueryGT applies the GT predicate on the "sql_query" field.
func SQLQueryGT(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldGT(FieldSQLQuery, v))
}

// SQLQueryGTE applies the GTE predicate on the "sql_query" field.
func SQLQueryGTE(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldGTE(FieldSQLQuery, v))
}

// SQLQueryLT applies the LT predicate on the "sql_query" field.
func SQLQueryLT(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldLT(FieldSQLQuery, v))
}

// SQLQueryLTE applies the LTE predicate on the "sql_query" field.
func SQLQueryLTE(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldLTE(FieldSQLQuery, v))
}

// SQLQueryContains applies the Contains predicate on the "sql_query" field.
func SQLQueryContains(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldContains(FieldSQLQuery, v))
}

// SQLQueryHasPrefix applies the HasPrefix predicate on the "sql_query" field.
func SQLQueryHasPrefix(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldHasPrefix(FieldSQLQuery, v))
}

// SQLQueryHasSuffix applies the HasSuffix predicate on the "sql_query" field.
func SQLQueryHasSuffix(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldHasSuffix(FieldSQLQuery, v))
}

// SQLQueryEqualFold applies the EqualFold predicate on the "sql_query" field.
func SQLQueryEqualFold(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEqualFold(FieldSQLQuery, v))
}

// SQLQueryContainsFold applies the ContainsFold predicate on the "sql_query" field.
func SQLQueryContainsFold(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldContainsFold(FieldSQLQuery, v))
}

// RowCountEQ applies the EQ predicate on the "row_count" field.
func RowCountEQ(v int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEQ(FieldRowCount, v))
}

// RowCountNEQ applies the NEQ predicate on the "row_count" field.
func RowCountNEQ(v int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldNEQ(FieldRowCount, v))
}

// RowCountIn applies the In predicate on the "row_count" field.
func RowCountIn(vs ...int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldIn(FieldRowCount, vs...))
}

// RowCountNotIn applies the NotIn predicate on the "row_count" field.
func RowCountNotIn(vs ...int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldNotIn(FieldRowCount, vs...))
}

// RowCountGT applies the GT predicate on the "row_count" field.
func RowCountGT(v int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldGT(FieldRowCount, v))
}

// RowCountGTE applies the GTE predicate on the "row_count" field.
func RowCountGTE(v int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldGTE(FieldRowCount, v))
}

// RowCountLT applies the LT predicate on the "row_count" field.
func RowCountLT(v int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldLT(FieldRowCount, v))
}

// RowCountLTE applies the LTE predicate on the "row_count" field.
func RowCountLTE(v int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldLTE(FieldRowCount, v))
}

// ExecutionTimeMsEQ applies the EQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsEQ(v int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsNEQ applies the NEQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsNEQ(v int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldNEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsIn applies the In predicate on the "execution_time_ms" field.
func ExecutionTimeMsIn(vs ...int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsNotIn applies the NotIn predicate on the "execution_time_ms" field.
func ExecutionTimeMsNotIn(vs ...int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldNotIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsGT applies the GT predicate on the "execution_time_ms" field.
func ExecutionTimeMsGT(v int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldGT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsGTE applies the GTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsGTE(v int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldGTE(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLT applies the LT predicate on the "execution_time_ms" field.
func ExecutionTimeMsLT(v int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldLT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLTE applies the LTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsLTE(v int64) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldLTE(FieldExecutionTimeMs, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QueryHistory {
	return predicate.QueryHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueryHistory) predicate.QueryHistory {
	return predicate.QueryHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueryHistory) predicate.QueryHistory {
	return predicate.QueryHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueryHistory) predicate.QueryHistory {
	return predicate.QueryHistory(sql.NotPredicates(p))
}
