// Code generated by ent, DO NOT EDIT.

package dataset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chatdf/chatdf/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContainsFold(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldConversationID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldURL, v))
}

// TableName applies equality check predicate on the "table_name" field. It's identical to TableNameEQ.
func TableName(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldTableName, v))
}

// RowCount applies equality check predicate on the "row_count" field. It's identical to RowCountEQ.
func RowCount(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldRowCount, v))
}

// ColumnCount applies equality check predicate on the "column_count" field. It's identical to ColumnCountEQ.
func ColumnCount(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldColumnCount, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldErrorMessage, v))
}

// LoadedAt applies equality check predicate on the "loaded_at" field. It's identical to LoadedAtEQ.
func LoadedAt(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldLoadedAt, v))
}

// FileSizeBytes applies equality check predicate on the "file_size_bytes" field. It's identical to FileSizeBytesEQ.
func FileSizeBytes(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldFileSizeBytes, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContainsFold(FieldConversationID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContainsFold(FieldURL, v))
}

// TableNameEQ applies the EQ predicate on the "table_name" field.
func TableNameEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldTableName, v))
}

// TableNameNEQ applies the NEQ predicate on the "table_name" field.
func TableNameNEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldTableName, v))
}

// TableNameIn applies the In predicate on the "table_name" field.
func TableNameIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldTableName, vs...))
}

// TableNameNotIn applies the NotIn predicate on the "table_name" field.
func TableNameNotIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldTableName, vs...))
}

// TableNameGT applies the GT predicate on the "table_name" field.
func TableNameGT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldTableName, v))
}

// TableNameGTE applies the GTE predicate on the "table_name" field.
func TableNameGTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldTableName, v))
}

// TableNameLT applies the LT predicate on the "table_name" field.
func TableNameLT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldTableName, v))
}

// TableNameLTE applies the LTE predicate on the "table_name" field.
func TableNameLTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldTableName, v))
}

// TableNameContains applies the Contains predicate on the "table_name" field.
func TableNameContains(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContains(FieldTableName, v))
}

// TableNameHasPrefix applies the HasPrefix predicate on the "table_name" field.
func TableNameHasPrefix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasPrefix(FieldTableName, v))
}

// TableNameHasSuffix applies the HasSuffix predicate on the "table_name" field.
func TableNameHasSuffix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasSuffix(FieldTableName, v))
}

// TableNameEqualFold applies the EqualFold predicate on the "table_name" field.
func TableNameEqualFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEqualFold(FieldTableName, v))
}

// TableNameContainsFold applies the ContainsFold predicate on the "table_name" field.
func TableNameContainsFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContainsFold(FieldTableName, v))
}

// RowCountEQ applies the EQ predicate on the "row_count" field.
func RowCountEQ(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldRowCount, v))
}

// RowCountNEQ applies the NEQ predicate on the "row_count" field.
func RowCountNEQ(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldRowCount, v))
}

// RowCountIn applies the In predicate on the "row_count" field.
func RowCountIn(vs ...int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldRowCount, vs...))
}

// RowCountNotIn applies the NotIn predicate on the "row_count" field.
func RowCountNotIn(vs ...int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldRowCount, vs...))
}

// RowCountGT applies the GT predicate on the "row_count" field.
func RowCountGT(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldRowCount, v))
}

// RowCountGTE applies the GTE predicate on the "row_count" field.
func RowCountGTE(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldRowCount, v))
}

// RowCountLT applies the LT predicate on the "row_count" field.
func RowCountLT(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldRowCount, v))
}

// RowCountLTE applies the LTE predicate on the "row_count" field.
func RowCountLTE(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldRowCount, v))
}

// ColumnCountEQ applies the EQ predicate on the "column_count" field.
func ColumnCountEQ(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldColumnCount, v))
}

// ColumnCountNEQ applies the NEQ predicate on the "column_count" field.
func ColumnCountNEQ(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldColumnCount, v))
}

// ColumnCountIn applies the In predicate on the "column_count" field.
func ColumnCountIn(vs ...int) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldColumnCount, vs...))
}

// ColumnCountNotIn applies the NotIn predicate on the "column_count" field.
func ColumnCountNotIn(vs ...int) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldColumnCount, vs...))
}

// ColumnCountGT applies the GT predicate on the "column_count" field.
func ColumnCountGT(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldColumnCount, v))
}

// ColumnCountGTE applies the GTE predicate on the "column_count" field.
func ColumnCountGTE(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldColumnCount, v))
}

// ColumnCountLT applies the LT predicate on the "column_count" field.
func ColumnCountLT(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldColumnCount, v))
}

// ColumnCountLTE applies the LTE predicate on the "column_count" field.
func ColumnCountLTE(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldColumnCount, v))
}

// SchemaIsNil applies the IsNil predicate on the "schema" field.
func SchemaIsNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldIsNull(FieldSchema))
}

// SchemaNotNil applies the NotNil predicate on the "schema" field.
func SchemaNotNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldNotNull(FieldSchema))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContainsFold(FieldErrorMessage, v))
}

// LoadedAtEQ applies the EQ predicate on the "loaded_at" field.
func LoadedAtEQ(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldLoadedAt, v))
}

// LoadedAtNEQ applies the NEQ predicate on the "loaded_at" field.
func LoadedAtNEQ(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldLoadedAt, v))
}

// LoadedAtIn applies the In predicate on the "loaded_at" field.
func LoadedAtIn(vs ...time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldLoadedAt, vs...))
}

// LoadedAtNotIn applies the NotIn predicate on the "loaded_at" field.
func LoadedAtNotIn(vs ...time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldLoadedAt, vs...))
}

// LoadedAtGT applies the GT predicate on the "loaded_at" field.
func LoadedAtGT(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldLoadedAt, v))
}

// LoadedAtGTE applies the GTE predicate on the "loaded_at" field.
func LoadedAtGTE(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldLoadedAt, v))
}

// LoadedAtLT applies the LT predicate on the "loaded_at" field.
func LoadedAtLT(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldLoadedAt, v))
}

// LoadedAtLTE applies the LTE predicate on the "loaded_at" field.
func LoadedAtLTE(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldLoadedAt, v))
}

// FileSizeBytesEQ applies the EQ predicate on the "file_size_bytes" field.
func FileSizeBytesEQ(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesNEQ applies the NEQ predicate on the "file_size_bytes" field.
func FileSizeBytesNEQ(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesIn applies the In predicate on the "file_size_bytes" field.
func FileSizeBytesIn(vs ...int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesNotIn applies the NotIn predicate on the "file_size_bytes" field.
func FileSizeBytesNotIn(vs ...int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesGT applies the GT predicate on the "file_size_bytes" field.
func FileSizeBytesGT(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldFileSizeBytes, v))
}

// FileSizeBytesGTE applies the GTE predicate on the "file_size_bytes" field.
func FileSizeBytesGTE(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldFileSizeBytes, v))
}

// FileSizeBytesLT applies the LT predicate on the "file_size_bytes" field.
func FileSizeBytesLT(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldFileSizeBytes, v))
}

// FileSizeBytesLTE applies the LTE predicate on the "file_size_bytes" field.
func FileSizeBytesLTE(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldFileSizeBytes, v))
}

// FileSizeBytesIsNil applies the IsNil predicate on the "file_size_bytes" field.
func FileSizeBytesIsNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldIsNull(FieldFileSizeBytes))
}

// FileSizeBytesNotNil applies the NotNil predicate on the "file_size_bytes" field.
func FileSizeBytesNotNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldNotNull(FieldFileSizeBytes))
}

// ColumnDescriptionsIsNil applies the IsNil predicate on the "column_descriptions" field.
func ColumnDescriptionsIsNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldIsNull(FieldColumnDescriptions))
}

// ColumnDescriptionsNotNil applies the NotNil predicate on the "column_descriptions" field.
func ColumnDescriptionsNotNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldNotNull(FieldColumnDescriptions))
}

// HasConversation applies the HasEdge predicate on the "conversation" edge.
func HasConversation() predicate.Dataset {
	return predicate.Dataset(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationWith applies the HasEdge predicate on the "conversation" edge with a given conditions (other predicates).
func HasConversationWith(preds ...predicate.Conversation) predicate.Dataset {
	return predicate.Dataset(func(s *sql.Selector) {
		step := newConversationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Dataset) predicate.Dataset {
	return predicate.Dataset(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Dataset) predicate.Dataset {
	return predicate.Dataset(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Dataset) predicate.Dataset {
	return predicate.Dataset(sql.NotPredicates(p))
}
