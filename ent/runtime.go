// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/chatdf/chatdf/ent/conversation"
	"github.com/chatdf/chatdf/ent/dataset"
	"github.com/chatdf/chatdf/ent/message"
	"github.com/chatdf/chatdf/ent/queryhistory"
	"github.com/chatdf/chatdf/ent/queryresult"
	"github.com/chatdf/chatdf/ent/schema"
	"github.com/chatdf/chatdf/ent/session"
	"github.com/chatdf/chatdf/ent/tokenusage"
	"github.com/chatdf/chatdf/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescTitle is the schema descriptor for title field.
	conversationDescTitle := conversationFields[2].Descriptor()
	// conversation.DefaultTitle holds the default value on creation for the title field.
	conversation.DefaultTitle = conversationDescTitle.Default.(string)
	// conversationDescIsPinned is the schema descriptor for is_pinned field.
	conversationDescIsPinned := conversationFields[3].Descriptor()
	// conversation.DefaultIsPinned holds the default value on creation for the is_pinned field.
	conversation.DefaultIsPinned = conversationDescIsPinned.Default.(bool)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[5].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[6].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	datasetFields := schema.Dataset{}.Fields()
	_ = datasetFields
	// datasetDescRowCount is the schema descriptor for row_count field.
	datasetDescRowCount := datasetFields[4].Descriptor()
	// dataset.DefaultRowCount holds the default value on creation for the row_count field.
	dataset.DefaultRowCount = datasetDescRowCount.Default.(int64)
	// datasetDescColumnCount is the schema descriptor for column_count field.
	datasetDescColumnCount := datasetFields[5].Descriptor()
	// dataset.DefaultColumnCount holds the default value on creation for the column_count field.
	dataset.DefaultColumnCount = datasetDescColumnCount.Default.(int)
	// datasetDescLoadedAt is the schema descriptor for loaded_at field.
	datasetDescLoadedAt := datasetFields[9].Descriptor()
	// dataset.DefaultLoadedAt holds the default value on creation for the loaded_at field.
	dataset.DefaultLoadedAt = datasetDescLoadedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescInputTokens is the schema descriptor for input_tokens field.
	messageDescInputTokens := messageFields[7].Descriptor()
	// message.DefaultInputTokens holds the default value on creation for the input_tokens field.
	message.DefaultInputTokens = messageDescInputTokens.Default.(int)
	// messageDescOutputTokens is the schema descriptor for output_tokens field.
	messageDescOutputTokens := messageFields[8].Descriptor()
	// message.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	message.DefaultOutputTokens = messageDescOutputTokens.Default.(int)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[9].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	queryhistoryFields := schema.QueryHistory{}.Fields()
	_ = queryhistoryFields
	// queryhistoryDescRowCount is the schema descriptor for row_count field.
	queryhistoryDescRowCount := queryhistoryFields[4].Descriptor()
	// queryhistory.DefaultRowCount holds the default value on creation for the row_count field.
	queryhistory.DefaultRowCount = queryhistoryDescRowCount.Default.(int64)
	// queryhistoryDescExecutionTimeMs is the schema descriptor for execution_time_ms field.
	queryhistoryDescExecutionTimeMs := queryhistoryFields[5].Descriptor()
	// queryhistory.DefaultExecutionTimeMs holds the default value on creation for the execution_time_ms field.
	queryhistory.DefaultExecutionTimeMs = queryhistoryDescExecutionTimeMs.Default.(int64)
	// queryhistoryDescCreatedAt is the schema descriptor for created_at field.
	queryhistoryDescCreatedAt := queryhistoryFields[7].Descriptor()
	// queryhistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	queryhistory.DefaultCreatedAt = queryhistoryDescCreatedAt.Default.(func() time.Time)
	queryresultFields := schema.QueryResult{}.Fields()
	_ = queryresultFields
	// queryresultDescRowCount is the schema descriptor for row_count field.
	queryresultDescRowCount := queryresultFields[4].Descriptor()
	// queryresult.DefaultRowCount holds the default value on creation for the row_count field.
	queryresult.DefaultRowCount = queryresultDescRowCount.Default.(int)
	// queryresultDescCreatedAt is the schema descriptor for created_at field.
	queryresultDescCreatedAt := queryresultFields[5].Descriptor()
	// queryresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	queryresult.DefaultCreatedAt = queryresultDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[2].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	tokenusageFields := schema.TokenUsage{}.Fields()
	_ = tokenusageFields
	// tokenusageDescModel is the schema descriptor for model field.
	tokenusageDescModel := tokenusageFields[3].Descriptor()
	// tokenusage.DefaultModel holds the default value on creation for the model field.
	tokenusage.DefaultModel = tokenusageDescModel.Default.(string)
	// tokenusageDescInputTokens is the schema descriptor for input_tokens field.
	tokenusageDescInputTokens := tokenusageFields[4].Descriptor()
	// tokenusage.DefaultInputTokens holds the default value on creation for the input_tokens field.
	tokenusage.DefaultInputTokens = tokenusageDescInputTokens.Default.(int)
	// tokenusageDescOutputTokens is the schema descriptor for output_tokens field.
	tokenusageDescOutputTokens := tokenusageFields[5].Descriptor()
	// tokenusage.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	tokenusage.DefaultOutputTokens = tokenusageDescOutputTokens.Default.(int)
	// tokenusageDescCost is the schema descriptor for cost field.
	tokenusageDescCost := tokenusageFields[6].Descriptor()
	// tokenusage.DefaultCost holds the default value on creation for the cost field.
	tokenusage.DefaultCost = tokenusageDescCost.Default.(float64)
	// tokenusageDescCreatedAt is the schema descriptor for created_at field.
	tokenusageDescCreatedAt := tokenusageFields[7].Descriptor()
	// tokenusage.DefaultCreatedAt holds the default value on creation for the created_at field.
	tokenusage.DefaultCreatedAt = tokenusageDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
