// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "is_pinned", Type: field.TypeBool, Default: false},
		{Name: "share_token", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversations_users_conversations",
				Columns:    []*schema.Column{ConversationsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_user_id_is_pinned_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[6], ConversationsColumns[2], ConversationsColumns[5]},
			},
			{
				Name:    "conversation_share_token",
				Unique:  true,
				Columns: []*schema.Column{ConversationsColumns[3]},
			},
		},
	}
	// DatasetsColumns holds the columns for the "datasets" table.
	DatasetsColumns = []*schema.Column{
		{Name: "dataset_id", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString, Size: 2147483647},
		{Name: "table_name", Type: field.TypeString},
		{Name: "row_count", Type: field.TypeInt64, Default: 0},
		{Name: "column_count", Type: field.TypeInt, Default: 0},
		{Name: "schema", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"loading", "ready", "error"}, Default: "loading"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "loaded_at", Type: field.TypeTime},
		{Name: "file_size_bytes", Type: field.TypeInt64, Nullable: true},
		{Name: "column_descriptions", Type: field.TypeJSON, Nullable: true},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// DatasetsTable holds the schema information for the "datasets" table.
	DatasetsTable = &schema.Table{
		Name:       "datasets",
		Columns:    DatasetsColumns,
		PrimaryKey: []*schema.Column{DatasetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "datasets_conversations_datasets",
				Columns:    []*schema.Column{DatasetsColumns[11]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dataset_conversation_id_table_name",
				Unique:  true,
				Columns: []*schema.Column{DatasetsColumns[11], DatasetsColumns[2]},
			},
			{
				Name:    "dataset_conversation_id_loaded_at",
				Unique:  false,
				Columns: []*schema.Column{DatasetsColumns[11], DatasetsColumns[8]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "sql_executions", Type: field.TypeJSON, Nullable: true},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tool_call_trace", Type: field.TypeJSON, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[9]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[9], MessagesColumns[8]},
			},
		},
	}
	// QueryHistoriesColumns holds the columns for the "query_histories" table.
	QueryHistoriesColumns = []*schema.Column{
		{Name: "history_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "sql_query", Type: field.TypeString, Size: 2147483647},
		{Name: "row_count", Type: field.TypeInt64, Default: 0},
		{Name: "execution_time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QueryHistoriesTable holds the schema information for the "query_histories" table.
	QueryHistoriesTable = &schema.Table{
		Name:       "query_histories",
		Columns:    QueryHistoriesColumns,
		PrimaryKey: []*schema.Column{QueryHistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queryhistory_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{QueryHistoriesColumns[1], QueryHistoriesColumns[7]},
			},
			{
				Name:    "queryhistory_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{QueryHistoriesColumns[2]},
			},
		},
	}
	// QueryResultsColumns holds the columns for the "query_results" table.
	QueryResultsColumns = []*schema.Column{
		{Name: "cache_key", Type: field.TypeString, Unique: true},
		{Name: "sql_query", Type: field.TypeString, Size: 2147483647},
		{Name: "dataset_urls", Type: field.TypeString, Size: 2147483647},
		{Name: "result_json", Type: field.TypeString, Size: 2147483647},
		{Name: "row_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// QueryResultsTable holds the schema information for the "query_results" table.
	QueryResultsTable = &schema.Table{
		Name:       "query_results",
		Columns:    QueryResultsColumns,
		PrimaryKey: []*schema.Column{QueryResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queryresult_expires_at",
				Unique:  false,
				Columns: []*schema.Column{QueryResultsColumns[6]},
			},
			{
				Name:    "queryresult_created_at",
				Unique:  false,
				Columns: []*schema.Column{QueryResultsColumns[5]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_token", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_users_sessions",
				Columns:    []*schema.Column{SessionsColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3]},
			},
			{
				Name:    "session_expires_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2]},
			},
		},
	}
	// TokenUsagesColumns holds the columns for the "token_usages" table.
	TokenUsagesColumns = []*schema.Column{
		{Name: "usage_id", Type: field.TypeString, Unique: true},
		{Name: "model", Type: field.TypeString, Default: ""},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// TokenUsagesTable holds the schema information for the "token_usages" table.
	TokenUsagesTable = &schema.Table{
		Name:       "token_usages",
		Columns:    TokenUsagesColumns,
		PrimaryKey: []*schema.Column{TokenUsagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "token_usages_conversations_token_usage",
				Columns:    []*schema.Column{TokenUsagesColumns[6]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "token_usages_users_token_usage",
				Columns:    []*schema.Column{TokenUsagesColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tokenusage_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TokenUsagesColumns[7], TokenUsagesColumns[5]},
			},
			{
				Name:    "tokenusage_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{TokenUsagesColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "auth_provider_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "last_login", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_auth_provider_id",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConversationsTable,
		DatasetsTable,
		MessagesTable,
		QueryHistoriesTable,
		QueryResultsTable,
		SessionsTable,
		TokenUsagesTable,
		UsersTable,
	}
)

func init() {
	ConversationsTable.ForeignKeys[0].RefTable = UsersTable
	DatasetsTable.ForeignKeys[0].RefTable = ConversationsTable
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
	SessionsTable.ForeignKeys[0].RefTable = UsersTable
	TokenUsagesTable.ForeignKeys[0].RefTable = ConversationsTable
	TokenUsagesTable.ForeignKeys[1].RefTable = UsersTable
}
