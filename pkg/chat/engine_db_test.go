package chat

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatdf/chatdf/ent"
	entmessage "github.com/chatdf/chatdf/ent/message"
	"github.com/chatdf/chatdf/pkg/catalog"
	"github.com/chatdf/chatdf/pkg/config"
	"github.com/chatdf/chatdf/pkg/events"
	"github.com/chatdf/chatdf/pkg/llm"
	"github.com/chatdf/chatdf/pkg/ratelimit"
	testdb "github.com/chatdf/chatdf/test/database"
)

func turnConfig() *config.Config {
	return &config.Config{
		TokenLimit:                 1000,
		RateLimitWindow:            24 * time.Hour,
		WarningThresholdPct:        80,
		MaxDatasetsPerConversation: 10,
		MaxToolCallsPerTurn:        5,
		MaxSQLRetries:              3,
		MaxLLMRetries:              3,
		LLMRetryBaseDelay:          time.Millisecond,
		MaxContextMessages:         50,
		MaxContextTokens:           200_000,
	}
}

func dbEngine(t *testing.T, client *ent.Client, fake *fakeLLM, cfg *config.Config) (*Engine, *ratelimit.Accountant) {
	t.Helper()
	cat := catalog.NewService(client, cfg, nil, nil)
	acc := ratelimit.NewAccountant(client, cfg)
	e := NewEngine(client, fake, nil, cat, acc, events.NewManager(time.Second), cfg, "test-model")
	return e, acc
}

func seedConversation(t *testing.T, client *ent.Client) (userID, conversationID string) {
	t.Helper()
	ctx := context.Background()
	u, err := client.User.Create().
		SetID(uuid.NewString()).
		SetAuthProviderID(uuid.NewString()).
		Save(ctx)
	require.NoError(t, err)
	conv, err := client.Conversation.Create().
		SetID(uuid.NewString()).
		SetUserID(u.ID).
		Save(ctx)
	require.NoError(t, err)
	return u.ID, conv.ID
}

func TestTurnLifecycle(t *testing.T) {
	db := testdb.NewTestClient(t)
	fake := &fakeLLM{scripts: [][]llm.Chunk{{
		&llm.TextChunk{Content: "Revenue is up."},
		&llm.UsageChunk{InputTokens: 10, OutputTokens: 5},
	}}}
	e, acc := dbEngine(t, db.Client, fake, turnConfig())
	ctx := context.Background()
	userID, convID := seedConversation(t, db.Client)

	require.NoError(t, e.AdmitMessage(ctx, userID, convID, "How is revenue?"))
	require.NoError(t, e.ProcessMessage(ctx, userID, convID))

	msgs, err := db.Client.Message.Query().
		Where(entmessage.ConversationIDEQ(convID)).
		Order(ent.Asc(entmessage.FieldCreatedAt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, entmessage.RoleUser, msgs[0].Role)
	assert.Equal(t, "How is revenue?", msgs[0].Content)
	assert.Equal(t, entmessage.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "Revenue is up.", msgs[1].Content)
	assert.Equal(t, 10, msgs[1].InputTokens)
	assert.Equal(t, 5, msgs[1].OutputTokens)

	// First message auto-titles the conversation.
	conv, err := db.Client.Conversation.Get(ctx, convID)
	require.NoError(t, err)
	assert.Equal(t, "How is revenue?", conv.Title)

	// The turn's tokens landed in the usage ledger.
	status, err := acc.CheckLimit(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 15, status.UsageTokens)
	assert.True(t, status.Allowed)
}

func TestAdmitMessageRateLimited(t *testing.T) {
	db := testdb.NewTestClient(t)
	fake := &fakeLLM{}
	e, acc := dbEngine(t, db.Client, fake, turnConfig())
	ctx := context.Background()
	userID, convID := seedConversation(t, db.Client)

	require.NoError(t, acc.RecordUsage(ctx, userID, "", "test-model", 1000, 0, 0))

	err := e.AdmitMessage(ctx, userID, convID, "one more question")
	require.ErrorIs(t, err, ErrRateLimited)

	// The rejected message is still persisted.
	msgs, err := db.Client.Message.Query().
		Where(entmessage.ConversationIDEQ(convID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, entmessage.RoleUser, msgs[0].Role)
	assert.Equal(t, "one more question", msgs[0].Content)

	// No turn ran, so the model was never called.
	assert.Empty(t, fake.inputs)
}
