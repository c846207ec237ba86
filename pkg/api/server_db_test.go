package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatdf/chatdf/ent"
	entmessage "github.com/chatdf/chatdf/ent/message"
	"github.com/chatdf/chatdf/pkg/catalog"
	"github.com/chatdf/chatdf/pkg/chat"
	"github.com/chatdf/chatdf/pkg/config"
	"github.com/chatdf/chatdf/pkg/database"
	"github.com/chatdf/chatdf/pkg/dataeng"
	"github.com/chatdf/chatdf/pkg/events"
	"github.com/chatdf/chatdf/pkg/filecache"
	"github.com/chatdf/chatdf/pkg/llm"
	"github.com/chatdf/chatdf/pkg/ratelimit"
	"github.com/chatdf/chatdf/pkg/resultcache"
	testdb "github.com/chatdf/chatdf/test/database"
)

// scriptedLLM replays one chunk sequence per Generate call.
type scriptedLLM struct {
	scripts [][]llm.Chunk
	calls   int
}

func (s *scriptedLLM) Generate(_ context.Context, _ *llm.GenerateInput) (<-chan llm.Chunk, error) {
	var script []llm.Chunk
	if s.calls < len(s.scripts) {
		script = s.scripts[s.calls]
	}
	s.calls++
	ch := make(chan llm.Chunk, len(script))
	for _, c := range script {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (s *scriptedLLM) Close() error { return nil }

func serverConfig(t *testing.T) *config.Config {
	return &config.Config{
		TokenLimit:                 1000,
		RateLimitWindow:            24 * time.Hour,
		WarningThresholdPct:        80,
		MaxDatasetsPerConversation: 10,
		UploadDir:                  t.TempDir(),
		MaxToolCallsPerTurn:        5,
		MaxSQLRetries:              3,
		MaxLLMRetries:              3,
		LLMRetryBaseDelay:          time.Millisecond,
		MaxContextMessages:         50,
		MaxContextTokens:           200_000,
		SessionDuration:            time.Hour,
	}
}

func newTestServer(t *testing.T, db *database.Client, cfg *config.Config, llmClient llm.Client) *Server {
	t.Helper()
	files, err := filecache.New(t.TempDir(), 1<<30, 1<<30, time.Hour)
	require.NoError(t, err)
	results := resultcache.New(db.Client, 10, time.Hour, 100)
	pool := dataeng.NewPool(cfg, files, results)
	cat := catalog.NewService(db.Client, cfg, nil, pool)
	acc := ratelimit.NewAccountant(db.Client, cfg)
	engine := chat.NewEngine(db.Client, llmClient, pool, cat, acc, events.NewManager(time.Second), cfg, "test-model")
	return NewServer(db, cfg, engine, cat, pool, acc, events.NewManager(time.Second), files, results)
}

// seedSession creates a user, a valid session, and a conversation.
func seedSession(t *testing.T, client *ent.Client, sessionDuration time.Duration) (userID, token, conversationID string) {
	t.Helper()
	ctx := context.Background()

	u, err := client.User.Create().
		SetID(uuid.NewString()).
		SetAuthProviderID(uuid.NewString()).
		Save(ctx)
	require.NoError(t, err)

	token, err = newSessionToken()
	require.NoError(t, err)
	_, err = client.Session.Create().
		SetID(token).
		SetUserID(u.ID).
		SetExpiresAt(time.Now().Add(sessionDuration)).
		Save(ctx)
	require.NoError(t, err)

	conv, err := client.Conversation.Create().
		SetID(uuid.NewString()).
		SetUserID(u.ID).
		Save(ctx)
	require.NoError(t, err)
	return u.ID, token, conv.ID
}

func postMessage(s *Server, token, conversationID, content string) *httptest.ResponseRecorder {
	body := strings.NewReader(`{"content":` + `"` + content + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conversations/"+conversationID+"/messages", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestSendMessageRateLimit(t *testing.T) {
	db := testdb.NewTestClient(t)
	cfg := serverConfig(t)
	s := newTestServer(t, db, cfg, &scriptedLLM{})
	ctx := context.Background()
	userID, token, convID := seedSession(t, db.Client, cfg.SessionDuration)

	// Exhaust the budget before the message arrives.
	require.NoError(t, s.accountant.RecordUsage(ctx, userID, "", "test-model", cfg.TokenLimit, 0, 0))

	rec := postMessage(s, token, convID, "one more question")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// The rejected message is persisted; no assistant reply exists.
	msgs, err := db.Client.Message.Query().
		Where(entmessage.ConversationIDEQ(convID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, entmessage.RoleUser, msgs[0].Role)
	assert.Equal(t, "one more question", msgs[0].Content)
}

func TestSendMessageAccepted(t *testing.T) {
	db := testdb.NewTestClient(t)
	cfg := serverConfig(t)
	s := newTestServer(t, db, cfg, &scriptedLLM{scripts: [][]llm.Chunk{{
		&llm.TextChunk{Content: "Revenue is up."},
		&llm.UsageChunk{InputTokens: 10, OutputTokens: 5},
	}}})
	ctx := context.Background()
	_, token, convID := seedSession(t, db.Client, cfg.SessionDuration)

	rec := postMessage(s, token, convID, "How is revenue?")
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "processing")

	// Shutdown waits for the background turn before returning.
	waitCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(waitCtx))

	msgs, err := db.Client.Message.Query().
		Where(entmessage.ConversationIDEQ(convID)).
		Order(ent.Asc(entmessage.FieldCreatedAt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, entmessage.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "Revenue is up.", msgs[1].Content)
}

func TestSendMessageValidation(t *testing.T) {
	db := testdb.NewTestClient(t)
	cfg := serverConfig(t)
	s := newTestServer(t, db, cfg, &scriptedLLM{})
	_, token, convID := seedSession(t, db.Client, cfg.SessionDuration)

	t.Run("empty content rejected", func(t *testing.T) {
		rec := postMessage(s, token, convID, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown conversation is 404", func(t *testing.T) {
		rec := postMessage(s, token, uuid.NewString(), "hello")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		rec := postMessage(s, "", convID, "hello")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign conversation is 403", func(t *testing.T) {
		_, otherToken, _ := seedSession(t, db.Client, cfg.SessionDuration)
		rec := postMessage(s, otherToken, convID, "hello")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
