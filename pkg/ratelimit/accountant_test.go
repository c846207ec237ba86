package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatdf/chatdf/ent"
	"github.com/chatdf/chatdf/pkg/config"
	testdb "github.com/chatdf/chatdf/test/database"
)

func accountantConfig() *config.Config {
	return &config.Config{
		TokenLimit:          1000,
		RateLimitWindow:     24 * time.Hour,
		WarningThresholdPct: 80,
	}
}

func seedUser(t *testing.T, client *ent.Client, providerID string) string {
	t.Helper()
	u, err := client.User.Create().
		SetID(uuid.NewString()).
		SetAuthProviderID(providerID).
		Save(context.Background())
	require.NoError(t, err)
	return u.ID
}

func TestAccountantBudget(t *testing.T) {
	db := testdb.NewTestClient(t)
	acc := NewAccountant(db.Client, accountantConfig())
	ctx := context.Background()
	userID := seedUser(t, db.Client, "budget-user")

	t.Run("empty window allows and omits reset", func(t *testing.T) {
		status, err := acc.CheckLimit(ctx, userID)
		require.NoError(t, err)
		assert.True(t, status.Allowed)
		assert.Equal(t, 0, status.UsageTokens)
		assert.Equal(t, 1000, status.RemainingTokens)
		assert.Nil(t, status.ResetsInSeconds)
	})

	t.Run("input and output tokens both count", func(t *testing.T) {
		require.NoError(t, acc.RecordUsage(ctx, userID, "", "test-model", 100, 50, 0))
		status, err := acc.CheckLimit(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 150, status.UsageTokens)
		assert.Equal(t, 850, status.RemainingTokens)
		assert.False(t, status.Warning)
		assert.Nil(t, status.ResetsInSeconds)
	})

	t.Run("warning fires at the threshold", func(t *testing.T) {
		require.NoError(t, acc.RecordUsage(ctx, userID, "", "test-model", 0, 650, 0))
		status, err := acc.CheckLimit(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 800, status.UsageTokens)
		assert.True(t, status.Warning)
		assert.True(t, status.Allowed)
		assert.Nil(t, status.ResetsInSeconds)
	})

	t.Run("blocked at exactly the limit with a reset time", func(t *testing.T) {
		require.NoError(t, acc.RecordUsage(ctx, userID, "", "test-model", 200, 0, 0))
		status, err := acc.CheckLimit(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 1000, status.UsageTokens)
		assert.Equal(t, 0, status.RemainingTokens)
		assert.False(t, status.Allowed)
		require.NotNil(t, status.ResetsInSeconds)
		assert.Greater(t, *status.ResetsInSeconds, int64(0))
	})
}

func TestAccountantWindowEdge(t *testing.T) {
	db := testdb.NewTestClient(t)
	cfg := accountantConfig()
	acc := NewAccountant(db.Client, cfg)
	ctx := context.Background()
	userID := seedUser(t, db.Client, "window-user")

	now := time.Now()

	// A record a full window old has aged out; a younger one still counts.
	_, err := db.Client.TokenUsage.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetModel("test-model").
		SetInputTokens(400).
		SetCreatedAt(now.Add(-cfg.RateLimitWindow)).
		Save(ctx)
	require.NoError(t, err)

	status, err := acc.CheckLimit(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, status.UsageTokens)

	acc.ClearCache()
	_, err = db.Client.TokenUsage.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetModel("test-model").
		SetInputTokens(300).
		SetCreatedAt(now.Add(-cfg.RateLimitWindow + time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	status, err = acc.CheckLimit(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 300, status.UsageTokens)
}

func TestAccountantMemo(t *testing.T) {
	db := testdb.NewTestClient(t)
	cfg := accountantConfig()
	cfg.RateLimitCacheTTL = time.Minute
	acc := NewAccountant(db.Client, cfg)
	ctx := context.Background()
	userID := seedUser(t, db.Client, "memo-user")

	status, err := acc.CheckLimit(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, status.UsageTokens)

	// A ledger row written behind the accountant's back is invisible until
	// the memo expires or is invalidated.
	_, err = db.Client.TokenUsage.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetModel("test-model").
		SetInputTokens(500).
		Save(ctx)
	require.NoError(t, err)

	status, err = acc.CheckLimit(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, status.UsageTokens)

	// RecordUsage invalidates, so the next check sees everything.
	require.NoError(t, acc.RecordUsage(ctx, userID, "", "test-model", 10, 0, 0))
	status, err = acc.CheckLimit(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 510, status.UsageTokens)
}
