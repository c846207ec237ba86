package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatdf/chatdf/ent"
	"github.com/chatdf/chatdf/pkg/config"
	testdb "github.com/chatdf/chatdf/test/database"
)

func seedConversation(t *testing.T, client *ent.Client) string {
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
	return conv.ID
}

func TestDatasetAdmission(t *testing.T) {
	db := testdb.NewTestClient(t)
	cfg := &config.Config{
		MaxDatasetsPerConversation: 3,
		UploadDir:                  t.TempDir(),
	}
	svc := NewService(db.Client, cfg, nil, nil)
	ctx := context.Background()
	convID := seedConversation(t, db.Client)

	t.Run("auto-assigned and explicit table names", func(t *testing.T) {
		ds, err := svc.BeginAdd(ctx, convID, "https://e.com/a.parquet", "")
		require.NoError(t, err)
		assert.Equal(t, "table1", ds.TableName)

		ds, err = svc.BeginAdd(ctx, convID, "https://e.com/b.parquet", "sales")
		require.NoError(t, err)
		assert.Equal(t, "sales", ds.TableName)
	})

	t.Run("duplicate url rejected", func(t *testing.T) {
		_, err := svc.BeginAdd(ctx, convID, "https://e.com/a.parquet", "")
		assert.ErrorIs(t, err, ErrDuplicateURL)
	})

	t.Run("invalid table name rejected", func(t *testing.T) {
		_, err := svc.BeginAdd(ctx, convID, "https://e.com/c.parquet", "1bad")
		assert.ErrorIs(t, err, ErrInvalidTableName)
	})

	t.Run("table name conflict rejected", func(t *testing.T) {
		_, err := svc.BeginAdd(ctx, convID, "https://e.com/c.parquet", "sales")
		assert.ErrorIs(t, err, ErrTableNameTaken)
	})

	t.Run("dataset cap enforced", func(t *testing.T) {
		_, err := svc.BeginAdd(ctx, convID, "https://e.com/c.parquet", "")
		require.NoError(t, err)

		_, err = svc.BeginAdd(ctx, convID, "https://e.com/d.parquet", "")
		require.ErrorIs(t, err, ErrDatasetLimit)
		assert.EqualError(t, err, "Maximum 50 datasets reached")
	})

	t.Run("cap is per conversation", func(t *testing.T) {
		otherConv := seedConversation(t, db.Client)
		_, err := svc.BeginAdd(ctx, otherConv, "https://e.com/a.parquet", "")
		assert.NoError(t, err)
	})
}

func TestRenameAndRemove(t *testing.T) {
	db := testdb.NewTestClient(t)
	cfg := &config.Config{
		MaxDatasetsPerConversation: 10,
		UploadDir:                  t.TempDir(),
	}
	svc := NewService(db.Client, cfg, nil, nil)
	ctx := context.Background()
	convID := seedConversation(t, db.Client)

	first, err := svc.BeginAdd(ctx, convID, "https://e.com/a.parquet", "")
	require.NoError(t, err)
	_, err = svc.BeginAdd(ctx, convID, "https://e.com/b.parquet", "sales")
	require.NoError(t, err)

	t.Run("rename to a taken name rejected", func(t *testing.T) {
		_, err := svc.RenameTable(ctx, convID, first.ID, "sales")
		assert.ErrorIs(t, err, ErrTableNameTaken)
	})

	t.Run("rename to a fresh name", func(t *testing.T) {
		renamed, err := svc.RenameTable(ctx, convID, first.ID, "orders")
		require.NoError(t, err)
		assert.Equal(t, "orders", renamed.TableName)
	})

	t.Run("ready listing excludes loading datasets", func(t *testing.T) {
		all, err := svc.GetDatasets(ctx, convID)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		ready, err := svc.ReadyDatasets(ctx, convID)
		require.NoError(t, err)
		assert.Empty(t, ready)
	})

	t.Run("remove deletes the row", func(t *testing.T) {
		require.NoError(t, svc.RemoveDataset(ctx, convID, first.ID))
		all, err := svc.GetDatasets(ctx, convID)
		require.NoError(t, err)
		assert.Len(t, all, 1)

		err = svc.RemoveDataset(ctx, convID, first.ID)
		assert.ErrorIs(t, err, ErrDatasetNotFound)
	})
}
