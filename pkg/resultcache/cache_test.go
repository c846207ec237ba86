package resultcache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatdf/chatdf/ent/queryresult"
	"github.com/chatdf/chatdf/pkg/models"
	testdb "github.com/chatdf/chatdf/test/database"
)

func sampleResult(totalRows int64) *models.QueryResult {
	return &models.QueryResult{
		Columns:   []string{"region", "revenue"},
		Rows:      [][]interface{}{{"north", float64(100)}},
		TotalRows: totalRows,
	}
}

func TestCachePersistentTier(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()
	c := New(db.Client, 10, time.Hour, 100)

	urls := []string{"https://e.com/a.parquet"}
	key := Key("SELECT region, revenue FROM table1", urls)
	c.Put(ctx, key, "SELECT region, revenue FROM table1", urls, sampleResult(1))

	t.Run("persistent hit is promoted and marked cached", func(t *testing.T) {
		c.ClearMemory()
		require.Equal(t, 0, c.MemoryLen())

		got, ok := c.Get(ctx, key)
		require.True(t, ok)
		assert.True(t, got.Cached)
		assert.Equal(t, []string{"region", "revenue"}, got.Columns)
		assert.Equal(t, int64(1), got.TotalRows)
		assert.Equal(t, 1, c.MemoryLen())
	})

	t.Run("expired rows are misses", func(t *testing.T) {
		expired := New(db.Client, 10, -time.Second, 100)
		expiredKey := Key("SELECT 2", urls)
		expired.Put(ctx, expiredKey, "SELECT 2", urls, sampleResult(1))
		expired.ClearMemory()

		_, ok := expired.Get(ctx, expiredKey)
		assert.False(t, ok)
	})

	t.Run("corrupt rows are misses", func(t *testing.T) {
		err := db.Client.QueryResult.Create().
			SetID("corrupt-row").
			SetSQLQuery("SELECT 3").
			SetDatasetUrls("https://e.com/a.parquet").
			SetResultJSON("{not valid json").
			SetExpiresAt(time.Now().Add(time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		_, ok := c.Get(ctx, "corrupt-row")
		assert.False(t, ok)
	})

	t.Run("cleanup drops only expired rows", func(t *testing.T) {
		deleted, err := c.Cleanup(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, deleted, 1)

		_, ok := c.Get(ctx, key)
		assert.True(t, ok)
	})
}

func TestCachePersistentEviction(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()
	c := New(db.Client, 10, time.Hour, 3)

	urls := []string{"https://e.com/a.parquet"}
	keys := make([]string, 4)
	for i := range keys {
		sql := fmt.Sprintf("SELECT %d", i)
		keys[i] = Key(sql, urls)
		c.Put(ctx, keys[i], sql, urls, sampleResult(1))
		time.Sleep(20 * time.Millisecond) // distinct created_at ordering
	}

	count, err := db.Client.QueryResult.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// Oldest row was evicted; the newest survives.
	exists, err := db.Client.QueryResult.Query().
		Where(queryresult.IDEQ(keys[0])).
		Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	c.ClearMemory()
	_, ok := c.Get(ctx, keys[3])
	assert.True(t, ok)
}
