package resultcache

import (
	"testing"
	"time"

	"github.com/chatdf/chatdf/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestKey_DependsOnTrimmedSQLAndSortedURLs(t *testing.T) {
	urls := []string{"https://e.com/b.parquet", "https://e.com/a.parquet"}

	t.Run("whitespace around sql is ignored", func(t *testing.T) {
		assert.Equal(t,
			Key("SELECT 1", urls),
			Key("  SELECT 1  \n", urls),
		)
	})

	t.Run("url order is ignored", func(t *testing.T) {
		reversed := []string{urls[1], urls[0]}
		assert.Equal(t, Key("SELECT 1", urls), Key("SELECT 1", reversed))
	})

	t.Run("different sql changes the key", func(t *testing.T) {
		assert.NotEqual(t, Key("SELECT 1", urls), Key("SELECT 2", urls))
	})

	t.Run("different datasets change the key", func(t *testing.T) {
		assert.NotEqual(t,
			Key("SELECT 1", urls),
			Key("SELECT 1", []string{"https://e.com/c.parquet"}),
		)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		in := []string{"z", "a"}
		Key("SELECT 1", in)
		assert.Equal(t, []string{"z", "a"}, in)
	})
}

func TestMemoryTier_TTLAndEviction(t *testing.T) {
	result := &models.QueryResult{Columns: []string{"a"}, TotalRows: 1}

	t.Run("expired entries are bypassed", func(t *testing.T) {
		tier := newMemoryTier(10, time.Nanosecond)
		tier.put("k", result)
		time.Sleep(time.Millisecond)
		_, ok := tier.get("k")
		assert.False(t, ok)
	})

	t.Run("oldest-inserted entry is evicted at capacity", func(t *testing.T) {
		tier := newMemoryTier(2, time.Hour)
		tier.put("first", result)
		tier.put("second", result)
		tier.put("third", result)

		_, ok := tier.get("first")
		assert.False(t, ok, "oldest entry should have been evicted")
		_, ok = tier.get("second")
		assert.True(t, ok)
		_, ok = tier.get("third")
		assert.True(t, ok)
		assert.Equal(t, 2, tier.len())
	})

	t.Run("re-put of existing key does not evict", func(t *testing.T) {
		tier := newMemoryTier(2, time.Hour)
		tier.put("a", result)
		tier.put("b", result)
		tier.put("a", result)

		_, ok := tier.get("b")
		assert.True(t, ok)
		assert.Equal(t, 2, tier.len())
	})
}
