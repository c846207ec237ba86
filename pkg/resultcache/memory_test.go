package resultcache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatdf/chatdf/pkg/models"
)

func TestMemoryTier(t *testing.T) {
	result := func(n int64) *models.QueryResult {
		return &models.QueryResult{TotalRows: n}
	}

	t.Run("stores and returns within ttl", func(t *testing.T) {
		tier := newMemoryTier(10, time.Minute)
		tier.put("k1", result(7))

		got, ok := tier.get("k1")
		require.True(t, ok)
		assert.Equal(t, int64(7), got.TotalRows)
	})

	t.Run("expired entries are misses", func(t *testing.T) {
		tier := newMemoryTier(10, time.Nanosecond)
		tier.put("k1", result(1))
		time.Sleep(time.Millisecond)

		_, ok := tier.get("k1")
		assert.False(t, ok)
		assert.Zero(t, tier.len())
	})

	t.Run("evicts oldest insertion when full", func(t *testing.T) {
		tier := newMemoryTier(3, time.Minute)
		for i := 0; i < 4; i++ {
			tier.put(fmt.Sprintf("k%d", i), result(int64(i)))
		}

		_, ok := tier.get("k0")
		assert.False(t, ok)
		_, ok = tier.get("k3")
		assert.True(t, ok)
		assert.Equal(t, 3, tier.len())
	})

	t.Run("overwrite does not grow the tier", func(t *testing.T) {
		tier := newMemoryTier(3, time.Minute)
		tier.put("k1", result(1))
		tier.put("k1", result(2))

		assert.Equal(t, 1, tier.len())
		got, ok := tier.get("k1")
		require.True(t, ok)
		assert.Equal(t, int64(2), got.TotalRows)
	})

	t.Run("clear empties everything", func(t *testing.T) {
		tier := newMemoryTier(3, time.Minute)
		tier.put("k1", result(1))
		tier.clear()
		assert.Zero(t, tier.len())
	})
}
