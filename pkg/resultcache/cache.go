package resultcache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/chatdf/chatdf/ent"
	"github.com/chatdf/chatdf/ent/queryresult"
	"github.com/chatdf/chatdf/pkg/models"
)

// Cache coordinates the in-memory and persistent tiers.
//
// The persistent tier is best-effort: every database error degrades to a
// cache miss and is logged at Warn, never surfaced to the query path.
type Cache struct {
	client  *ent.Client
	memory  *memoryTier
	ttl     time.Duration
	maxRows int // persistent tier row cap
}

// New creates a two-tier cache backed by the given ent client.
func New(client *ent.Client, memorySize int, ttl time.Duration, maxPersistentRows int) *Cache {
	return &Cache{
		client:  client,
		memory:  newMemoryTier(memorySize, ttl),
		ttl:     ttl,
		maxRows: maxPersistentRows,
	}
}

// Get looks up a result: in-memory tier first, then persistent. A persistent
// hit is promoted into the in-memory tier and marked Cached.
func (c *Cache) Get(ctx context.Context, key string) (*models.QueryResult, bool) {
	if result, ok := c.memory.get(key); ok {
		cached := *result
		cached.Cached = true
		return &cached, true
	}

	row, err := c.client.QueryResult.Query().
		Where(
			queryresult.IDEQ(key),
			queryresult.ExpiresAtGT(time.Now()),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			slog.Warn("Persistent cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var result models.QueryResult
	if err := json.Unmarshal([]byte(row.ResultJSON), &result); err != nil {
		// Corrupt JSON is a miss, never an error.
		slog.Warn("Discarding corrupt cached result", "key", key, "error", err)
		return nil, false
	}

	c.memory.put(key, &result)
	cached := result
	cached.Cached = true
	return &cached, true
}

// Put stores a successful result in both tiers. Error results must not
// reach this method; callers only cache the ok branch of a query.
func (c *Cache) Put(ctx context.Context, key, sql string, datasetURLs []string, result *models.QueryResult) {
	c.memory.put(key, result)

	resultJSON, err := json.Marshal(result)
	if err != nil {
		slog.Warn("Failed to marshal result for persistent cache", "key", key, "error", err)
		return
	}

	now := time.Now()
	err = c.client.QueryResult.Create().
		SetID(key).
		SetSQLQuery(sql).
		SetDatasetUrls(JoinURLs(datasetURLs)).
		SetResultJSON(string(resultJSON)).
		SetRowCount(len(result.Rows)).
		SetCreatedAt(now).
		SetExpiresAt(now.Add(c.ttl)).
		OnConflictColumns(queryresult.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		slog.Warn("Persistent cache write failed", "key", key, "error", err)
		return
	}

	c.evictOverflow(ctx)
}

// evictOverflow removes oldest rows while the persistent tier exceeds its cap.
func (c *Cache) evictOverflow(ctx context.Context) {
	if c.maxRows <= 0 {
		return
	}
	count, err := c.client.QueryResult.Query().Count(ctx)
	if err != nil || count <= c.maxRows {
		return
	}

	overflow, err := c.client.QueryResult.Query().
		Order(ent.Asc(queryresult.FieldCreatedAt)).
		Limit(count - c.maxRows).
		IDs(ctx)
	if err != nil {
		slog.Warn("Persistent cache eviction query failed", "error", err)
		return
	}
	if _, err := c.client.QueryResult.Delete().
		Where(queryresult.IDIn(overflow...)).
		Exec(ctx); err != nil {
		slog.Warn("Persistent cache eviction failed", "error", err)
	}
}

// Cleanup deletes all expired persistent rows and returns the count.
func (c *Cache) Cleanup(ctx context.Context) (int, error) {
	return c.client.QueryResult.Delete().
		Where(queryresult.ExpiresAtLT(time.Now())).
		Exec(ctx)
}

// ClearMemory drops the in-memory tier. Used by tests and admin tooling.
func (c *Cache) ClearMemory() {
	c.memory.clear()
}

// MemoryLen reports the in-memory tier size. Used by tests.
func (c *Cache) MemoryLen() int {
	return c.memory.len()
}
