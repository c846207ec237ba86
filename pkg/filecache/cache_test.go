package filecache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(t.TempDir(), 1<<30, 1<<30, time.Hour)
	require.NoError(t, err)
	return c
}

func TestSuffixFor(t *testing.T) {
	tests := []struct {
		url    string
		suffix string
	}{
		{"https://e.com/data.csv.gz", ".csv.gz"},
		{"https://e.com/data.csv", ".csv"},
		{"https://e.com/data.tsv", ".tsv"},
		{"https://e.com/data.parquet", ".parquet"},
		{"https://e.com/data.bin", ".parquet"},
		{"https://e.com/data.CSV?version=2", ".csv"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.suffix, suffixFor(tt.url), tt.url)
	}
}

func TestKey_IsSHA256OfURL(t *testing.T) {
	// sha256("https://e.com/d.parquet")
	assert.Len(t, Key("https://e.com/d.parquet"), 64)
	assert.Equal(t, Key("https://e.com/d.parquet"), Key("https://e.com/d.parquet"))
	assert.NotEqual(t, Key("https://e.com/a.parquet"), Key("https://e.com/b.parquet"))
}

func TestDownloadAndCache(t *testing.T) {
	content := []byte("a,b\n1,2\n")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(content)
	}))
	defer server.Close()

	c := newTestCache(t)
	url := server.URL + "/data.csv"

	path, err := c.DownloadAndCache(context.Background(), url)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, data)

	// Hit path: no new download needed
	cached, ok := c.GetCached(url)
	require.True(t, ok)
	assert.Equal(t, path, cached)

	stats := c.Stats()
	assert.Equal(t, 1, stats.FileCount)
	assert.Equal(t, int64(len(content)), stats.TotalSizeBytes)
}

func TestGetCached_MissIsNotAnError(t *testing.T) {
	c := newTestCache(t)
	_, ok := c.GetCached("https://e.com/missing.parquet")
	assert.False(t, ok)
}

func TestDownloadFailure_LeavesNoFinalFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestCache(t)
	url := server.URL + "/data.parquet"

	_, err := c.DownloadAndCache(context.Background(), url)
	require.Error(t, err)

	_, ok := c.GetCached(url)
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	c := newTestCache(t)
	for _, name := range []string{"one.parquet", "two.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(c.dir, name), []byte("x"), 0o644))
	}

	removed, err := c.Clear()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, c.Stats().FileCount)
}

func TestCleanupStaleTemps(t *testing.T) {
	c := newTestCache(t)

	stale := filepath.Join(c.dir, tempPrefix+"old.parquet")
	fresh := filepath.Join(c.dir, tempPrefix+"new.parquet")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(fresh, []byte("x"), 0o644))

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	removed, err := c.CleanupStaleTemps()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(fresh)
	assert.NoError(t, err)
}

func TestEvictLRU(t *testing.T) {
	c, err := New(t.TempDir(), 10, 1<<20, time.Hour)
	require.NoError(t, err)

	oldest := filepath.Join(c.dir, "a.parquet")
	newest := filepath.Join(c.dir, "b.parquet")
	require.NoError(t, os.WriteFile(oldest, []byte("12345678"), 0o644))
	require.NoError(t, os.WriteFile(newest, []byte("12345678"), 0o644))

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(oldest, past, past))

	c.EvictLRU()

	_, err = os.Stat(oldest)
	assert.True(t, os.IsNotExist(err), "oldest-accessed file should be evicted")
	_, err = os.Stat(newest)
	assert.NoError(t, err)
}

func TestMaxFileBytes_Enforced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, 64))
	}))
	defer server.Close()

	c, err := New(t.TempDir(), 1<<30, 16, time.Hour)
	require.NoError(t, err)

	_, err = c.DownloadAndCache(context.Background(), server.URL+"/big.parquet")
	require.Error(t, err)
}
