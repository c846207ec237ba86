// Package filecache provides a content-addressed disk cache for downloaded
// data files. Concurrent downloads of the same URL are deduplicated within
// the process by a per-URL mutex; completed files are installed with an
// atomic rename so a partial file is never observable under its final name.
package filecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// tempPrefix marks in-flight downloads; stale ones are swept by CleanupStaleTemps.
const tempPrefix = ".download_"

// Stats describes the current state of the cache directory.
type Stats struct {
	FileCount      int    `json:"file_count"`
	TotalSizeBytes int64  `json:"total_size_bytes"`
	CacheDir       string `json:"cache_dir"`
	MaxCacheBytes  int64  `json:"max_cache_bytes"`
	MaxFileBytes   int64  `json:"max_file_bytes"`
}

// Cache is a disk cache keyed by the SHA-256 of the source URL.
type Cache struct {
	dir             string
	maxCacheBytes   int64
	maxFileBytes    int64
	staleTempMaxAge time.Duration
	httpClient      *http.Client

	mu    sync.Mutex
	locks map[string]*sync.Mutex // url → download mutex
}

// New creates a Cache rooted at dir, creating the directory if needed.
func New(dir string, maxCacheBytes, maxFileBytes int64, staleTempMaxAge time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		dir:             dir,
		maxCacheBytes:   maxCacheBytes,
		maxFileBytes:    maxFileBytes,
		staleTempMaxAge: staleTempMaxAge,
		httpClient:      &http.Client{Timeout: 10 * time.Minute},
		locks:           make(map[string]*sync.Mutex),
	}, nil
}

// LocalPath reports whether the URL refers to a local file and returns its
// filesystem path. Local files are never cached; they are read in place.
func LocalPath(url string) (string, bool) {
	if strings.HasPrefix(url, "file://") {
		return strings.TrimPrefix(url, "file://"), true
	}
	return "", false
}

// Key returns the cache key for a URL: the SHA-256 hex digest of the URL string.
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}

// suffixFor derives the on-disk suffix from the URL path.
// `.csv.gz` wins over `.csv`, which wins over `.tsv`; everything else is
// treated as parquet.
func suffixFor(url string) string {
	path := url
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".csv.gz"):
		return ".csv.gz"
	case strings.HasSuffix(lower, ".csv"):
		return ".csv"
	case strings.HasSuffix(lower, ".tsv"):
		return ".tsv"
	default:
		return ".parquet"
	}
}

// Path returns the final on-disk path for a URL, whether or not it exists.
func (c *Cache) Path(url string) string {
	return filepath.Join(c.dir, Key(url)+suffixFor(url))
}

// GetCached returns the cached path for a URL if the file is present.
// A hit refreshes the file's access time for LRU accounting.
func (c *Cache) GetCached(url string) (string, bool) {
	path := c.Path(url)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		slog.Warn("Failed to update cache access time", "path", path, "error", err)
	}
	return path, true
}

// DownloadAndCache returns a local path whose contents match the URL,
// downloading if necessary. The returned file is owned by the cache;
// callers must not delete it.
func (c *Cache) DownloadAndCache(ctx context.Context, url string) (string, error) {
	lock := c.urlLock(url)
	lock.Lock()
	defer lock.Unlock()

	// Another goroutine may have completed the download while we waited.
	if path, ok := c.GetCached(url); ok {
		return path, nil
	}

	final := c.Path(url)
	temp := filepath.Join(c.dir, tempPrefix+filepath.Base(final))

	if err := c.downloadTo(ctx, url, temp); err != nil {
		// Leave the tempfile for the stale sweeper; never install a partial file.
		return "", fmt.Errorf("download failed for %s: %w", url, err)
	}

	if err := os.Rename(temp, final); err != nil {
		return "", fmt.Errorf("failed to install cached file: %w", err)
	}

	c.EvictLRU()
	return final, nil
}

// downloadTo streams the URL body into the temp path, enforcing the
// per-file size cap.
func (c *Cache) downloadTo(ctx context.Context, url, temp string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if c.maxFileBytes > 0 && resp.ContentLength > c.maxFileBytes {
		return fmt.Errorf("file size %d exceeds limit %d", resp.ContentLength, c.maxFileBytes)
	}

	f, err := os.Create(temp)
	if err != nil {
		return fmt.Errorf("failed to create tempfile: %w", err)
	}

	var reader io.Reader = resp.Body
	if c.maxFileBytes > 0 {
		reader = io.LimitReader(resp.Body, c.maxFileBytes+1)
	}
	written, copyErr := io.Copy(f, reader)
	closeErr := f.Close()
	if copyErr != nil {
		return copyErr
	}
	if closeErr != nil {
		return closeErr
	}
	if c.maxFileBytes > 0 && written > c.maxFileBytes {
		_ = os.Remove(temp)
		return fmt.Errorf("file exceeds size limit %d", c.maxFileBytes)
	}
	return nil
}

// Clear removes all cached files (completed and temp) and returns the count.
func (c *Cache) Clear() (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read cache directory: %w", err)
	}
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			slog.Warn("Failed to remove cached file", "name", entry.Name(), "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}

// Stats returns current cache statistics. Temp files are excluded.
func (c *Cache) Stats() Stats {
	stats := Stats{
		CacheDir:      c.dir,
		MaxCacheBytes: c.maxCacheBytes,
		MaxFileBytes:  c.maxFileBytes,
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return stats
	}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), tempPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		stats.FileCount++
		stats.TotalSizeBytes += info.Size()
	}
	return stats
}

// CleanupStaleTemps removes partial-download tempfiles older than the
// configured age and returns the number removed.
func (c *Cache) CleanupStaleTemps() (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read cache directory: %w", err)
	}
	cutoff := time.Now().Add(-c.staleTempMaxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), tempPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			slog.Warn("Failed to remove stale tempfile", "name", entry.Name(), "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}

// EvictLRU removes oldest-accessed files until total size fits within
// maxCacheBytes. Temp files are never evicted (the stale sweeper owns them).
func (c *Cache) EvictLRU() {
	if c.maxCacheBytes <= 0 {
		return
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}

	type fileInfo struct {
		path  string
		size  int64
		atime time.Time
	}
	var files []fileInfo
	var total int64
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), tempPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, fileInfo{
			path:  filepath.Join(c.dir, entry.Name()),
			size:  info.Size(),
			atime: info.ModTime(),
		})
		total += info.Size()
	}

	sort.Slice(files, func(i, j int) bool { return files[i].atime.Before(files[j].atime) })

	for _, f := range files {
		if total <= c.maxCacheBytes {
			break
		}
		if err := os.Remove(f.path); err != nil {
			slog.Warn("LRU eviction failed for file", "path", f.path, "error", err)
			continue
		}
		total -= f.size
	}
}

// urlLock returns the download mutex for a URL, creating it if needed.
func (c *Cache) urlLock(url string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.locks[url]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[url] = lock
	}
	return lock
}
