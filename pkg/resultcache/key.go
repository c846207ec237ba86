// Package resultcache provides the two-tier query result cache: a bounded
// in-memory map for hot hits and a persistent table that survives restarts.
package resultcache

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Key derives the cache key from the query text and the dataset identities.
// Query text is trimmed and dataset URLs are sorted so that equivalent
// requests address the same entry regardless of dataset order.
func Key(sql string, datasetURLs []string) string {
	urls := make([]string, len(datasetURLs))
	copy(urls, datasetURLs)
	sort.Strings(urls)

	input := strings.TrimSpace(sql) + "|" + strings.Join(urls, "|")
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// JoinURLs returns the sorted pipe-joined URL string stored alongside the
// persistent row for inspection.
func JoinURLs(datasetURLs []string) string {
	urls := make([]string, len(datasetURLs))
	copy(urls, datasetURLs)
	sort.Strings(urls)
	return strings.Join(urls, "|")
}
