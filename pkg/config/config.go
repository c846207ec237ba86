// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all recognized runtime options with their defaults applied.
type Config struct {
	// Rate limiting
	TokenLimit          int
	RateLimitCacheTTL   time.Duration
	RateLimitWindow     time.Duration
	WarningThresholdPct float64

	// Datasets
	MaxDatasetsPerConversation int
	UploadDir                  string
	MaxUploadSizeMB            int64

	// Query execution
	MaxResultRows   int   // rows persisted per execution
	MaxQueryRows    int64 // auto-LIMIT cap
	QueryTimeout    time.Duration
	SchemaTimeout   time.Duration
	ValidateTimeout time.Duration

	// Chat orchestration
	MaxToolCallsPerTurn int
	MaxSQLRetries       int
	MaxLLMRetries       int
	LLMRetryBaseDelay   time.Duration
	MaxContextMessages  int
	MaxContextTokens    int

	// Result cache
	PersistentTTL          time.Duration
	MaxPersistentCacheSize int
	MemoryCacheSize        int

	// File cache
	CacheDir        string
	MaxCacheBytes   int64
	MaxFileBytes    int64
	StaleTempMaxAge time.Duration

	// Worker pool
	PoolSize         int
	MaxTasksPerChild int

	// Sessions
	SessionDuration time.Duration

	// Test switch: allow private/loopback URLs through the SSRF guard
	AllowPrivateURLs bool
}

// Load reads the environment and returns a fully-defaulted Config.
func Load() (*Config, error) {
	cfg := &Config{
		TokenLimit:                 getInt("TOKEN_LIMIT", 5_000_000),
		RateLimitCacheTTL:          getDuration("RATE_LIMIT_CACHE_TTL_SECONDS", 60*time.Second),
		RateLimitWindow:            24 * time.Hour,
		WarningThresholdPct:        80,
		MaxDatasetsPerConversation: getInt("MAX_DATASETS_PER_CONVERSATION", 50),
		UploadDir:                  getString("UPLOAD_DIR", "./data/uploads"),
		MaxUploadSizeMB:            int64(getInt("MAX_UPLOAD_SIZE_MB", 100)),
		MaxResultRows:              getInt("MAX_RESULT_ROWS", 1000),
		MaxQueryRows:               int64(getInt("MAX_QUERY_ROWS", 10_000)),
		QueryTimeout:               getDuration("QUERY_TIMEOUT", 300*time.Second),
		SchemaTimeout:              getDuration("SCHEMA_TIMEOUT", 60*time.Second),
		ValidateTimeout:            getDuration("VALIDATE_TIMEOUT", 30*time.Second),
		MaxToolCallsPerTurn:        getInt("MAX_TOOL_CALLS_PER_TURN", 5),
		MaxSQLRetries:              getInt("MAX_SQL_RETRIES", 3),
		MaxLLMRetries:              getInt("MAX_GEMINI_RETRIES", 3),
		LLMRetryBaseDelay:          getDuration("GEMINI_RETRY_BASE_DELAY", 2*time.Second),
		MaxContextMessages:         getInt("MAX_CONTEXT_MESSAGES", 50),
		MaxContextTokens:           getInt("MAX_CONTEXT_TOKENS", 200_000),
		PersistentTTL:              getDuration("PERSISTENT_TTL_SECONDS", time.Hour),
		MaxPersistentCacheSize:     getInt("MAX_PERSISTENT_CACHE_SIZE", 1000),
		MemoryCacheSize:            getInt("MEMORY_CACHE_SIZE", 100),
		CacheDir:                   getString("CACHE_DIR", "./data/cache"),
		MaxCacheBytes:              getInt64("MAX_CACHE_BYTES", 10<<30),
		MaxFileBytes:               getInt64("MAX_FILE_BYTES", 2<<30),
		StaleTempMaxAge:            getDuration("STALE_TEMP_MAX_AGE_SECONDS", time.Hour),
		PoolSize:                   getInt("DEFAULT_POOL_SIZE", 4),
		MaxTasksPerChild:           getInt("MAX_TASKS_PER_CHILD", 50),
		SessionDuration:            time.Duration(getInt("SESSION_DURATION_DAYS", 7)) * 24 * time.Hour,
		AllowPrivateURLs:           getBool("CHATDF_ALLOW_PRIVATE_URLS", false),
	}

	if cfg.TokenLimit <= 0 {
		return nil, fmt.Errorf("TOKEN_LIMIT must be positive, got %d", cfg.TokenLimit)
	}
	if cfg.MaxDatasetsPerConversation <= 0 {
		return nil, fmt.Errorf("MAX_DATASETS_PER_CONVERSATION must be positive, got %d", cfg.MaxDatasetsPerConversation)
	}
	if cfg.PoolSize <= 0 {
		return nil, fmt.Errorf("DEFAULT_POOL_SIZE must be positive, got %d", cfg.PoolSize)
	}
	return cfg, nil
}

func getString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func getInt64(key string, defaultValue int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

// getDuration reads an integer env var expressed in the unit implied by the
// key suffix (seconds unless the default says otherwise) and falls back to
// the given default.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return defaultValue
}
