// ChatDF server — conversational analytics over remote columnar files.
// Hosts the REST/WebSocket API, the DuckDB worker pool, and the chat
// orchestration engine; model calls go to a gRPC sidecar.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/chatdf/chatdf/pkg/api"
	"github.com/chatdf/chatdf/pkg/catalog"
	"github.com/chatdf/chatdf/pkg/chat"
	"github.com/chatdf/chatdf/pkg/config"
	"github.com/chatdf/chatdf/pkg/database"
	"github.com/chatdf/chatdf/pkg/dataeng"
	"github.com/chatdf/chatdf/pkg/events"
	"github.com/chatdf/chatdf/pkg/filecache"
	"github.com/chatdf/chatdf/pkg/llm"
	"github.com/chatdf/chatdf/pkg/ratelimit"
	"github.com/chatdf/chatdf/pkg/resultcache"
)

const maintenanceInterval = 10 * time.Minute

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	ctx := context.Background()

	// 1. Runtime configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Caches
	files, err := filecache.New(cfg.CacheDir, cfg.MaxCacheBytes, cfg.MaxFileBytes, cfg.StaleTempMaxAge)
	if err != nil {
		slog.Error("Failed to initialize file cache", "dir", cfg.CacheDir, "error", err)
		os.Exit(1)
	}
	results := resultcache.New(dbClient.Client, cfg.MemoryCacheSize, cfg.PersistentTTL, cfg.MaxPersistentCacheSize)

	// 4. Worker pool
	pool := dataeng.NewPool(cfg, files, results)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}
	defer pool.Stop()
	slog.Info("Worker pool started", "workers", cfg.PoolSize)

	// 5. Services
	validator := dataeng.NewValidator(cfg.ValidateTimeout, cfg.AllowPrivateURLs, cfg.MaxFileBytes)
	cat := catalog.NewService(dbClient.Client, cfg, validator, pool)
	accountant := ratelimit.NewAccountant(dbClient.Client, cfg)
	eventManager := events.NewManager(10 * time.Second)

	// 6. LLM sidecar client (lazy dial; the connection happens on first RPC)
	llmAddr := getEnv("LLM_SERVICE_ADDR", "localhost:50051")
	llmClient, err := llm.NewGRPCClient(llmAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", llmAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", llmAddr)

	model := getEnv("LLM_MODEL", "gemini-2.5-flash")
	engine := chat.NewEngine(dbClient.Client, llmClient, pool, cat, accountant, eventManager, cfg, model)

	// 7. HTTP server
	httpServer := api.NewServer(dbClient, cfg, engine, cat, pool, accountant, eventManager, files, results)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 8. Periodic maintenance: expired cache rows, stale temp downloads,
	// LRU pressure, dead sessions.
	maintenanceCtx, stopMaintenance := context.WithCancel(ctx)
	defer stopMaintenance()
	go runMaintenance(maintenanceCtx, dbClient, files, results)

	slog.Info("ChatDF started", "model", model)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: drain in-flight turns, then close the listener.
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown incomplete", "error", err)
	}
	slog.Info("ChatDF stopped")
}

// runMaintenance sweeps the caches and expired sessions until ctx ends.
func runMaintenance(ctx context.Context, dbClient *database.Client, files *filecache.Cache, results *resultcache.Cache) {
	ticker := time.NewTicker(maintenanceInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := results.Cleanup(ctx); err != nil {
				slog.Warn("Result cache cleanup failed", "error", err)
			} else if n > 0 {
				slog.Info("Expired result cache rows removed", "count", n)
			}
			if n, err := files.CleanupStaleTemps(); err != nil {
				slog.Warn("Stale temp sweep failed", "error", err)
			} else if n > 0 {
				slog.Info("Stale partial downloads removed", "count", n)
			}
			files.EvictLRU()
			if n, err := api.CleanupExpiredSessions(ctx, dbClient.Client); err != nil {
				slog.Warn("Expired session sweep failed", "error", err)
			} else if n > 0 {
				slog.Info("Expired sessions removed", "count", n)
			}
		}
	}
}
