package api

import (
	"context"
	"net/http"
	"sync"

	echo "github.com/labstack/echo/v5"

	"github.com/chatdf/chatdf/ent"
	"github.com/chatdf/chatdf/pkg/catalog"
	"github.com/chatdf/chatdf/pkg/chat"
	"github.com/chatdf/chatdf/pkg/config"
	"github.com/chatdf/chatdf/pkg/database"
	"github.com/chatdf/chatdf/pkg/dataeng"
	"github.com/chatdf/chatdf/pkg/events"
	"github.com/chatdf/chatdf/pkg/filecache"
	"github.com/chatdf/chatdf/pkg/ratelimit"
	"github.com/chatdf/chatdf/pkg/resultcache"
)

// Server is the HTTP/WebSocket surface. Handlers authenticate, check
// ownership, and delegate to the service layer; long work runs in
// background goroutines tracked for graceful drain.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server

	client     *ent.Client
	dbClient   *database.Client
	cfg        *config.Config
	engine     *chat.Engine
	catalog    *catalog.Service
	pool       *dataeng.Pool
	accountant *ratelimit.Accountant
	events     *events.Manager
	files      *filecache.Cache
	results    *resultcache.Cache

	// Background turn tracking for graceful drain.
	bgMu     sync.Mutex
	bgWG     sync.WaitGroup
	draining bool
}

// NewServer wires the HTTP surface and registers all routes.
func NewServer(
	dbClient *database.Client,
	cfg *config.Config,
	engine *chat.Engine,
	cat *catalog.Service,
	pool *dataeng.Pool,
	accountant *ratelimit.Accountant,
	eventManager *events.Manager,
	files *filecache.Cache,
	results *resultcache.Cache,
) *Server {
	s := &Server{
		echo:       echo.New(),
		client:     dbClient.Client,
		dbClient:   dbClient,
		cfg:        cfg,
		engine:     engine,
		catalog:    cat,
		pool:       pool,
		accountant: accountant,
		events:     eventManager,
		files:      files,
		results:    results,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	e := s.echo
	e.Use(securityHeaders())

	// Unauthenticated surface.
	e.GET("/health", s.healthHandler)
	e.GET("/shared/:token", s.sharedConversationHandler)
	e.POST("/api/v1/auth/login", s.loginHandler)

	api := e.Group("/api/v1", s.requireSession)
	api.POST("/auth/logout", s.logoutHandler)

	api.GET("/ws", s.wsHandler)
	api.GET("/token-usage", s.userTokenUsageHandler)

	api.POST("/conversations", s.createConversationHandler)
	api.GET("/conversations", s.listConversationsHandler)
	api.GET("/conversations/search", s.searchConversationsHandler)
	api.POST("/conversations/bulk-delete", s.bulkDeleteConversationsHandler)
	api.POST("/conversations/bulk-pin", s.bulkPinConversationsHandler)
	api.DELETE("/conversations", s.clearConversationsHandler)
	api.GET("/conversations/:id", s.getConversationHandler)
	api.PATCH("/conversations/:id", s.renameConversationHandler)
	api.PATCH("/conversations/:id/pin", s.pinConversationHandler)
	api.DELETE("/conversations/:id", s.deleteConversationHandler)
	api.GET("/conversations/:id/export", s.exportConversationHandler)
	api.GET("/conversations/:id/export/html", s.exportConversationHTMLHandler)
	api.POST("/conversations/:id/fork", s.forkConversationHandler)
	api.POST("/conversations/:id/share", s.mintShareTokenHandler)
	api.DELETE("/conversations/:id/share", s.revokeShareTokenHandler)

	api.POST("/conversations/:id/messages", s.sendMessageHandler)
	api.DELETE("/conversations/:id/messages/:mid", s.deleteMessageHandler)
	api.POST("/conversations/:id/stop", s.stopGenerationHandler)

	api.POST("/conversations/:id/query", s.directQueryHandler)
	api.GET("/conversations/:id/token-usage", s.conversationTokenUsageHandler)

	api.POST("/conversations/:id/datasets", s.addDatasetHandler)
	api.POST("/conversations/:id/datasets/upload", s.uploadDatasetHandler)
	api.PATCH("/conversations/:id/datasets/:did", s.updateDatasetHandler)
	api.POST("/conversations/:id/datasets/:did/refresh", s.refreshDatasetHandler)
	api.POST("/conversations/:id/datasets/:did/profile", s.profileDatasetHandler)
	api.POST("/conversations/:id/datasets/:did/profile-column", s.profileColumnHandler)
	api.POST("/conversations/:id/datasets/:did/preview", s.previewDatasetHandler)
	api.DELETE("/conversations/:id/datasets/:did", s.deleteDatasetHandler)

	api.GET("/cache/stats", s.cacheStatsHandler)
	api.POST("/cache/clear", s.cacheClearHandler)
}

// Start runs the HTTP server; it blocks until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting new background turns, waits for in-flight ones
// (bounded by ctx), then shuts the HTTP listener down.
func (s *Server) Shutdown(ctx context.Context) error {
	s.bgMu.Lock()
	s.draining = true
	s.bgMu.Unlock()

	done := make(chan struct{})
	go func() {
		s.bgWG.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}

	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP implements http.Handler for tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// background runs fn in a tracked goroutine with a detached context.
// Returns false when the server is draining.
func (s *Server) background(fn func(ctx context.Context)) bool {
	s.bgMu.Lock()
	if s.draining {
		s.bgMu.Unlock()
		return false
	}
	s.bgWG.Add(1)
	s.bgMu.Unlock()

	go func() {
		defer s.bgWG.Done()
		fn(context.Background())
	}()
	return true
}
