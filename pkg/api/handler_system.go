package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/chatdf/chatdf/pkg/database"
)

// HealthCheck is one component's entry in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// healthHandler handles GET /health.
// Only in-process components are checked; the LLM sidecar is excluded so an
// unhealthy upstream does not restart this process.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := "healthy"

	if _, err := database.Health(reqCtx, s.dbClient.DB()); err != nil {
		status = "unhealthy"
		checks["database"] = HealthCheck{Status: "unhealthy", Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: "healthy"}
	}
	checks["websockets"] = HealthCheck{Status: "healthy"}

	httpStatus := http.StatusOK
	if status == "unhealthy" {
		httpStatus = http.StatusServiceUnavailable
	}
	return c.JSON(httpStatus, map[string]interface{}{
		"status":             status,
		"checks":             checks,
		"active_connections": s.events.ActiveConnections(),
	})
}

// cacheStatsHandler handles GET /api/v1/cache/stats.
func (s *Server) cacheStatsHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"file_cache": s.files.Stats(),
		"result_cache": map[string]interface{}{
			"memory_entries": s.results.MemoryLen(),
		},
	})
}

// cacheClearHandler handles POST /api/v1/cache/clear.
func (s *Server) cacheClearHandler(c *echo.Context) error {
	removed, err := s.files.Clear()
	if err != nil {
		return mapServiceError(err)
	}
	s.results.ClearMemory()
	expired, err := s.results.Cleanup(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"files_removed":          removed,
		"result_entries_expired": expired,
	})
}
