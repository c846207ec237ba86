package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/chatdf/chatdf/ent"
	"github.com/chatdf/chatdf/ent/tokenusage"
	"github.com/chatdf/chatdf/pkg/dataeng"
	"github.com/chatdf/chatdf/pkg/models"
)

const (
	defaultQueryPageSize = 50
	maxQueryPageSize     = 500
)

// DirectQueryRequest is the HTTP request body for POST /conversations/:id/query.
type DirectQueryRequest struct {
	SQL      string `json:"sql"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// directQueryHandler handles POST /api/v1/conversations/:id/query.
// Runs user-authored SQL against the conversation's ready datasets with
// server-side pagination, and records a history row either way.
func (s *Server) directQueryHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)
	conv, err := s.ownedConversation(ctx, userID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	var req DirectQueryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.SQL) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "sql is required")
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > maxQueryPageSize {
		req.PageSize = defaultQueryPageSize
	}

	datasets, err := s.catalog.ReadyDatasets(ctx, conv.ID)
	if err != nil {
		return mapServiceError(err)
	}
	queryDatasets := make([]models.QueryDataset, 0, len(datasets))
	for _, ds := range datasets {
		queryDatasets = append(queryDatasets, models.QueryDataset{
			TableName: ds.TableName,
			URL:       ds.URL,
		})
	}

	result, engErr := s.pool.RunQuery(ctx, dataeng.QueryRequest{
		SQL:      req.SQL,
		Datasets: queryDatasets,
		UseCache: true,
	})
	if engErr != nil {
		s.recordQueryHistory(c, userID, conv.ID, req.SQL, nil, engErr)
		return mapEngineError(engErr)
	}
	s.recordQueryHistory(c, userID, conv.ID, req.SQL, result, nil)

	start := (req.Page - 1) * req.PageSize
	end := start + req.PageSize
	if start > len(result.Rows) {
		start = len(result.Rows)
	}
	if end > len(result.Rows) {
		end = len(result.Rows)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"columns":           result.Columns,
		"rows":              result.Rows[start:end],
		"total_rows":        result.TotalRows,
		"page":              req.Page,
		"page_size":         req.PageSize,
		"execution_time_ms": result.ExecutionTimeMs,
		"limit_applied":     result.LimitApplied,
		"cached":            result.Cached,
	})
}

// recordQueryHistory appends a query_histories row; failures are logged by
// ent and otherwise swallowed (history is best-effort).
func (s *Server) recordQueryHistory(c *echo.Context, userID, conversationID, sqlText string, result *models.QueryResult, engErr *models.EngineError) {
	create := s.client.QueryHistory.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetConversationID(conversationID).
		SetSQLQuery(sqlText)
	if result != nil {
		create.SetRowCount(result.TotalRows)
		create.SetExecutionTimeMs(result.ExecutionTimeMs)
	}
	if engErr != nil {
		create.SetErrorMessage(engErr.Message)
	}
	_ = create.Exec(c.Request().Context())
}

// conversationTokenUsageHandler handles GET /api/v1/conversations/:id/token-usage.
func (s *Server) conversationTokenUsageHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	conv, err := s.ownedConversation(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	var rows []struct {
		InputTokens  int     `json:"input_tokens"`
		OutputTokens int     `json:"output_tokens"`
		Cost         float64 `json:"cost"`
	}
	err = s.client.TokenUsage.Query().
		Where(tokenusage.ConversationIDEQ(conv.ID)).
		Aggregate(
			ent.Sum(tokenusage.FieldInputTokens),
			ent.Sum(tokenusage.FieldOutputTokens),
			ent.Sum(tokenusage.FieldCost),
		).
		Scan(ctx, &rows)
	if err != nil {
		return mapServiceError(err)
	}

	var inputTokens, outputTokens int
	var cost float64
	if len(rows) > 0 {
		inputTokens = rows[0].InputTokens
		outputTokens = rows[0].OutputTokens
		cost = rows[0].Cost
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"conversation_id": conv.ID,
		"input_tokens":    inputTokens,
		"output_tokens":   outputTokens,
		"total_tokens":    inputTokens + outputTokens,
		"cost":            cost,
	})
}

// userTokenUsageHandler handles GET /api/v1/token-usage.
// Reports the rolling-window rate-limit status for the caller.
func (s *Server) userTokenUsageHandler(c *echo.Context) error {
	status, err := s.accountant.CheckLimit(c.Request().Context(), currentUserID(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}
