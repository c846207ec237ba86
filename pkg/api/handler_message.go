package api

import (
	"context"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/chatdf/chatdf/ent/message"
)

const maxMessageLength = 100_000

// SendMessageRequest is the HTTP request body for POST /conversations/:id/messages.
type SendMessageRequest struct {
	Content string `json:"content"`
}

// sendMessageHandler handles POST /api/v1/conversations/:id/messages.
// The user message is persisted and gated synchronously, so a busy
// conversation or an exhausted token budget is rejected with a real status
// code; only the admitted turn runs in a background goroutine, streaming
// its progress over the user's WebSockets.
func (s *Server) sendMessageHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)
	conv, err := s.ownedConversation(ctx, userID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content is required")
	}
	if len(req.Content) > maxMessageLength {
		return echo.NewHTTPError(http.StatusBadRequest, "content exceeds maximum length of 100,000 characters")
	}

	if err := s.engine.AdmitMessage(ctx, userID, conv.ID, req.Content); err != nil {
		return mapServiceError(err)
	}

	conversationID := conv.ID
	ok := s.background(func(bgCtx context.Context) {
		if err := s.engine.ProcessMessage(bgCtx, userID, conversationID); err != nil {
			slog.Warn("Background turn finished with error",
				"conversation_id", conversationID, "error", err)
		}
	})
	if !ok {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "server is shutting down")
	}

	return c.JSON(http.StatusAccepted, map[string]string{
		"status":          "processing",
		"conversation_id": conversationID,
	})
}

// deleteMessageHandler handles DELETE /api/v1/conversations/:id/messages/:mid.
func (s *Server) deleteMessageHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	conv, err := s.ownedConversation(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	n, err := s.client.Message.Delete().
		Where(
			message.IDEQ(c.Param("mid")),
			message.ConversationIDEQ(conv.ID),
		).
		Exec(ctx)
	if err != nil {
		return mapServiceError(err)
	}
	if n == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "message not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// stopGenerationHandler handles POST /api/v1/conversations/:id/stop.
func (s *Server) stopGenerationHandler(c *echo.Context) error {
	conv, err := s.ownedConversation(c.Request().Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	stopped := s.engine.StopGeneration(conv.ID)
	return c.JSON(http.StatusOK, map[string]interface{}{"stopped": stopped})
}
