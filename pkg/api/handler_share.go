package api

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/chatdf/chatdf/ent"
	"github.com/chatdf/chatdf/ent/conversation"
)

// mintShareTokenHandler handles POST /api/v1/conversations/:id/share.
// Minting again replaces the previous token.
func (s *Server) mintShareTokenHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	conv, err := s.ownedConversation(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	token, err := newShareToken()
	if err != nil {
		return mapServiceError(err)
	}
	if err := s.client.Conversation.UpdateOneID(conv.ID).
		SetShareToken(token).
		Exec(ctx); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"share_token": token,
		"share_url":   "/shared/" + token,
	})
}

// revokeShareTokenHandler handles DELETE /api/v1/conversations/:id/share.
func (s *Server) revokeShareTokenHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	conv, err := s.ownedConversation(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	if err := s.client.Conversation.UpdateOneID(conv.ID).
		ClearShareToken().
		Exec(ctx); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "revoked"})
}

// sharedConversationHandler handles GET /shared/:token (unauthenticated).
// Read-only view of a conversation by its share token.
func (s *Server) sharedConversationHandler(c *echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}

	ctx := c.Request().Context()
	conv, err := s.client.Conversation.Query().
		Where(conversation.ShareTokenEQ(token)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return mapServiceError(err)
	}

	detail, err := s.conversationDetail(ctx, conv)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

// newShareToken mints a 16-byte URL-safe random token.
func newShareToken() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
