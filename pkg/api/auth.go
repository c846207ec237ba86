package api

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/chatdf/chatdf/ent"
	"github.com/chatdf/chatdf/ent/session"
	"github.com/chatdf/chatdf/ent/user"
)

// userIDKey is the echo context key the auth middleware stores the
// authenticated user id under.
const userIDKey = "user_id"

// requireSession validates the Bearer session token, refreshes its expiry,
// and stores the owning user id on the request context.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
		}

		ctx := c.Request().Context()
		sess, err := s.client.Session.Query().
			Where(session.IDEQ(token)).
			Only(ctx)
		if ent.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
		}
		if err != nil {
			return mapServiceError(err)
		}

		now := time.Now()
		if sess.ExpiresAt.Before(now) {
			_ = s.client.Session.DeleteOneID(sess.ID).Exec(ctx)
			return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
		}

		// Sliding expiry: every authenticated request pushes the window out.
		if err := s.client.Session.UpdateOneID(sess.ID).
			SetExpiresAt(now.Add(s.cfg.SessionDuration)).
			Exec(ctx); err != nil {
			slog.Warn("Failed to refresh session expiry", "error", err)
		}

		c.Set(userIDKey, sess.UserID)
		return next(c)
	}
}

// extractToken reads the session token from the Authorization header or,
// for WebSocket clients that cannot set headers, the token query parameter.
func extractToken(c *echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.QueryParam("token")
}

// currentUserID returns the authenticated user id set by requireSession.
func currentUserID(c *echo.Context) string {
	if v, ok := c.Get(userIDKey).(string); ok {
		return v
	}
	return ""
}

// LoginRequest is the HTTP request body for POST /auth/login. The identity
// itself comes from an upstream auth collaborator; this endpoint exchanges
// it for a session token.
type LoginRequest struct {
	AuthProviderID string `json:"auth_provider_id"`
	Email          string `json:"email"`
	DisplayName    string `json:"display_name"`
}

// loginHandler handles POST /api/v1/auth/login.
// Upserts the user record and mints a fresh session token.
func (s *Server) loginHandler(c *echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.AuthProviderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "auth_provider_id is required")
	}

	ctx := c.Request().Context()
	now := time.Now()

	u, err := s.client.User.Query().
		Where(user.AuthProviderIDEQ(req.AuthProviderID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		u, err = s.client.User.Create().
			SetID(uuid.New().String()).
			SetAuthProviderID(req.AuthProviderID).
			SetEmail(req.Email).
			SetDisplayName(req.DisplayName).
			SetLastLogin(now).
			Save(ctx)
	} else if err == nil {
		err = s.client.User.UpdateOneID(u.ID).SetLastLogin(now).Exec(ctx)
	}
	if err != nil {
		return mapServiceError(err)
	}

	token, err := newSessionToken()
	if err != nil {
		return mapServiceError(err)
	}
	if _, err := s.client.Session.Create().
		SetID(token).
		SetUserID(u.ID).
		SetExpiresAt(now.Add(s.cfg.SessionDuration)).
		Save(ctx); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"session_token": token,
		"user_id":       u.ID,
		"expires_at":    now.Add(s.cfg.SessionDuration),
	})
}

// logoutHandler handles POST /api/v1/auth/logout.
func (s *Server) logoutHandler(c *echo.Context) error {
	token := extractToken(c)
	if token != "" {
		_ = s.client.Session.DeleteOneID(token).Exec(c.Request().Context())
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

// newSessionToken mints a 32-byte URL-safe random token.
func newSessionToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("minting session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// CleanupExpiredSessions removes sessions whose expiry has passed.
// Called from the periodic maintenance loop.
func CleanupExpiredSessions(ctx context.Context, client *ent.Client) (int, error) {
	return client.Session.Delete().
		Where(session.ExpiresAtLT(time.Now())).
		Exec(ctx)
}
