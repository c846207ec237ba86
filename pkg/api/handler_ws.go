package api

import (
	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// wsHandler upgrades GET /api/v1/ws to a WebSocket and registers it with
// the connection manager. Blocks until the socket closes.
func (s *Server) wsHandler(c *echo.Context) error {
	userID := currentUserID(c)

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	s.events.Connect(userID, conn)
	defer s.events.Disconnect(userID, conn)

	// Events flow server → client only; the read loop exists to observe
	// the close handshake and pings.
	ctx := c.Request().Context()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return nil
		}
	}
}
