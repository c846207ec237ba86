package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// Manager tracks WebSocket connections per user and fans events out to all
// of a user's open tabs. A user may hold several connections at once.
type Manager struct {
	mu           sync.RWMutex
	conns        map[string][]*websocket.Conn
	writeTimeout time.Duration
}

// NewManager creates a connection manager with the given per-send write
// timeout.
func NewManager(writeTimeout time.Duration) *Manager {
	return &Manager{
		conns:        make(map[string][]*websocket.Conn),
		writeTimeout: writeTimeout,
	}
}

// Connect registers a connection for a user.
func (m *Manager) Connect(userID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[userID] = append(m.conns[userID], conn)
	slog.Info("WebSocket connected", "user_id", userID, "connections", len(m.conns[userID]))
}

// Disconnect removes one registration of a connection for a user.
func (m *Manager) Disconnect(userID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.conns[userID]
	for i, c := range list {
		if c == conn {
			m.conns[userID] = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(m.conns[userID]) == 0 {
		delete(m.conns, userID)
	}
}

// SendToUser marshals the payload once and delivers it to every connection
// the user holds. Dead connections are pruned; send errors are swallowed —
// event delivery is best-effort.
func (m *Manager) SendToUser(ctx context.Context, userID string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("Failed to marshal event payload", "user_id", userID, "error", err)
		return
	}

	// Snapshot under the lock, send outside it.
	m.mu.RLock()
	conns := make([]*websocket.Conn, len(m.conns[userID]))
	copy(conns, m.conns[userID])
	m.mu.RUnlock()

	var dead []*websocket.Conn
	for _, conn := range conns {
		if err := m.write(ctx, conn, data); err != nil {
			// Caller cancellation is not a dead socket; stop without pruning.
			if ctx.Err() != nil {
				break
			}
			dead = append(dead, conn)
		}
	}
	for _, conn := range dead {
		m.Disconnect(userID, conn)
	}
}

// SendToConn delivers a payload to one specific connection. Unlike
// SendToUser, errors propagate so the caller can close the connection.
func (m *Manager) SendToConn(ctx context.Context, conn *websocket.Conn, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return m.write(ctx, conn, data)
}

func (m *Manager) write(ctx context.Context, conn *websocket.Conn, data []byte) error {
	writeCtx, cancel := context.WithTimeout(ctx, m.writeTimeout)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageText, data)
}

// ActiveConnections reports the total number of open connections.
func (m *Manager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := 0
	for _, list := range m.conns {
		total += len(list)
	}
	return total
}

// UserConnections reports how many connections one user holds.
func (m *Manager) UserConnections(userID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns[userID])
}
