package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// marshalToMap round-trips a payload through JSON for key inspection.
func marshalToMap(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestPayloadWireKeys(t *testing.T) {
	t.Run("text chunk", func(t *testing.T) {
		m := marshalToMap(t, TextChunk{Type: TypeTextChunk, Text: "hello", MessageID: "m1"})
		assert.Equal(t, "ct", m["type"])
		assert.Equal(t, "hello", m["t"])
		assert.Equal(t, "m1", m["mid"])
	})

	t.Run("tool call start", func(t *testing.T) {
		m := marshalToMap(t, ToolCallStart{Type: TypeToolCallStart, Tool: "execute_sql", Args: map[string]any{"sql": "SELECT 1"}})
		assert.Equal(t, "tcs", m["type"])
		assert.Equal(t, "execute_sql", m["tl"])
		assert.Equal(t, "SELECT 1", m["a"].(map[string]any)["sql"])
	})

	t.Run("query progress carries the query number", func(t *testing.T) {
		m := marshalToMap(t, QueryProgress{Type: TypeQueryProgress, Number: 2})
		assert.Equal(t, "qp", m["type"])
		assert.Equal(t, float64(2), m["n"])
	})

	t.Run("chat error carries the error class", func(t *testing.T) {
		m := marshalToMap(t, ChatError{Type: TypeChatError, Error: "boom", Details: "InternalError"})
		assert.Equal(t, "ce", m["type"])
		assert.Equal(t, "InternalError", m["d"])
	})

	t.Run("rate limit warning", func(t *testing.T) {
		m := marshalToMap(t, RateLimitWarning{Type: TypeRateLimitWarning, UsagePercent: 85.5, RemainingTokens: 725000})
		assert.Equal(t, "rlw", m["type"])
		assert.Equal(t, 85.5, m["up"])
		assert.Equal(t, float64(725000), m["rt"])
	})

	t.Run("chat complete", func(t *testing.T) {
		m := marshalToMap(t, ChatComplete{
			Type:          TypeChatComplete,
			MessageID:     "m2",
			ToolCallsMade: 3,
			InputTokens:   100,
			OutputTokens:  50,
			SQLQueries:    []string{"SELECT 1"},
		})
		assert.Equal(t, "cc", m["type"])
		assert.Equal(t, "m2", m["mid"])
		assert.Equal(t, float64(3), m["tc"])
		assert.Equal(t, float64(100), m["it"])
		assert.Equal(t, float64(50), m["ot"])
	})

	t.Run("empty optional fields are omitted", func(t *testing.T) {
		m := marshalToMap(t, TextChunk{Type: TypeTextChunk, Text: "x"})
		_, hasMID := m["mid"]
		assert.False(t, hasMID)

		m = marshalToMap(t, ChatError{Type: TypeChatError, Error: "boom"})
		_, hasDetails := m["d"]
		assert.False(t, hasDetails)
	})

	t.Run("dataset lifecycle", func(t *testing.T) {
		m := marshalToMap(t, DatasetLoading{Type: TypeDatasetLoading, URL: "https://e.com/a.csv", TableName: "table1"})
		assert.Equal(t, "dl", m["type"])
		assert.Equal(t, "table1", m["tn"])

		m = marshalToMap(t, DatasetError{Type: TypeDatasetError, URL: "https://e.com/a.csv", Error: "not found"})
		assert.Equal(t, "de", m["type"])
		assert.Equal(t, "not found", m["e"])
	})
}

func TestManagerBookkeeping(t *testing.T) {
	m := NewManager(0)

	t.Run("empty manager has no connections", func(t *testing.T) {
		assert.Equal(t, 0, m.ActiveConnections())
		assert.Equal(t, 0, m.UserConnections("u1"))
	})

	t.Run("send to unknown user is a no-op", func(t *testing.T) {
		m.SendToUser(t.Context(), "nobody", TextChunk{Type: TypeTextChunk, Text: "x"})
	})
}
