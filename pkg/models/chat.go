package models

// SQLExecution records one execute_sql tool call inside a turn.
// Rows is capped for the wire (≤100); FullRows is capped for persistence
// (≤1000); TotalRows always reflects the true result size.
type SQLExecution struct {
	Query           string          `json:"query"`
	Columns         []string        `json:"columns"`
	Rows            [][]interface{} `json:"rows"`
	FullRows        [][]interface{} `json:"-"`
	TotalRows       int64           `json:"total_rows"`
	Error           string          `json:"error,omitempty"`
	ExecutionTimeMs int64           `json:"execution_time_ms"`
}

// ToolCallRecord is one entry of the per-turn tool-call trace.
type ToolCallRecord struct {
	Tool string                 `json:"tool"`
	Args map[string]interface{} `json:"args"`
}

// StreamResult accumulates the outcome of the per-turn stream loop across
// all LLM calls (the initial call plus one per tool dispatch).
type StreamResult struct {
	InputTokens         int
	OutputTokens        int
	AssistantMessage    string
	Reasoning           string
	ToolCallsMade       int
	SQLQueries          []string
	SQLExecutions       []SQLExecution
	FollowupSuggestions []string
	ToolCallTrace       []ToolCallRecord
}

// PersistedExecutions converts the accumulated executions into the shape
// stored on the assistant message row: full rows, not wire-capped rows.
func (r *StreamResult) PersistedExecutions() []map[string]interface{} {
	if len(r.SQLExecutions) == 0 {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(r.SQLExecutions))
	for _, ex := range r.SQLExecutions {
		m := map[string]interface{}{
			"query":             ex.Query,
			"columns":           ex.Columns,
			"rows":              ex.FullRows,
			"total_rows":        ex.TotalRows,
			"execution_time_ms": ex.ExecutionTimeMs,
		}
		if ex.Error != "" {
			m["error"] = ex.Error
		}
		out = append(out, m)
	}
	return out
}

// TraceEntries converts the tool-call trace into the persisted JSON shape.
func (r *StreamResult) TraceEntries() []map[string]interface{} {
	if len(r.ToolCallTrace) == 0 {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(r.ToolCallTrace))
	for _, tc := range r.ToolCallTrace {
		out = append(out, map[string]interface{}{
			"tool": tc.Tool,
			"args": tc.Args,
		})
	}
	return out
}
