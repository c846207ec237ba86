// Package events delivers real-time chat and dataset events to WebSocket
// clients. Event payloads use short field names: a streaming turn can emit
// thousands of chunk events, so the wire format stays terse.
package events

// Event type codes.
const (
	TypeTextChunk         = "ct"  // assistant text delta
	TypeReasoningChunk    = "rt"  // reasoning text delta
	TypeReasoningComplete = "rc"  // reasoning stream finished
	TypeToolCallStart     = "tcs" // model invoked a tool
	TypeQueryProgress     = "qp"  // nth query of the turn starting
	TypeQueryStatus       = "qs"  // query phase transition
	TypeChartSpec         = "cs"  // chart specification produced
	TypeFollowups         = "fs"  // follow-up suggestions
	TypeRateLimitWarning  = "rlw" // usage crossed the warning threshold
	TypeRateLimitExceeded = "rle" // turn rejected, budget exhausted
	TypeChatComplete      = "cc"  // turn finished, final message
	TypeChatError         = "ce"  // turn failed
	TypeDatasetLoading    = "dl"  // dataset add started
	TypeDatasetLoaded     = "dld" // dataset ready
	TypeDatasetError      = "de"  // dataset add failed
	TypeTitleUpdated      = "ctu" // conversation title changed
	TypeUsageUpdated      = "uu"  // token usage changed
)

// TextChunk carries one delta of assistant prose.
type TextChunk struct {
	Type      string `json:"type"`
	Text      string `json:"t"`
	MessageID string `json:"mid,omitempty"`
}

// ReasoningChunk carries one delta of model reasoning.
type ReasoningChunk struct {
	Type string `json:"type"`
	Text string `json:"t"`
}

// ReasoningComplete marks the end of the reasoning stream for a turn.
type ReasoningComplete struct {
	Type string `json:"type"`
}

// ToolCallStart announces a tool invocation.
type ToolCallStart struct {
	Type string         `json:"type"`
	Tool string         `json:"tl"`
	Args map[string]any `json:"a,omitempty"`
}

// QueryProgress announces the nth SQL execution of the turn, counted from 1.
type QueryProgress struct {
	Type   string `json:"type"`
	Number int    `json:"n"`
}

// QueryStatus reports a query phase transition ("generating", "executing").
type QueryStatus struct {
	Type  string `json:"type"`
	Phase string `json:"p"`
}

// ChartSpec carries a chart specification tied to a SQL execution.
type ChartSpec struct {
	Type           string         `json:"type"`
	ExecutionIndex int            `json:"ei"`
	Spec           map[string]any `json:"sp"`
}

// Followups carries the end-of-turn suggestion list.
type Followups struct {
	Type        string   `json:"type"`
	Suggestions []string `json:"sg"`
}

// RateLimitWarning is sent when usage crosses the warning threshold.
type RateLimitWarning struct {
	Type            string  `json:"type"`
	UsagePercent    float64 `json:"up"`
	RemainingTokens int     `json:"rt"`
}

// RateLimitExceeded is sent when a turn is rejected for budget exhaustion.
type RateLimitExceeded struct {
	Type            string `json:"type"`
	ResetsInSeconds int64  `json:"rs"`
}

// ChatComplete is the terminal event of a successful turn. SQLExecutions
// carries wire-truncated rows, never the full persisted result.
type ChatComplete struct {
	Type          string   `json:"type"`
	MessageID     string   `json:"mid"`
	ToolCallsMade int      `json:"tc"`
	SQLExecutions any      `json:"se,omitempty"`
	InputTokens   int      `json:"it"`
	OutputTokens  int      `json:"ot"`
	SQLQueries    []string `json:"sq,omitempty"`
	Reasoning     string   `json:"r,omitempty"`
	ToolCallTrace any      `json:"tct,omitempty"`
}

// ChatError is the terminal event of a failed turn.
type ChatError struct {
	Type    string `json:"type"`
	Error   string `json:"e"`
	Details string `json:"d,omitempty"`
}

// DatasetLoading announces a background dataset load.
type DatasetLoading struct {
	Type      string `json:"type"`
	URL       string `json:"u"`
	TableName string `json:"tn"`
}

// DatasetLoaded announces a dataset that became ready.
type DatasetLoaded struct {
	Type    string `json:"type"`
	Dataset any    `json:"ds"`
}

// DatasetError announces a failed dataset load.
type DatasetError struct {
	Type  string `json:"type"`
	URL   string `json:"u"`
	Error string `json:"e"`
}

// TitleUpdated announces an auto-generated or edited conversation title.
type TitleUpdated struct {
	Type           string `json:"type"`
	ConversationID string `json:"cid"`
	Title          string `json:"ti"`
}

// UsageUpdated carries the post-turn rate-limit status.
type UsageUpdated struct {
	Type   string `json:"type"`
	Status any    `json:"st"`
}
