// Package llm is the Go-side client for the model sidecar. It wraps the
// gRPC connection and exposes a channel-based streaming API; the chat
// engine consumes chunks and never touches the wire format.
package llm

import "context"

// Client is the interface the chat engine programs against.
type Client interface {
	// Generate sends a conversation to the model and returns a stream of
	// chunks. The channel is closed when the stream completes. Errors are
	// delivered as ErrorChunk values in the channel.
	Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)

	// Close releases the underlying connection.
	Close() error
}

// GenerateInput is one model call: the assembled conversation plus the
// tools the model may invoke. Tools nil means no tool calling (used to
// force a concluding answer).
type GenerateInput struct {
	ConversationID string
	Model          string
	Messages       []ConversationMessage
	Tools          []ToolDefinition
}

// ConversationMessage is one turn of the assembled conversation.
type ConversationMessage struct {
	Role       string // "system", "user", "assistant", "tool"
	Content    string
	ToolCalls  []ToolCall // assistant messages
	ToolCallID string     // tool result messages
	ToolName   string     // tool result messages
}

// ToolDefinition describes a tool available to the model.
type ToolDefinition struct {
	Name             string
	Description      string
	ParametersSchema string // JSON Schema
}

// ToolCall is the model's request to invoke a tool.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // JSON
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText     ChunkType = "text"
	ChunkTypeThinking ChunkType = "thinking"
	ChunkTypeToolCall ChunkType = "tool_call"
	ChunkTypeUsage    ChunkType = "usage"
	ChunkTypeError    ChunkType = "error"
)

// TextChunk is a chunk of the model's prose response.
type TextChunk struct{ Content string }

// ThinkingChunk is a chunk of the model's reasoning.
type ThinkingChunk struct{ Content string }

// ToolCallChunk signals the model wants to call a tool.
type ToolCallChunk struct{ CallID, Name, Arguments string }

// UsageChunk reports token consumption for this model call.
type UsageChunk struct{ InputTokens, OutputTokens, TotalTokens int32 }

// ErrorChunk signals an error from the model provider. Retryable marks
// transient failures (rate limiting, overload) worth backing off on.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType     { return ChunkTypeText }
func (c *ThinkingChunk) chunkType() ChunkType { return ChunkTypeThinking }
func (c *ToolCallChunk) chunkType() ChunkType { return ChunkTypeToolCall }
func (c *UsageChunk) chunkType() ChunkType    { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType    { return ChunkTypeError }
