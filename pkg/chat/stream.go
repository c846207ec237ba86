package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chatdf/chatdf/pkg/events"
	"github.com/chatdf/chatdf/pkg/llm"
)

// ErrLLMBusy is returned when the model provider keeps rate-limiting after
// all retries. The message is shown to the user verbatim.
var ErrLLMBusy = errors.New("The AI service is temporarily busy. Please try again in a moment.")

// streamingMessageID is the placeholder message id on text deltas; the real
// id only exists once the assistant row is persisted at turn end.
const streamingMessageID = "streaming"

// callResult collects the chunks of one model call.
type callResult struct {
	text         string
	thinking     string
	toolCalls    []llm.ToolCall
	inputTokens  int
	outputTokens int
}

// streamCall performs one model call, forwarding text and reasoning deltas
// to the user as they arrive. Retryable provider errors (rate limiting) are
// retried with exponential backoff before giving up.
func (e *Engine) streamCall(ctx context.Context, userID string, input *llm.GenerateInput) (*callResult, error) {
	var lastErr error
	for attempt := 0; attempt <= e.cfg.MaxLLMRetries; attempt++ {
		if attempt > 0 {
			delay := e.cfg.LLMRetryBaseDelay * time.Duration(1<<(attempt-1))
			slog.Info("Retrying model call after transient error",
				"attempt", attempt, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := e.collectStream(ctx, userID, input)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, errRetryableLLM) {
			// A cancelled stream still carries the partial result.
			return result, err
		}
		lastErr = err
	}
	slog.Warn("Model provider still busy after retries", "error", lastErr)
	return nil, ErrLLMBusy
}

// errRetryableLLM marks a transient provider failure inside one attempt.
var errRetryableLLM = errors.New("retryable model error")

func (e *Engine) collectStream(ctx context.Context, userID string, input *llm.GenerateInput) (*callResult, error) {
	chunks, err := e.llm.Generate(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	result := &callResult{}
	sawThinking := false

	for chunk := range chunks {
		switch c := chunk.(type) {
		case *llm.TextChunk:
			if sawThinking {
				// Reasoning stream has ended once prose starts.
				e.events.SendToUser(ctx, userID, events.ReasoningComplete{Type: events.TypeReasoningComplete})
				sawThinking = false
			}
			result.text += c.Content
			e.events.SendToUser(ctx, userID, events.TextChunk{
				Type:      events.TypeTextChunk,
				Text:      c.Content,
				MessageID: streamingMessageID,
			})

		case *llm.ThinkingChunk:
			sawThinking = true
			result.thinking += c.Content
			e.events.SendToUser(ctx, userID, events.ReasoningChunk{Type: events.TypeReasoningChunk, Text: c.Content})

		case *llm.ToolCallChunk:
			result.toolCalls = append(result.toolCalls, llm.ToolCall{
				ID:        c.CallID,
				Name:      c.Name,
				Arguments: c.Arguments,
			})

		case *llm.UsageChunk:
			result.inputTokens += int(c.InputTokens)
			result.outputTokens += int(c.OutputTokens)

		case *llm.ErrorChunk:
			if c.Retryable {
				return nil, fmt.Errorf("%w: %s", errRetryableLLM, c.Message)
			}
			return nil, fmt.Errorf("model error: %s", c.Message)
		}
	}

	if sawThinking {
		e.events.SendToUser(ctx, userID, events.ReasoningComplete{Type: events.TypeReasoningComplete})
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}
