// Package chat orchestrates conversational turns: rate limiting, context
// assembly, the iterating model/tool loop, persistence, and event delivery.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/chatdf/chatdf/ent"
	"github.com/chatdf/chatdf/ent/conversation"
	entmessage "github.com/chatdf/chatdf/ent/message"
	"github.com/chatdf/chatdf/pkg/catalog"
	"github.com/chatdf/chatdf/pkg/config"
	"github.com/chatdf/chatdf/pkg/dataeng"
	"github.com/chatdf/chatdf/pkg/events"
	"github.com/chatdf/chatdf/pkg/llm"
	"github.com/chatdf/chatdf/pkg/models"
	"github.com/chatdf/chatdf/pkg/ratelimit"
)

// wireRowCap bounds rows per execution in WebSocket events.
const wireRowCap = 100

// titleMaxLength is the auto-title cap in runes, before the ellipsis.
const titleMaxLength = 50

// Sentinel errors surfaced to the API layer.
var (
	ErrConversationBusy = errors.New("a response is already being generated for this conversation")
	ErrRateLimited      = errors.New("token budget exhausted")
)

// Engine runs chat turns. One turn per conversation at a time; a second
// message while a turn runs is rejected with ErrConversationBusy.
type Engine struct {
	client     *ent.Client
	llm        llm.Client
	pool       *dataeng.Pool
	catalog    *catalog.Service
	accountant *ratelimit.Accountant
	events     *events.Manager
	cfg        *config.Config
	model      string

	// Active turn registry: conversation_id → cancel function
	mu     sync.RWMutex
	active map[string]context.CancelFunc
}

// NewEngine creates a chat engine.
func NewEngine(client *ent.Client, llmClient llm.Client, pool *dataeng.Pool, cat *catalog.Service, accountant *ratelimit.Accountant, ev *events.Manager, cfg *config.Config, model string) *Engine {
	return &Engine{
		client:     client,
		llm:        llmClient,
		pool:       pool,
		catalog:    cat,
		accountant: accountant,
		events:     ev,
		cfg:        cfg,
		model:      model,
		active:     make(map[string]context.CancelFunc),
	}
}

// AdmitMessage persists the user message and runs the pre-turn gates:
// conversation not busy, token budget not exhausted. The user row is kept
// even when the turn is rejected, so a rate-limited message is never lost.
// Callers start the turn with ProcessMessage only after admission succeeds.
func (e *Engine) AdmitMessage(ctx context.Context, userID, conversationID, content string) error {
	e.mu.RLock()
	_, busy := e.active[conversationID]
	e.mu.RUnlock()
	if busy {
		return ErrConversationBusy
	}

	if _, err := e.client.Message.Create().
		SetID(uuid.NewString()).
		SetConversationID(conversationID).
		SetRole(entmessage.RoleUser).
		SetContent(content).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to persist user message: %w", err)
	}

	if err := e.maybeAutoTitle(ctx, userID, conversationID, content); err != nil {
		slog.Warn("Auto-title failed", "conversation_id", conversationID, "error", err)
	}

	status, err := e.accountant.CheckLimit(ctx, userID)
	if err != nil {
		return fmt.Errorf("rate limit check failed: %w", err)
	}
	if !status.Allowed {
		var resets int64
		if status.ResetsInSeconds != nil {
			resets = *status.ResetsInSeconds
		}
		e.events.SendToUser(ctx, userID, events.RateLimitExceeded{
			Type:            events.TypeRateLimitExceeded,
			ResetsInSeconds: resets,
		})
		return ErrRateLimited
	}
	if status.Warning {
		e.events.SendToUser(ctx, userID, events.RateLimitWarning{
			Type:            events.TypeRateLimitWarning,
			UsagePercent:    status.UsagePercent,
			RemainingTokens: status.RemainingTokens,
		})
	}
	return nil
}

// ProcessMessage runs one full turn over an already-admitted message. It
// blocks until the turn completes; callers run it in a goroutine and rely
// on events for progress.
func (e *Engine) ProcessMessage(ctx context.Context, userID, conversationID string) error {
	turnCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if !e.registerTurn(conversationID, cancel) {
		return ErrConversationBusy
	}
	defer e.unregisterTurn(conversationID)

	err := e.runTurn(turnCtx, userID, conversationID)
	if err != nil {
		// Terminal error event is best-effort; the error also reaches the
		// caller for logging.
		e.events.SendToUser(context.Background(), userID, events.ChatError{
			Type:    events.TypeChatError,
			Error:   userFacingError(err),
			Details: errorClass(err),
		})
	}
	return err
}

// StopGeneration cancels the active turn for a conversation. Returns false
// when no turn is running.
func (e *Engine) StopGeneration(conversationID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if cancel, ok := e.active[conversationID]; ok {
		cancel()
		return true
	}
	return false
}

func (e *Engine) registerTurn(conversationID string, cancel context.CancelFunc) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, busy := e.active[conversationID]; busy {
		return false
	}
	e.active[conversationID] = cancel
	return true
}

func (e *Engine) unregisterTurn(conversationID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.active, conversationID)
}

func (e *Engine) runTurn(ctx context.Context, userID, conversationID string) error {
	datasets, err := e.catalog.ReadyDatasets(ctx, conversationID)
	if err != nil {
		return fmt.Errorf("failed to load datasets: %w", err)
	}
	messages, err := e.assembleContext(ctx, conversationID, datasets)
	if err != nil {
		return err
	}

	e.events.SendToUser(ctx, userID, events.QueryStatus{Type: events.TypeQueryStatus, Phase: "generating"})

	state := &turnState{
		result:   &models.StreamResult{},
		datasets: datasets,
	}
	if err := e.runToolLoop(ctx, userID, conversationID, messages, state); err != nil {
		return err
	}

	// A stopped turn ends here with a partial result; persistence and the
	// terminal events must still run after the turn context is cancelled.
	persistCtx := context.WithoutCancel(ctx)
	messageID, err := e.persistAssistantMessage(persistCtx, conversationID, state.result)
	if err != nil {
		return err
	}

	e.finishTurn(persistCtx, userID, conversationID, messageID, state.result)
	return nil
}

// runToolLoop drives the model/tool iteration. Tool calling stops when the
// model answers in prose, or after the per-turn budget, after which one
// final call without tools forces a conclusion.
func (e *Engine) runToolLoop(ctx context.Context, userID, conversationID string, messages []llm.ConversationMessage, state *turnState) error {
	for {
		forceConclusion := state.result.ToolCallsMade >= e.cfg.MaxToolCallsPerTurn
		input := &llm.GenerateInput{
			ConversationID: conversationID,
			Model:          e.model,
			Messages:       messages,
		}
		if !forceConclusion {
			input.Tools = toolDefinitions()
		}

		call, err := e.streamCall(ctx, userID, input)
		if err != nil {
			// A stop request concludes the turn with whatever streamed so far;
			// the partial text still becomes a valid assistant message.
			if errors.Is(err, context.Canceled) {
				if call != nil {
					accumulateCall(state.result, call)
				}
				return nil
			}
			return err
		}
		accumulateCall(state.result, call)

		if len(call.toolCalls) == 0 || forceConclusion {
			return nil
		}

		messages = append(messages, llm.ConversationMessage{
			Role:      "assistant",
			Content:   call.text,
			ToolCalls: call.toolCalls,
		})
		for _, tc := range call.toolCalls {
			result := e.dispatchTool(ctx, userID, conversationID, tc, state)
			messages = append(messages, llm.ConversationMessage{
				Role:       "tool",
				Content:    result,
				ToolCallID: tc.ID,
				ToolName:   tc.Name,
			})
			if err := ctx.Err(); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
		}
	}
}

// accumulateCall folds one model call's output into the turn result.
func accumulateCall(result *models.StreamResult, call *callResult) {
	result.InputTokens += call.inputTokens
	result.OutputTokens += call.outputTokens
	if call.thinking != "" {
		result.Reasoning += call.thinking
	}
	if call.text != "" {
		result.AssistantMessage += call.text
	}
}

// assembleContext builds the model conversation: system prompt plus recent
// history. History is pruned to the message cap, then to the token budget
// (chars/4 estimate), dropping oldest plain-prose messages before messages
// that carry SQL executions.
func (e *Engine) assembleContext(ctx context.Context, conversationID string, datasets []*ent.Dataset) ([]llm.ConversationMessage, error) {
	rows, err := e.client.Message.Query().
		Where(entmessage.ConversationIDEQ(conversationID)).
		Order(ent.Desc(entmessage.FieldCreatedAt)).
		Limit(e.cfg.MaxContextMessages).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load message history: %w", err)
	}
	// Oldest first.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	rows = pruneToTokenBudget(rows, e.cfg.MaxContextTokens)

	messages := []llm.ConversationMessage{{
		Role:    "system",
		Content: BuildSystemPrompt(datasets),
	}}
	for _, row := range rows {
		messages = append(messages, llm.ConversationMessage{
			Role:    string(row.Role),
			Content: row.Content,
		})
	}
	return messages, nil
}

// pruneToTokenBudget drops messages until the estimated token total fits.
// Plain-prose messages are dropped oldest-first before SQL-bearing ones,
// which carry the analytical state of the conversation.
func pruneToTokenBudget(rows []*ent.Message, maxTokens int) []*ent.Message {
	estimate := func(m *ent.Message) int { return len(m.Content)/4 + 8 }

	total := 0
	for _, m := range rows {
		total += estimate(m)
	}
	if total <= maxTokens {
		return rows
	}

	kept := make([]*ent.Message, len(rows))
	copy(kept, rows)

	drop := func(withSQL bool) {
		for i := 0; i < len(kept) && total > maxTokens; {
			hasSQL := len(kept[i].SQLExecutions) > 0
			// Never drop the newest message: it is the user's current turn.
			if hasSQL == withSQL && i < len(kept)-1 {
				total -= estimate(kept[i])
				kept = append(kept[:i], kept[i+1:]...)
				continue
			}
			i++
		}
	}
	drop(false)
	drop(true)
	return kept
}

// maybeAutoTitle fills an empty conversation title from the first message.
func (e *Engine) maybeAutoTitle(ctx context.Context, userID, conversationID, content string) error {
	conv, err := e.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		return err
	}
	if conv.Title != "" {
		return nil
	}

	title := truncateTitle(content)
	if _, err := conv.Update().SetTitle(title).Save(ctx); err != nil {
		return err
	}
	e.events.SendToUser(ctx, userID, events.TitleUpdated{
		Type:           events.TypeTitleUpdated,
		ConversationID: conversationID,
		Title:          title,
	})
	return nil
}

// truncateTitle caps a title at titleMaxLength runes plus an ellipsis.
func truncateTitle(content string) string {
	if utf8.RuneCountInString(content) <= titleMaxLength {
		return content
	}
	runes := []rune(content)
	return string(runes[:titleMaxLength]) + "…"
}

func (e *Engine) persistAssistantMessage(ctx context.Context, conversationID string, result *models.StreamResult) (string, error) {
	messageID := uuid.NewString()
	create := e.client.Message.Create().
		SetID(messageID).
		SetConversationID(conversationID).
		SetRole(entmessage.RoleAssistant).
		SetContent(result.AssistantMessage).
		SetInputTokens(result.InputTokens).
		SetOutputTokens(result.OutputTokens)
	if result.Reasoning != "" {
		create = create.SetReasoning(result.Reasoning)
	}
	if executions := result.PersistedExecutions(); executions != nil {
		create = create.SetSQLExecutions(executions)
	}
	if trace := result.TraceEntries(); trace != nil {
		create = create.SetToolCallTrace(trace)
	}
	if _, err := create.Save(ctx); err != nil {
		return "", fmt.Errorf("failed to persist assistant message: %w", err)
	}

	// Bump updated_at so listings reorder.
	if err := e.client.Conversation.Update().
		Where(conversation.IDEQ(conversationID)).
		Exec(ctx); err != nil {
		slog.Warn("Failed to touch conversation", "conversation_id", conversationID, "error", err)
	}
	return messageID, nil
}

// finishTurn records usage and sends the terminal events. All best-effort;
// the turn already succeeded.
func (e *Engine) finishTurn(ctx context.Context, userID, conversationID, messageID string, result *models.StreamResult) {
	if err := e.accountant.RecordUsage(ctx, userID, conversationID, e.model,
		result.InputTokens, result.OutputTokens, 0); err != nil {
		slog.Warn("Failed to record token usage", "user_id", userID, "error", err)
	}

	if status, err := e.accountant.CheckLimit(ctx, userID); err == nil {
		e.events.SendToUser(ctx, userID, events.UsageUpdated{Type: events.TypeUsageUpdated, Status: status})
		if status.Warning {
			e.events.SendToUser(ctx, userID, events.RateLimitWarning{
				Type:            events.TypeRateLimitWarning,
				UsagePercent:    status.UsagePercent,
				RemainingTokens: status.RemainingTokens,
			})
		}
	}

	wireExecutions := make([]models.SQLExecution, len(result.SQLExecutions))
	copy(wireExecutions, result.SQLExecutions)
	e.events.SendToUser(ctx, userID, events.ChatComplete{
		Type:          events.TypeChatComplete,
		MessageID:     messageID,
		ToolCallsMade: result.ToolCallsMade,
		SQLExecutions: wireExecutions,
		InputTokens:   result.InputTokens,
		OutputTokens:  result.OutputTokens,
		SQLQueries:    result.SQLQueries,
		Reasoning:     result.Reasoning,
		ToolCallTrace: result.ToolCallTrace,
	})
}

// userFacingError maps internal errors to the message shown in chat_error.
func userFacingError(err error) string {
	switch {
	case errors.Is(err, ErrLLMBusy):
		return ErrLLMBusy.Error()
	case errors.Is(err, context.Canceled):
		return "Generation was stopped."
	case errors.Is(err, context.DeadlineExceeded):
		return "The response took too long and was aborted."
	default:
		return "Something went wrong while generating the response."
	}
}

// errorClass names the failure category carried in the chat_error details
// field, so clients can branch without parsing prose.
func errorClass(err error) string {
	switch {
	case errors.Is(err, ErrLLMBusy):
		return "LLMBusyError"
	case errors.Is(err, ErrConversationBusy):
		return "ConversationBusyError"
	case errors.Is(err, context.Canceled):
		return "CancelledError"
	case errors.Is(err, context.DeadlineExceeded):
		return "TimeoutError"
	default:
		return "InternalError"
	}
}
