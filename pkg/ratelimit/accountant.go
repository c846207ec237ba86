// Package ratelimit enforces the per-user rolling-window token budget.
// Usage is an append-only ledger summed over the trailing 24 hours; a
// short-lived per-user memo avoids re-summing on every message.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chatdf/chatdf/ent"
	"github.com/chatdf/chatdf/ent/tokenusage"
	"github.com/chatdf/chatdf/pkg/config"
)

// Status is the outcome of a rate-limit check. ResetsInSeconds is only set
// when the user is over the limit; under it the field is absent on the wire.
type Status struct {
	UsageTokens     int     `json:"usage_tokens"`
	LimitTokens     int     `json:"limit_tokens"`
	RemainingTokens int     `json:"remaining_tokens"`
	UsagePercent    float64 `json:"usage_percent"`
	Warning         bool    `json:"warning"`
	Allowed         bool    `json:"allowed"`
	ResetsInSeconds *int64  `json:"resets_in_seconds,omitempty"`
}

type memoEntry struct {
	status   Status
	storedAt time.Time // monotonic
}

// Accountant sums token usage over the rolling window and answers
// allow/deny decisions.
type Accountant struct {
	client *ent.Client
	cfg    *config.Config

	mu    sync.Mutex
	memos map[string]memoEntry // userID → cached status
}

// NewAccountant creates a rate-limit accountant backed by the usage ledger.
func NewAccountant(client *ent.Client, cfg *config.Config) *Accountant {
	return &Accountant{
		client: client,
		cfg:    cfg,
		memos:  make(map[string]memoEntry),
	}
}

// CheckLimit returns the user's current window status. Results are memoized
// for the configured TTL; RecordUsage invalidates the memo.
func (a *Accountant) CheckLimit(ctx context.Context, userID string) (*Status, error) {
	a.mu.Lock()
	if entry, ok := a.memos[userID]; ok && time.Since(entry.storedAt) < a.cfg.RateLimitCacheTTL {
		status := entry.status
		a.mu.Unlock()
		return &status, nil
	}
	a.mu.Unlock()

	status, err := a.computeStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.memos[userID] = memoEntry{status: *status, storedAt: time.Now()}
	a.mu.Unlock()
	return status, nil
}

// computeStatus sums the ledger over the trailing window. The window is
// left-exclusive: a record exactly windowSize old no longer counts.
func (a *Accountant) computeStatus(ctx context.Context, userID string) (*Status, error) {
	now := time.Now()
	windowStart := now.Add(-a.cfg.RateLimitWindow)

	var rows []struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	}
	err := a.client.TokenUsage.Query().
		Where(
			tokenusage.UserIDEQ(userID),
			tokenusage.CreatedAtGT(windowStart),
		).
		Aggregate(
			ent.Sum(tokenusage.FieldInputTokens),
			ent.Sum(tokenusage.FieldOutputTokens),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to sum token usage: %w", err)
	}

	usage := 0
	if len(rows) > 0 {
		usage = rows[0].InputTokens + rows[0].OutputTokens
	}

	limit := a.cfg.TokenLimit
	remaining := limit - usage
	if remaining < 0 {
		remaining = 0
	}
	percent := float64(usage) / float64(limit) * 100

	status := &Status{
		UsageTokens:     usage,
		LimitTokens:     limit,
		RemainingTokens: remaining,
		UsagePercent:    percent,
		Warning:         percent >= a.cfg.WarningThresholdPct,
		Allowed:         usage < limit,
	}
	if !status.Allowed {
		seconds := a.resetsIn(ctx, userID, windowStart, now)
		status.ResetsInSeconds = &seconds
	}
	return status, nil
}

// resetsIn reports how long until the oldest in-window record ages out.
// Zero when the window is empty.
func (a *Accountant) resetsIn(ctx context.Context, userID string, windowStart, now time.Time) int64 {
	oldest, err := a.client.TokenUsage.Query().
		Where(
			tokenusage.UserIDEQ(userID),
			tokenusage.CreatedAtGT(windowStart),
		).
		Order(ent.Asc(tokenusage.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			slog.Warn("Failed to find oldest usage record", "user_id", userID, "error", err)
		}
		return 0
	}
	resetAt := oldest.CreatedAt.Add(a.cfg.RateLimitWindow)
	seconds := int64(resetAt.Sub(now).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	return seconds
}

// RecordUsage appends a ledger row and invalidates the user's memo so the
// next check sees the new spend.
func (a *Accountant) RecordUsage(ctx context.Context, userID, conversationID, model string, inputTokens, outputTokens int, cost float64) error {
	create := a.client.TokenUsage.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetModel(model).
		SetInputTokens(inputTokens).
		SetOutputTokens(outputTokens).
		SetCost(cost)
	if conversationID != "" {
		create = create.SetConversationID(conversationID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to record token usage: %w", err)
	}

	a.mu.Lock()
	delete(a.memos, userID)
	a.mu.Unlock()
	return nil
}

// ClearCache drops all memoized statuses. Used by tests.
func (a *Accountant) ClearCache() {
	a.mu.Lock()
	a.memos = make(map[string]memoEntry)
	a.mu.Unlock()
}
