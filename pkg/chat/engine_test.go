package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatdf/chatdf/ent"
	"github.com/chatdf/chatdf/pkg/config"
	"github.com/chatdf/chatdf/pkg/events"
	"github.com/chatdf/chatdf/pkg/llm"
	"github.com/chatdf/chatdf/pkg/models"
)

// fakeLLM replays a scripted chunk sequence per call and records inputs.
type fakeLLM struct {
	scripts [][]llm.Chunk
	inputs  []*llm.GenerateInput
}

func (f *fakeLLM) Generate(_ context.Context, input *llm.GenerateInput) (<-chan llm.Chunk, error) {
	f.inputs = append(f.inputs, input)
	call := len(f.inputs) - 1
	var script []llm.Chunk
	if call < len(f.scripts) {
		script = f.scripts[call]
	}
	ch := make(chan llm.Chunk, len(script))
	for _, c := range script {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (f *fakeLLM) Close() error { return nil }

func testEngine(fake *fakeLLM) *Engine {
	cfg := &config.Config{
		MaxToolCallsPerTurn: 5,
		MaxSQLRetries:       3,
		MaxLLMRetries:       3,
		LLMRetryBaseDelay:   time.Millisecond,
		MaxContextMessages:  50,
		MaxContextTokens:    200_000,
	}
	return &Engine{
		llm:    fake,
		events: events.NewManager(time.Second),
		cfg:    cfg,
		model:  "test-model",
		active: make(map[string]context.CancelFunc),
	}
}

func TestStreamCall(t *testing.T) {
	t.Run("collects text, thinking, usage", func(t *testing.T) {
		fake := &fakeLLM{scripts: [][]llm.Chunk{{
			&llm.ThinkingChunk{Content: "hmm"},
			&llm.TextChunk{Content: "The answer "},
			&llm.TextChunk{Content: "is 42."},
			&llm.UsageChunk{InputTokens: 10, OutputTokens: 5},
		}}}
		e := testEngine(fake)

		result, err := e.streamCall(context.Background(), "u1", &llm.GenerateInput{})
		require.NoError(t, err)
		assert.Equal(t, "The answer is 42.", result.text)
		assert.Equal(t, "hmm", result.thinking)
		assert.Equal(t, 10, result.inputTokens)
		assert.Equal(t, 5, result.outputTokens)
	})

	t.Run("retries transient provider errors with backoff", func(t *testing.T) {
		fake := &fakeLLM{scripts: [][]llm.Chunk{
			{&llm.ErrorChunk{Message: "rate limited", Retryable: true}},
			{&llm.ErrorChunk{Message: "rate limited", Retryable: true}},
			{&llm.TextChunk{Content: "ok"}},
		}}
		e := testEngine(fake)

		result, err := e.streamCall(context.Background(), "u1", &llm.GenerateInput{})
		require.NoError(t, err)
		assert.Equal(t, "ok", result.text)
		assert.Len(t, fake.inputs, 3)
	})

	t.Run("gives up with busy error after all retries", func(t *testing.T) {
		fake := &fakeLLM{scripts: [][]llm.Chunk{
			{&llm.ErrorChunk{Message: "rate limited", Retryable: true}},
			{&llm.ErrorChunk{Message: "rate limited", Retryable: true}},
			{&llm.ErrorChunk{Message: "rate limited", Retryable: true}},
			{&llm.ErrorChunk{Message: "rate limited", Retryable: true}},
		}}
		e := testEngine(fake)

		_, err := e.streamCall(context.Background(), "u1", &llm.GenerateInput{})
		assert.ErrorIs(t, err, ErrLLMBusy)
	})

	t.Run("non-retryable errors fail immediately", func(t *testing.T) {
		fake := &fakeLLM{scripts: [][]llm.Chunk{
			{&llm.ErrorChunk{Message: "bad request", Retryable: false}},
		}}
		e := testEngine(fake)

		_, err := e.streamCall(context.Background(), "u1", &llm.GenerateInput{})
		require.Error(t, err)
		assert.Len(t, fake.inputs, 1)
	})
}

func TestRunToolLoop(t *testing.T) {
	t.Run("dispatches tools then concludes", func(t *testing.T) {
		fake := &fakeLLM{scripts: [][]llm.Chunk{
			{&llm.ToolCallChunk{CallID: "c1", Name: "suggest_followups", Arguments: `{"suggestions":["What about Q2?"]}`}},
			{&llm.TextChunk{Content: "Here is the summary."}, &llm.UsageChunk{InputTokens: 4, OutputTokens: 2}},
		}}
		e := testEngine(fake)
		state := &turnState{result: &models.StreamResult{}}

		err := e.runToolLoop(context.Background(), "u1", "conv1", nil, state)
		require.NoError(t, err)
		assert.Equal(t, 1, state.result.ToolCallsMade)
		assert.Equal(t, []string{"What about Q2?"}, state.result.FollowupSuggestions)
		assert.Equal(t, "Here is the summary.", state.result.AssistantMessage)

		// The second call carries the tool result back to the model.
		require.Len(t, fake.inputs, 2)
		second := fake.inputs[1].Messages
		require.Len(t, second, 2)
		assert.Equal(t, "tool", second[1].Role)
		assert.Equal(t, "c1", second[1].ToolCallID)
	})

	t.Run("forces a conclusion after the tool budget", func(t *testing.T) {
		toolCall := []llm.Chunk{&llm.ToolCallChunk{CallID: "c", Name: "suggest_followups", Arguments: `{"suggestions":["more"]}`}}
		fake := &fakeLLM{scripts: [][]llm.Chunk{
			toolCall, toolCall,
			{&llm.TextChunk{Content: "done"}},
		}}
		e := testEngine(fake)
		e.cfg.MaxToolCallsPerTurn = 2
		state := &turnState{result: &models.StreamResult{}}

		err := e.runToolLoop(context.Background(), "u1", "conv1", nil, state)
		require.NoError(t, err)
		assert.Equal(t, 2, state.result.ToolCallsMade)

		// Final call must not offer tools.
		require.Len(t, fake.inputs, 3)
		assert.NotNil(t, fake.inputs[0].Tools)
		assert.Nil(t, fake.inputs[2].Tools)
		assert.Equal(t, "done", state.result.AssistantMessage)
	})

	t.Run("stop mid-stream keeps the partial text", func(t *testing.T) {
		fake := &fakeLLM{scripts: [][]llm.Chunk{{
			&llm.TextChunk{Content: "Partial ans"},
			&llm.UsageChunk{InputTokens: 3, OutputTokens: 1},
		}}}
		e := testEngine(fake)
		state := &turnState{result: &models.StreamResult{}}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := e.runToolLoop(ctx, "u1", "conv1", nil, state)
		require.NoError(t, err)
		assert.Equal(t, "Partial ans", state.result.AssistantMessage)
		assert.Equal(t, 3, state.result.InputTokens)
		assert.Equal(t, 1, state.result.OutputTokens)
	})
}

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "short title", truncateTitle("short title"))

	long := "this message is definitely much longer than fifty characters in total length"
	title := truncateTitle(long)
	assert.Equal(t, 51, len([]rune(title)))
	assert.Equal(t, "…", string([]rune(title)[50]))

	// Rune-safe with multibyte content.
	unicode := "préférences utilisateur et configuration du système d'analyse"
	assert.Equal(t, 51, len([]rune(truncateTitle(unicode))))
}

func TestPruneToTokenBudget(t *testing.T) {
	msg := func(content string, withSQL bool) *ent.Message {
		m := &ent.Message{Content: content}
		if withSQL {
			m.SQLExecutions = []map[string]interface{}{{"query": "SELECT 1"}}
		}
		return m
	}

	t.Run("under budget keeps everything", func(t *testing.T) {
		rows := []*ent.Message{msg("a", false), msg("b", true)}
		assert.Len(t, pruneToTokenBudget(rows, 1000), 2)
	})

	t.Run("drops prose before sql-bearing messages", func(t *testing.T) {
		big := make([]byte, 400)
		for i := range big {
			big[i] = 'x'
		}
		rows := []*ent.Message{
			msg(string(big), false),
			msg(string(big), true),
			msg("latest question", false),
		}
		kept := pruneToTokenBudget(rows, 150)
		require.Len(t, kept, 2)
		assert.NotEmpty(t, kept[0].SQLExecutions)
		assert.Equal(t, "latest question", kept[1].Content)
	})

	t.Run("never drops the newest message", func(t *testing.T) {
		rows := []*ent.Message{msg("only one very recent message", false)}
		kept := pruneToTokenBudget(rows, 1)
		assert.Len(t, kept, 1)
	})
}

func TestErrorClass(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{ErrLLMBusy, "LLMBusyError"},
		{ErrConversationBusy, "ConversationBusyError"},
		{context.Canceled, "CancelledError"},
		{context.DeadlineExceeded, "TimeoutError"},
		{assert.AnError, "InternalError"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, errorClass(tc.err))
	}
}

func TestLatestSuccessfulExecution(t *testing.T) {
	assert.Equal(t, -1, latestSuccessfulExecution(nil))

	executions := []models.SQLExecution{
		{Query: "q1"},
		{Query: "q2", Error: "boom"},
	}
	assert.Equal(t, 0, latestSuccessfulExecution(executions))

	allFailed := []models.SQLExecution{
		{Query: "q1", Error: "boom"},
		{Query: "q2", Error: "boom"},
	}
	assert.Equal(t, 1, latestSuccessfulExecution(allFailed))
}
