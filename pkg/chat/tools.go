package chat

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chatdf/chatdf/ent"
	"github.com/chatdf/chatdf/pkg/catalog"
	"github.com/chatdf/chatdf/pkg/dataeng"
	"github.com/chatdf/chatdf/pkg/events"
	"github.com/chatdf/chatdf/pkg/llm"
	"github.com/chatdf/chatdf/pkg/models"
	"github.com/chatdf/chatdf/pkg/translate"
)

// modelPreviewRows caps how many result rows the model sees per execution.
const modelPreviewRows = 20

const (
	maxFollowups      = 3
	maxFollowupLength = 80
)

func toolDefinitions() []llm.ToolDefinition {
	return []llm.ToolDefinition{
		{
			Name:        "execute_sql",
			Description: "Run one SELECT query against the loaded datasets and get back columns and a row preview.",
			ParametersSchema: `{"type":"object","properties":{"sql":{"type":"string","description":"A single SELECT statement in DuckDB dialect"}},"required":["sql"]}`,
		},
		{
			Name:        "load_dataset",
			Description: "Register a new dataset from a URL the user provided.",
			ParametersSchema: `{"type":"object","properties":{"url":{"type":"string"},"table_name":{"type":"string","description":"Optional table name; auto-assigned when omitted"}},"required":["url"]}`,
		},
		{
			Name:        "create_chart",
			Description: "Attach a chart specification to a previous query result.",
			ParametersSchema: `{"type":"object","properties":{"spec":{"type":"object","description":"Chart specification: type, x, y, title"},"execution_index":{"type":"integer","description":"Zero-based index of the query result to chart; omit for the most recent"}},"required":["spec"]}`,
		},
		{
			Name:        "suggest_followups",
			Description: "Propose up to three short follow-up questions for the user.",
			ParametersSchema: `{"type":"object","properties":{"suggestions":{"type":"array","items":{"type":"string"},"maxItems":3}},"required":["suggestions"]}`,
		},
	}
}

// turnState carries per-turn mutable state across tool dispatches.
type turnState struct {
	result     *models.StreamResult
	datasets   []*ent.Dataset
	sqlRetries int
}

// dispatchTool executes one tool call and returns the result text fed back
// to the model. Tool failures are results, not errors; the turn continues.
func (e *Engine) dispatchTool(ctx context.Context, userID, conversationID string, tc llm.ToolCall, state *turnState) string {
	var args map[string]interface{}
	if err := json.Unmarshal([]byte(tc.Arguments), &args); err != nil {
		args = map[string]interface{}{}
	}
	state.result.ToolCallsMade++
	state.result.ToolCallTrace = append(state.result.ToolCallTrace, models.ToolCallRecord{
		Tool: tc.Name,
		Args: args,
	})
	e.events.SendToUser(ctx, userID, events.ToolCallStart{
		Type: events.TypeToolCallStart,
		Tool: tc.Name,
		Args: args,
	})

	switch tc.Name {
	case "execute_sql":
		return e.toolExecuteSQL(ctx, userID, args, state)
	case "load_dataset":
		return e.toolLoadDataset(ctx, userID, conversationID, args, state)
	case "create_chart":
		return e.toolCreateChart(ctx, userID, args, state)
	case "suggest_followups":
		return e.toolSuggestFollowups(ctx, userID, args, state)
	default:
		return fmt.Sprintf("Unknown tool %q.", tc.Name)
	}
}

func (e *Engine) toolExecuteSQL(ctx context.Context, userID string, args map[string]interface{}, state *turnState) string {
	sqlText, _ := args["sql"].(string)
	if sqlText == "" {
		return "The sql argument is required."
	}

	queryDatasets := make([]models.QueryDataset, 0, len(state.datasets))
	for _, ds := range state.datasets {
		queryDatasets = append(queryDatasets, models.QueryDataset{TableName: ds.TableName, URL: ds.URL})
	}

	state.result.SQLQueries = append(state.result.SQLQueries, sqlText)
	e.events.SendToUser(ctx, userID, events.QueryProgress{
		Type:   events.TypeQueryProgress,
		Number: len(state.result.SQLQueries),
	})
	e.events.SendToUser(ctx, userID, events.QueryStatus{Type: events.TypeQueryStatus, Phase: "executing"})

	result, engErr := e.pool.RunQuery(ctx, dataeng.QueryRequest{
		SQL:      sqlText,
		Datasets: queryDatasets,
		UseCache: true,
	})
	if engErr != nil {
		state.result.SQLExecutions = append(state.result.SQLExecutions, models.SQLExecution{
			Query: sqlText,
			Error: engErr.Message,
		})
		state.sqlRetries++
		translated := translate.EngineError(engErr.Message, e.availableColumns(state))
		if state.sqlRetries >= e.cfg.MaxSQLRetries {
			return translated + " The retry limit for this turn is reached; explain the problem to the user instead of retrying."
		}
		return translated + " Fix the query and try again."
	}

	execution := models.SQLExecution{
		Query:           sqlText,
		Columns:         result.Columns,
		Rows:            capRows(result.Rows, wireRowCap),
		FullRows:        result.Rows,
		TotalRows:       result.TotalRows,
		ExecutionTimeMs: result.ExecutionTimeMs,
	}
	state.result.SQLExecutions = append(state.result.SQLExecutions, execution)

	preview := map[string]interface{}{
		"columns":    result.Columns,
		"rows":       capRows(result.Rows, modelPreviewRows),
		"total_rows": result.TotalRows,
		"cached":     result.Cached,
	}
	data, err := json.Marshal(preview)
	if err != nil {
		return "The query succeeded but the result preview could not be rendered."
	}
	return string(data)
}

func (e *Engine) toolLoadDataset(ctx context.Context, userID, conversationID string, args map[string]interface{}, state *turnState) string {
	url, _ := args["url"].(string)
	if url == "" {
		return "The url argument is required."
	}
	if err := catalog.ValidateURL(url); err != nil {
		return fmt.Sprintf("The dataset could not be added: %s.", err)
	}
	tableName, _ := args["table_name"].(string)

	ds, err := e.catalog.BeginAdd(ctx, conversationID, url, tableName)
	if err != nil {
		return fmt.Sprintf("The dataset could not be added: %s.", err)
	}
	e.events.SendToUser(ctx, userID, events.DatasetLoading{
		Type:      events.TypeDatasetLoading,
		URL:       url,
		TableName: ds.TableName,
	})

	loaded, err := e.catalog.FinishAdd(ctx, ds)
	if err != nil {
		e.events.SendToUser(ctx, userID, events.DatasetError{
			Type:  events.TypeDatasetError,
			URL:   url,
			Error: err.Error(),
		})
		return fmt.Sprintf("Loading the dataset failed: %s.", err)
	}

	state.datasets = append(state.datasets, loaded)
	e.events.SendToUser(ctx, userID, events.DatasetLoaded{
		Type:    events.TypeDatasetLoaded,
		Dataset: DatasetSummary(loaded),
	})
	return fmt.Sprintf("Dataset loaded as %s with %d rows and %d columns.",
		loaded.TableName, loaded.RowCount, loaded.ColumnCount)
}

func (e *Engine) toolCreateChart(ctx context.Context, userID string, args map[string]interface{}, state *turnState) string {
	spec, _ := args["spec"].(map[string]interface{})
	if spec == nil {
		return "The spec argument is required."
	}

	index := latestSuccessfulExecution(state.result.SQLExecutions)
	if raw, ok := args["execution_index"].(float64); ok {
		requested := int(raw)
		if requested >= 0 && requested < len(state.result.SQLExecutions) {
			index = requested
		}
	}
	if index < 0 {
		return "There is no query result to chart yet; run execute_sql first."
	}

	e.events.SendToUser(ctx, userID, events.ChartSpec{
		Type:           events.TypeChartSpec,
		ExecutionIndex: index,
		Spec:           spec,
	})
	return fmt.Sprintf("Chart attached to query result %d.", index)
}

func (e *Engine) toolSuggestFollowups(ctx context.Context, userID string, args map[string]interface{}, state *turnState) string {
	raw, _ := args["suggestions"].([]interface{})
	var suggestions []string
	for _, item := range raw {
		s, ok := item.(string)
		if !ok || s == "" {
			continue
		}
		if runes := []rune(s); len(runes) > maxFollowupLength {
			s = string(runes[:maxFollowupLength])
		}
		suggestions = append(suggestions, s)
		if len(suggestions) == maxFollowups {
			break
		}
	}
	if len(suggestions) == 0 {
		return "No usable suggestions were provided."
	}

	state.result.FollowupSuggestions = suggestions
	e.events.SendToUser(ctx, userID, events.Followups{
		Type:        events.TypeFollowups,
		Suggestions: suggestions,
	})
	return "Follow-up suggestions recorded."
}

// latestSuccessfulExecution returns the index of the most recent successful
// execution, falling back to the last execution of any kind.
func latestSuccessfulExecution(executions []models.SQLExecution) int {
	for i := len(executions) - 1; i >= 0; i-- {
		if executions[i].Error == "" {
			return i
		}
	}
	return len(executions) - 1
}

func (e *Engine) availableColumns(state *turnState) []string {
	var columns []string
	for _, ds := range state.datasets {
		for _, col := range catalog.SchemaFromJSON(ds.Schema) {
			columns = append(columns, ds.TableName+"."+col.Name)
		}
	}
	return columns
}

func capRows(rows [][]interface{}, limit int) [][]interface{} {
	if len(rows) <= limit {
		return rows
	}
	return rows[:limit]
}

// DatasetSummary is the JSON shape of a dataset in API responses and events.
func DatasetSummary(ds *ent.Dataset) map[string]interface{} {
	summary := map[string]interface{}{
		"dataset_id":   ds.ID,
		"url":          ds.URL,
		"table_name":   ds.TableName,
		"row_count":    ds.RowCount,
		"column_count": ds.ColumnCount,
		"status":       ds.Status,
		"loaded_at":    ds.LoadedAt,
	}
	if ds.Schema != nil {
		summary["schema"] = ds.Schema
	}
	if ds.ErrorMessage != nil {
		summary["error_message"] = *ds.ErrorMessage
	}
	if ds.FileSizeBytes != nil {
		summary["file_size_bytes"] = *ds.FileSizeBytes
	}
	if len(ds.ColumnDescriptions) > 0 {
		summary["column_descriptions"] = ds.ColumnDescriptions
	}
	return summary
}
