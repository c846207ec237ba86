package dataeng

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/chatdf/chatdf/pkg/models"
)

// executeQuery runs the prepared SQL, materializes the full result set, and
// returns up to maxResultRows rows plus the true total.
func executeQuery(ctx context.Context, db *sql.DB, sqlText string, limitApplied bool, maxResultRows int) (*models.QueryResult, *models.EngineError) {
	start := time.Now()

	rows, err := db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, classifyExecError(ctx, err)
	}
	defer rows.Close()

	columns, all, err := collectRows(rows)
	if err != nil {
		return nil, classifyExecError(ctx, err)
	}

	total := int64(len(all))
	if len(all) > maxResultRows {
		all = all[:maxResultRows]
	}

	return &models.QueryResult{
		Columns:         columns,
		Rows:            all,
		TotalRows:       total,
		ExecutionTimeMs: time.Since(start).Milliseconds(),
		LimitApplied:    limitApplied,
	}, nil
}

// collectRows scans every row into a generic value grid. Byte slices are
// converted to strings so results marshal as text rather than base64.
func collectRows(rows *sql.Rows) ([]string, [][]interface{}, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var all [][]interface{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, nil, err
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		all = append(all, values)
	}
	return columns, all, rows.Err()
}

// classifyExecError maps a driver error to an engine error kind. The raw
// engine message is preserved verbatim for the error translator.
func classifyExecError(ctx context.Context, err error) *models.EngineError {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return &models.EngineError{
			Kind:    models.ErrorKindTimeout,
			Message: "query exceeded its deadline",
		}
	}
	if errors.Is(ctx.Err(), context.Canceled) || errors.Is(err, context.Canceled) {
		return &models.EngineError{
			Kind:    models.ErrorKindTimeout,
			Message: "query was cancelled",
		}
	}
	return &models.EngineError{
		Kind:    models.ErrorKindSQL,
		Message: err.Error(),
	}
}

func internalError(message string, err error) *models.EngineError {
	engErr := &models.EngineError{
		Kind:    models.ErrorKindInternal,
		Message: message,
	}
	if err != nil {
		engErr.Details = err.Error()
	}
	return engErr
}
