package dataeng

import (
	"context"
	"database/sql"

	"github.com/chatdf/chatdf/pkg/models"
)

// task is a unit of work handed to a pool worker. The result channel is
// buffered so an abandoned task (caller timed out) never blocks the worker.
type task struct {
	ctx      context.Context
	name     string
	run      func(ctx context.Context, db *sql.DB) (any, *models.EngineError)
	resultCh chan taskResult
}

// taskResult is the tagged outcome of a task: exactly one of value or err
// is meaningful.
type taskResult struct {
	value any
	err   *models.EngineError
}

// QueryRequest describes a SQL execution against a set of datasets.
type QueryRequest struct {
	SQL      string
	Datasets []models.QueryDataset
	// UseCache controls result-cache lookup and population.
	UseCache bool
}

// ProfileRequest describes a dataset profiling task. Column is empty for a
// full-dataset profile.
type ProfileRequest struct {
	URL       string
	TableName string
	Column    string
}

// PreviewMode selects the sampling strategy for dataset previews.
type PreviewMode string

// Preview sampling strategies.
const (
	PreviewHead       PreviewMode = "head"
	PreviewTail       PreviewMode = "tail"
	PreviewRandom     PreviewMode = "random"
	PreviewStratified PreviewMode = "stratified"
)

// PreviewRequest describes a dataset preview task.
type PreviewRequest struct {
	URL          string
	Mode         PreviewMode
	Rows         int
	SampleColumn string  // stratified only
	Percentage   float64 // random/stratified, percent of rows
}
