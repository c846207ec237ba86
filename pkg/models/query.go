// Package models contains plain record types shared across service layers.
// Worker-pool requests and responses cross the pool boundary as these flat
// structs only — no shared object graphs.
package models

// Error kinds carried inline in worker results. Worker operations never
// raise across the pool boundary; the kind distinguishes handling.
const (
	ErrorKindValidation = "validation"
	ErrorKindNetwork    = "network"
	ErrorKindSQL        = "sql"
	ErrorKindTimeout    = "timeout"
	ErrorKindInternal   = "internal"
)

// EngineError is the inline error branch of a worker result.
type EngineError struct {
	Kind    string `json:"error_type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *EngineError) Error() string {
	return e.Message
}

// QueryDataset identifies one dataset a query runs against.
type QueryDataset struct {
	TableName string `json:"table_name"`
	URL       string `json:"url"`
}

// QueryResult is the materialized outcome of one SQL execution.
// Rows holds up to MaxResultRows rows; TotalRows is the true result size.
type QueryResult struct {
	Columns         []string        `json:"columns"`
	Rows            [][]interface{} `json:"rows"`
	TotalRows       int64           `json:"total_rows"`
	ExecutionTimeMs int64           `json:"execution_time_ms"`
	LimitApplied    bool            `json:"limit_applied"`
	Cached          bool            `json:"cached,omitempty"`
}

// ValidationResult is the outcome of a URL validation.
type ValidationResult struct {
	Valid         bool   `json:"valid"`
	FileSizeBytes *int64 `json:"file_size_bytes,omitempty"`
}

// ColumnStats holds the lightweight statistics computed in the single
// schema-extraction aggregation pass. Fields are emitted only when the
// column type makes them meaningful.
type ColumnStats struct {
	NullCount *int64   `json:"null_count,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	NUnique   *int64   `json:"n_unique,omitempty"`
}

// SchemaColumn describes one column of a dataset schema.
type SchemaColumn struct {
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	SampleValues []string     `json:"sample_values"`
	Stats        *ColumnStats `json:"column_stats,omitempty"`
}

// DatasetSchema is the outcome of schema extraction.
type DatasetSchema struct {
	Columns       []SchemaColumn `json:"columns"`
	RowCount      int64          `json:"row_count"`
	FileSizeBytes *int64         `json:"file_size_bytes,omitempty"`
}

// ColumnProfile is a per-column summary from the profiling operations.
type ColumnProfile struct {
	Name          string     `json:"name"`
	Type          string     `json:"type"`
	NullPercent   float64    `json:"null_percent"`
	DistinctCount int64      `json:"distinct_count"`
	Mean          *float64   `json:"mean,omitempty"`
	Median        *float64   `json:"median,omitempty"`
	MinLength     *int64     `json:"min_length,omitempty"`
	MaxLength     *int64     `json:"max_length,omitempty"`
	TopValues     []TopValue `json:"top_values,omitempty"`
	MinTime       *string    `json:"min_time,omitempty"`
	MaxTime       *string    `json:"max_time,omitempty"`
	Sampled       bool       `json:"sampled,omitempty"`
}

// TopValue is one entry of a string column's top-5 value list.
type TopValue struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}
