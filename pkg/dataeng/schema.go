package dataeng

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/chatdf/chatdf/pkg/models"
)

const (
	// scanViewName is the scratch view used by schema and profile tasks.
	// Workers run one task at a time, so a fixed name cannot collide.
	scanViewName = "__dataset_scan"

	schemaSampleRows   = 100
	schemaSampleValues = 5
	sampleValueMaxLen  = 80
)

// extractSchema derives the dataset schema: column names and types, up to
// five distinct sample values per column from the first hundred rows, and a
// single aggregation pass of lightweight statistics.
func extractSchema(ctx context.Context, db *sql.DB, source string) (*models.DatasetSchema, *models.EngineError) {
	if err := createView(ctx, db, scanViewName, source); err != nil {
		return nil, &models.EngineError{
			Kind:    models.ErrorKindSQL,
			Message: "could not read the data file",
			Details: err.Error(),
		}
	}

	columns, engErr := describeView(ctx, db)
	if engErr != nil {
		return nil, engErr
	}

	var rowCount int64
	if err := db.QueryRowContext(ctx, fmt.Sprintf(`SELECT count(*) FROM %s`, quoteIdent(scanViewName))).Scan(&rowCount); err != nil {
		return nil, classifyExecError(ctx, err)
	}

	schema := &models.DatasetSchema{RowCount: rowCount}
	for _, col := range columns {
		samples, engErr := sampleValues(ctx, db, col.name)
		if engErr != nil {
			return nil, engErr
		}
		schema.Columns = append(schema.Columns, models.SchemaColumn{
			Name:         col.name,
			Type:         col.typ,
			SampleValues: samples,
		})
	}

	if engErr := attachStats(ctx, db, schema, columns); engErr != nil {
		return nil, engErr
	}
	return schema, nil
}

type columnDesc struct {
	name string
	typ  string
}

// describeView lists the scratch view's columns and their DuckDB types.
func describeView(ctx context.Context, db *sql.DB) ([]columnDesc, *models.EngineError) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT column_name, column_type FROM (DESCRIBE %s)`, quoteIdent(scanViewName)))
	if err != nil {
		return nil, classifyExecError(ctx, err)
	}
	defer rows.Close()

	var columns []columnDesc
	for rows.Next() {
		var c columnDesc
		if err := rows.Scan(&c.name, &c.typ); err != nil {
			return nil, classifyExecError(ctx, err)
		}
		columns = append(columns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyExecError(ctx, err)
	}
	return columns, nil
}

// sampleValues pulls up to five distinct non-null values from the first
// hundred rows, each rendered as text and truncated.
func sampleValues(ctx context.Context, db *sql.DB, column string) ([]string, *models.EngineError) {
	query := fmt.Sprintf(
		`SELECT DISTINCT %[1]s::VARCHAR FROM (SELECT %[1]s FROM %[2]s LIMIT %[3]d) WHERE %[1]s IS NOT NULL LIMIT %[4]d`,
		quoteIdent(column), quoteIdent(scanViewName), schemaSampleRows, schemaSampleValues)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, classifyExecError(ctx, err)
	}
	defer rows.Close()

	samples := make([]string, 0, schemaSampleValues)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, classifyExecError(ctx, err)
		}
		samples = append(samples, truncateValue(v))
	}
	if err := rows.Err(); err != nil {
		return nil, classifyExecError(ctx, err)
	}
	return samples, nil
}

// attachStats runs one aggregation over the whole dataset and fills in
// per-column statistics: null counts for all columns, min/max for numerics,
// distinct counts for strings.
func attachStats(ctx context.Context, db *sql.DB, schema *models.DatasetSchema, columns []columnDesc) *models.EngineError {
	var exprs []string
	for _, col := range columns {
		q := quoteIdent(col.name)
		exprs = append(exprs, fmt.Sprintf(`count(*) - count(%s)`, q))
		switch {
		case isNumericType(col.typ):
			exprs = append(exprs,
				fmt.Sprintf(`min(%s)::DOUBLE`, q),
				fmt.Sprintf(`max(%s)::DOUBLE`, q))
		case isStringType(col.typ):
			exprs = append(exprs, fmt.Sprintf(`count(DISTINCT %s)`, q))
		}
	}
	if len(exprs) == 0 {
		return nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, strings.Join(exprs, ", "), quoteIdent(scanViewName))
	values := make([]interface{}, len(exprs))
	pointers := make([]interface{}, len(exprs))
	for i := range values {
		pointers[i] = &values[i]
	}
	if err := db.QueryRowContext(ctx, query).Scan(pointers...); err != nil {
		return classifyExecError(ctx, err)
	}

	i := 0
	for c := range schema.Columns {
		col := &schema.Columns[c]
		stats := &models.ColumnStats{}
		if n, ok := asInt64(values[i]); ok {
			stats.NullCount = &n
		}
		i++
		switch {
		case isNumericType(col.Type):
			if f, ok := asFloat64(values[i]); ok {
				stats.Min = &f
			}
			i++
			if f, ok := asFloat64(values[i]); ok {
				stats.Max = &f
			}
			i++
		case isStringType(col.Type):
			if n, ok := asInt64(values[i]); ok {
				stats.NUnique = &n
			}
			i++
		}
		col.Stats = stats
	}
	return nil
}

func truncateValue(v string) string {
	if len(v) <= sampleValueMaxLen {
		return v
	}
	return v[:sampleValueMaxLen]
}

func isNumericType(t string) bool {
	upper := strings.ToUpper(t)
	for _, prefix := range []string{
		"TINYINT", "SMALLINT", "INTEGER", "BIGINT", "HUGEINT",
		"UTINYINT", "USMALLINT", "UINTEGER", "UBIGINT", "UHUGEINT",
		"FLOAT", "DOUBLE", "REAL", "DECIMAL",
	} {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

func isStringType(t string) bool {
	upper := strings.ToUpper(t)
	return strings.HasPrefix(upper, "VARCHAR") || upper == "TEXT" || upper == "STRING"
}

func isTemporalType(t string) bool {
	upper := strings.ToUpper(t)
	return strings.HasPrefix(upper, "DATE") || strings.HasPrefix(upper, "TIME")
}

func asInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}

func asFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
