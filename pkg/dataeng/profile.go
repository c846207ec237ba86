package dataeng

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chatdf/chatdf/pkg/models"
)

// profileSampleRows caps how many rows the profiling pass reads. Datasets
// above this size are profiled on their first profileSampleRows rows and
// flagged as sampled.
const profileSampleRows = 100_000

const topValueCount = 5

// profileDataset computes a profile for every column of the dataset.
func profileDataset(ctx context.Context, db *sql.DB, source string) ([]models.ColumnProfile, *models.EngineError) {
	columns, base, sampled, engErr := prepareProfile(ctx, db, source)
	if engErr != nil {
		return nil, engErr
	}

	profiles := make([]models.ColumnProfile, 0, len(columns))
	for _, col := range columns {
		profile, engErr := profileOne(ctx, db, base, col, sampled)
		if engErr != nil {
			return nil, engErr
		}
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

// profileColumn computes a profile for one named column. An unknown column
// is a validation error, not a SQL error.
func profileColumn(ctx context.Context, db *sql.DB, source, column string) (*models.ColumnProfile, *models.EngineError) {
	columns, base, sampled, engErr := prepareProfile(ctx, db, source)
	if engErr != nil {
		return nil, engErr
	}

	for _, col := range columns {
		if col.name == column {
			return profileOne(ctx, db, base, col, sampled)
		}
	}
	return nil, &models.EngineError{
		Kind:    models.ErrorKindValidation,
		Message: fmt.Sprintf("column %q does not exist in this dataset", column),
	}
}

// prepareProfile registers the scratch view and decides whether profiling
// runs over the full dataset or a head sample.
func prepareProfile(ctx context.Context, db *sql.DB, source string) ([]columnDesc, string, bool, *models.EngineError) {
	if err := createView(ctx, db, scanViewName, source); err != nil {
		return nil, "", false, &models.EngineError{
			Kind:    models.ErrorKindSQL,
			Message: "could not read the data file",
			Details: err.Error(),
		}
	}

	columns, engErr := describeView(ctx, db)
	if engErr != nil {
		return nil, "", false, engErr
	}

	var rowCount int64
	if err := db.QueryRowContext(ctx, fmt.Sprintf(`SELECT count(*) FROM %s`, quoteIdent(scanViewName))).Scan(&rowCount); err != nil {
		return nil, "", false, classifyExecError(ctx, err)
	}

	base := quoteIdent(scanViewName)
	sampled := rowCount > profileSampleRows
	if sampled {
		base = fmt.Sprintf(`(SELECT * FROM %s LIMIT %d)`, quoteIdent(scanViewName), profileSampleRows)
	}
	return columns, base, sampled, nil
}

func profileOne(ctx context.Context, db *sql.DB, base string, col columnDesc, sampled bool) (*models.ColumnProfile, *models.EngineError) {
	q := quoteIdent(col.name)
	profile := &models.ColumnProfile{
		Name:    col.name,
		Type:    col.typ,
		Sampled: sampled,
	}

	var total, nulls, distinct int64
	query := fmt.Sprintf(
		`SELECT count(*), count(*) - count(%[1]s), count(DISTINCT %[1]s) FROM %[2]s`, q, base)
	if err := db.QueryRowContext(ctx, query).Scan(&total, &nulls, &distinct); err != nil {
		return nil, classifyExecError(ctx, err)
	}
	if total > 0 {
		profile.NullPercent = float64(nulls) / float64(total) * 100
	}
	profile.DistinctCount = distinct

	switch {
	case isNumericType(col.typ):
		var mean, median sql.NullFloat64
		query := fmt.Sprintf(`SELECT avg(%[1]s)::DOUBLE, median(%[1]s)::DOUBLE FROM %[2]s`, q, base)
		if err := db.QueryRowContext(ctx, query).Scan(&mean, &median); err != nil {
			return nil, classifyExecError(ctx, err)
		}
		if mean.Valid {
			profile.Mean = &mean.Float64
		}
		if median.Valid {
			profile.Median = &median.Float64
		}

	case isStringType(col.typ):
		var minLen, maxLen sql.NullInt64
		query := fmt.Sprintf(`SELECT min(length(%[1]s)), max(length(%[1]s)) FROM %[2]s`, q, base)
		if err := db.QueryRowContext(ctx, query).Scan(&minLen, &maxLen); err != nil {
			return nil, classifyExecError(ctx, err)
		}
		if minLen.Valid {
			profile.MinLength = &minLen.Int64
		}
		if maxLen.Valid {
			profile.MaxLength = &maxLen.Int64
		}

		top, engErr := topValues(ctx, db, base, q)
		if engErr != nil {
			return nil, engErr
		}
		profile.TopValues = top

	case isTemporalType(col.typ):
		var minT, maxT sql.NullString
		query := fmt.Sprintf(`SELECT min(%[1]s)::VARCHAR, max(%[1]s)::VARCHAR FROM %[2]s`, q, base)
		if err := db.QueryRowContext(ctx, query).Scan(&minT, &maxT); err != nil {
			return nil, classifyExecError(ctx, err)
		}
		if minT.Valid {
			profile.MinTime = &minT.String
		}
		if maxT.Valid {
			profile.MaxTime = &maxT.String
		}
	}
	return profile, nil
}

// topValues returns the five most frequent non-null values, ties broken by
// value for deterministic output.
func topValues(ctx context.Context, db *sql.DB, base, quotedColumn string) ([]models.TopValue, *models.EngineError) {
	query := fmt.Sprintf(
		`SELECT %[1]s::VARCHAR, count(*) FROM %[2]s WHERE %[1]s IS NOT NULL GROUP BY %[1]s ORDER BY count(*) DESC, %[1]s LIMIT %[3]d`,
		quotedColumn, base, topValueCount)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, classifyExecError(ctx, err)
	}
	defer rows.Close()

	var top []models.TopValue
	for rows.Next() {
		var tv models.TopValue
		if err := rows.Scan(&tv.Value, &tv.Count); err != nil {
			return nil, classifyExecError(ctx, err)
		}
		tv.Value = truncateValue(tv.Value)
		top = append(top, tv)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyExecError(ctx, err)
	}
	return top, nil
}

// previewDataset returns a slice of the dataset under one of the sampling
// strategies. Stratified sampling keeps a percentage of each group of the
// sample column.
func previewDataset(ctx context.Context, db *sql.DB, source string, req PreviewRequest) (*models.QueryResult, *models.EngineError) {
	if err := createView(ctx, db, scanViewName, source); err != nil {
		return nil, &models.EngineError{
			Kind:    models.ErrorKindSQL,
			Message: "could not read the data file",
			Details: err.Error(),
		}
	}

	view := quoteIdent(scanViewName)
	n := req.Rows
	if n <= 0 {
		n = 10
	}

	var query string
	switch req.Mode {
	case PreviewHead, "":
		query = fmt.Sprintf(`SELECT * FROM %s LIMIT %d`, view, n)
	case PreviewTail:
		var total int64
		if err := db.QueryRowContext(ctx, fmt.Sprintf(`SELECT count(*) FROM %s`, view)).Scan(&total); err != nil {
			return nil, classifyExecError(ctx, err)
		}
		offset := total - int64(n)
		if offset < 0 {
			offset = 0
		}
		query = fmt.Sprintf(`SELECT * FROM %s LIMIT %d OFFSET %d`, view, n, offset)
	case PreviewRandom:
		if req.Percentage > 0 {
			query = fmt.Sprintf(`SELECT * FROM %s USING SAMPLE %f PERCENT (bernoulli) LIMIT %d`, view, req.Percentage, n)
		} else {
			query = fmt.Sprintf(`SELECT * FROM %s USING SAMPLE %d ROWS`, view, n)
		}
	case PreviewStratified:
		if req.SampleColumn == "" {
			return nil, &models.EngineError{
				Kind:    models.ErrorKindValidation,
				Message: "stratified sampling requires a sample column",
			}
		}
		pct := req.Percentage
		if pct <= 0 {
			pct = 10
		}
		col := quoteIdent(req.SampleColumn)
		query = fmt.Sprintf(
			`SELECT * EXCLUDE (__rn, __cnt) FROM (
				SELECT *,
					row_number() OVER (PARTITION BY %[1]s ORDER BY random()) AS __rn,
					count(*) OVER (PARTITION BY %[1]s) AS __cnt
				FROM %[2]s
			) WHERE __rn <= greatest(1, CAST(__cnt * %[3]f / 100.0 AS BIGINT)) LIMIT %[4]d`,
			col, view, pct, n)
	default:
		return nil, &models.EngineError{
			Kind:    models.ErrorKindValidation,
			Message: fmt.Sprintf("unknown preview mode %q", req.Mode),
		}
	}

	return executeQuery(ctx, db, query, false, n)
}
