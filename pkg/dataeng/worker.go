package dataeng

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/marcboeker/go-duckdb/v2" // registers the duckdb driver
)

// worker owns one in-memory DuckDB handle and processes tasks from the
// shared queue. The handle is closed and reopened after maxTasksPerChild
// tasks to bound memory growth from DuckDB's internal caches.
type worker struct {
	id               string
	taskCh           <-chan *task
	stopCh           <-chan struct{}
	maxTasksPerChild int

	db        *sql.DB
	tasksDone int
}

func newWorker(id string, taskCh <-chan *task, stopCh <-chan struct{}, maxTasksPerChild int) *worker {
	return &worker{
		id:               id,
		taskCh:           taskCh,
		stopCh:           stopCh,
		maxTasksPerChild: maxTasksPerChild,
	}
}

// run is the worker loop. It exits when stop is signalled or the pool
// context ends.
func (w *worker) run(ctx context.Context) {
	log := slog.With("worker_id", w.id)
	log.Info("Query worker started")
	defer w.closeDB()

	for {
		select {
		case <-w.stopCh:
			log.Info("Query worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, query worker shutting down")
			return
		case t := <-w.taskCh:
			w.process(t, log)
		}
	}
}

func (w *worker) process(t *task, log *slog.Logger) {
	db, err := w.handle()
	if err != nil {
		t.resultCh <- taskResult{err: internalError("could not open the query engine", err)}
		return
	}

	value, engErr := t.run(t.ctx, db)
	// Buffered channel: never blocks even if the caller gave up.
	t.resultCh <- taskResult{value: value, err: engErr}

	w.tasksDone++
	if w.maxTasksPerChild > 0 && w.tasksDone >= w.maxTasksPerChild {
		log.Info("Recycling worker database handle", "tasks_done", w.tasksDone)
		w.closeDB()
		w.tasksDone = 0
	}
}

// handle returns the worker's DuckDB handle, opening a fresh in-memory
// database on first use or after a recycle.
func (w *worker) handle() (*sql.DB, error) {
	if w.db != nil {
		return w.db, nil
	}
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	// A worker runs one task at a time.
	db.SetMaxOpenConns(1)

	// httpfs enables ranged scans of remote Parquet files. Best-effort:
	// without it, remote Parquet falls back to the download cache path.
	if _, err := db.Exec("INSTALL httpfs; LOAD httpfs;"); err != nil {
		slog.Warn("httpfs extension unavailable, remote scans disabled", "worker_id", w.id, "error", err)
	}

	w.db = db
	return db, nil
}

func (w *worker) closeDB() {
	if w.db == nil {
		return
	}
	if err := w.db.Close(); err != nil {
		slog.Warn("Failed to close worker database handle", "worker_id", w.id, "error", err)
	}
	w.db = nil
}

// createView registers a dataset as a named view over its resolved source.
func createView(ctx context.Context, db *sql.DB, tableName, source string) error {
	reader := readerFor(source)
	stmt := fmt.Sprintf(`CREATE OR REPLACE VIEW %s AS SELECT * FROM %s(%s)`,
		quoteIdent(tableName), reader, quoteLiteral(source))
	_, err := db.ExecContext(ctx, stmt)
	return err
}

// readerFor picks the DuckDB scan function for a source path or URL.
func readerFor(source string) string {
	cleaned := strings.ToLower(source)
	if i := strings.IndexAny(cleaned, "?#"); i >= 0 {
		cleaned = cleaned[:i]
	}
	switch {
	case strings.HasSuffix(cleaned, ".csv"), strings.HasSuffix(cleaned, ".csv.gz"), strings.HasSuffix(cleaned, ".tsv"):
		return "read_csv_auto"
	default:
		return "read_parquet"
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteLiteral(s string) string {
	return `'` + strings.ReplaceAll(s, `'`, `''`) + `'`
}
