// Package dataeng executes SQL over remote columnar files on a pool of
// DuckDB-backed workers. Each worker owns one embedded database handle and
// recycles it after a fixed number of tasks. Callers submit work with a
// per-operation deadline; a task that outlives its deadline is abandoned
// (its result discarded) while the worker finishes and moves on.
package dataeng

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/chatdf/chatdf/pkg/config"
	"github.com/chatdf/chatdf/pkg/filecache"
	"github.com/chatdf/chatdf/pkg/models"
	"github.com/chatdf/chatdf/pkg/resultcache"
)

// Pool manages the DuckDB worker pool and fronts it with the result cache.
type Pool struct {
	cfg      *config.Config
	files    *filecache.Cache
	results  *resultcache.Cache
	taskCh   chan *task
	workers  []*worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu      sync.RWMutex
	started bool
	stopped bool
}

// NewPool creates a worker pool. results may be nil to disable caching.
func NewPool(cfg *config.Config, files *filecache.Cache, results *resultcache.Cache) *Pool {
	return &Pool{
		cfg:     cfg,
		files:   files,
		results: results,
		taskCh:  make(chan *task),
		stopCh:  make(chan struct{}),
	}
}

// Start spawns the worker goroutines. Safe to call once; duplicate calls
// are no-ops.
func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call")
		return nil
	}
	p.started = true

	slog.Info("Starting query worker pool",
		"worker_count", p.cfg.PoolSize,
		"max_tasks_per_child", p.cfg.MaxTasksPerChild)

	for i := 0; i < p.cfg.PoolSize; i++ {
		w := newWorker(fmt.Sprintf("query-worker-%d", i), p.taskCh, p.stopCh, p.cfg.MaxTasksPerChild)
		p.workers = append(p.workers, w)
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			w.run(ctx)
		}()
	}
	return nil
}

// Stop signals workers to stop and waits for in-flight tasks to finish.
func (p *Pool) Stop() {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()

	slog.Info("Stopping query worker pool")
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("Query worker pool stopped")
}

// RunQuery validates, auto-limits, and executes a SQL query against the
// given datasets, consulting the result cache first.
func (p *Pool) RunQuery(ctx context.Context, req QueryRequest) (*models.QueryResult, *models.EngineError) {
	if !IsSelectLike(req.SQL) {
		return nil, &models.EngineError{
			Kind:    models.ErrorKindValidation,
			Message: "only SELECT queries are allowed",
		}
	}

	urls := make([]string, len(req.Datasets))
	for i, d := range req.Datasets {
		urls[i] = d.URL
	}

	var cacheKey string
	if req.UseCache && p.results != nil {
		cacheKey = resultcache.Key(req.SQL, urls)
		if cached, ok := p.results.Get(ctx, cacheKey); ok {
			return cached, nil
		}
	}

	sqlText, limited := ApplyAutoLimit(req.SQL, int64(p.cfg.MaxQueryRows))

	value, engErr := p.do(ctx, p.cfg.QueryTimeout, "query", func(ctx context.Context, db *sql.DB) (any, *models.EngineError) {
		if engErr := p.registerDatasets(ctx, db, req.Datasets); engErr != nil {
			return nil, engErr
		}
		return executeQuery(ctx, db, sqlText, limited, p.cfg.MaxResultRows)
	})
	if engErr != nil {
		return nil, engErr
	}
	result := value.(*models.QueryResult)

	if req.UseCache && p.results != nil {
		p.results.Put(ctx, cacheKey, req.SQL, urls, result)
	}
	return result, nil
}

// ExtractSchema loads the file and derives column metadata, sample values,
// and single-pass statistics.
func (p *Pool) ExtractSchema(ctx context.Context, url string) (*models.DatasetSchema, *models.EngineError) {
	value, engErr := p.do(ctx, p.cfg.SchemaTimeout, "schema", func(ctx context.Context, db *sql.DB) (any, *models.EngineError) {
		source, engErr := p.resolveSource(ctx, url)
		if engErr != nil {
			return nil, engErr
		}
		return extractSchema(ctx, db, source)
	})
	if engErr != nil {
		return nil, engErr
	}
	return value.(*models.DatasetSchema), nil
}

// ProfileDataset computes per-column profiles for every column, sampling
// large datasets down to the first profileSampleRows rows.
func (p *Pool) ProfileDataset(ctx context.Context, req ProfileRequest) ([]models.ColumnProfile, *models.EngineError) {
	value, engErr := p.do(ctx, p.cfg.QueryTimeout, "profile", func(ctx context.Context, db *sql.DB) (any, *models.EngineError) {
		source, engErr := p.resolveSource(ctx, req.URL)
		if engErr != nil {
			return nil, engErr
		}
		if req.Column != "" {
			profile, engErr := profileColumn(ctx, db, source, req.Column)
			if engErr != nil {
				return nil, engErr
			}
			return []models.ColumnProfile{*profile}, nil
		}
		return profileDataset(ctx, db, source)
	})
	if engErr != nil {
		return nil, engErr
	}
	return value.([]models.ColumnProfile), nil
}

// Preview returns a sampled slice of the dataset without touching the
// result cache.
func (p *Pool) Preview(ctx context.Context, req PreviewRequest) (*models.QueryResult, *models.EngineError) {
	value, engErr := p.do(ctx, p.cfg.QueryTimeout, "preview", func(ctx context.Context, db *sql.DB) (any, *models.EngineError) {
		source, engErr := p.resolveSource(ctx, req.URL)
		if engErr != nil {
			return nil, engErr
		}
		return previewDataset(ctx, db, source, req)
	})
	if engErr != nil {
		return nil, engErr
	}
	return value.(*models.QueryResult), nil
}

// do submits fn to the pool and waits for the result or the deadline.
func (p *Pool) do(ctx context.Context, timeout time.Duration, name string, fn func(ctx context.Context, db *sql.DB) (any, *models.EngineError)) (any, *models.EngineError) {
	p.mu.RLock()
	stopped := p.stopped || !p.started
	p.mu.RUnlock()
	if stopped {
		return nil, &models.EngineError{
			Kind:    models.ErrorKindInternal,
			Message: "query engine is not running",
		}
	}

	taskCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	t := &task{
		ctx:      taskCtx,
		name:     name,
		run:      fn,
		resultCh: make(chan taskResult, 1),
	}

	select {
	case p.taskCh <- t:
	case <-taskCtx.Done():
		return nil, timeoutError(name, timeout, taskCtx.Err())
	case <-p.stopCh:
		return nil, &models.EngineError{
			Kind:    models.ErrorKindInternal,
			Message: "query engine is shutting down",
		}
	}

	select {
	case res := <-t.resultCh:
		return res.value, res.err
	case <-taskCtx.Done():
		return nil, timeoutError(name, timeout, taskCtx.Err())
	}
}

func timeoutError(name string, timeout time.Duration, err error) *models.EngineError {
	if err == context.Canceled {
		return &models.EngineError{
			Kind:    models.ErrorKindTimeout,
			Message: fmt.Sprintf("%s task was cancelled", name),
		}
	}
	return &models.EngineError{
		Kind:    models.ErrorKindTimeout,
		Message: fmt.Sprintf("%s task exceeded the %s deadline", name, timeout),
	}
}

// registerDatasets creates one view per dataset over its resolved source.
func (p *Pool) registerDatasets(ctx context.Context, db *sql.DB, datasets []models.QueryDataset) *models.EngineError {
	for _, d := range datasets {
		source, engErr := p.resolveSource(ctx, d.URL)
		if engErr != nil {
			return engErr
		}
		if err := createView(ctx, db, d.TableName, source); err != nil {
			return &models.EngineError{
				Kind:    models.ErrorKindSQL,
				Message: fmt.Sprintf("could not register dataset %q", d.TableName),
				Details: err.Error(),
			}
		}
	}
	return nil
}

// resolveSource maps a dataset URL to the location DuckDB should scan.
// CSV-family files go through the download cache. Remote Parquet is scanned
// in place (ranged reads) unless a cached copy already exists.
func (p *Pool) resolveSource(ctx context.Context, url string) (string, *models.EngineError) {
	if local, ok := filecache.LocalPath(url); ok {
		return local, nil
	}
	if p.files == nil {
		return url, nil
	}

	if isParquetURL(url) {
		if path, ok := p.files.GetCached(url); ok {
			return path, nil
		}
		return url, nil
	}

	path, err := p.files.DownloadAndCache(ctx, url)
	if err != nil {
		return "", &models.EngineError{
			Kind:    models.ErrorKindNetwork,
			Message: "could not download the dataset file",
			Details: err.Error(),
		}
	}
	return path, nil
}
