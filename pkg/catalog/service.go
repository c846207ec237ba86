// Package catalog manages the datasets registered in a conversation: URL
// admission, table naming, schema extraction, and removal.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/chatdf/chatdf/ent"
	"github.com/chatdf/chatdf/ent/dataset"
	"github.com/chatdf/chatdf/pkg/config"
	"github.com/chatdf/chatdf/pkg/dataeng"
	"github.com/chatdf/chatdf/pkg/filecache"
	"github.com/chatdf/chatdf/pkg/models"
)

// Sentinel errors mapped to HTTP statuses by the API layer.
var (
	ErrDatasetLimit     = errors.New("Maximum 50 datasets reached")
	ErrDuplicateURL     = errors.New("dataset URL already loaded in this conversation")
	ErrDatasetNotFound  = errors.New("dataset not found")
	ErrTableNameTaken   = errors.New("table name already in use in this conversation")
	ErrInvalidTableName = errors.New("table name must be a valid SQL identifier")
)

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ValidateURL is the synchronous admission check for user-supplied dataset
// URLs. Only http and https pass; file:// datasets come exclusively from the
// upload endpoint, never from a client-supplied URL. Reachability and content
// checks happen later in the load pipeline.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return errors.New("url is required")
	}
	if strings.ContainsAny(rawURL, " \t\n\r") {
		return errors.New("url must not contain whitespace")
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("url is not valid")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("url must use the http or https scheme")
	}
	if parsed.Hostname() == "" {
		return errors.New("url has no host")
	}
	return nil
}

// Service is the dataset catalog.
type Service struct {
	client    *ent.Client
	cfg       *config.Config
	validator *dataeng.Validator
	pool      *dataeng.Pool
}

// NewService creates a catalog service.
func NewService(client *ent.Client, cfg *config.Config, validator *dataeng.Validator, pool *dataeng.Pool) *Service {
	return &Service{
		client:    client,
		cfg:       cfg,
		validator: validator,
		pool:      pool,
	}
}

// GetDatasets lists a conversation's datasets in load order.
func (s *Service) GetDatasets(ctx context.Context, conversationID string) ([]*ent.Dataset, error) {
	return s.client.Dataset.Query().
		Where(dataset.ConversationIDEQ(conversationID)).
		Order(ent.Asc(dataset.FieldLoadedAt)).
		All(ctx)
}

// ReadyDatasets lists only datasets whose load completed.
func (s *Service) ReadyDatasets(ctx context.Context, conversationID string) ([]*ent.Dataset, error) {
	return s.client.Dataset.Query().
		Where(
			dataset.ConversationIDEQ(conversationID),
			dataset.StatusEQ(dataset.StatusReady),
		).
		Order(ent.Asc(dataset.FieldLoadedAt)).
		All(ctx)
}

// NextTableName returns the auto-assigned name for the next dataset:
// "table1", "table2", and so on by current count.
func (s *Service) NextTableName(ctx context.Context, conversationID string) (string, error) {
	count, err := s.client.Dataset.Query().
		Where(dataset.ConversationIDEQ(conversationID)).
		Count(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to count datasets: %w", err)
	}
	return fmt.Sprintf("table%d", count+1), nil
}

// BeginAdd admits a URL into the conversation and inserts a loading row.
// The caller finishes the load (usually in a background goroutine) with
// FinishAdd.
func (s *Service) BeginAdd(ctx context.Context, conversationID, url, tableName string) (*ent.Dataset, error) {
	count, err := s.client.Dataset.Query().
		Where(dataset.ConversationIDEQ(conversationID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count datasets: %w", err)
	}
	if count >= s.cfg.MaxDatasetsPerConversation {
		return nil, ErrDatasetLimit
	}

	exists, err := s.client.Dataset.Query().
		Where(
			dataset.ConversationIDEQ(conversationID),
			dataset.URLEQ(url),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate URL: %w", err)
	}
	if exists {
		return nil, ErrDuplicateURL
	}

	if tableName == "" {
		tableName, err = s.NextTableName(ctx, conversationID)
		if err != nil {
			return nil, err
		}
	}
	if !tableNamePattern.MatchString(tableName) {
		return nil, ErrInvalidTableName
	}

	ds, err := s.client.Dataset.Create().
		SetID(uuid.NewString()).
		SetConversationID(conversationID).
		SetURL(url).
		SetTableName(tableName).
		SetStatus(dataset.StatusLoading).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrTableNameTaken
		}
		return nil, fmt.Errorf("failed to create dataset: %w", err)
	}
	return ds, nil
}

// FinishAdd validates the URL, extracts the schema, and marks the dataset
// ready. On any failure the row is marked error with the failure message.
func (s *Service) FinishAdd(ctx context.Context, ds *ent.Dataset) (*ent.Dataset, error) {
	size, engErr := s.validator.Validate(ctx, ds.URL)
	if engErr != nil {
		return s.failLoad(ctx, ds.ID, engErr.Message)
	}

	schema, engErr := s.pool.ExtractSchema(ctx, ds.URL)
	if engErr != nil {
		return s.failLoad(ctx, ds.ID, engErr.Message)
	}

	update := s.client.Dataset.UpdateOneID(ds.ID).
		SetStatus(dataset.StatusReady).
		SetRowCount(schema.RowCount).
		SetColumnCount(len(schema.Columns)).
		SetSchema(schemaToJSON(schema)).
		ClearErrorMessage()
	if size > 0 {
		update = update.SetFileSizeBytes(size)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark dataset ready: %w", err)
	}
	return updated, nil
}

func (s *Service) failLoad(ctx context.Context, datasetID, message string) (*ent.Dataset, error) {
	ds, err := s.client.Dataset.UpdateOneID(datasetID).
		SetStatus(dataset.StatusError).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark dataset errored: %w", err)
	}
	return ds, errors.New(message)
}

// RefreshSchema re-extracts the schema of an existing dataset. Used after
// the remote file changes.
func (s *Service) RefreshSchema(ctx context.Context, conversationID, datasetID string) (*ent.Dataset, error) {
	ds, err := s.getOwned(ctx, conversationID, datasetID)
	if err != nil {
		return nil, err
	}

	schema, engErr := s.pool.ExtractSchema(ctx, ds.URL)
	if engErr != nil {
		return nil, engErr
	}

	updated, err := ds.Update().
		SetStatus(dataset.StatusReady).
		SetRowCount(schema.RowCount).
		SetColumnCount(len(schema.Columns)).
		SetSchema(schemaToJSON(schema)).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update dataset schema: %w", err)
	}
	return updated, nil
}

// RenameTable changes a dataset's table name within its conversation.
func (s *Service) RenameTable(ctx context.Context, conversationID, datasetID, newName string) (*ent.Dataset, error) {
	if !tableNamePattern.MatchString(newName) {
		return nil, ErrInvalidTableName
	}
	ds, err := s.getOwned(ctx, conversationID, datasetID)
	if err != nil {
		return nil, err
	}

	updated, err := ds.Update().SetTableName(newName).Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrTableNameTaken
		}
		return nil, fmt.Errorf("failed to rename table: %w", err)
	}
	return updated, nil
}

// SetColumnDescriptions replaces user-supplied column annotations.
func (s *Service) SetColumnDescriptions(ctx context.Context, conversationID, datasetID string, descriptions map[string]string) (*ent.Dataset, error) {
	ds, err := s.getOwned(ctx, conversationID, datasetID)
	if err != nil {
		return nil, err
	}
	updated, err := ds.Update().SetColumnDescriptions(descriptions).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set column descriptions: %w", err)
	}
	return updated, nil
}

// RemoveDataset deletes the row and, for uploaded files, removes the file
// from the upload directory. Missing files are tolerated; paths outside the
// upload directory are never unlinked.
func (s *Service) RemoveDataset(ctx context.Context, conversationID, datasetID string) error {
	ds, err := s.getOwned(ctx, conversationID, datasetID)
	if err != nil {
		return err
	}

	if err := s.client.Dataset.DeleteOne(ds).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}

	if path, ok := filecache.LocalPath(ds.URL); ok {
		s.removeUploadedFile(path)
	}
	return nil
}

// removeUploadedFile unlinks an uploaded file after confirming it lives
// inside the upload directory. Traversal outside it is refused.
func (s *Service) removeUploadedFile(path string) {
	uploadDir, err := filepath.Abs(s.cfg.UploadDir)
	if err != nil {
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	if abs != uploadDir && !strings.HasPrefix(abs, uploadDir+string(filepath.Separator)) {
		slog.Warn("Refusing to delete file outside upload directory", "path", path)
		return
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to delete uploaded file", "path", abs, "error", err)
	}
}

func (s *Service) getOwned(ctx context.Context, conversationID, datasetID string) (*ent.Dataset, error) {
	ds, err := s.client.Dataset.Query().
		Where(
			dataset.IDEQ(datasetID),
			dataset.ConversationIDEQ(conversationID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrDatasetNotFound
		}
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return ds, nil
}

// schemaToJSON converts the engine schema into the generic JSON column
// records persisted on the dataset row.
func schemaToJSON(schema *models.DatasetSchema) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(schema.Columns))
	for _, col := range schema.Columns {
		data, err := json.Marshal(col)
		if err != nil {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal(data, &m); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out
}

// SchemaFromJSON rebuilds typed schema columns from a dataset row's JSON.
func SchemaFromJSON(raw []map[string]interface{}) []models.SchemaColumn {
	out := make([]models.SchemaColumn, 0, len(raw))
	for _, m := range raw {
		data, err := json.Marshal(m)
		if err != nil {
			continue
		}
		var col models.SchemaColumn
		if err := json.Unmarshal(data, &col); err != nil {
			continue
		}
		out = append(out, col)
	}
	return out
}
