package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/chatdf/chatdf/ent"
	"github.com/chatdf/chatdf/pkg/catalog"
	"github.com/chatdf/chatdf/pkg/chat"
	"github.com/chatdf/chatdf/pkg/dataeng"
	"github.com/chatdf/chatdf/pkg/events"
)

// uploadSuffixes are the accepted extensions for dataset uploads, longest
// match first so .csv.gz wins over .gz.
var uploadSuffixes = []string{".csv.gz", ".parquet", ".csv", ".tsv"}

// AddDatasetRequest is the HTTP request body for POST /conversations/:id/datasets.
type AddDatasetRequest struct {
	URL       string `json:"url"`
	TableName string `json:"table_name"`
}

// addDatasetHandler handles POST /api/v1/conversations/:id/datasets.
// Inserts a loading row and acks immediately; validation and schema
// extraction complete in the background and notify over WebSocket.
func (s *Server) addDatasetHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)
	conv, err := s.ownedConversation(ctx, userID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	var req AddDatasetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := catalog.ValidateURL(req.URL); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ds, err := s.catalog.BeginAdd(ctx, conv.ID, req.URL, req.TableName)
	if err != nil {
		return mapServiceError(err)
	}
	s.finishDatasetInBackground(userID, ds)

	return c.JSON(http.StatusAccepted, chat.DatasetSummary(ds))
}

// uploadDatasetHandler handles POST /api/v1/conversations/:id/datasets/upload.
// Accepts one multipart file, stores it under the uploads directory, and
// registers it as a file:// dataset.
func (s *Server) uploadDatasetHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)
	conv, err := s.ownedConversation(ctx, userID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "a file field is required")
	}
	suffix := uploadSuffix(fileHeader.Filename)
	if suffix == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported file type; expected parquet, csv, tsv, or csv.gz")
	}
	maxBytes := s.cfg.MaxUploadSizeMB << 20
	if fileHeader.Size > maxBytes {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("file exceeds the %d MB upload limit", s.cfg.MaxUploadSizeMB))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}
	defer src.Close()

	if suffix == ".parquet" {
		magic := make([]byte, 4)
		if _, err := io.ReadFull(src, magic); err != nil || string(magic) != "PAR1" {
			return echo.NewHTTPError(http.StatusBadRequest, "file is not a valid parquet file")
		}
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return mapServiceError(err)
		}
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return mapServiceError(err)
	}
	destPath := filepath.Join(s.cfg.UploadDir, uuid.New().String()+suffix)
	dest, err := os.Create(destPath)
	if err != nil {
		return mapServiceError(err)
	}
	if _, err := io.Copy(dest, io.LimitReader(src, maxBytes+1)); err != nil {
		dest.Close()
		os.Remove(destPath)
		return mapServiceError(err)
	}
	if err := dest.Close(); err != nil {
		os.Remove(destPath)
		return mapServiceError(err)
	}

	tableName := c.FormValue("table_name")
	ds, err := s.catalog.BeginAdd(ctx, conv.ID, "file://"+destPath, tableName)
	if err != nil {
		os.Remove(destPath)
		return mapServiceError(err)
	}
	s.finishDatasetInBackground(userID, ds)

	return c.JSON(http.StatusAccepted, chat.DatasetSummary(ds))
}

// finishDatasetInBackground completes the add pipeline (validate, extract
// schema, flip status) and emits the loaded/error event.
func (s *Server) finishDatasetInBackground(userID string, ds *ent.Dataset) {
	url, tableName := ds.URL, ds.TableName
	// When draining, the row stays in loading state; a later refresh recovers it.
	s.background(func(ctx context.Context) {
		s.events.SendToUser(ctx, userID, events.DatasetLoading{
			Type:      events.TypeDatasetLoading,
			URL:       url,
			TableName: tableName,
		})
		loaded, err := s.catalog.FinishAdd(ctx, ds)
		if err != nil {
			s.events.SendToUser(ctx, userID, events.DatasetError{
				Type:  events.TypeDatasetError,
				URL:   url,
				Error: err.Error(),
			})
			return
		}
		s.events.SendToUser(ctx, userID, events.DatasetLoaded{
			Type:    events.TypeDatasetLoaded,
			Dataset: chat.DatasetSummary(loaded),
		})
	})
}

// UpdateDatasetRequest is the HTTP request body for PATCH .../datasets/:did.
type UpdateDatasetRequest struct {
	TableName          string            `json:"table_name"`
	ColumnDescriptions map[string]string `json:"column_descriptions"`
}

// updateDatasetHandler handles PATCH /api/v1/conversations/:id/datasets/:did.
func (s *Server) updateDatasetHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	conv, err := s.ownedConversation(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	var req UpdateDatasetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.TableName == "" && req.ColumnDescriptions == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "nothing to update")
	}

	var ds *ent.Dataset
	if req.TableName != "" {
		ds, err = s.catalog.RenameTable(ctx, conv.ID, c.Param("did"), req.TableName)
		if err != nil {
			return mapServiceError(err)
		}
	}
	if req.ColumnDescriptions != nil {
		ds, err = s.catalog.SetColumnDescriptions(ctx, conv.ID, c.Param("did"), req.ColumnDescriptions)
		if err != nil {
			return mapServiceError(err)
		}
	}
	return c.JSON(http.StatusOK, chat.DatasetSummary(ds))
}

// refreshDatasetHandler handles POST /api/v1/conversations/:id/datasets/:did/refresh.
func (s *Server) refreshDatasetHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	conv, err := s.ownedConversation(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	ds, err := s.catalog.RefreshSchema(ctx, conv.ID, c.Param("did"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, chat.DatasetSummary(ds))
}

// profileDatasetHandler handles POST /api/v1/conversations/:id/datasets/:did/profile.
func (s *Server) profileDatasetHandler(c *echo.Context) error {
	return s.profile(c, "")
}

// profileColumnHandler handles POST /api/v1/conversations/:id/datasets/:did/profile-column.
func (s *Server) profileColumnHandler(c *echo.Context) error {
	var req struct {
		Column string `json:"column"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Column == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "column is required")
	}
	return s.profile(c, req.Column)
}

func (s *Server) profile(c *echo.Context, column string) error {
	ctx := c.Request().Context()
	conv, err := s.ownedConversation(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	ds, err := s.ownedDataset(ctx, conv.ID, c.Param("did"))
	if err != nil {
		return mapServiceError(err)
	}

	profiles, engErr := s.pool.ProfileDataset(ctx, dataeng.ProfileRequest{
		URL:       ds.URL,
		TableName: ds.TableName,
		Column:    column,
	})
	if engErr != nil {
		return mapEngineError(engErr)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"table_name": ds.TableName,
		"row_count":  ds.RowCount,
		"columns":    profiles,
	})
}

// PreviewDatasetRequest is the HTTP request body for POST .../datasets/:did/preview.
type PreviewDatasetRequest struct {
	SampleMethod string  `json:"sample_method"`
	Rows         int     `json:"rows"`
	SampleColumn string  `json:"sample_column"`
	Percentage   float64 `json:"percentage"`
}

// previewDatasetHandler handles POST /api/v1/conversations/:id/datasets/:did/preview.
func (s *Server) previewDatasetHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	conv, err := s.ownedConversation(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	ds, err := s.ownedDataset(ctx, conv.ID, c.Param("did"))
	if err != nil {
		return mapServiceError(err)
	}

	var req PreviewDatasetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	preview, httpErr := buildPreviewRequest(ds.URL, &req)
	if httpErr != nil {
		return httpErr
	}

	result, engErr := s.pool.Preview(ctx, *preview)
	if engErr != nil {
		return mapEngineError(engErr)
	}
	return c.JSON(http.StatusOK, result)
}

// buildPreviewRequest validates the preview parameters and maps them onto
// a pool request. The "percentage" method is random sampling by fraction.
func buildPreviewRequest(url string, req *PreviewDatasetRequest) (*dataeng.PreviewRequest, *echo.HTTPError) {
	if req.Rows <= 0 {
		req.Rows = 10
	}
	preview := &dataeng.PreviewRequest{
		URL:          url,
		Rows:         req.Rows,
		SampleColumn: req.SampleColumn,
		Percentage:   req.Percentage,
	}
	switch req.SampleMethod {
	case "", "head":
		preview.Mode = dataeng.PreviewHead
	case "tail":
		preview.Mode = dataeng.PreviewTail
	case "random":
		preview.Mode = dataeng.PreviewRandom
	case "percentage":
		preview.Mode = dataeng.PreviewRandom
		if req.Percentage <= 0.01 || req.Percentage > 100 {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "percentage must be greater than 0.01 and at most 100")
		}
	case "stratified":
		preview.Mode = dataeng.PreviewStratified
		if req.SampleColumn == "" {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "stratified sampling requires sample_column")
		}
	default:
		return nil, echo.NewHTTPError(http.StatusBadRequest, "sample_method must be head, tail, random, stratified, or percentage")
	}
	if req.Percentage != 0 && (req.Percentage <= 0.01 || req.Percentage > 100) {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "percentage must be greater than 0.01 and at most 100")
	}
	return preview, nil
}

// deleteDatasetHandler handles DELETE /api/v1/conversations/:id/datasets/:did.
func (s *Server) deleteDatasetHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	conv, err := s.ownedConversation(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	if err := s.catalog.RemoveDataset(ctx, conv.ID, c.Param("did")); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// ownedDataset loads one dataset scoped to an already-authorized conversation.
func (s *Server) ownedDataset(ctx context.Context, conversationID, datasetID string) (*ent.Dataset, error) {
	datasets, err := s.catalog.GetDatasets(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	for _, ds := range datasets {
		if ds.ID == datasetID {
			return ds, nil
		}
	}
	return nil, catalog.ErrDatasetNotFound
}

// uploadSuffix returns the recognized dataset suffix of a filename, or empty.
func uploadSuffix(filename string) string {
	lower := strings.ToLower(filename)
	for _, suffix := range uploadSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return suffix
		}
	}
	return ""
}
