package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/chatdf/chatdf/pkg/catalog"
	"github.com/chatdf/chatdf/pkg/chat"
	"github.com/chatdf/chatdf/pkg/models"
)

// errNotOwner marks an ownership check failure on an existing resource.
var errNotOwner = errors.New("not the owner")

// errConversationNotFound is the not-found branch of the ownership lookup.
var errConversationNotFound = errors.New("conversation not found")

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	if errors.Is(err, errConversationNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "conversation not found")
	}
	if errors.Is(err, errNotOwner) {
		return echo.NewHTTPError(http.StatusForbidden, "you do not have access to this conversation")
	}
	if errors.Is(err, catalog.ErrDatasetNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "dataset not found")
	}
	if errors.Is(err, catalog.ErrDatasetLimit) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, catalog.ErrDuplicateURL) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if errors.Is(err, catalog.ErrTableNameTaken) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if errors.Is(err, catalog.ErrInvalidTableName) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, chat.ErrConversationBusy) {
		return echo.NewHTTPError(http.StatusConflict, "a response is already being generated for this conversation")
	}
	if errors.Is(err, chat.ErrRateLimited) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "token limit exceeded; the limit resets as older usage ages out")
	}
	if errors.Is(err, chat.ErrLLMBusy) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

// engineHTTPError carries the structured engine-error body to the client:
// echo v5's default error handler serializes any HTTPStatusCoder that also
// implements json.Marshaler as the response body verbatim.
type engineHTTPError struct {
	Code int
	body map[string]interface{}
}

func (e *engineHTTPError) Error() string {
	return fmt.Sprintf("code=%d, message=%v", e.Code, e.body["error"])
}

func (e *engineHTTPError) StatusCode() int { return e.Code }

func (e *engineHTTPError) MarshalJSON() ([]byte, error) { return json.Marshal(e.body) }

// mapEngineError maps a worker-pool error record to an HTTP error response.
func mapEngineError(engErr *models.EngineError) *engineHTTPError {
	status := http.StatusInternalServerError
	switch engErr.Kind {
	case models.ErrorKindValidation, models.ErrorKindSQL:
		status = http.StatusBadRequest
	case models.ErrorKindNetwork:
		status = http.StatusBadGateway
	case models.ErrorKindTimeout:
		status = http.StatusGatewayTimeout
	}
	body := map[string]interface{}{
		"error":      engErr.Message,
		"error_type": engErr.Kind,
	}
	if engErr.Details != "" {
		body["details"] = engErr.Details
	}
	return &engineHTTPError{Code: status, body: body}
}
