package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatdf/chatdf/pkg/catalog"
	"github.com/chatdf/chatdf/pkg/chat"
	"github.com/chatdf/chatdf/pkg/dataeng"
	"github.com/chatdf/chatdf/pkg/models"
)

func TestSnippetAround(t *testing.T) {
	t.Run("short content returned whole", func(t *testing.T) {
		assert.Equal(t, "hello world", snippetAround("hello world", "world", 50))
	})

	t.Run("long content is clipped with ellipses", func(t *testing.T) {
		content := ""
		for i := 0; i < 20; i++ {
			content += "aaaaaaaaaa"
		}
		content += " needle "
		for i := 0; i < 20; i++ {
			content += "bbbbbbbbbb"
		}
		snippet := snippetAround(content, "needle", 10)
		assert.Contains(t, snippet, "needle")
		assert.Contains(t, snippet, "…")
		assert.Less(t, len([]rune(snippet)), 40)
	})

	t.Run("match is case-insensitive", func(t *testing.T) {
		snippet := snippetAround("Quarterly REVENUE went up", "revenue", 5)
		assert.Contains(t, snippet, "REVENUE")
	})

	t.Run("no match falls back to a prefix", func(t *testing.T) {
		snippet := snippetAround("some unrelated content", "zzz", 5)
		assert.Equal(t, "some unrel", snippet)
	})

	t.Run("multibyte content stays intact", func(t *testing.T) {
		snippet := snippetAround("préférences de l'utilisateur für die Suche", "utilisateur", 3)
		assert.Contains(t, snippet, "utilisateur")
	})
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 10))
	assert.Equal(t, "abc", truncateRunes("abcdef", 3))
	assert.Equal(t, "héll", truncateRunes("héllo", 4))
}

func TestUploadSuffix(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"data.parquet", ".parquet"},
		{"Data.PARQUET", ".parquet"},
		{"export.csv", ".csv"},
		{"export.csv.gz", ".csv.gz"},
		{"rows.tsv", ".tsv"},
		{"archive.zip", ""},
		{"noextension", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, uploadSuffix(tt.filename), tt.filename)
	}
}

func TestBuildPreviewRequest(t *testing.T) {
	t.Run("defaults to head with 10 rows", func(t *testing.T) {
		preview, httpErr := buildPreviewRequest("https://e.com/d.parquet", &PreviewDatasetRequest{})
		require.Nil(t, httpErr)
		assert.Equal(t, dataeng.PreviewHead, preview.Mode)
		assert.Equal(t, 10, preview.Rows)
	})

	t.Run("stratified requires sample_column", func(t *testing.T) {
		_, httpErr := buildPreviewRequest("u", &PreviewDatasetRequest{SampleMethod: "stratified"})
		require.NotNil(t, httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("percentage bounds are enforced", func(t *testing.T) {
		_, httpErr := buildPreviewRequest("u", &PreviewDatasetRequest{SampleMethod: "percentage", Percentage: 0.005})
		require.NotNil(t, httpErr)

		_, httpErr = buildPreviewRequest("u", &PreviewDatasetRequest{SampleMethod: "percentage", Percentage: 101})
		require.NotNil(t, httpErr)

		preview, httpErr := buildPreviewRequest("u", &PreviewDatasetRequest{SampleMethod: "percentage", Percentage: 5})
		require.Nil(t, httpErr)
		assert.Equal(t, 5.0, preview.Percentage)
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		_, httpErr := buildPreviewRequest("u", &PreviewDatasetRequest{SampleMethod: "systematic"})
		require.NotNil(t, httpErr)
	})
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"conversation not found", errConversationNotFound, http.StatusNotFound},
		{"not owner", errNotOwner, http.StatusForbidden},
		{"dataset not found", catalog.ErrDatasetNotFound, http.StatusNotFound},
		{"dataset limit", catalog.ErrDatasetLimit, http.StatusBadRequest},
		{"duplicate url", catalog.ErrDuplicateURL, http.StatusConflict},
		{"table name taken", catalog.ErrTableNameTaken, http.StatusConflict},
		{"conversation busy", chat.ErrConversationBusy, http.StatusConflict},
		{"rate limited", chat.ErrRateLimited, http.StatusTooManyRequests},
		{"llm busy", chat.ErrLLMBusy, http.StatusServiceUnavailable},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, mapServiceError(tt.err).Code)
		})
	}
}

func TestMapEngineError(t *testing.T) {
	tests := []struct {
		kind string
		code int
	}{
		{models.ErrorKindValidation, http.StatusBadRequest},
		{models.ErrorKindSQL, http.StatusBadRequest},
		{models.ErrorKindNetwork, http.StatusBadGateway},
		{models.ErrorKindTimeout, http.StatusGatewayTimeout},
		{models.ErrorKindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			httpErr := mapEngineError(&models.EngineError{Kind: tt.kind, Message: "boom"})
			assert.Equal(t, tt.code, httpErr.Code)
		})
	}
}

func TestShareAndSessionTokens(t *testing.T) {
	share, err := newShareToken()
	require.NoError(t, err)
	// 16 bytes → 22 chars of unpadded URL-safe base64.
	assert.Len(t, share, 22)
	assert.NotContains(t, share, "=")

	session, err := newSessionToken()
	require.NoError(t, err)
	assert.Len(t, session, 43)

	other, err := newShareToken()
	require.NoError(t, err)
	assert.NotEqual(t, share, other)
}

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(securityHeaders())
	e.GET("/test", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestExtractToken(t *testing.T) {
	e := echo.New()
	var got string
	e.GET("/t", func(c *echo.Context) error {
		got = extractToken(c)
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	e.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "abc123", got)

	req = httptest.NewRequest(http.MethodGet, "/t?token=qp456", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "qp456", got)
}
