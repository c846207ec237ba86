package dataeng

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatdf/chatdf/pkg/models"
)

func TestValidator_Schemes(t *testing.T) {
	v := NewValidator(10*time.Second, true, 0)

	for _, bad := range []string{"ftp://host/data.csv", "gopher://x", "not a url at all ://"} {
		_, engErr := v.Validate(context.Background(), bad)
		require.NotNil(t, engErr, bad)
		assert.Equal(t, models.ErrorKindValidation, engErr.Kind)
	}
}

func TestValidator_LocalFiles(t *testing.T) {
	v := NewValidator(10*time.Second, true, 0)
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, engErr := v.Validate(context.Background(), "file://"+filepath.Join(dir, "nope.csv"))
		require.NotNil(t, engErr)
		assert.Equal(t, models.ErrorKindValidation, engErr.Kind)
	})

	t.Run("empty csv", func(t *testing.T) {
		path := filepath.Join(dir, "empty.csv")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		_, engErr := v.Validate(context.Background(), "file://"+path)
		require.NotNil(t, engErr)
		assert.Contains(t, engErr.Message, "empty")
	})

	t.Run("valid csv reports size", func(t *testing.T) {
		path := filepath.Join(dir, "ok.csv")
		require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))
		size, engErr := v.Validate(context.Background(), "file://"+path)
		require.Nil(t, engErr)
		assert.Equal(t, int64(8), size)
	})

	t.Run("parquet magic is checked", func(t *testing.T) {
		path := filepath.Join(dir, "fake.parquet")
		require.NoError(t, os.WriteFile(path, []byte("definitely not parquet"), 0o644))
		_, engErr := v.Validate(context.Background(), "file://"+path)
		require.NotNil(t, engErr)
		assert.Contains(t, engErr.Message, "Parquet")

		good := filepath.Join(dir, "real.parquet")
		require.NoError(t, os.WriteFile(good, []byte("PAR1...payload...PAR1"), 0o644))
		_, engErr = v.Validate(context.Background(), "file://"+good)
		assert.Nil(t, engErr)
	})
}

func TestValidator_HTTP(t *testing.T) {
	body := []byte("a,b\n1,2\n")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data.csv":
			w.Write(body)
		case "/data.parquet":
			w.Write([]byte("PAR1rest-of-file"))
		case "/missing.csv":
			http.NotFound(w, r)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	// httptest binds to loopback, so private addresses must be allowed here.
	v := NewValidator(10*time.Second, true, 0)

	t.Run("reachable csv", func(t *testing.T) {
		size, engErr := v.Validate(context.Background(), srv.URL+"/data.csv")
		require.Nil(t, engErr)
		assert.Equal(t, int64(len(body)), size)
	})

	t.Run("parquet magic over http", func(t *testing.T) {
		_, engErr := v.Validate(context.Background(), srv.URL+"/data.parquet")
		assert.Nil(t, engErr)
	})

	t.Run("http error status", func(t *testing.T) {
		_, engErr := v.Validate(context.Background(), srv.URL+"/missing.csv")
		require.NotNil(t, engErr)
		assert.Equal(t, models.ErrorKindNetwork, engErr.Kind)
	})

	t.Run("private address rejected when not allowed", func(t *testing.T) {
		strict := NewValidator(10*time.Second, false, 0)
		_, engErr := strict.Validate(context.Background(), srv.URL+"/data.csv")
		require.NotNil(t, engErr)
		assert.Equal(t, models.ErrorKindValidation, engErr.Kind)
	})

	t.Run("file over size cap rejected", func(t *testing.T) {
		capped := NewValidator(10*time.Second, true, 4)
		_, engErr := capped.Validate(context.Background(), srv.URL+"/data.csv")
		require.NotNil(t, engErr)
		assert.Contains(t, engErr.Message, "byte limit")
	})
}

func TestIsDisallowedIP(t *testing.T) {
	disallowed := []string{"127.0.0.1", "10.0.0.5", "172.16.1.1", "192.168.0.10", "169.254.1.1", "0.0.0.0", "::1", "fe80::1"}
	for _, s := range disallowed {
		assert.True(t, isDisallowedIP(net.ParseIP(s)), s)
	}
	allowed := []string{"8.8.8.8", "93.184.216.34", "2606:4700::1111"}
	for _, s := range allowed {
		assert.False(t, isDisallowedIP(net.ParseIP(s)), s)
	}
}
