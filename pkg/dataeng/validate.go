package dataeng

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/chatdf/chatdf/pkg/models"
)

var parquetMagic = []byte("PAR1")

// Validator checks dataset URLs before they are admitted to a conversation.
// HTTP(S) hosts are resolved and rejected when they point at private or
// loopback address space, unless allowPrivate is set (local development).
type Validator struct {
	httpClient   *http.Client
	allowPrivate bool
	maxFileBytes int64
}

// NewValidator creates a URL validator. timeout bounds each HTTP probe;
// maxFileBytes of zero disables the size check.
func NewValidator(timeout time.Duration, allowPrivate bool, maxFileBytes int64) *Validator {
	return &Validator{
		httpClient:   &http.Client{Timeout: timeout},
		allowPrivate: allowPrivate,
		maxFileBytes: maxFileBytes,
	}
}

// Validate checks that the URL points at a reachable, plausible data file.
// It returns the reported file size in bytes when the source discloses one.
func (v *Validator) Validate(ctx context.Context, rawURL string) (int64, *models.EngineError) {
	if strings.HasPrefix(rawURL, "file://") {
		return v.validateLocal(strings.TrimPrefix(rawURL, "file://"))
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return 0, &models.EngineError{
			Kind:    models.ErrorKindValidation,
			Message: "URL must use http, https, or file scheme",
			Details: rawURL,
		}
	}
	if parsed.Hostname() == "" {
		return 0, &models.EngineError{
			Kind:    models.ErrorKindValidation,
			Message: "URL has no host",
			Details: rawURL,
		}
	}

	if !v.allowPrivate {
		if engErr := checkPublicHost(parsed.Hostname()); engErr != nil {
			return 0, engErr
		}
	}

	size, engErr := v.headSize(ctx, rawURL)
	if engErr != nil {
		return 0, engErr
	}
	if v.maxFileBytes > 0 && size > v.maxFileBytes {
		return 0, &models.EngineError{
			Kind:    models.ErrorKindValidation,
			Message: fmt.Sprintf("file is %d bytes, above the %d byte limit", size, v.maxFileBytes),
			Details: rawURL,
		}
	}

	if isParquetURL(rawURL) {
		if engErr := v.checkParquetMagic(ctx, rawURL); engErr != nil {
			return 0, engErr
		}
	}
	return size, nil
}

func (v *Validator) validateLocal(path string) (int64, *models.EngineError) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, &models.EngineError{
			Kind:    models.ErrorKindValidation,
			Message: "local file does not exist",
			Details: path,
		}
	}
	if info.Size() == 0 {
		return 0, &models.EngineError{
			Kind:    models.ErrorKindValidation,
			Message: "local file is empty",
			Details: path,
		}
	}
	if isParquetURL(path) {
		f, err := os.Open(path)
		if err != nil {
			return 0, &models.EngineError{
				Kind:    models.ErrorKindValidation,
				Message: "local file is not readable",
				Details: path,
			}
		}
		defer f.Close()
		magic := make([]byte, 4)
		if _, err := f.Read(magic); err != nil || string(magic) != string(parquetMagic) {
			return 0, &models.EngineError{
				Kind:    models.ErrorKindValidation,
				Message: "file does not look like a Parquet file",
				Details: path,
			}
		}
	}
	return info.Size(), nil
}

// checkPublicHost resolves the host and rejects any address in private,
// loopback, link-local, or otherwise non-routable space.
func checkPublicHost(host string) *models.EngineError {
	ips, err := net.LookupIP(host)
	if err != nil {
		return &models.EngineError{
			Kind:    models.ErrorKindNetwork,
			Message: "could not resolve host",
			Details: host,
		}
	}
	for _, ip := range ips {
		if isDisallowedIP(ip) {
			return &models.EngineError{
				Kind:    models.ErrorKindValidation,
				Message: "URL resolves to a private or internal address",
				Details: host,
			}
		}
	}
	return nil
}

func isDisallowedIP(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified() ||
		ip.IsMulticast()
}

func (v *Validator) headSize(ctx context.Context, rawURL string) (int64, *models.EngineError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return 0, &models.EngineError{Kind: models.ErrorKindValidation, Message: "invalid URL", Details: rawURL}
	}
	resp, err := v.httpClient.Do(req)
	if err != nil {
		return 0, &models.EngineError{
			Kind:    models.ErrorKindNetwork,
			Message: "could not reach the URL",
			Details: err.Error(),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return 0, &models.EngineError{
			Kind:    models.ErrorKindNetwork,
			Message: fmt.Sprintf("the server responded with status %d", resp.StatusCode),
			Details: rawURL,
		}
	}
	return resp.ContentLength, nil
}

// checkParquetMagic range-requests the first four bytes and checks the PAR1
// signature. Servers that ignore Range still work: only the prefix is read.
func (v *Validator) checkParquetMagic(ctx context.Context, rawURL string) *models.EngineError {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &models.EngineError{Kind: models.ErrorKindValidation, Message: "invalid URL", Details: rawURL}
	}
	req.Header.Set("Range", "bytes=0-3")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return &models.EngineError{
			Kind:    models.ErrorKindNetwork,
			Message: "could not read the file header",
			Details: err.Error(),
		}
	}
	defer resp.Body.Close()

	magic := make([]byte, 4)
	if _, err := io.ReadFull(resp.Body, magic); err != nil || string(magic) != string(parquetMagic) {
		return &models.EngineError{
			Kind:    models.ErrorKindValidation,
			Message: "file does not look like a Parquet file",
			Details: rawURL,
		}
	}
	return nil
}

func isParquetURL(rawURL string) bool {
	cleaned := strings.ToLower(rawURL)
	if i := strings.IndexAny(cleaned, "?#"); i >= 0 {
		cleaned = cleaned[:i]
	}
	return strings.HasSuffix(cleaned, ".parquet")
}
