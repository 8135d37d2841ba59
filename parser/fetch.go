package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	swaggertoaxios "github.com/FreezeNow/swagger-to-axios"
	"github.com/FreezeNow/swagger-to-axios/oaserrors"
)

// DefaultTimeout bounds a single HTTP fetch.
const DefaultTimeout = 30 * time.Second

// Fetcher retrieves the raw text of a document.
// Implementations must honor ctx cancellation.
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, location string) ([]byte, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, location string) ([]byte, error) {
	return f(ctx, location)
}

// HTTPFetcher fetches documents with HTTP GET.
type HTTPFetcher struct {
	// Client is the HTTP client used for requests.
	Client *http.Client
	// UserAgent is sent with every request.
	UserAgent string
	// MaxSize is the largest accepted response body, in bytes.
	MaxSize int64
}

// NewHTTPFetcher returns an HTTPFetcher with the given per-request timeout.
// A non-positive timeout selects DefaultTimeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFetcher{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: swaggertoaxios.UserAgent(),
		MaxSize:   MaxFileSize,
	}
}

// Fetch implements Fetcher. Non-2xx responses, network errors and empty
// bodies are reported as *oaserrors.SourceError.
func (f *HTTPFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, &oaserrors.SourceError{Location: location, Message: "invalid request", Cause: err}
	}
	ua := f.UserAgent
	if ua == "" {
		ua = swaggertoaxios.UserAgent()
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.8")

	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	resp, err := client.Do(req) //nolint:gosec // location comes from user configuration
	if err != nil {
		return nil, &oaserrors.SourceError{Location: location, Message: "request failed", Cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &oaserrors.SourceError{Location: location, StatusCode: resp.StatusCode, Message: resp.Status}
	}
	return readLimited(location, resp.Body, f.maxSize())
}

func (f *HTTPFetcher) maxSize() int64 {
	if f.MaxSize > 0 {
		return f.MaxSize
	}
	return MaxFileSize
}

// FileFetcher reads documents from the local file system.
type FileFetcher struct {
	// MaxSize is the largest accepted file, in bytes.
	MaxSize int64
}

// Fetch implements Fetcher.
func (f FileFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &oaserrors.SourceError{Location: location, Cause: err}
	}
	file, err := os.Open(location) //nolint:gosec // location comes from user configuration
	if err != nil {
		return nil, &oaserrors.SourceError{Location: location, Message: "cannot open file", Cause: err}
	}
	defer func() {
		_ = file.Close()
	}()
	limit := f.MaxSize
	if limit <= 0 {
		limit = MaxFileSize
	}
	return readLimited(location, file, limit)
}

// readLimited reads at most limit bytes and rejects empty content.
func readLimited(location string, r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, &oaserrors.SourceError{Location: location, Message: "read failed", Cause: err}
	}
	if int64(len(data)) > limit {
		return nil, &oaserrors.SourceError{
			Location: location,
			Cause: &oaserrors.ResourceLimitError{
				ResourceType: "file_size",
				Limit:        limit,
				Message:      "document too large",
			},
		}
	}
	if len(data) == 0 {
		return nil, &oaserrors.SourceError{Location: location, Message: "empty content"}
	}
	return data, nil
}

// errNoFetcher is returned when a location needs a fetcher that was not configured.
var errNoFetcher = errors.New("no fetcher configured")

func fetcherMissing(location, kind string) error {
	return &oaserrors.SourceError{Location: location, Message: fmt.Sprintf("cannot fetch %s location", kind), Cause: errNoFetcher}
}
