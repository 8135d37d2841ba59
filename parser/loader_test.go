package parser

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FreezeNow/swagger-to-axios/document"
	"github.com/FreezeNow/swagger-to-axios/oaserrors"
)

const petstoreYAML = `swagger: "2.0"
info:
  title: Petstore
  version: "1.0"
paths:
  /pets:
    get:
      responses:
        "200":
          description: ok
`

func TestLoadLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(petstoreYAML), 0o600))

	l, err := New()
	require.NoError(t, err)

	raw, err := l.Load(context.Background(), Source{Location: path, IsLocalFile: true})
	require.NoError(t, err)
	assert.Equal(t, document.FormatYAML, raw.Format)
	assert.Equal(t, dir, raw.BaseDir)
	assert.Empty(t, raw.BaseURL)
	assert.Equal(t, int64(len(petstoreYAML)), raw.Size)

	v, ok := raw.Root.StrField("swagger")
	assert.True(t, ok)
	assert.Equal(t, "2.0", v)
}

func TestLoadLocalFileFailures(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	blank := filepath.Join(dir, "blank.yaml")
	require.NoError(t, os.WriteFile(blank, []byte("\n  \n"), 0o600))
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"swagger": "2.0",`), 0o600))

	l, err := New()
	require.NoError(t, err)

	tests := []struct {
		name   string
		src    Source
		target error
	}{
		{"missing file", Source{Location: filepath.Join(dir, "nope.yaml"), IsLocalFile: true}, oaserrors.ErrSourceUnavailable},
		{"empty file", Source{Location: empty, IsLocalFile: true}, oaserrors.ErrSourceUnavailable},
		{"blank file", Source{Location: blank, IsLocalFile: true}, oaserrors.ErrSourceUnavailable},
		{"empty location", Source{IsLocalFile: true}, oaserrors.ErrSourceUnavailable},
		{"broken json", Source{Location: broken, IsLocalFile: true, Format: document.FormatJSON}, oaserrors.ErrMalformedDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Load(context.Background(), tt.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	t.Run("missing file unwraps to os.ErrNotExist", func(t *testing.T) {
		_, err := l.Load(context.Background(), Source{Location: filepath.Join(dir, "nope.yaml"), IsLocalFile: true})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("parse error carries position", func(t *testing.T) {
		_, err := l.Load(context.Background(), Source{Location: broken, IsLocalFile: true, Format: document.FormatJSON})
		var pe *oaserrors.ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "json", pe.Format)
		assert.Equal(t, 1, pe.Line)
	})
}

func TestLoadHTTP(t *testing.T) {
	var gotUA atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA.Store(r.Header.Get("User-Agent"))
		switch r.URL.Path {
		case "/v2/swagger.json":
			_, _ = w.Write([]byte(`{"swagger": "2.0", "host": "127.0.0.1:8848"}`))
		case "/empty":
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l, err := New(WithUserAgent("test-agent/1"))
	require.NoError(t, err)

	t.Run("json document", func(t *testing.T) {
		raw, err := l.Load(context.Background(), Source{Location: srv.URL + "/v2/swagger.json", Format: document.FormatJSON})
		require.NoError(t, err)
		host, _ := raw.Root.StrField("host")
		assert.Equal(t, "127.0.0.1:8848", host)
		assert.Equal(t, srv.URL+"/v2/swagger.json", raw.BaseURL)
		assert.Equal(t, "test-agent/1", gotUA.Load())
	})

	t.Run("json body parsed as yaml by default", func(t *testing.T) {
		raw, err := l.Load(context.Background(), Source{Location: srv.URL + "/v2/swagger.json"})
		require.NoError(t, err)
		assert.Equal(t, document.FormatYAML, raw.Format)
		assert.True(t, raw.Root.Has("swagger"))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := l.Load(context.Background(), Source{Location: srv.URL + "/missing"})
		var se *oaserrors.SourceError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusNotFound, se.StatusCode)
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := l.Load(context.Background(), Source{Location: srv.URL + "/empty"})
		assert.ErrorIs(t, err, oaserrors.ErrSourceUnavailable)
	})
}

func TestHTTPFetcherHonorsContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHTTPFetcher(time.Minute).Fetch(ctx, srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrSourceUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetchSizeLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 64)))
	}))
	defer srv.Close()

	l, err := New(WithMaxFileSize(16))
	require.NoError(t, err)
	_, err = l.Load(context.Background(), Source{Location: srv.URL})
	assert.ErrorIs(t, err, oaserrors.ErrSourceUnavailable)
	assert.ErrorIs(t, err, oaserrors.ErrResourceLimit)
}

func TestLoadWithInjectedFetcher(t *testing.T) {
	var calls []string
	stub := FetcherFunc(func(_ context.Context, location string) ([]byte, error) {
		calls = append(calls, location)
		return []byte("openapi: 3.0.0\n"), nil
	})
	l, err := New(WithHTTPFetcher(stub))
	require.NoError(t, err)

	raw, err := l.Load(context.Background(), Source{Location: "https://example.com/openapi.yaml"})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/openapi.yaml"}, calls)
	assert.True(t, raw.Root.Has("openapi"))
}

func TestLoadWrapsUntypedFetchErrors(t *testing.T) {
	boom := errors.New("connection reset")
	stub := FetcherFunc(func(context.Context, string) ([]byte, error) {
		return nil, boom
	})
	l, err := New(WithHTTPFetcher(stub))
	require.NoError(t, err)

	_, err = l.Load(context.Background(), Source{Location: "https://example.com/a.yaml"})
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrSourceUnavailable)
	assert.ErrorIs(t, err, boom)
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"nil http fetcher", WithHTTPFetcher(nil)},
		{"nil file fetcher", WithFileFetcher(nil)},
		{"zero timeout", WithTimeout(0)},
		{"negative size", WithMaxFileSize(-1)},
		{"zero depth", WithMaxRefDepth(0)},
		{"zero documents", WithMaxCachedDocuments(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opt)
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrConfig)
		})
	}

	_, err := New(WithLogger(nil))
	assert.NoError(t, err)
}
