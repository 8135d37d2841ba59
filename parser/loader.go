package parser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/FreezeNow/swagger-to-axios/document"
	"github.com/FreezeNow/swagger-to-axios/oaserrors"
)

// Loader fetches and decodes documents. It is safe for concurrent use as long
// as the configured fetchers are.
type Loader struct {
	cfg *loaderConfig
}

// New creates a Loader.
func New(opts ...Option) (*Loader, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}
	return &Loader{cfg: cfg}, nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Load retrieves src and decodes it.
//
// Retrieval failures (including empty content) return *oaserrors.SourceError;
// decode failures return *oaserrors.ParseError.
func (l *Loader) Load(ctx context.Context, src Source) (*RawDocument, error) {
	start := time.Now()
	log := l.cfg.logger.With("source", src.Location)

	if src.Location == "" {
		return nil, &oaserrors.SourceError{Message: "empty location"}
	}
	format := src.Format
	if format == "" {
		format = document.FormatYAML
	}

	data, err := l.fetch(ctx, src)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &oaserrors.SourceError{Location: src.Location, Message: "empty content"}
	}
	log.Debug("fetched document", "bytes", len(data))

	if format == document.FormatAuto {
		format = document.DetectFormat(data)
	}
	root, err := document.Decode(data, format)
	if err != nil {
		return nil, toParseError(src.Location, format, err)
	}

	baseDir, baseURL := baseFor(src)
	raw := &RawDocument{
		Root:     root,
		Source:   src,
		Format:   format,
		BaseDir:  baseDir,
		BaseURL:  baseURL,
		Size:     int64(len(data)),
		LoadTime: time.Since(start),
	}
	log.Debug("decoded document", "format", format, "duration", raw.LoadTime)
	return raw, nil
}

// fetch retrieves src. Errors from injected fetchers that are not already
// typed are reported as *oaserrors.SourceError.
func (l *Loader) fetch(ctx context.Context, src Source) ([]byte, error) {
	f := l.cfg.httpFetcher
	if src.IsLocalFile {
		f = l.cfg.fileFetcher
	}
	data, err := f.Fetch(ctx, src.Location)
	if err != nil {
		var se *oaserrors.SourceError
		if errors.As(err, &se) {
			return nil, err
		}
		return nil, &oaserrors.SourceError{Location: src.Location, Message: "fetch failed", Cause: err}
	}
	return data, nil
}

// Resolver returns a RefResolver for raw that shares this Loader's fetchers,
// logger and limits.
func (l *Loader) Resolver(raw *RawDocument) *RefResolver {
	return &RefResolver{
		httpFetcher: l.cfg.httpFetcher,
		fileFetcher: l.cfg.fileFetcher,
		logger:      l.cfg.logger,
		baseDir:     raw.BaseDir,
		baseURL:     raw.BaseURL,
		maxDepth:    l.cfg.maxRefDepth,
		maxDocs:     l.cfg.maxDocs,
	}
}

func toParseError(location string, format document.Format, err error) error {
	pe := &oaserrors.ParseError{Path: location, Format: string(format), Cause: err}
	var de *document.DecodeError
	if errors.As(err, &de) {
		pe.Line = de.Line
		pe.Column = de.Column
		pe.Cause = de.Err
	}
	return pe
}
