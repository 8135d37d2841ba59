package batch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/FreezeNow/swagger-to-axios/document"
	"github.com/FreezeNow/swagger-to-axios/internal/naming"
	"github.com/FreezeNow/swagger-to-axios/model"
	"github.com/FreezeNow/swagger-to-axios/normalizer"
	"github.com/FreezeNow/swagger-to-axios/oaserrors"
	"github.com/FreezeNow/swagger-to-axios/parser"
)

// Document describes one input document.
type Document struct {
	// URL is an http(s) URL, or a file path when IsLocalFile is set
	URL         string `yaml:"url" json:"url"`
	IsLocalFile bool   `yaml:"isLocalFile" json:"isLocalFile"`
	// URLType is "yaml" (default), "json" or "auto"
	URLType string `yaml:"urlType" json:"urlType"`
	// Name is the output folder name; empty derives one from URL
	Name string `yaml:"name" json:"name"`
}

// Source returns the loader source for d.
func (d Document) Source() (parser.Source, error) {
	format, err := document.ParseFormat(d.URLType)
	if err != nil {
		return parser.Source{}, &oaserrors.ConfigError{Option: "urlType", Value: d.URLType, Message: "must be json, yaml or auto", Cause: err}
	}
	return parser.Source{Location: d.URL, IsLocalFile: d.IsLocalFile, Format: format}, nil
}

// Failure reports a document that was skipped.
type Failure struct {
	Document Document
	// Index is the position of Document in the input
	Index int
	Kind  oaserrors.Kind
	Err   error
}

// Error implements error.
func (f Failure) Error() string {
	return fmt.Sprintf("%s: %s: %v", f.Document.URL, f.Kind, f.Err)
}

// Unwrap returns the underlying error.
func (f Failure) Unwrap() error {
	return f.Err
}

// Result is the outcome of Run.
type Result struct {
	// Folders holds one folder per document that was fully built, in input order
	Folders []model.Folder
	// Failures holds one entry per skipped document, in input order
	Failures []Failure
	// Duration is the wall time of the run
	Duration time.Duration
}

// AllFailed reports whether there were documents and none was built.
func (r *Result) AllFailed() bool {
	return len(r.Folders) == 0 && len(r.Failures) > 0
}

// Run processes docs and returns the folders built and the documents skipped.
//
// The returned error is non-nil only for invalid options. Cancelling ctx
// stops documents that have not finished; folders already built are kept and
// the rest are reported with oaserrors.KindCanceled.
func Run(ctx context.Context, docs []Document, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("batch: invalid options: %w", err)
	}
	start := time.Now()

	// Names are assigned up front so duplicates resolve the same way every run.
	names := make([]string, len(docs))
	taken := naming.NameSet{}
	for i, d := range docs {
		name := d.Name
		if name == "" {
			name = model.DefaultFolderName(d.URL)
		}
		names[i] = taken.Claim(name)
	}

	folders := make([]*model.Folder, len(docs))
	failures := make([]error, len(docs))

	var g errgroup.Group
	g.SetLimit(cfg.concurrency)
	for i, d := range docs {
		if ctx.Err() != nil {
			failures[i] = ctx.Err()
			continue
		}
		g.Go(func() error {
			folder, err := cfg.process(ctx, d, names[i])
			if err != nil {
				failures[i] = err
				return nil
			}
			folders[i] = folder
			return nil
		})
	}
	_ = g.Wait()

	res := &Result{Folders: make([]model.Folder, 0, len(docs))}
	for i, d := range docs {
		if err := failures[i]; err != nil {
			f := Failure{Document: d, Index: i, Kind: oaserrors.KindOf(err), Err: err}
			cfg.logger.Warn("skipped document", "source", d.URL, "kind", string(f.Kind), "error", err)
			res.Failures = append(res.Failures, f)
			continue
		}
		res.Folders = append(res.Folders, *folders[i])
	}
	res.Duration = time.Since(start)
	cfg.logger.Info("batch complete", "built", len(res.Folders), "skipped", len(res.Failures), "duration", res.Duration)
	return res, nil
}

// process runs the whole pipeline for one document.
func (cfg *runConfig) process(ctx context.Context, d Document, name string) (*model.Folder, error) {
	src, err := d.Source()
	if err != nil {
		return nil, err
	}
	log := cfg.logger.With("source", d.URL)

	loadCtx, cancel := context.WithTimeout(ctx, cfg.fetchTimeout)
	raw, err := cfg.loader.Load(loadCtx, src)
	cancel()
	if err != nil {
		return nil, canceledOr(ctx, err)
	}

	resolveCtx, cancel := context.WithTimeout(ctx, cfg.fetchTimeout)
	defer cancel()
	doc, err := normalizer.Normalize(resolveCtx, raw,
		normalizer.WithRefResolver(cfg.loader.Resolver(raw)),
		normalizer.WithLogger(log))
	if err != nil {
		return nil, canceledOr(ctx, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	folder := model.Build(doc, name, cfg.cliType)
	stats := folder.Stats()
	log.Debug("built folder", "folder", name, "tags", stats.Tags, "operations", stats.Operations)
	return &folder, nil
}

// canceledOr reports the batch cancellation instead of err when the parent
// context is done, so a document interrupted mid-fetch is not blamed on its
// source.
func canceledOr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %v", ctxErr, err)
	}
	return err
}
