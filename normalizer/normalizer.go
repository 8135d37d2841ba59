package normalizer

import (
	"context"
	"fmt"

	"github.com/FreezeNow/swagger-to-axios/converter"
	"github.com/FreezeNow/swagger-to-axios/document"
	"github.com/FreezeNow/swagger-to-axios/oaserrors"
	"github.com/FreezeNow/swagger-to-axios/parser"
)

// NormalizedDocument is a self-contained OpenAPI 3.x tree: no $ref and no
// allOf remain anywhere in it.
type NormalizedDocument struct {
	// Root is the document tree
	Root *document.Value
	// Version is the OpenAPI version of Root
	Version string
	// SourceVersion is the version the input declared
	SourceVersion string
	// Issues are the notes collected while upgrading a 2.0 document
	Issues []converter.Issue
	// Source is where the document was loaded from
	Source parser.Source
}

// Paths returns the paths mapping, or an empty mapping when the document has none.
func (d *NormalizedDocument) Paths() *document.Value {
	if paths, ok := d.Root.MapField("paths"); ok {
		return paths
	}
	return document.Mapping()
}

// Tags returns the declared tag objects in document order.
func (d *NormalizedDocument) Tags() []*document.Value {
	tags, _ := d.Root.SeqField("tags")
	return tags
}

// Servers returns the server objects in document order.
func (d *NormalizedDocument) Servers() []*document.Value {
	servers, _ := d.Root.SeqField("servers")
	return servers
}

// Schemas returns components.schemas, or an empty mapping.
func (d *NormalizedDocument) Schemas() *document.Value {
	if components, ok := d.Root.MapField("components"); ok {
		if schemas, ok := components.MapField("schemas"); ok {
			return schemas
		}
	}
	return document.Mapping()
}

// Option configures Normalize.
type Option func(*normalizeConfig) error

type normalizeConfig struct {
	resolver *parser.RefResolver
	logger   parser.Logger
}

// WithRefResolver sets the resolver used for $ref replacement. Use
// parser.Loader.Resolver so external references go through the same fetchers.
func WithRefResolver(r *parser.RefResolver) Option {
	return func(cfg *normalizeConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "WithRefResolver", Message: "resolver cannot be nil"}
		}
		cfg.resolver = r
		return nil
	}
}

// WithLogger sets the logger for normalization events.
func WithLogger(l parser.Logger) Option {
	return func(cfg *normalizeConfig) error {
		if l == nil {
			return &oaserrors.ConfigError{Option: "WithLogger", Message: "logger cannot be nil"}
		}
		cfg.logger = l
		return nil
	}
}

// Normalize resolves, upgrades and flattens raw. raw.Root is modified during
// resolution and must not be reused afterwards.
//
// Errors keep their oaserrors type: *oaserrors.ReferenceError from resolution
// and *oaserrors.ConversionError from the upgrade.
func Normalize(ctx context.Context, raw *parser.RawDocument, opts ...Option) (*NormalizedDocument, error) {
	if raw == nil {
		return nil, &oaserrors.ConfigError{Option: "raw", Message: "document cannot be nil"}
	}
	cfg := &normalizeConfig{logger: parser.NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("normalizer: invalid options: %w", err)
		}
	}
	if cfg.resolver == nil {
		r, err := parser.NewRefResolver(raw.BaseDir, raw.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("normalizer: %w", err)
		}
		cfg.resolver = r
	}
	log := cfg.logger.With("source", raw.Source.Location)

	root, err := cfg.resolver.ResolveAll(ctx, raw.Root)
	if err != nil {
		return nil, fmt.Errorf("normalizer: resolve references: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := converter.ToOAS3(root)
	if err != nil {
		return nil, fmt.Errorf("normalizer: upgrade: %w", err)
	}
	if res.Upgraded {
		log.Debug("upgraded document", "from", res.SourceVersion, "to", res.TargetVersion,
			"warnings", res.WarningCount, "critical", res.CriticalCount)
	}
	for _, issue := range res.Issues {
		if issue.Severity >= converter.SeverityWarning {
			log.Warn("conversion issue", "path", issue.Path, "message", issue.Message)
		}
	}

	return &NormalizedDocument{
		Root:          Flatten(res.Document),
		Version:       res.TargetVersion,
		SourceVersion: res.SourceVersion,
		Issues:        res.Issues,
		Source:        raw.Source,
	}, nil
}
