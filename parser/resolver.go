package parser

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/FreezeNow/swagger-to-axios/document"
	"github.com/FreezeNow/swagger-to-axios/oaserrors"
)

const (
	// MaxRefDepth is the maximum number of reference hops on one resolution path.
	MaxRefDepth = 100

	// MaxCachedDocuments is the maximum number of external documents loaded per pass.
	MaxCachedDocuments = 100

	// MaxFileSize is the maximum size in bytes of any fetched document.
	MaxFileSize = 10 * 1024 * 1024 // 10MB
)

// RefResolver replaces $ref pointers with the nodes they point to.
//
// A RefResolver is single-use per document and is not safe for concurrent use.
type RefResolver struct {
	httpFetcher Fetcher
	fileFetcher Fetcher
	logger      Logger
	baseDir     string
	baseURL     string
	maxDepth    int
	maxDocs     int

	// scopes caches external documents by absolute location
	scopes map[string]*scope
	// resolved maps an absolute reference to its shared target node
	resolved map[string]*document.Value
	// resolving tracks references whose target is itself still a $ref chain
	resolving map[string]bool
	// visited marks nodes whose children were already resolved in place
	visited map[*document.Value]bool
	// onStack marks nodes currently being walked; reaching one means a cycle
	onStack   map[*document.Value]bool
	hasCycles bool
	refCount  int
}

// scope is one document that references are resolved against.
type scope struct {
	location string
	root     *document.Value
	dir      string
	url      string
}

// NewRefResolver creates a resolver for a document whose relative references
// resolve against baseDir (local files) or baseURL (remote documents).
// Loader options such as WithHTTPFetcher, WithFileFetcher and the limits apply.
func NewRefResolver(baseDir, baseURL string, opts ...Option) (*RefResolver, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}
	return &RefResolver{
		httpFetcher: cfg.httpFetcher,
		fileFetcher: cfg.fileFetcher,
		logger:      cfg.logger,
		baseDir:     baseDir,
		baseURL:     baseURL,
		maxDepth:    cfg.maxRefDepth,
		maxDocs:     cfg.maxDocs,
	}, nil
}

// HasCycles reports whether the last ResolveAll produced a cyclic graph.
func (r *RefResolver) HasCycles() bool {
	return r.hasCycles
}

// RefCount returns how many $ref nodes the last ResolveAll replaced.
func (r *RefResolver) RefCount() int {
	return r.refCount
}

// ResolveAll resolves every reference reachable from root, mutating the tree
// in place, and returns the new root. The root itself may be replaced when it
// is a bare $ref.
func (r *RefResolver) ResolveAll(ctx context.Context, root *document.Value) (*document.Value, error) {
	r.scopes = make(map[string]*scope)
	r.resolved = make(map[string]*document.Value)
	r.resolving = make(map[string]bool)
	r.visited = make(map[*document.Value]bool)
	r.onStack = make(map[*document.Value]bool)
	r.hasCycles = false
	r.refCount = 0
	if r.logger == nil {
		r.logger = NopLogger{}
	}
	if r.maxDepth <= 0 {
		r.maxDepth = MaxRefDepth
	}
	if r.maxDocs <= 0 {
		r.maxDocs = MaxCachedDocuments
	}

	s := &scope{location: r.baseURL, root: root, dir: r.baseDir, url: r.baseURL}
	out, err := r.resolveNode(ctx, s, root, 0)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("resolved references", "count", r.refCount, "external_documents", len(r.scopes), "cyclic", r.hasCycles)
	return out, nil
}

func (r *RefResolver) resolveNode(ctx context.Context, s *scope, v *document.Value, hops int) (*document.Value, error) {
	switch v.Kind() {
	case document.KindMapping:
		if ref, ok := v.StrField("$ref"); ok {
			return r.resolveRef(ctx, s, v, ref, hops)
		}
		if r.visited[v] {
			return v, nil
		}
		r.visited[v] = true
		r.onStack[v] = true
		defer delete(r.onStack, v)
		for _, e := range v.Entries() {
			child, err := r.resolveNode(ctx, s, e.Value, hops)
			if err != nil {
				return nil, err
			}
			if child != e.Value {
				v.Set(e.Key, child)
			}
		}
		return v, nil
	case document.KindSequence:
		if r.visited[v] {
			return v, nil
		}
		r.visited[v] = true
		r.onStack[v] = true
		defer delete(r.onStack, v)
		items, _ := v.Items()
		for i, it := range items {
			child, err := r.resolveNode(ctx, s, it, hops)
			if err != nil {
				return nil, err
			}
			if child != it {
				v.SetItem(i, child)
			}
		}
		return v, nil
	default:
		return v, nil
	}
}

func (r *RefResolver) resolveRef(ctx context.Context, s *scope, node *document.Value, ref string, hops int) (*document.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if hops >= r.maxDepth {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "ref_depth",
			Limit:        int64(r.maxDepth),
			Actual:       int64(hops),
			Message:      "reference chain too deep at " + ref,
		}
	}
	r.refCount++

	ts, pointer, refType, err := r.locate(ctx, s, ref)
	if err != nil {
		return nil, &oaserrors.ReferenceError{Ref: ref, RefType: refType, Cause: err}
	}
	key := ts.location + "#" + pointer

	target, ok := r.resolved[key]
	if !ok {
		if r.resolving[key] {
			return nil, &oaserrors.ReferenceError{Ref: ref, RefType: refType, IsCircular: true}
		}
		raw, err := document.Lookup(ts.root, pointer)
		if err != nil {
			return nil, &oaserrors.ReferenceError{Ref: ref, RefType: refType, Message: "target not found", Cause: err}
		}
		if !raw.IsMapping() && !raw.IsSequence() {
			return nil, &oaserrors.ReferenceError{Ref: ref, RefType: refType, Message: "target is a " + raw.Kind().String() + ", not an object"}
		}
		if _, chained := raw.StrField("$ref"); chained {
			r.resolving[key] = true
			target, err = r.resolveNode(ctx, ts, raw, hops+1)
			delete(r.resolving, key)
			if err != nil {
				return nil, err
			}
			r.resolved[key] = target
		} else {
			// Publish before walking so references back to key share this node.
			r.resolved[key] = raw
			target = raw
			if _, err := r.resolveNode(ctx, ts, raw, hops+1); err != nil {
				return nil, err
			}
		}
		r.logger.Debug("resolved reference", "ref", ref, "type", refType)
	}
	if r.onStack[target] {
		r.hasCycles = true
	}
	return r.withSiblings(ctx, s, node, target, hops)
}

// withSiblings applies keys written next to $ref (allowed since OpenAPI 3.1)
// on top of a copy of the target. Without siblings the shared target is returned.
func (r *RefResolver) withSiblings(ctx context.Context, s *scope, node, target *document.Value, hops int) (*document.Value, error) {
	if node.Len() <= 1 || !target.IsMapping() {
		return target, nil
	}
	merged := document.Mapping()
	for _, e := range target.Entries() {
		child, err := r.resolveNode(ctx, s, e.Value, hops)
		if err != nil {
			return nil, err
		}
		merged.Set(e.Key, child)
	}
	for _, e := range node.Entries() {
		if e.Key == "$ref" {
			continue
		}
		child, err := r.resolveNode(ctx, s, e.Value, hops)
		if err != nil {
			return nil, err
		}
		merged.Set(e.Key, child)
	}
	return merged, nil
}

// locate finds the document a reference points into and the JSON pointer within it.
func (r *RefResolver) locate(ctx context.Context, s *scope, ref string) (*scope, string, string, error) {
	docPart, fragment, _ := strings.Cut(ref, "#")
	if docPart == "" {
		return s, fragment, "local", nil
	}

	var (
		loc    string
		remote bool
	)
	switch {
	case isURL(docPart):
		loc, remote = docPart, true
	case s.url != "":
		abs, err := resolveRelativeURL(s.url, docPart)
		if err != nil {
			return nil, "", "http", err
		}
		loc, remote = abs, true
	case filepath.IsAbs(docPart):
		loc = filepath.Clean(docPart)
	default:
		loc = filepath.Clean(filepath.Join(s.dir, docPart))
	}
	refType := "file"
	if remote {
		refType = "http"
	}

	if cached, ok := r.scopes[loc]; ok {
		return cached, fragment, refType, nil
	}
	if len(r.scopes) >= r.maxDocs {
		return nil, "", refType, &oaserrors.ResourceLimitError{
			ResourceType: "cached_documents",
			Limit:        int64(r.maxDocs),
			Actual:       int64(len(r.scopes)),
			Message:      "too many external references",
		}
	}

	fetcher := r.fileFetcher
	if remote {
		fetcher = r.httpFetcher
	}
	if fetcher == nil {
		return nil, "", refType, fetcherMissing(loc, refType)
	}
	data, err := fetcher.Fetch(ctx, loc)
	if err != nil {
		return nil, "", refType, err
	}
	root, err := document.Decode(data, document.FormatAuto)
	if err != nil {
		return nil, "", refType, fmt.Errorf("decode %s: %w", loc, err)
	}

	ext := &scope{location: loc, root: root}
	if remote {
		ext.url = loc
	} else {
		ext.dir = filepath.Dir(loc)
	}
	r.scopes[loc] = ext
	r.logger.Debug("loaded external document", "location", loc, "bytes", len(data))
	return ext, fragment, refType, nil
}

// resolveRelativeURL resolves ref against the URL of the referring document.
func resolveRelativeURL(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	rel, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid reference URL: %w", err)
	}
	out := b.ResolveReference(rel)
	if out.Scheme != "http" && out.Scheme != "https" {
		return "", errors.New("reference resolves outside http(s): " + out.String())
	}
	out.Fragment = ""
	return out.String(), nil
}
