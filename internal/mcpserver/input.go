package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/FreezeNow/swagger-to-axios/document"
	"github.com/FreezeNow/swagger-to-axios/internal/options"
	"github.com/FreezeNow/swagger-to-axios/normalizer"
	"github.com/FreezeNow/swagger-to-axios/parser"
)

// specInput represents the three ways a document can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a Swagger or OpenAPI file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch a Swagger or OpenAPI document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
	Format  string `json:"format,omitempty"  jsonschema:"Document format: yaml, json or auto (default auto)"`
}

// cacheEntry holds a normalized document with LRU ordering and TTL expiry.
type cacheEntry struct {
	doc       *normalizer.NormalizedDocument
	insertAt  time.Time
	expiresAt time.Time
}

// specCacheStore provides a session-scoped cache for normalized documents.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash. URL inputs are keyed by URL string.
// Normalized documents are only read after construction, so one entry can
// serve concurrent tool calls.
type specCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var specCache = &specCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached document or nil. Expired entries are lazily removed.
func (c *specCacheStore) get(key string) *normalizer.NormalizedDocument {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.doc
	}
	return nil
}

// putWithTTL stores a document, evicting the least recently used entry if at capacity.
func (c *specCacheStore) putWithTTL(key string, doc *normalizer.NormalizedDocument, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{doc: doc, insertAt: now, expiresAt: now.Add(ttl)}
	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		delete(c.entries, oldestKey)
	}
	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *specCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a goroutine that periodically removes expired
// entries until ctx is cancelled. Only the first call spawns a sweeper.
func (c *specCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *specCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *specCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey identifies s for caching; the format is part of the key since it
// changes how content decodes. An empty key disables caching.
func (s specInput) cacheKey() string {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%s:%d", s.Format, absPath, info.ModTime().UnixNano())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return fmt.Sprintf("content:%s:%s", s.Format, hex.EncodeToString(h[:]))
	case s.URL != "":
		return fmt.Sprintf("url:%s:%s", s.Format, s.URL)
	default:
		return ""
	}
}

func (s specInput) ttl() time.Duration {
	switch {
	case s.File != "":
		return cfg.CacheFileTTL
	case s.URL != "":
		return cfg.CacheURLTTL
	default:
		return cfg.CacheContentTTL
	}
}

// resolve loads and normalizes the document from whichever input was
// provided, using the cache when enabled.
func (s specInput) resolve(ctx context.Context) (*normalizer.NormalizedDocument, error) {
	if err := options.ExactlyOne(
		options.Input{Name: "file", Set: s.File != ""},
		options.Input{Name: "url", Set: s.URL != ""},
		options.Input{Name: "content", Set: s.Content != ""},
	); err != nil {
		return nil, err
	}
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set %sMAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize, envPrefix)
	}
	format := document.FormatAuto
	if s.Format != "" {
		f, err := document.ParseFormat(s.Format)
		if err != nil {
			return nil, err
		}
		format = f
	}

	var key string
	if cfg.CacheEnabled {
		key = s.cacheKey()
	}
	if key != "" {
		if cached := specCache.get(key); cached != nil {
			return cached, nil
		}
	}

	loader, err := newLoader()
	if err != nil {
		return nil, err
	}
	var raw *parser.RawDocument
	switch {
	case s.Content != "":
		root, err := document.Decode([]byte(s.Content), contentFormat(format, s.Content))
		if err != nil {
			return nil, fmt.Errorf("decode content: %w", err)
		}
		raw = &parser.RawDocument{Root: root, Format: format, Size: int64(len(s.Content))}
	default:
		src := parser.Source{Location: s.URL, Format: format}
		if s.File != "" {
			src = parser.Source{Location: s.File, IsLocalFile: true, Format: format}
		}
		loadCtx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
		defer cancel()
		raw, err = loader.Load(loadCtx, src)
		if err != nil {
			return nil, err
		}
	}

	resolveCtx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()
	doc, err := normalizer.Normalize(resolveCtx, raw, normalizer.WithRefResolver(loader.Resolver(raw)))
	if err != nil {
		return nil, err
	}
	if key != "" {
		specCache.putWithTTL(key, doc, s.ttl())
	}
	return doc, nil
}

func contentFormat(f document.Format, content string) document.Format {
	if f == document.FormatAuto {
		return document.DetectFormat([]byte(content))
	}
	return f
}

// newLoader returns a loader whose HTTP fetcher refuses private addresses
// unless AllowPrivateIPs is set. The same fetcher serves external $refs.
func newLoader() (*parser.Loader, error) {
	opts := []parser.Option{parser.WithTimeout(cfg.FetchTimeout)}
	if !cfg.AllowPrivateIPs {
		f := parser.NewHTTPFetcher(cfg.FetchTimeout)
		f.Client = newSafeHTTPClient(cfg.FetchTimeout)
		opts = append(opts, parser.WithHTTPFetcher(f))
	}
	return parser.New(opts...)
}

// location names the input for derived folder names.
func (s specInput) location() string {
	switch {
	case s.File != "":
		return s.File
	case s.URL != "":
		return s.URL
	default:
		h := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(h[:])
	}
}
