package parser

import (
	"time"

	swaggertoaxios "github.com/FreezeNow/swagger-to-axios"
	"github.com/FreezeNow/swagger-to-axios/oaserrors"
)

// Option configures a Loader.
type Option func(*loaderConfig) error

type loaderConfig struct {
	httpFetcher Fetcher
	fileFetcher Fetcher
	logger      Logger
	timeout     time.Duration
	userAgent   string
	maxFileSize int64
	maxRefDepth int
	maxDocs     int
}

func applyOptions(opts ...Option) (*loaderConfig, error) {
	cfg := &loaderConfig{
		logger:      NopLogger{},
		timeout:     DefaultTimeout,
		userAgent:   swaggertoaxios.UserAgent(),
		maxFileSize: MaxFileSize,
		maxRefDepth: MaxRefDepth,
		maxDocs:     MaxCachedDocuments,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.httpFetcher == nil {
		cfg.httpFetcher = &HTTPFetcher{
			Client:    newHTTPClient(cfg.timeout),
			UserAgent: cfg.userAgent,
			MaxSize:   cfg.maxFileSize,
		}
	}
	if cfg.fileFetcher == nil {
		cfg.fileFetcher = FileFetcher{MaxSize: cfg.maxFileSize}
	}
	return cfg, nil
}

// WithHTTPFetcher replaces the fetcher used for remote locations.
func WithHTTPFetcher(f Fetcher) Option {
	return func(cfg *loaderConfig) error {
		if f == nil {
			return &oaserrors.ConfigError{Option: "WithHTTPFetcher", Message: "fetcher cannot be nil"}
		}
		cfg.httpFetcher = f
		return nil
	}
}

// WithFileFetcher replaces the fetcher used for local files.
func WithFileFetcher(f Fetcher) Option {
	return func(cfg *loaderConfig) error {
		if f == nil {
			return &oaserrors.ConfigError{Option: "WithFileFetcher", Message: "fetcher cannot be nil"}
		}
		cfg.fileFetcher = f
		return nil
	}
}

// WithLogger sets the logger for load and resolve events.
func WithLogger(l Logger) Option {
	return func(cfg *loaderConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}

// WithTimeout sets the per-request timeout of the default HTTP fetcher.
func WithTimeout(d time.Duration) Option {
	return func(cfg *loaderConfig) error {
		if d <= 0 {
			return &oaserrors.ConfigError{Option: "WithTimeout", Value: d, Message: "timeout must be positive"}
		}
		cfg.timeout = d
		return nil
	}
}

// WithUserAgent sets the User-Agent of the default HTTP fetcher.
func WithUserAgent(ua string) Option {
	return func(cfg *loaderConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithMaxFileSize limits the size of every fetched document.
func WithMaxFileSize(n int64) Option {
	return func(cfg *loaderConfig) error {
		if n <= 0 {
			return &oaserrors.ConfigError{Option: "WithMaxFileSize", Value: n, Message: "limit must be positive"}
		}
		cfg.maxFileSize = n
		return nil
	}
}

// WithMaxRefDepth limits how deep reference chains may nest.
func WithMaxRefDepth(n int) Option {
	return func(cfg *loaderConfig) error {
		if n <= 0 {
			return &oaserrors.ConfigError{Option: "WithMaxRefDepth", Value: n, Message: "depth must be positive"}
		}
		cfg.maxRefDepth = n
		return nil
	}
}

// WithMaxCachedDocuments limits how many external documents one resolution pass loads.
func WithMaxCachedDocuments(n int) Option {
	return func(cfg *loaderConfig) error {
		if n <= 0 {
			return &oaserrors.ConfigError{Option: "WithMaxCachedDocuments", Value: n, Message: "count must be positive"}
		}
		cfg.maxDocs = n
		return nil
	}
}
