package batch

import (
	"time"

	"github.com/FreezeNow/swagger-to-axios/model"
	"github.com/FreezeNow/swagger-to-axios/oaserrors"
	"github.com/FreezeNow/swagger-to-axios/parser"
)

const (
	// DefaultConcurrency is how many documents are processed at once.
	DefaultConcurrency = 4
	// DefaultFetchTimeout bounds each fetch of a document.
	DefaultFetchTimeout = parser.DefaultTimeout
)

// Option configures Run.
type Option func(*runConfig) error

type runConfig struct {
	concurrency  int
	fetchTimeout time.Duration
	loader       *parser.Loader
	cliType      model.CLIType
	logger       parser.Logger
}

func applyOptions(opts ...Option) (*runConfig, error) {
	cfg := &runConfig{
		concurrency:  DefaultConcurrency,
		fetchTimeout: DefaultFetchTimeout,
		cliType:      model.CLITypeVueCli,
		logger:       parser.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.loader == nil {
		l, err := parser.New(parser.WithTimeout(cfg.fetchTimeout), parser.WithLogger(cfg.logger))
		if err != nil {
			return nil, err
		}
		cfg.loader = l
	}
	return cfg, nil
}

// WithConcurrency sets how many documents are processed at once.
func WithConcurrency(n int) Option {
	return func(cfg *runConfig) error {
		if n < 1 {
			return &oaserrors.ConfigError{Option: "WithConcurrency", Value: n, Message: "must be at least 1"}
		}
		cfg.concurrency = n
		return nil
	}
}

// WithFetchTimeout bounds the time spent fetching each document, and
// separately the time spent resolving its external references.
func WithFetchTimeout(d time.Duration) Option {
	return func(cfg *runConfig) error {
		if d <= 0 {
			return &oaserrors.ConfigError{Option: "WithFetchTimeout", Value: d, Message: "must be positive"}
		}
		cfg.fetchTimeout = d
		return nil
	}
}

// WithLoader sets the loader used for every document. Its fetchers also
// serve external references.
func WithLoader(l *parser.Loader) Option {
	return func(cfg *runConfig) error {
		if l == nil {
			return &oaserrors.ConfigError{Option: "WithLoader", Message: "loader cannot be nil"}
		}
		cfg.loader = l
		return nil
	}
}

// WithCLIType sets the CLI type recorded on every folder.
func WithCLIType(t model.CLIType) Option {
	return func(cfg *runConfig) error {
		parsed, err := model.ParseCLIType(string(t))
		if err != nil {
			return err
		}
		cfg.cliType = parsed
		return nil
	}
}

// WithLogger sets the logger for pipeline events.
func WithLogger(l parser.Logger) Option {
	return func(cfg *runConfig) error {
		if l == nil {
			return &oaserrors.ConfigError{Option: "WithLogger", Message: "logger cannot be nil"}
		}
		cfg.logger = l
		return nil
	}
}
