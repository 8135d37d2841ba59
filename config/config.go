// Package config loads the command line tool configuration from a YAML file
// and SWAGGER2AXIOS_ environment variables.
//
// A minimal file:
//
//	documents:
//	  - url: https://petstore.swagger.io/v2/swagger.json
//	    urlType: json
//	    name: pets
//	cliType: Vite
//	importAxiosPath: "@/utils/request"
//
// Environment variables override file values, for example
// SWAGGER2AXIOS_OUTPUT_FOLDER=./src/apis or SWAGGER2AXIOS_FETCH_TIMEOUT=10s.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.yaml.in/yaml/v4"

	"github.com/FreezeNow/swagger-to-axios/batch"
	"github.com/FreezeNow/swagger-to-axios/generator"
	"github.com/FreezeNow/swagger-to-axios/oaserrors"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SWAGGER2AXIOS_"

// DefaultFileName is the configuration file looked up by the CLI.
const DefaultFileName = "swagger2axios.yaml"

// Config is the complete tool configuration.
type Config struct {
	// Documents lists the documents to generate from
	Documents []batch.Document `yaml:"documents"`

	// Generator holds the output settings; its keys sit at the top level
	generator.Config `yaml:",inline"`

	// Concurrency bounds how many documents are processed at once
	Concurrency int `yaml:"concurrency" env:"CONCURRENCY"`

	// FetchTimeout bounds fetching one document and, separately, resolving
	// its external references
	FetchTimeout time.Duration `yaml:"fetchTimeout" env:"FETCH_TIMEOUT"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Config:       generator.DefaultConfig(),
		Concurrency:  batch.DefaultConcurrency,
		FetchTimeout: batch.DefaultFetchTimeout,
	}
}

// Load reads the file at path (skipped when path is empty), applies the
// process environment and validates the result.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, environ())
}

// LoadWithEnv is Load with an explicit environment.
func LoadWithEnv(path string, environment map[string]string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix, Environment: environment}); err != nil {
		return nil, fmt.Errorf("config: environment: %w", &oaserrors.ConfigError{Option: "environment", Message: "invalid value", Cause: err})
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// decode applies YAML data on top of cfg. Unknown keys are rejected so that
// typos do not silently fall back to defaults.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return &oaserrors.ConfigError{Option: "file", Message: "invalid configuration", Cause: err}
	}
	return nil
}

// Validate checks every setting and canonicalizes cliType.
func (c *Config) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	if c.Concurrency < 1 {
		return &oaserrors.ConfigError{Option: "concurrency", Value: c.Concurrency, Message: "must be at least 1"}
	}
	if c.FetchTimeout <= 0 {
		return &oaserrors.ConfigError{Option: "fetchTimeout", Value: c.FetchTimeout, Message: "must be positive"}
	}
	for i, d := range c.Documents {
		if strings.TrimSpace(d.URL) == "" {
			return &oaserrors.ConfigError{Option: fmt.Sprintf("documents[%d].url", i), Message: "must not be empty"}
		}
		if _, err := d.Source(); err != nil {
			return fmt.Errorf("documents[%d]: %w", i, err)
		}
	}
	return nil
}

// BatchOptions returns the batch options matching c.
func (c *Config) BatchOptions() []batch.Option {
	return []batch.Option{
		batch.WithConcurrency(c.Concurrency),
		batch.WithFetchTimeout(c.FetchTimeout),
		batch.WithCLIType(c.CLIType),
	}
}

func environ() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, EnvPrefix) {
			out[k] = v
		}
	}
	return out
}
