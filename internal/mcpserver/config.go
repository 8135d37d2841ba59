package mcpserver

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// envPrefix prefixes every MCP server environment variable.
const envPrefix = "SWAGGER2AXIOS_MCP_"

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool          `env:"CACHE_ENABLED"        envDefault:"true"`
	CacheMaxSize       int           `env:"CACHE_MAX_SIZE"       envDefault:"10"`
	CacheFileTTL       time.Duration `env:"CACHE_FILE_TTL"       envDefault:"15m"`
	CacheURLTTL        time.Duration `env:"CACHE_URL_TTL"        envDefault:"5m"`
	CacheContentTTL    time.Duration `env:"CACHE_CONTENT_TTL"    envDefault:"15m"`
	CacheSweepInterval time.Duration `env:"CACHE_SWEEP_INTERVAL" envDefault:"60s"`

	// Input limits.
	MaxInlineSize int64         `env:"MAX_INLINE_SIZE" envDefault:"10485760"`
	FetchTimeout  time.Duration `env:"FETCH_TIMEOUT"   envDefault:"30s"`

	// AllowPrivateIPs lets url inputs reach loopback and private networks.
	AllowPrivateIPs bool `env:"ALLOW_PRIVATE_IPS"`
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig(nil)

// loadConfig reads configuration from SWAGGER2AXIOS_MCP_* variables in
// environment, or in the process environment when environment is nil.
// Invalid values log a warning and fall back to the defaults.
func loadConfig(environment map[string]string) *serverConfig {
	c := &serverConfig{}
	if err := env.ParseWithOptions(c, env.Options{Prefix: envPrefix, Environment: environment}); err != nil {
		slog.Warn("invalid MCP server environment, using defaults", "error", err)
		c = defaultConfig()
	}
	d := defaultConfig()
	if c.CacheMaxSize <= 0 {
		c.CacheMaxSize = d.CacheMaxSize
	}
	if c.MaxInlineSize <= 0 {
		c.MaxInlineSize = d.MaxInlineSize
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = d.FetchTimeout
	}
	return c
}

func defaultConfig() *serverConfig {
	c := &serverConfig{}
	// Parsing an empty environment only applies envDefault tags.
	_ = env.ParseWithOptions(c, env.Options{Environment: map[string]string{}})
	return c
}
