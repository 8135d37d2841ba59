package generator

import (
	"regexp"

	"github.com/FreezeNow/swagger-to-axios/model"
	"github.com/FreezeNow/swagger-to-axios/oaserrors"
)

// DefaultOutputFolder is where files are written when Config.OutputFolder is empty.
const DefaultOutputFolder = "./apis"

// Config controls how API files are rendered.
type Config struct {
	// IncludeBaseURL adds a baseURL option built from the protocol and host to
	// every request.
	// Default: true
	IncludeBaseURL bool `yaml:"includeBaseURL" json:"includeBaseURL" env:"INCLUDE_BASE_URL"`

	// CLIType selects how environment variables are read in generated code:
	// import.meta.env for Vite, process.env for VueCli.
	// Default: VueCli
	CLIType model.CLIType `yaml:"cliType" json:"cliType" env:"CLI_TYPE"`

	// EnvHostName is the environment variable holding the API host.
	// Default: VITE_APP_HOST or VUE_APP_HOST depending on CLIType
	EnvHostName string `yaml:"envHostName" json:"envHostName" env:"ENV_HOST_NAME"`

	// EnvProtocolName is the environment variable holding "http" or "https".
	// When empty the protocol is fixed by HTTPS.
	EnvProtocolName string `yaml:"envProtocolName" json:"envProtocolName" env:"ENV_PROTOCOL_NAME"`

	// HTTPS selects https as the protocol, or as the fallback when
	// EnvProtocolName is unset at runtime.
	HTTPS bool `yaml:"https" json:"https" env:"HTTPS"`

	// OutputFolder is the directory folders are written under.
	// Default: ./apis
	OutputFolder string `yaml:"outputFolder" json:"outputFolder" env:"OUTPUT_FOLDER"`

	// ImportAxiosPath is the module the request function is imported from.
	// When empty, window.axios is used.
	ImportAxiosPath string `yaml:"importAxiosPath" json:"importAxiosPath" env:"IMPORT_AXIOS_PATH"`

	// TypeScript emits .ts files with typed signatures.
	TypeScript bool `yaml:"typeScript" json:"typeScript" env:"TYPESCRIPT"`

	// URLInOptions puts the url in the request options. When false the url
	// is passed as the first argument.
	// Default: true
	URLInOptions bool `yaml:"urlInOptions" json:"urlInOptions" env:"URL_IN_OPTIONS"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		IncludeBaseURL: true,
		CLIType:        model.CLITypeVueCli,
		OutputFolder:   DefaultOutputFolder,
		URLInOptions:   true,
	}
}

var envNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks c and canonicalizes CLIType.
func (c *Config) Validate() error {
	cli, err := model.ParseCLIType(string(c.CLIType))
	if err != nil {
		return err
	}
	c.CLIType = cli
	if c.EnvHostName != "" && !envNamePattern.MatchString(c.EnvHostName) {
		return &oaserrors.ConfigError{Option: "envHostName", Value: c.EnvHostName, Message: "must be a valid identifier"}
	}
	if c.EnvProtocolName != "" && !envNamePattern.MatchString(c.EnvProtocolName) {
		return &oaserrors.ConfigError{Option: "envProtocolName", Value: c.EnvProtocolName, Message: "must be a valid identifier"}
	}
	if c.OutputFolder == "" {
		c.OutputFolder = DefaultOutputFolder
	}
	return nil
}

// hostEnvName returns the configured host variable or the CLI default.
func (c *Config) hostEnvName() string {
	if c.EnvHostName != "" {
		return c.EnvHostName
	}
	if c.CLIType == model.CLITypeVite {
		return "VITE_APP_HOST"
	}
	return "VUE_APP_HOST"
}

// envExpr returns the expression reading name in generated code.
func (c *Config) envExpr(name string) string {
	if c.CLIType == model.CLITypeVite {
		return "import.meta.env." + name
	}
	return "process.env." + name
}

func (c *Config) protocol() string {
	if c.HTTPS {
		return "https"
	}
	return "http"
}

func (c *Config) extension() string {
	if c.TypeScript {
		return ".ts"
	}
	return ".js"
}
