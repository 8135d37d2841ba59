package generator

import (
	"strings"

	"github.com/FreezeNow/swagger-to-axios/internal/naming"
	"github.com/FreezeNow/swagger-to-axios/model"
)

// loopbackHost marks hosts that are emitted literally instead of read from
// the environment.
const loopbackHost = "127.0.0.1"

// fileData is the data passed to the api file template.
type fileData struct {
	Comment        string
	BaseURL        string
	Host           string
	HostEnv        string
	Protocol       string
	ImportPath     string
	IncludeBaseURL bool
	URLInOptions   bool
	TypeScript     bool
	Functions      []funcData

	// ProtocolEnv is empty when the protocol is fixed.
	ProtocolEnv string
}

// funcData describes one exported request function.
type funcData struct {
	Name        string
	Summary     string
	Description string
	Method      string
	// Arg is "params" for GET and "data" for everything else.
	Arg  string
	Link string
	// ResponseType is the TypeScript return element type; empty means any.
	ResponseType string
}

// Caller returns the request function expression.
func (d fileData) Caller() string {
	switch {
	case d.ImportPath != "":
		return "request"
	case d.TypeScript:
		return "(window as any).axios"
	default:
		return "window.axios"
	}
}

// HostLiteral reports whether the host is written as-is.
func (d fileData) HostLiteral() bool {
	return strings.Contains(d.Host, loopbackHost)
}

func newFileData(folder *model.Folder, tag *model.Tag, cfg *Config) fileData {
	d := fileData{
		Comment:        tag.Comment,
		BaseURL:        folder.BasePath,
		Host:           folder.Host,
		HostEnv:        cfg.envExpr(cfg.hostEnvName()),
		Protocol:       cfg.protocol(),
		ImportPath:     cfg.ImportAxiosPath,
		IncludeBaseURL: cfg.IncludeBaseURL,
		URLInOptions:   cfg.URLInOptions,
		TypeScript:     cfg.TypeScript,
		Functions:      make([]funcData, 0, len(tag.Operations)),
	}
	if cfg.EnvProtocolName != "" {
		d.ProtocolEnv = cfg.envExpr(cfg.EnvProtocolName)
	}

	names := naming.NameSet{}
	for _, op := range tag.Operations {
		f := funcData{
			Name:        names.Claim(naming.FunctionName(op.Method, op.URL)),
			Summary:     op.Summary,
			Description: op.Description,
			Method:      strings.ToLower(op.Method),
			Arg:         naming.ArgName(op.Method),
			Link:        naming.URLToLinkParams(op.URL, op.Method),
		}
		if op.ResponseType != nil {
			f.ResponseType = *op.ResponseType
		}
		d.Functions = append(d.Functions, f)
	}
	return d
}
