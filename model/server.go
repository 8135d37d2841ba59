package model

import (
	"net/url"
	"strings"

	"github.com/FreezeNow/swagger-to-axios/document"
	"github.com/FreezeNow/swagger-to-axios/internal/pathutil"
)

// ServerVariables returns the default value of every variable declared by a
// server object.
func ServerVariables(server *document.Value) map[string]string {
	vars, ok := server.MapField("variables")
	if !ok {
		return nil
	}
	out := make(map[string]string, vars.Len())
	for _, e := range vars.Entries() {
		if def, ok := e.Value.Get("default"); ok {
			if s, ok := def.Scalar(); ok {
				out[e.Key] = s
			}
		}
	}
	return out
}

// ParseServerURL splits a server URL into its path prefix and host[:port].
//
// Variables written as {name} are replaced by their default from vars when
// known. A trailing "/" is trimmed from the path, so "/" alone yields "".
// Relative URLs ("/api") have no host. A URL with neither scheme nor leading
// "/" ("example.com/api") is read as host followed by path.
func ParseServerURL(raw string, vars map[string]string) (basePath, host string) {
	s := pathutil.ExpandTemplate(strings.TrimSpace(raw), vars)
	if s == "" {
		return "", ""
	}
	if !strings.Contains(s, "://") && !strings.HasPrefix(s, "/") {
		s = "//" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		basePath, host = splitServerURL(s)
	} else {
		basePath, host = u.Path, u.Host
	}
	return strings.TrimRight(basePath, "/"), host
}

// splitServerURL is the fallback for URLs net/url rejects, such as hosts
// that still contain an unknown {variable}.
func splitServerURL(s string) (path, host string) {
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	} else {
		s = strings.TrimPrefix(s, "//")
	}
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if strings.HasPrefix(s, "/") {
		return s, ""
	}
	if i := strings.Index(s, "/"); i >= 0 {
		return s[i:], s[:i]
	}
	return "", s
}
