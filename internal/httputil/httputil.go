// Package httputil provides HTTP method and media type helpers shared by the
// converter and the model builder.
package httputil

import (
	"mime"
	"strings"
)

// HTTP Method Constants
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace" // OAS 3.0+ only
)

// Common media types
const (
	MediaTypeJSON           = "application/json"
	MediaTypeFormURLEncoded = "application/x-www-form-urlencoded"
	MediaTypeMultipart      = "multipart/form-data"
)

// Methods lists the path item keys that declare operations, in OpenAPI order.
var Methods = []string{
	MethodGet, MethodPut, MethodPost, MethodDelete,
	MethodOptions, MethodHead, MethodPatch, MethodTrace,
}

// IsMethod reports whether key names an operation in a path item.
// Matching is case-insensitive since some generators emit "GET".
func IsMethod(key string) bool {
	lower := strings.ToLower(key)
	for _, m := range Methods {
		if m == lower {
			return true
		}
	}
	return false
}

// IsSuccessCode reports whether a response key is the plain 200 response.
func IsSuccessCode(code string) bool {
	return code == "200"
}

// IsJSONMediaType reports whether mediaType carries JSON: application/json,
// any +json suffix (application/problem+json), or a wildcard.
func IsJSONMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}
	base, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		base = strings.ToLower(strings.TrimSpace(mediaType))
	}
	return base == MediaTypeJSON || strings.HasSuffix(base, "+json") || strings.HasSuffix(base, "/json")
}
