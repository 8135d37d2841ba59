package typegen

import (
	"github.com/FreezeNow/swagger-to-axios/document"
	"github.com/FreezeNow/swagger-to-axios/internal/httputil"
)

// SuccessSchema returns the JSON schema of an operation's 200 response.
// The first JSON media type that declares a schema wins.
func SuccessSchema(op *document.Value) (*document.Value, bool) {
	responses, ok := op.MapField("responses")
	if !ok {
		return nil, false
	}
	for _, r := range responses.Entries() {
		if !httputil.IsSuccessCode(r.Key) {
			continue
		}
		content, ok := r.Value.MapField("content")
		if !ok {
			return nil, false
		}
		for _, e := range content.Entries() {
			if !httputil.IsJSONMediaType(e.Key) {
				continue
			}
			if schema, ok := e.Value.Get("schema"); ok {
				return schema, true
			}
		}
		return nil, false
	}
	return nil, false
}

// TranslateResponse returns the type of an operation's 200 JSON response.
// It reports false when the operation has no such response.
func TranslateResponse(op *document.Value) (string, bool) {
	schema, ok := SuccessSchema(op)
	if !ok {
		return "", false
	}
	return Translate(schema), true
}
