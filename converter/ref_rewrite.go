package converter

import (
	"strings"

	"github.com/FreezeNow/swagger-to-axios/document"
)

// refPrefixes maps 2.0 local reference prefixes to their 3.0 locations.
var refPrefixes = []struct{ from, to string }{
	{"#/definitions/", "#/components/schemas/"},
	{"#/parameters/", "#/components/parameters/"},
	{"#/responses/", "#/components/responses/"},
	{"#/securityDefinitions/", "#/components/securitySchemes/"},
}

// rewriteRef rewrites a 2.0 $ref to its 3.0 form.
// Only local references (starting with #/) are changed.
func rewriteRef(ref string) string {
	if !strings.HasPrefix(ref, "#/") {
		return ref
	}
	for _, p := range refPrefixes {
		if strings.HasPrefix(ref, p.from) {
			return p.to + strings.TrimPrefix(ref, p.from)
		}
	}
	return ref
}

// rewriteRefs updates every $ref left in the converted tree. Resolved
// documents normally have none; this keeps unresolved input usable.
func (c *converter) rewriteRefs(root *document.Value) {
	seen := make(map[*document.Value]bool)
	var walk func(v *document.Value)
	walk = func(v *document.Value) {
		if v == nil || seen[v] {
			return
		}
		seen[v] = true
		switch v.Kind() {
		case document.KindMapping:
			for _, e := range v.Entries() {
				if ref, ok := e.Value.Str(); ok && e.Key == "$ref" {
					if rewritten := rewriteRef(ref); rewritten != ref {
						v.Set("$ref", document.String(rewritten))
					}
					continue
				}
				walk(e.Value)
			}
		case document.KindSequence:
			items, _ := v.Items()
			for _, item := range items {
				walk(item)
			}
		}
	}
	walk(root)
}
