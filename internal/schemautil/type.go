// Package schemautil reads type information from schema objects.
//
// OpenAPI 3.0 and earlier write a schema type as a string with a separate
// nullable flag; OpenAPI 3.1 writes a list of types that may include "null".
// These helpers accept both.
package schemautil

import "github.com/FreezeNow/swagger-to-axios/document"

// SchemaTypes returns the type(s) declared by a schema.
//
// Examples:
//   - {"type": "string"} returns ["string"]
//   - {"type": ["string", "null"]} returns ["string", "null"]
func SchemaTypes(schema *document.Value) []string {
	t, ok := schema.Get("type")
	if !ok {
		return nil
	}
	if s, ok := t.Str(); ok {
		if s == "" {
			return nil
		}
		return []string{s}
	}
	items, ok := t.Items()
	if !ok {
		return nil
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.Str(); ok && s != "" {
			result = append(result, s)
		}
	}
	return result
}

// NonNullTypes returns SchemaTypes without "null".
func NonNullTypes(schema *document.Value) []string {
	types := SchemaTypes(schema)
	out := types[:0:0]
	for _, t := range types {
		if t != "null" {
			out = append(out, t)
		}
	}
	return out
}

// PrimaryType returns the first non-null type from a schema.
// Returns an empty string if the schema has no types.
func PrimaryType(schema *document.Value) string {
	types := SchemaTypes(schema)
	for _, t := range types {
		if t != "null" {
			return t
		}
	}
	if len(types) > 0 {
		return types[0]
	}
	return ""
}

// IsNullable reports whether the schema allows null, either through
// "nullable: true" or a "null" entry in its type list.
func IsNullable(schema *document.Value) bool {
	if b, _ := schema.BoolField("nullable"); b {
		return true
	}
	return HasType(schema, "null")
}

// HasType checks if the schema includes the specified type.
func HasType(schema *document.Value, targetType string) bool {
	for _, t := range SchemaTypes(schema) {
		if t == targetType {
			return true
		}
	}
	return false
}

// HasProperties reports whether the schema carries a properties mapping.
func HasProperties(schema *document.Value) bool {
	_, ok := schema.MapField("properties")
	return ok
}
