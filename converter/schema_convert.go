package converter

import (
	"github.com/FreezeNow/swagger-to-axios/document"
)

// schemaChildren are the keywords whose value is a single subschema.
var schemaChildren = []string{"items", "additionalProperties", "not"}

// schemaLists are the keywords whose value is a list of subschemas.
var schemaLists = []string{"allOf", "anyOf", "oneOf"}

// convertSchema rewrites 2.0-only schema keywords to their 3.0 form.
// Nodes are changed in place; each node is visited once, so shared and
// self-referencing schemas are safe.
func (c *converter) convertSchema(schema *document.Value) *document.Value {
	c.adjustSchema(schema)
	return schema
}

func (c *converter) adjustSchema(s *document.Value) {
	if !s.IsMapping() || c.schemas[s] {
		return
	}
	c.schemas[s] = true

	if v, ok := s.Get("x-nullable"); ok {
		s.Delete("x-nullable")
		if !s.Has("nullable") {
			s.Set("nullable", v)
		}
	}
	if typ, _ := s.StrField("type"); typ == "file" {
		s.Set("type", document.String("string"))
		s.Set("format", document.String("binary"))
	}
	if name, ok := s.StrField("discriminator"); ok {
		d := document.Mapping()
		d.Set("propertyName", document.String(name))
		s.Set("discriminator", d)
	}

	if props, ok := s.MapField("properties"); ok {
		for _, e := range props.Entries() {
			c.adjustSchema(e.Value)
		}
	}
	for _, key := range schemaChildren {
		if child, ok := s.Get(key); ok {
			c.adjustSchema(child)
		}
	}
	for _, key := range schemaLists {
		items, _ := s.SeqField(key)
		for _, item := range items {
			c.adjustSchema(item)
		}
	}
	// 2.0 tuple items are not valid but appear in the wild
	if items, ok := s.SeqField("items"); ok {
		for _, item := range items {
			c.adjustSchema(item)
		}
	}
}
