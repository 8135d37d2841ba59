package converter

import (
	"fmt"
	"strings"

	"github.com/FreezeNow/swagger-to-axios/document"
	"github.com/FreezeNow/swagger-to-axios/internal/httputil"
)

// convertOAS2 builds the OpenAPI 3.0 tree for c.src.
func (c *converter) convertOAS2() (*document.Value, error) {
	src := c.src
	dst := document.Mapping()
	dst.Set("openapi", document.String(TargetVersion))
	if info, ok := src.Get("info"); ok {
		dst.Set("info", info)
	}
	dst.Set("servers", c.convertServers())
	if tags, ok := src.Get("tags"); ok {
		dst.Set("tags", tags)
	}

	paths, err := c.convertPaths()
	if err != nil {
		return nil, err
	}
	dst.Set("paths", paths)

	components, err := c.convertComponents()
	if err != nil {
		return nil, err
	}
	if components.Len() > 0 {
		dst.Set("components", components)
	}

	if security, ok := src.Get("security"); ok {
		dst.Set("security", security)
	}
	if docs, ok := src.Get("externalDocs"); ok {
		dst.Set("externalDocs", docs)
	}
	copyExtensions(src, dst)

	c.rewriteRefs(dst)
	return dst, nil
}

func (c *converter) convertPaths() (*document.Value, error) {
	out := document.Mapping()
	paths, ok := c.src.Get("paths")
	if !ok || paths.IsNull() {
		return out, nil
	}
	if !paths.IsMapping() {
		return nil, c.structural("paths", "paths must be a mapping, got "+paths.Kind().String())
	}
	for _, e := range paths.Entries() {
		if strings.HasPrefix(e.Key, "x-") {
			out.Set(e.Key, e.Value)
			continue
		}
		if e.Value.IsNull() {
			continue
		}
		prefix := "paths." + e.Key
		if !e.Value.IsMapping() {
			return nil, c.structural(prefix, "path item must be a mapping, got "+e.Value.Kind().String())
		}
		item, err := c.convertPathItem(e.Value, prefix)
		if err != nil {
			return nil, err
		}
		out.Set(e.Key, item)
	}
	return out, nil
}

// convertPathItem converts one path item. Path-level body and formData
// parameters are pushed down into each operation, since 3.x path items
// cannot carry a request body.
func (c *converter) convertPathItem(src *document.Value, pathPrefix string) (*document.Value, error) {
	shared, err := c.parameterList(src, pathPrefix+".parameters")
	if err != nil {
		return nil, err
	}
	dst := document.Mapping()
	for _, e := range src.Entries() {
		switch {
		case e.Key == "parameters":
			if params := c.convertParameters(shared, pathPrefix+".parameters"); params.Len() > 0 {
				dst.Set("parameters", params)
			}
		case httputil.IsMethod(e.Key):
			opPath := pathPrefix + "." + e.Key
			if !e.Value.IsMapping() {
				return nil, c.structural(opPath, "operation must be a mapping, got "+e.Value.Kind().String())
			}
			op, err := c.convertOperation(e.Value, shared, opPath)
			if err != nil {
				return nil, err
			}
			dst.Set(e.Key, op)
		default:
			dst.Set(e.Key, e.Value)
		}
	}
	return dst, nil
}

// parameterList returns the parameter objects under owner.parameters.
func (c *converter) parameterList(owner *document.Value, path string) ([]*document.Value, error) {
	v, ok := owner.Get("parameters")
	if !ok || v.IsNull() {
		return nil, nil
	}
	items, ok := v.Items()
	if !ok {
		return nil, c.structural(path, "parameters must be a sequence, got "+v.Kind().String())
	}
	out := make([]*document.Value, 0, len(items))
	for i, p := range items {
		if !p.IsMapping() {
			c.addIssue(fmt.Sprintf("%s[%d]", path, i), "parameter is not an object, skipped", SeverityWarning)
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func paramIn(p *document.Value) string {
	in, _ := p.StrField("in")
	return in
}

func paramKey(p *document.Value) string {
	name, _ := p.StrField("name")
	return paramIn(p) + ":" + name
}

func (c *converter) convertOperation(src *document.Value, shared []*document.Value, opPath string) (*document.Value, error) {
	own, err := c.parameterList(src, opPath+".parameters")
	if err != nil {
		return nil, err
	}

	// Operation parameters override path-level ones with the same name and location.
	overridden := make(map[string]bool, len(own))
	for _, p := range own {
		overridden[paramKey(p)] = true
	}
	var body *document.Value
	var form []*document.Value
	var plain []*document.Value
	for _, p := range shared {
		if overridden[paramKey(p)] {
			continue
		}
		switch paramIn(p) {
		case "body":
			body = p
		case "formData":
			form = append(form, p)
		}
	}
	ownBodies := 0
	for _, p := range own {
		switch paramIn(p) {
		case "body":
			ownBodies++
			if ownBodies > 1 {
				c.addIssue(opPath+".parameters", "multiple body parameters, using the last one", SeverityWarning)
			}
			body = p
		case "formData":
			form = append(form, p)
		default:
			plain = append(plain, p)
		}
	}

	dst := document.Mapping()
	for _, key := range []string{"tags", "summary", "description", "externalDocs", "operationId"} {
		if v, ok := src.Get(key); ok {
			dst.Set(key, v)
		}
	}
	if params := c.convertParameters(plain, opPath+".parameters"); params.Len() > 0 {
		dst.Set("parameters", params)
	}

	consumes := c.mediaTypes(src, "consumes")
	switch {
	case body != nil:
		if len(form) > 0 {
			c.addIssue(opPath, "operation has both body and formData parameters, formData dropped", SeverityCritical)
		}
		dst.Set("requestBody", c.convertBodyParameter(body, consumes))
	case len(form) > 0:
		dst.Set("requestBody", c.convertFormData(form, consumes))
	}

	responses, err := c.convertResponses(src, c.mediaTypes(src, "produces"), opPath+".responses")
	if err != nil {
		return nil, err
	}
	dst.Set("responses", responses)

	for _, key := range []string{"deprecated", "security"} {
		if v, ok := src.Get(key); ok {
			dst.Set(key, v)
		}
	}
	if src.Has("schemes") {
		c.addIssue(opPath+".schemes", "operation-level schemes are not supported in OAS 3.x and were dropped", SeverityInfo)
	}
	copyExtensions(src, dst)
	return dst, nil
}

// mediaTypes returns op[key], falling back to the document-level list.
func (c *converter) mediaTypes(op *document.Value, key string) []string {
	if list, ok := op.StringsField(key); ok && len(list) > 0 {
		return list
	}
	list, _ := c.src.StringsField(key)
	return list
}

func (c *converter) convertParameters(params []*document.Value, path string) *document.Value {
	out := document.Sequence()
	for i, p := range params {
		switch paramIn(p) {
		case "body", "formData":
			continue
		}
		out.Append(c.convertParameter(p, fmt.Sprintf("%s[%d]", path, i)))
	}
	return out
}

// parameterSchemaKeys are the 2.0 parameter fields that move into the 3.x schema.
var parameterSchemaKeys = []string{
	"type", "format", "items", "enum", "default",
	"maximum", "exclusiveMaximum", "minimum", "exclusiveMinimum",
	"maxLength", "minLength", "pattern", "maxItems", "minItems", "uniqueItems", "multipleOf",
}

func (c *converter) convertParameter(src *document.Value, path string) *document.Value {
	in := paramIn(src)
	dst := document.Mapping()
	if name, ok := src.Get("name"); ok {
		dst.Set("name", name)
	}
	dst.Set("in", document.String(in))
	if desc, ok := src.Get("description"); ok {
		dst.Set("description", desc)
	}
	if in == "path" {
		dst.Set("required", document.Bool(true))
	} else if req, ok := src.Get("required"); ok {
		dst.Set("required", req)
	}
	if in == "query" {
		if v, ok := src.Get("allowEmptyValue"); ok {
			dst.Set("allowEmptyValue", v)
		}
	}

	if typ, _ := src.StrField("type"); typ == "array" {
		c.applyCollectionFormat(src, dst, in, path)
	}
	if schema, ok := src.Get("schema"); ok {
		dst.Set("schema", c.convertSchema(schema))
	} else {
		dst.Set("schema", c.parameterSchema(src))
	}
	if ex, ok := src.Get("x-example"); ok {
		dst.Set("example", ex)
	}
	copyExtensions(src, dst)
	return dst
}

// parameterSchema builds a schema from the inline type fields of a 2.0
// parameter, header or items object.
func (c *converter) parameterSchema(src *document.Value) *document.Value {
	schema := document.Mapping()
	for _, key := range parameterSchemaKeys {
		v, ok := src.Get(key)
		if !ok {
			continue
		}
		if key == "items" && v.IsMapping() {
			v = c.parameterSchema(v)
		}
		schema.Set(key, v)
	}
	if typ, _ := schema.StrField("type"); typ == "file" {
		schema.Set("type", document.String("string"))
		schema.Set("format", document.String("binary"))
	}
	return schema
}

func (c *converter) applyCollectionFormat(src, dst *document.Value, in, path string) {
	format, ok := src.StrField("collectionFormat")
	if !ok {
		format = "csv"
	}
	switch format {
	case "csv":
		if in == "query" || in == "cookie" {
			dst.Set("style", document.String("form"))
			dst.Set("explode", document.Bool(false))
		} else {
			dst.Set("style", document.String("simple"))
		}
	case "multi":
		dst.Set("style", document.String("form"))
		dst.Set("explode", document.Bool(true))
	case "ssv":
		dst.Set("style", document.String("spaceDelimited"))
	case "pipes":
		dst.Set("style", document.String("pipeDelimited"))
	default:
		c.addIssueWithContext(path, fmt.Sprintf("collectionFormat %q has no OAS 3.x equivalent", format),
			"The parameter keeps the default style", SeverityWarning)
	}
}

func (c *converter) convertBodyParameter(param *document.Value, consumes []string) *document.Value {
	rb := document.Mapping()
	if desc, ok := param.Get("description"); ok {
		rb.Set("description", desc)
	}
	if len(consumes) == 0 {
		consumes = []string{httputil.MediaTypeJSON}
	}
	schema, ok := param.Get("schema")
	if ok {
		schema = c.convertSchema(schema)
	}
	content := document.Mapping()
	for _, mt := range consumes {
		media := document.Mapping()
		if ok {
			media.Set("schema", schema)
		}
		content.Set(mt, media)
	}
	rb.Set("content", content)
	if req, ok := param.Get("required"); ok {
		rb.Set("required", req)
	}
	copyExtensions(param, rb)
	return rb
}

// convertFormData folds formData parameters into one object schema.
func (c *converter) convertFormData(params []*document.Value, consumes []string) *document.Value {
	props := document.Mapping()
	required := document.Sequence()
	hasFile := false
	for _, p := range params {
		name, _ := p.StrField("name")
		prop := c.parameterSchema(p)
		if typ, _ := p.StrField("type"); typ == "file" {
			hasFile = true
		}
		if desc, ok := p.Get("description"); ok {
			prop.Set("description", desc)
		}
		props.Set(name, prop)
		if req, _ := p.BoolField("required"); req {
			required.Append(document.String(name))
		}
	}
	schema := document.Mapping()
	schema.Set("type", document.String("object"))
	schema.Set("properties", props)
	if required.Len() > 0 {
		schema.Set("required", required)
	}

	var types []string
	for _, mt := range consumes {
		if mt == httputil.MediaTypeFormURLEncoded || mt == httputil.MediaTypeMultipart {
			types = append(types, mt)
		}
	}
	if len(types) == 0 {
		if hasFile {
			types = []string{httputil.MediaTypeMultipart}
		} else {
			types = []string{httputil.MediaTypeFormURLEncoded}
		}
	}

	content := document.Mapping()
	for _, mt := range types {
		media := document.Mapping()
		media.Set("schema", schema)
		content.Set(mt, media)
	}
	rb := document.Mapping()
	rb.Set("content", content)
	if required.Len() > 0 {
		rb.Set("required", document.Bool(true))
	}
	return rb
}

func (c *converter) convertResponses(op *document.Value, produces []string, path string) (*document.Value, error) {
	out := document.Mapping()
	src, ok := op.Get("responses")
	if !ok || src.IsNull() {
		out.Set("default", placeholderResponse())
		c.addIssue(path, "operation has no responses, added an empty default response", SeverityInfo)
		return out, nil
	}
	if !src.IsMapping() {
		return nil, c.structural(path, "responses must be a mapping, got "+src.Kind().String())
	}
	for _, e := range src.Entries() {
		if strings.HasPrefix(e.Key, "x-") {
			out.Set(e.Key, e.Value)
			continue
		}
		if !e.Value.IsMapping() {
			c.addIssue(path+"."+e.Key, "response is not an object, skipped", SeverityWarning)
			continue
		}
		out.Set(e.Key, c.convertResponse(e.Value, produces))
	}
	return out, nil
}

func placeholderResponse() *document.Value {
	r := document.Mapping()
	r.Set("description", document.String(""))
	return r
}

func (c *converter) convertResponse(src *document.Value, produces []string) *document.Value {
	dst := document.Mapping()
	if desc, ok := src.Get("description"); ok {
		dst.Set("description", desc)
	} else {
		dst.Set("description", document.String(""))
	}
	if headers, ok := src.MapField("headers"); ok {
		out := document.Mapping()
		for _, h := range headers.Entries() {
			header := document.Mapping()
			if desc, ok := h.Value.Get("description"); ok {
				header.Set("description", desc)
			}
			header.Set("schema", c.parameterSchema(h.Value))
			out.Set(h.Key, header)
		}
		dst.Set("headers", out)
	}

	schema, hasSchema := src.Get("schema")
	examples, _ := src.MapField("examples")
	if hasSchema || examples.Len() > 0 {
		if len(produces) == 0 {
			produces = []string{httputil.MediaTypeJSON}
		}
		if hasSchema {
			schema = c.convertSchema(schema)
		}
		content := document.Mapping()
		for _, mt := range produces {
			media := document.Mapping()
			if hasSchema {
				media.Set("schema", schema)
			}
			if ex, ok := examples.Get(mt); ok {
				media.Set("example", ex)
			}
			content.Set(mt, media)
		}
		for _, e := range examples.Entries() {
			if !content.Has(e.Key) {
				media := document.Mapping()
				media.Set("example", e.Value)
				content.Set(e.Key, media)
			}
		}
		dst.Set("content", content)
	}
	copyExtensions(src, dst)
	return dst
}

func (c *converter) convertComponents() (*document.Value, error) {
	components := document.Mapping()

	if defs, ok := c.src.Get("definitions"); ok && !defs.IsNull() {
		if !defs.IsMapping() {
			return nil, c.structural("definitions", "definitions must be a mapping, got "+defs.Kind().String())
		}
		schemas := document.Mapping()
		for _, e := range defs.Entries() {
			schemas.Set(e.Key, c.convertSchema(e.Value))
		}
		components.Set("schemas", schemas)
	}

	if params, ok := c.src.MapField("parameters"); ok {
		out := document.Mapping()
		bodies := document.Mapping()
		consumes, _ := c.src.StringsField("consumes")
		for _, e := range params.Entries() {
			path := "parameters." + e.Key
			if !e.Value.IsMapping() {
				c.addIssue(path, "parameter is not an object, skipped", SeverityWarning)
				continue
			}
			switch paramIn(e.Value) {
			case "body":
				bodies.Set(e.Key, c.convertBodyParameter(e.Value, consumes))
			case "formData":
				c.addIssueWithContext(path, "formData parameter cannot be a reusable component",
					"It is still converted wherever an operation uses it", SeverityInfo)
			default:
				out.Set(e.Key, c.convertParameter(e.Value, path))
			}
		}
		if out.Len() > 0 {
			components.Set("parameters", out)
		}
		if bodies.Len() > 0 {
			components.Set("requestBodies", bodies)
		}
	}

	if responses, ok := c.src.MapField("responses"); ok {
		produces, _ := c.src.StringsField("produces")
		out := document.Mapping()
		for _, e := range responses.Entries() {
			if e.Value.IsMapping() {
				out.Set(e.Key, c.convertResponse(e.Value, produces))
			}
		}
		components.Set("responses", out)
	}

	if defs, ok := c.src.MapField("securityDefinitions"); ok {
		components.Set("securitySchemes", c.convertSecurityDefinitions(defs))
	}
	return components, nil
}

// convertSecurityDefinitions converts 2.0 securityDefinitions to 3.x securitySchemes.
func (c *converter) convertSecurityDefinitions(defs *document.Value) *document.Value {
	out := document.Mapping()
	for _, e := range defs.Entries() {
		path := "securityDefinitions." + e.Key
		def := e.Value
		typ, _ := def.StrField("type")
		scheme := document.Mapping()
		switch typ {
		case "basic":
			scheme.Set("type", document.String("http"))
			scheme.Set("scheme", document.String("basic"))
		case "oauth2":
			scheme.Set("type", document.String("oauth2"))
			scheme.Set("flows", c.convertOAuthFlows(def, path))
		default:
			scheme.Set("type", document.String(typ))
		}
		for _, key := range []string{"description", "name", "in"} {
			if v, ok := def.Get(key); ok {
				scheme.Set(key, v)
			}
		}
		copyExtensions(def, scheme)
		out.Set(e.Key, scheme)
	}
	return out
}

func (c *converter) convertOAuthFlows(def *document.Value, path string) *document.Value {
	flows := document.Mapping()
	flow := document.Mapping()
	authURL, hasAuth := def.Get("authorizationUrl")
	tokenURL, hasToken := def.Get("tokenUrl")
	scopes, ok := def.Get("scopes")
	if !ok {
		scopes = document.Mapping()
	}

	name, _ := def.StrField("flow")
	switch name {
	case "implicit":
		if hasAuth {
			flow.Set("authorizationUrl", authURL)
		}
	case "password", "application":
		if hasToken {
			flow.Set("tokenUrl", tokenURL)
		}
	case "accessCode":
		if hasAuth {
			flow.Set("authorizationUrl", authURL)
		}
		if hasToken {
			flow.Set("tokenUrl", tokenURL)
		}
	default:
		c.addIssueWithContext(path, fmt.Sprintf("Unknown OAuth2 flow type: %s", name),
			"This may not convert correctly to OAS 3.x", SeverityWarning)
		return flows
	}
	flow.Set("scopes", scopes)

	switch name {
	case "application":
		name = "clientCredentials"
	case "accessCode":
		name = "authorizationCode"
	}
	flows.Set(name, flow)
	return flows
}

// copyExtensions copies x-* keys from src to dst.
func copyExtensions(src, dst *document.Value) {
	for _, e := range src.Entries() {
		if strings.HasPrefix(e.Key, "x-") && !dst.Has(e.Key) {
			dst.Set(e.Key, e.Value)
		}
	}
}
