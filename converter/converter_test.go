package converter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FreezeNow/swagger-to-axios/document"
	"github.com/FreezeNow/swagger-to-axios/oaserrors"
)

func decode(t *testing.T, src string) *document.Value {
	t.Helper()
	v, err := document.Decode([]byte(src), document.FormatYAML)
	require.NoError(t, err)
	return v
}

func lookup(t *testing.T, root *document.Value, pointer string) *document.Value {
	t.Helper()
	v, err := document.Lookup(root, pointer)
	require.NoError(t, err, pointer)
	return v
}

func str(t *testing.T, root *document.Value, pointer string) string {
	t.Helper()
	s, ok := lookup(t, root, pointer).Scalar()
	require.True(t, ok, pointer)
	return s
}

func convert(t *testing.T, src string) *Result {
	t.Helper()
	res, err := ToOAS3(decode(t, src))
	require.NoError(t, err)
	return res
}

func TestDetectVersion(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    string
		wantErr bool
	}{
		{name: "swagger string", src: `swagger: "2.0"`, want: "2.0"},
		{name: "swagger number", src: `swagger: 2.0`, want: "2.0"},
		{name: "openapi", src: `openapi: 3.0.1`, want: "3.0.1"},
		{name: "missing", src: `info: {}`, wantErr: true},
		{name: "mapping version", src: `openapi: {a: 1}`, wantErr: true},
		{name: "sequence root", src: `[1, 2]`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectVersion(decode(t, tt.src))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, oaserrors.ErrUnsupportedVersion))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToOAS3PassesThroughOAS3(t *testing.T) {
	root := decode(t, `
openapi: 3.0.0
paths: {}
`)
	res, err := ToOAS3(root)
	require.NoError(t, err)
	assert.Same(t, root, res.Document)
	assert.False(t, res.Upgraded)
	assert.Equal(t, "3.0.0", res.TargetVersion)
}

func TestToOAS3RejectsUnknownVersion(t *testing.T) {
	_, err := ToOAS3(decode(t, `swagger: "1.2"`))
	require.Error(t, err)
	assert.Equal(t, oaserrors.KindUnsupportedDocumentVersion, oaserrors.KindOf(err))

	var convErr *oaserrors.ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "1.2", convErr.SourceVersion)
}

func TestConvertServers(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "no host",
			src:  `swagger: "2.0"`,
			want: []string{"/"},
		},
		{
			name: "no host keeps basePath",
			src:  "swagger: \"2.0\"\nbasePath: /v1",
			want: []string{"/v1"},
		},
		{
			name: "default scheme",
			src:  "swagger: \"2.0\"\nhost: api.example.com\nbasePath: /v1",
			want: []string{"https://api.example.com/v1"},
		},
		{
			name: "one server per scheme",
			src:  "swagger: \"2.0\"\nhost: 127.0.0.1:8848\nschemes: [http, https]",
			want: []string{"http://127.0.0.1:8848/", "https://127.0.0.1:8848/"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := convert(t, tt.src)
			servers, ok := res.Document.SeqField("servers")
			require.True(t, ok)
			var urls []string
			for _, s := range servers {
				u, _ := s.StrField("url")
				urls = append(urls, u)
			}
			assert.Equal(t, tt.want, urls)
		})
	}
}

func TestConvertDocumentKeyOrder(t *testing.T) {
	res := convert(t, `
swagger: "2.0"
x-top: 1
info: {title: t, version: "1"}
tags: [{name: user}]
paths: {}
definitions:
  User: {type: object}
`)
	assert.Equal(t, []string{"openapi", "info", "servers", "tags", "paths", "components", "x-top"}, res.Document.Keys())
	assert.Equal(t, TargetVersion, str(t, res.Document, "/openapi"))
	assert.True(t, res.Upgraded)
}

func TestConvertBodyParameter(t *testing.T) {
	res := convert(t, `
swagger: "2.0"
consumes: [application/json, application/xml]
paths:
  /users:
    post:
      operationId: addUser
      parameters:
        - in: body
          name: body
          description: the user
          required: true
          schema:
            type: object
            properties:
              name: {type: string}
      responses:
        "200":
          description: ok
`)
	rb := lookup(t, res.Document, "/paths/~1users/post/requestBody")
	assert.Equal(t, "the user", str(t, rb, "/description"))
	assert.Equal(t, "true", str(t, rb, "/required"))
	content, ok := rb.MapField("content")
	require.True(t, ok)
	assert.Equal(t, []string{"application/json", "application/xml"}, content.Keys())
	assert.Same(t,
		lookup(t, content, "/application~1json/schema"),
		lookup(t, content, "/application~1xml/schema"))

	op := lookup(t, res.Document, "/paths/~1users/post")
	assert.False(t, op.Has("parameters"))
}

func TestConvertFormData(t *testing.T) {
	tests := []struct {
		name      string
		params    string
		consumes  string
		wantMedia string
	}{
		{
			name:      "urlencoded by default",
			params:    "- {in: formData, name: q, type: string, required: true}",
			wantMedia: "application/x-www-form-urlencoded",
		},
		{
			name:      "file forces multipart",
			params:    "- {in: formData, name: f, type: file, required: true}",
			wantMedia: "multipart/form-data",
		},
		{
			name:      "consumes multipart",
			params:    "- {in: formData, name: q, type: string, required: true}",
			consumes:  "consumes: [multipart/form-data]",
			wantMedia: "multipart/form-data",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := convert(t, `
swagger: "2.0"
paths:
  /upload:
    post:
      `+tt.consumes+`
      parameters:
        `+tt.params+`
      responses:
        "200": {description: ok}
`)
			content := lookup(t, res.Document, "/paths/~1upload/post/requestBody/content")
			require.Equal(t, []string{tt.wantMedia}, content.Keys())
			schema := lookup(t, content, "/"+document.EscapeToken(tt.wantMedia)+"/schema")
			assert.Equal(t, "object", str(t, schema, "/type"))
			required, _ := schema.StringsField("required")
			assert.Len(t, required, 1)
		})
	}
}

func TestConvertFormDataFileSchema(t *testing.T) {
	res := convert(t, `
swagger: "2.0"
paths:
  /upload:
    post:
      parameters:
        - {in: formData, name: file, type: file}
      responses:
        "200": {description: ok}
`)
	prop := lookup(t, res.Document, "/paths/~1upload/post/requestBody/content/multipart~1form-data/schema/properties/file")
	assert.Equal(t, "string", str(t, prop, "/type"))
	assert.Equal(t, "binary", str(t, prop, "/format"))
}

func TestConvertParameters(t *testing.T) {
	res := convert(t, `
swagger: "2.0"
paths:
  /users/{id}:
    parameters:
      - {in: path, name: id, type: integer, format: int64}
    get:
      parameters:
        - {in: query, name: tags, type: array, items: {type: string}, collectionFormat: multi}
        - {in: query, name: ids, type: array, items: {type: integer}}
        - {in: header, name: X-Mode, type: string, enum: [a, b], x-example: a}
        - {in: query, name: odd, type: array, items: {type: string}, collectionFormat: tsv}
      responses:
        "200": {description: ok}
`)
	doc := res.Document

	pathParam := lookup(t, doc, "/paths/~1users~1{id}/parameters/0")
	assert.Equal(t, "true", str(t, pathParam, "/required"))
	assert.Equal(t, "integer", str(t, pathParam, "/schema/type"))
	assert.Equal(t, "int64", str(t, pathParam, "/schema/format"))

	ops := "/paths/~1users~1{id}/get/parameters"
	assert.Equal(t, "form", str(t, doc, ops+"/0/style"))
	assert.Equal(t, "true", str(t, doc, ops+"/0/explode"))
	assert.Equal(t, "string", str(t, doc, ops+"/0/schema/items/type"))
	assert.Equal(t, "false", str(t, doc, ops+"/1/explode"))
	assert.Equal(t, "a", str(t, doc, ops+"/2/example"))
	assert.Equal(t, 2, lookup(t, doc, ops+"/2/schema/enum").Len())

	assert.Equal(t, 1, res.WarningCount)
	assert.Contains(t, res.Issues[len(res.Issues)-1].Message, "tsv")
}

func TestConvertPathLevelBodyPushedDown(t *testing.T) {
	res := convert(t, `
swagger: "2.0"
paths:
  /items:
    parameters:
      - in: body
        name: payload
        schema: {type: string}
    put:
      responses:
        "204": {description: done}
    post:
      parameters:
        - in: body
          name: payload
          schema: {type: integer}
      responses:
        "201": {description: created}
`)
	doc := res.Document
	assert.False(t, lookup(t, doc, "/paths/~1items").Has("parameters"))
	assert.Equal(t, "string", str(t, doc, "/paths/~1items/put/requestBody/content/application~1json/schema/type"))
	assert.Equal(t, "integer", str(t, doc, "/paths/~1items/post/requestBody/content/application~1json/schema/type"))
}

func TestConvertResponses(t *testing.T) {
	res := convert(t, `
swagger: "2.0"
produces: [application/json]
paths:
  /users:
    get:
      responses:
        "200":
          schema: {type: array, items: {type: string}}
          headers:
            X-Rate: {type: integer}
          examples:
            application/json: [a, b]
        "404":
          description: missing
    delete: {}
`)
	doc := res.Document
	ok200 := lookup(t, doc, "/paths/~1users/get/responses/200")
	assert.Equal(t, "", str(t, ok200, "/description"))
	assert.Equal(t, "array", str(t, ok200, "/content/application~1json/schema/type"))
	assert.Equal(t, 2, lookup(t, ok200, "/content/application~1json/example").Len())
	assert.Equal(t, "integer", str(t, ok200, "/headers/X-Rate/schema/type"))

	notFound := lookup(t, doc, "/paths/~1users/get/responses/404")
	assert.False(t, notFound.Has("content"))

	assert.True(t, lookup(t, doc, "/paths/~1users/delete/responses").Has("default"))
}

func TestConvertOperationKeyOrder(t *testing.T) {
	res := convert(t, `
swagger: "2.0"
paths:
  /a:
    get:
      x-ext: 1
      responses: {"200": {description: ok}}
      operationId: getA
      summary: s
      tags: [t]
`)
	op := lookup(t, res.Document, "/paths/~1a/get")
	assert.Equal(t, []string{"tags", "summary", "operationId", "responses", "x-ext"}, op.Keys())
}

func TestConvertStructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		path string
	}{
		{name: "paths sequence", src: "swagger: \"2.0\"\npaths: [1]", path: "paths"},
		{name: "path item scalar", src: "swagger: \"2.0\"\npaths: {/a: 1}", path: "paths./a"},
		{name: "operation scalar", src: "swagger: \"2.0\"\npaths: {/a: {get: 1}}", path: "paths./a.get"},
		{name: "definitions scalar", src: "swagger: \"2.0\"\ndefinitions: 1", path: "definitions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToOAS3(decode(t, tt.src))
			require.Error(t, err)
			var convErr *oaserrors.ConversionError
			require.True(t, errors.As(err, &convErr))
			assert.Equal(t, tt.path, convErr.Path)
			assert.Equal(t, "2.0", convErr.SourceVersion)
		})
	}
}

func TestConvertComponents(t *testing.T) {
	res := convert(t, `
swagger: "2.0"
definitions:
  Pet:
    type: object
    discriminator: kind
    properties:
      kind: {type: string}
      photo: {type: file}
      tag: {type: string, x-nullable: true}
parameters:
  limit: {in: query, name: limit, type: integer}
  petBody: {in: body, name: pet, schema: {$ref: '#/definitions/Pet'}}
responses:
  NotFound: {description: gone}
`)
	doc := res.Document
	pet := lookup(t, doc, "/components/schemas/Pet")
	assert.Equal(t, "kind", str(t, pet, "/discriminator/propertyName"))
	assert.Equal(t, "binary", str(t, pet, "/properties/photo/format"))
	assert.Equal(t, "true", str(t, pet, "/properties/tag/nullable"))
	assert.False(t, lookup(t, pet, "/properties/tag").Has("x-nullable"))

	assert.Equal(t, "integer", str(t, doc, "/components/parameters/limit/schema/type"))
	assert.Equal(t, "#/components/schemas/Pet",
		str(t, doc, "/components/requestBodies/petBody/content/application~1json/schema/$ref"))
	assert.Equal(t, "gone", str(t, doc, "/components/responses/NotFound/description"))
}

func TestConvertSchemaCycleTerminates(t *testing.T) {
	node := document.Mapping()
	node.Set("type", document.String("object"))
	props := document.Mapping()
	props.Set("self", node)
	node.Set("properties", props)
	node.Set("x-nullable", document.Bool(true))

	root := document.Mapping()
	root.Set("swagger", document.String("2.0"))
	defs := document.Mapping()
	defs.Set("Node", node)
	root.Set("definitions", defs)

	res, err := ToOAS3(root)
	require.NoError(t, err)
	got := lookup(t, res.Document, "/components/schemas/Node")
	assert.Same(t, node, got)
	assert.True(t, got.Has("nullable"))
}

func TestConvertSecurityDefinitions(t *testing.T) {
	res := convert(t, `
swagger: "2.0"
securityDefinitions:
  basicAuth: {type: basic}
  apiKey: {type: apiKey, name: X-API-Key, in: header}
  implicit:
    type: oauth2
    flow: implicit
    authorizationUrl: https://example.com/authorize
    scopes: {read: Read access}
  app:
    type: oauth2
    flow: application
    tokenUrl: https://example.com/token
  code:
    type: oauth2
    flow: accessCode
    authorizationUrl: https://example.com/authorize
    tokenUrl: https://example.com/token
  weird:
    type: oauth2
    flow: device
`)
	schemes := lookup(t, res.Document, "/components/securitySchemes")
	assert.Equal(t, "http", str(t, schemes, "/basicAuth/type"))
	assert.Equal(t, "basic", str(t, schemes, "/basicAuth/scheme"))
	assert.Equal(t, "header", str(t, schemes, "/apiKey/in"))
	assert.Equal(t, "https://example.com/authorize", str(t, schemes, "/implicit/flows/implicit/authorizationUrl"))
	assert.Equal(t, "Read access", str(t, schemes, "/implicit/flows/implicit/scopes/read"))
	assert.Equal(t, "https://example.com/token", str(t, schemes, "/app/flows/clientCredentials/tokenUrl"))
	assert.Equal(t, "https://example.com/token", str(t, schemes, "/code/flows/authorizationCode/tokenUrl"))
	assert.Equal(t, 0, lookup(t, schemes, "/weird/flows").Len())
	assert.True(t, res.HasWarnings())
}

func TestRewriteRef(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"#/definitions/User", "#/components/schemas/User"},
		{"#/parameters/limit", "#/components/parameters/limit"},
		{"#/responses/NotFound", "#/components/responses/NotFound"},
		{"#/components/schemas/User", "#/components/schemas/User"},
		{"other.yaml#/definitions/User", "other.yaml#/definitions/User"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, rewriteRef(tt.in))
		})
	}
}
