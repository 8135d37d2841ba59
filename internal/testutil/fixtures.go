// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"go.yaml.in/yaml/v4"
)

// UserServiceOAS2 is a Swagger 2.0 document with one declared tag and three
// operations, all tagged user, on a loopback host.
const UserServiceOAS2 = `swagger: "2.0"
info:
  title: user service
  version: "1.0"
host: "127.0.0.1:8848"
tags:
  - name: user
    description: 用户
paths:
  /user/login:
    post:
      tags: [user]
      summary: 登录
      operationId: login
      parameters:
        - in: body
          name: body
          schema:
            $ref: '#/definitions/Credentials'
      responses:
        "200":
          description: ok
          schema:
            $ref: '#/definitions/Session'
  /user/logout:
    delete:
      tags: [user]
      summary: 登出
      responses:
        "200":
          description: ok
  /user/password:
    put:
      tags: [user]
      summary: 修改密码
      parameters:
        - in: formData
          name: password
          type: string
          required: true
      responses:
        "204":
          description: changed
definitions:
  Credentials:
    type: object
    required: [name, password]
    properties:
      name: {type: string}
      password: {type: string, format: password}
  Session:
    allOf:
      - $ref: '#/definitions/Credentials'
      - type: object
        properties:
          token: {type: string}
          expires: {type: string, format: date-time}
`

// PetStoreOAS3 is an OpenAPI 3.0 document with a server variable, an
// undeclared tag and an untagged operation.
const PetStoreOAS3 = `openapi: 3.0.3
info:
  title: pet store
  version: "1.0"
servers:
  - url: "{scheme}://petstore.example.com:8080/api/v1/"
    variables:
      scheme:
        default: https
tags:
  - name: pet
    description: Everything about pets
  - name: store
paths:
  /pet/{petId}:
    get:
      tags: [pet]
      summary: Find pet by ID
      operationId: getPetById
      parameters:
        - {in: path, name: petId, required: true, schema: {type: integer, format: int64}}
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Pet'
    delete:
      tags: [pet]
      summary: Deletes a pet
      responses:
        "400":
          description: invalid
  /pet:
    post:
      tags: [pet, store]
      summary: Add a new pet
      requestBody:
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/Pet'
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: '#/components/schemas/Pet'
  /user/{name}:
    get:
      tags: [user]
      responses:
        "200":
          description: ok
          content:
            application/xml:
              schema: {type: string}
  /health:
    get:
      summary: Health check
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: object
                properties:
                  ok: {type: boolean}
components:
  schemas:
    Pet:
      type: object
      required: [name]
      properties:
        id: {type: integer, format: int64}
        name: {type: string}
        tags:
          type: array
          items: {type: string}
        status:
          type: string
          enum: [available, pending, sold]
`

// InvalidYAML does not decode as YAML.
const InvalidYAML = "openapi: 3.0.0\npaths: [unclosed\n"

// WriteTempFile writes content to name inside a fresh temporary directory
// and returns the file path.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return path
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTempFile(t, "test.yaml", string(data))
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	return WriteTempFile(t, "test.json", string(data))
}

// StubFetcher serves documents from memory. It satisfies parser.Fetcher.
type StubFetcher struct {
	mu       sync.Mutex
	docs     map[string]string
	errs     map[string]error
	requests []string
}

// NewStubFetcher returns a fetcher serving docs, keyed by location.
func NewStubFetcher(docs map[string]string) *StubFetcher {
	if docs == nil {
		docs = make(map[string]string)
	}
	return &StubFetcher{docs: docs, errs: make(map[string]error)}
}

// Fail makes every fetch of location return err.
func (f *StubFetcher) Fail(location string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[location] = err
}

// Fetch returns the document stored for location. Unknown locations fail.
func (f *StubFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, location)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := f.errs[location]; ok {
		return nil, err
	}
	doc, ok := f.docs[location]
	if !ok {
		return nil, fmt.Errorf("stub: no document at %s", location)
	}
	return []byte(doc), nil
}

// Requests returns the locations fetched so far, in call order.
func (f *StubFetcher) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}
