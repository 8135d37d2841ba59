package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/FreezeNow/swagger-to-axios/document"
	"github.com/FreezeNow/swagger-to-axios/normalizer"
	"github.com/FreezeNow/swagger-to-axios/typegen"
)

type translateTypeInput struct {
	Schema string `json:"schema" jsonschema:"JSON Schema object as JSON or YAML"`
}

type translateTypeOutput struct {
	Type string `json:"type"`
}

func handleTranslateType(_ context.Context, _ *mcp.CallToolRequest, input translateTypeInput) (*mcp.CallToolResult, translateTypeOutput, error) {
	if input.Schema == "" {
		return errResult(errors.New("schema is required")), translateTypeOutput{}, nil
	}
	if int64(len(input.Schema)) > cfg.MaxInlineSize {
		return errResult(fmt.Errorf("schema size %d bytes exceeds maximum %d bytes", len(input.Schema), cfg.MaxInlineSize)), translateTypeOutput{}, nil
	}
	data := []byte(input.Schema)
	schema, err := document.Decode(data, document.DetectFormat(data))
	if err != nil {
		return errResult(fmt.Errorf("decode schema: %w", err)), translateTypeOutput{}, nil
	}
	if !schema.IsMapping() {
		return errResult(fmt.Errorf("schema must be an object, got %s", schema.Kind())), translateTypeOutput{}, nil
	}
	return nil, translateTypeOutput{Type: typegen.Translate(normalizer.Flatten(schema))}, nil
}
