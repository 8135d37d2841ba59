// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes model building, type translation and file generation as
// tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	swaggertoaxios "github.com/FreezeNow/swagger-to-axios"
)

const serverInstructions = `swagger2axios MCP server: turns Swagger 2.0 and OpenAPI 3.x documents into axios request functions.

Every tool that takes a spec accepts exactly one of file, url or content. Swagger 2.0 documents are upgraded and all $refs and allOf compositions are resolved before use.

Configuration: defaults are set via SWAGGER2AXIOS_MCP_* environment variables in your MCP client config.
- SWAGGER2AXIOS_MCP_CACHE_FILE_TTL (default: 15m): cache TTL for local file specs
- SWAGGER2AXIOS_MCP_CACHE_URL_TTL (default: 5m): cache TTL for URL-fetched specs
- SWAGGER2AXIOS_MCP_CACHE_ENABLED (default: true): disable spec caching entirely
- SWAGGER2AXIOS_MCP_FETCH_TIMEOUT (default: 30s): timeout for fetching a spec
- SWAGGER2AXIOS_MCP_ALLOW_PRIVATE_IPS (default: false): allow url inputs on private networks`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}
	return newServer().Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "swagger2axios", Version: swaggertoaxios.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_model",
		Description: "Build the folder model of a Swagger 2.0 or OpenAPI 3.x document: base path, host, and every tag with its operations (url, method, summary, TypeScript response type). Use this to preview what generate would emit.",
	}, handleBuildModel)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "translate_type",
		Description: "Translate a JSON Schema object (JSON or YAML) into a TypeScript type expression, e.g. {type: array, items: {type: string}} becomes string[]. Local $refs are not followed; pass a resolved schema.",
	}, handleTranslateType)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate axios request functions from a document, one file per tag. Returns a manifest of generated files with their content. Files are written to disk only when output_dir is set.",
	}, handleGenerate)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths in error messages.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
