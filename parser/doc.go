// Package parser loads Swagger 2.0 and OpenAPI 3.x documents and resolves
// their $ref pointers.
//
// # Loading
//
// A [Loader] retrieves raw bytes through an injected [Fetcher] (HTTP for
// remote locations, the file system for local ones) and decodes them into a
// [document.Value] tree:
//
//	l, err := parser.New(parser.WithTimeout(10 * time.Second))
//	if err != nil {
//		return err
//	}
//	raw, err := l.Load(ctx, parser.Source{Location: "https://example.com/swagger.json", Format: document.FormatJSON})
//
// Fetch failures and empty content are reported as [oaserrors.SourceError];
// syntax failures as [oaserrors.ParseError].
//
// # Reference resolution
//
// [RefResolver] replaces every $ref in a tree with the node it points to.
// Internal pointers (#/...), relative files (common.yaml#/...) and URLs
// (https://host/common.yaml#/...) are supported. Every reference to the same
// target resolves to the same node, so a schema that refers to itself becomes
// a cyclic graph instead of an infinite tree.
//
// # Security Considerations
//
// Remote documents are limited to [MaxFileSize] bytes and at most
// [MaxCachedDocuments] external documents are loaded per resolution pass.
// Reference chains deeper than [MaxRefDepth] are rejected.
package parser
