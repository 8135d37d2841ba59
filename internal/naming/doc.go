// Package naming derives JavaScript identifiers and URL templates from
// OpenAPI path templates.
//
// Function names come from the HTTP method and the path: every "/" segment
// is capitalized and braces are dropped, so GET /user/{id} becomes getUserId.
// Request URLs become template literals that read path parameters from the
// function's argument, params for GET and data for every other method:
//
//	naming.URLToLinkParams("/record/{recordID}", "get") // "/record/${params.recordID}"
package naming
