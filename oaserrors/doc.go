// Package oaserrors provides structured error types for swagger-to-axios.
//
// Import path: github.com/FreezeNow/swagger-to-axios/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// so a batch run can classify why a document was skipped and keep going.
//
// # Error Types
//
//   - [SourceError]: a document could not be fetched or read, or was empty
//   - [ParseError]: the content could not be parsed as the declared format
//   - [ReferenceError]: a $ref could not be resolved, or formed a circular chain
//   - [ConversionError]: a Swagger 2.0 document could not be upgraded
//   - [ResourceLimitError]: a size, depth or count limit was exceeded
//   - [ConfigError]: invalid configuration or option values
//
// # Sentinel Errors
//
//   - [ErrSourceUnavailable]: Matches any [SourceError]
//   - [ErrMalformedDocument]: Matches any [ParseError]
//   - [ErrUnresolvedReference]: Matches any [ReferenceError]
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrUnsupportedVersion]: Matches any [ConversionError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Classification
//
// [KindOf] maps any error onto a [Kind], which is what batch failure reports carry:
//
//	switch oaserrors.KindOf(err) {
//	case oaserrors.KindSourceUnavailable:
//	    // retry later
//	case oaserrors.KindMalformedDocument:
//	    // fix the document
//	}
package oaserrors
