package oaserrors

import (
	"context"
	"errors"
)

// Kind classifies why a document failed to process.
type Kind string

const (
	KindSourceUnavailable          Kind = "SourceUnavailable"
	KindMalformedDocument          Kind = "MalformedDocument"
	KindUnresolvedReference        Kind = "UnresolvedReference"
	KindUnsupportedDocumentVersion Kind = "UnsupportedDocumentVersion"
	KindResourceLimit              Kind = "ResourceLimit"
	KindConfig                     Kind = "Config"
	KindCanceled                   Kind = "Canceled"
	KindUnknown                    Kind = "Unknown"
)

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// KindOf returns the Kind of err. A nil error has no kind and returns "".
//
// Typed errors win over context errors, so a fetch that timed out is still
// reported as SourceUnavailable. A reference error wins over the fetch error
// it wraps, since the failing fetch was an external $ref target.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnresolvedReference):
		return KindUnresolvedReference
	case errors.Is(err, ErrSourceUnavailable):
		return KindSourceUnavailable
	case errors.Is(err, ErrMalformedDocument):
		return KindMalformedDocument
	case errors.Is(err, ErrUnsupportedVersion):
		return KindUnsupportedDocumentVersion
	case errors.Is(err, ErrResourceLimit):
		return KindResourceLimit
	case errors.Is(err, ErrConfig):
		return KindConfig
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindUnknown
	}
}
