// Package issues provides the note type collected while converting documents.
package issues

import (
	"fmt"

	"github.com/FreezeNow/swagger-to-axios/internal/severity"
)

// Issue is one non-fatal note about a document.
type Issue struct {
	// Path is the dotted path to the field (e.g., "paths./pets.get.parameters[0]")
	Path string `json:"path" yaml:"path"`
	// Message is a human-readable description
	Message string `json:"message" yaml:"message"`
	// Severity indicates how much the note matters
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// Context gives extra detail (optional)
	Context string `json:"context,omitempty" yaml:"context,omitempty"`
}

// String returns a one-line (or two-line, with context) rendering.
// Uses "✗" for Critical, "⚠" for Warning and "ℹ" for Info.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}
	result := fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}

// Count returns the number of issues at each severity.
func Count(list []Issue) (info, warning, critical int) {
	for _, i := range list {
		switch i.Severity {
		case severity.SeverityInfo:
			info++
		case severity.SeverityWarning:
			warning++
		case severity.SeverityCritical:
			critical++
		}
	}
	return info, warning, critical
}
