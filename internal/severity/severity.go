// Package severity provides the severity levels attached to conversion notes.
//
// Levels are ordered from least to most severe: Info < Warning < Critical.
package severity

// Severity indicates how much a conversion note matters.
type Severity int

const (
	// SeverityInfo marks a choice made during conversion, such as a defaulted server.
	SeverityInfo Severity = iota

	// SeverityWarning marks a best-effort transformation that may lose detail.
	SeverityWarning

	// SeverityCritical marks content that could not be carried over at all.
	SeverityCritical
)

// String returns the lowercase level name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
