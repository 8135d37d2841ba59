package converter

import (
	"fmt"
	"strings"

	"github.com/FreezeNow/swagger-to-axios/document"
	"github.com/FreezeNow/swagger-to-axios/internal/issues"
	"github.com/FreezeNow/swagger-to-axios/internal/severity"
	"github.com/FreezeNow/swagger-to-axios/oaserrors"
)

// TargetVersion is the OpenAPI version Swagger 2.0 documents are upgraded to.
const TargetVersion = "3.0.3"

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates lossy conversions or best-effort transformations
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates features that cannot be converted (data loss)
	SeverityCritical = severity.SeverityCritical
)

// Issue represents a single conversion note
type Issue = issues.Issue

// Result contains the outcome of ToOAS3.
type Result struct {
	// Document is the OpenAPI 3.x tree. For 3.x input it is the input root.
	Document *document.Value
	// SourceVersion is the version declared by the input ("2.0", "3.0.1", ...)
	SourceVersion string
	// TargetVersion is the version of Document
	TargetVersion string
	// Upgraded is true when a Swagger 2.0 document was converted
	Upgraded bool
	// Issues contains all conversion notes in discovery order
	Issues []Issue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
}

// HasCriticalIssues returns true if there are any critical issues
func (r *Result) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *Result) HasWarnings() bool {
	return r.WarningCount > 0
}

// DetectVersion returns the version string a document declares through its
// swagger or openapi field. YAML documents often carry `swagger: 2.0` as a
// number, which is accepted.
func DetectVersion(root *document.Value) (string, error) {
	if !root.IsMapping() {
		return "", &oaserrors.ConversionError{Message: "document root must be a mapping, got " + root.Kind().String()}
	}
	if v, ok := root.Get("openapi"); ok {
		if s, ok := v.Scalar(); ok && s != "" {
			return s, nil
		}
		return "", &oaserrors.ConversionError{Path: "openapi", Message: "version must be a string"}
	}
	if v, ok := root.Get("swagger"); ok {
		if s, ok := v.Scalar(); ok && s != "" {
			return s, nil
		}
		return "", &oaserrors.ConversionError{Path: "swagger", Message: "version must be a string"}
	}
	return "", &oaserrors.ConversionError{Message: "missing swagger or openapi version field"}
}

// ToOAS3 returns root in OpenAPI 3.x shape. Swagger 2.x documents are
// converted into a new tree; schema nodes are adjusted in place and shared
// with the input. Any other version fails with *oaserrors.ConversionError.
func ToOAS3(root *document.Value) (*Result, error) {
	version, err := DetectVersion(root)
	if err != nil {
		return nil, err
	}
	res := &Result{SourceVersion: version}

	switch {
	case strings.HasPrefix(version, "3."):
		res.Document = root
		res.TargetVersion = version
		return res, nil
	case version == "2" || strings.HasPrefix(version, "2."):
		c := &converter{src: root, result: res, schemas: make(map[*document.Value]bool)}
		dst, err := c.convertOAS2()
		if err != nil {
			return nil, err
		}
		res.Document = dst
		res.TargetVersion = TargetVersion
		res.Upgraded = true
		return res, nil
	default:
		return nil, &oaserrors.ConversionError{
			SourceVersion: version,
			TargetVersion: TargetVersion,
			Message:       fmt.Sprintf("version %q cannot be upgraded", version),
		}
	}
}

// converter holds the state of one Swagger 2.0 upgrade.
type converter struct {
	src    *document.Value
	result *Result
	// schemas marks schema nodes already adjusted, since they are shared after resolution
	schemas map[*document.Value]bool
}

func (c *converter) addIssue(path, message string, sev Severity) {
	c.addIssueWithContext(path, message, "", sev)
}

func (c *converter) addIssueWithContext(path, message, context string, sev Severity) {
	c.result.Issues = append(c.result.Issues, Issue{Path: path, Message: message, Severity: sev, Context: context})
	switch sev {
	case SeverityInfo:
		c.result.InfoCount++
	case SeverityWarning:
		c.result.WarningCount++
	case SeverityCritical:
		c.result.CriticalCount++
	}
}

func (c *converter) structural(path, message string) error {
	return &oaserrors.ConversionError{
		SourceVersion: c.result.SourceVersion,
		TargetVersion: TargetVersion,
		Path:          path,
		Message:       message,
	}
}
