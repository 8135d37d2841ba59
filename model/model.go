package model

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/FreezeNow/swagger-to-axios/oaserrors"
)

// CLIType selects the environment variable convention of the generated code.
type CLIType string

const (
	// CLITypeVite reads variables from import.meta.env with a VITE_ prefix
	CLITypeVite CLIType = "Vite"
	// CLITypeVueCli reads variables from process.env with a VUE_APP_ prefix
	CLITypeVueCli CLIType = "VueCli"
)

// ParseCLIType returns the canonical CLIType for s, ignoring case.
// An empty string selects CLITypeVueCli.
func ParseCLIType(s string) (CLIType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vuecli":
		return CLITypeVueCli, nil
	case "vite":
		return CLITypeVite, nil
	default:
		return "", &oaserrors.ConfigError{Option: "cliType", Value: s, Message: "must be Vite or VueCli"}
	}
}

// Folder is the client model of one document.
type Folder struct {
	Name     string  `json:"name" yaml:"name"`
	CLIType  CLIType `json:"cliType" yaml:"cliType"`
	BasePath string  `json:"basePath" yaml:"basePath"`
	Host     string  `json:"host" yaml:"host"`
	Tags     []Tag   `json:"tags" yaml:"tags"`
}

// Tag groups the operations emitted into one file.
type Tag struct {
	Name       string      `json:"name" yaml:"name"`
	Comment    string      `json:"comment" yaml:"comment"`
	Operations []Operation `json:"operations" yaml:"operations"`
}

// Operation is one HTTP method on one path.
type Operation struct {
	URL         string `json:"url" yaml:"url"`
	Method      string `json:"method" yaml:"method"`
	Summary     string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	OperationID string `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	// ResponseType is the TypeScript type of the 200 JSON response, if any
	ResponseType *string `json:"responseType,omitempty" yaml:"responseType,omitempty"`
}

// Stats counts the tags and operations of a folder.
type Stats struct {
	Tags       int `json:"tags"`
	Operations int `json:"operations"`
}

// Stats returns the tag and operation counts of f.
func (f *Folder) Stats() Stats {
	s := Stats{Tags: len(f.Tags)}
	for _, t := range f.Tags {
		s.Operations += len(t.Operations)
	}
	return s
}

// Tag returns the tag called name.
func (f *Folder) Tag(name string) (*Tag, bool) {
	for i := range f.Tags {
		if f.Tags[i].Name == name {
			return &f.Tags[i], true
		}
	}
	return nil, false
}

// DefaultFolderName derives a stable folder name from a document location:
// "api_" followed by the first 8 hex digits of its SHA-256.
func DefaultFolderName(location string) string {
	sum := sha256.Sum256([]byte(location))
	return "api_" + hex.EncodeToString(sum[:])[:8]
}
