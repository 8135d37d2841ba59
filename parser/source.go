package parser

import (
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/FreezeNow/swagger-to-axios/document"
)

// Source describes where a document comes from.
type Source struct {
	// Location is an http(s) URL or, when IsLocalFile is set, a file path.
	Location string
	// IsLocalFile selects the file fetcher instead of the HTTP fetcher.
	IsLocalFile bool
	// Format selects the decoder. Empty means YAML.
	Format document.Format
}

// String returns the location.
func (s Source) String() string {
	return s.Location
}

// RawDocument is a decoded but unresolved document.
// It is owned by the caller and consumed by normalization, which mutates Root.
type RawDocument struct {
	Root   *document.Value
	Source Source
	// Format is the format the content was actually decoded as.
	Format document.Format
	// BaseDir is the directory relative file references resolve against.
	BaseDir string
	// BaseURL is the URL relative references resolve against for remote documents.
	BaseURL string
	// Size is the number of bytes read.
	Size int64
	// LoadTime is how long the fetch and decode took.
	LoadTime time.Duration
}

// isURL reports whether s is an http or https URL.
func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// baseFor returns the base directory and base URL that references inside the
// document at src resolve against.
func baseFor(src Source) (baseDir, baseURL string) {
	if !src.IsLocalFile && isURL(src.Location) {
		if u, err := url.Parse(src.Location); err == nil {
			u.Fragment = ""
			return ".", u.String()
		}
		return ".", src.Location
	}
	dir := filepath.Dir(src.Location)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir, ""
}
