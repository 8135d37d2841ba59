package oaserrors

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestSourceError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &SourceError{
			Location:   "https://example.com/api.json",
			StatusCode: 404,
			Message:    "unexpected status",
			Cause:      errors.New("boom"),
		}
		want := "source unavailable: https://example.com/api.json (status 404): unexpected status: boom"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &SourceError{}
		if err.Error() != "source unavailable" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap reaches os.ErrNotExist", func(t *testing.T) {
		err := &SourceError{Location: "missing.yaml", Cause: fmt.Errorf("open: %w", os.ErrNotExist)}
		if !errors.Is(err, os.ErrNotExist) {
			t.Error("SourceError should unwrap to os.ErrNotExist")
		}
	})

	t.Run("Is matches ErrSourceUnavailable only", func(t *testing.T) {
		err := &SourceError{}
		if !errors.Is(err, ErrSourceUnavailable) {
			t.Error("SourceError should match ErrSourceUnavailable")
		}
		if errors.Is(err, ErrMalformedDocument) {
			t.Error("SourceError should not match ErrMalformedDocument")
		}
	})
}

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ParseError{
			Path:    "api.yaml",
			Format:  "yaml",
			Line:    42,
			Column:  10,
			Message: "invalid syntax",
			Cause:   errors.New("underlying error"),
		}
		want := "malformed document api.yaml (yaml) at line 42, column 10: invalid syntax: underlying error"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with line only", func(t *testing.T) {
		err := &ParseError{Line: 10}
		if err.Error() != "malformed document at line 10" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("As extracts ParseError through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("parser: %w", &ParseError{Path: "x.json"})
		var pe *ParseError
		if !errors.As(wrapped, &pe) {
			t.Fatal("errors.As should find ParseError")
		}
		if pe.Path != "x.json" {
			t.Errorf("unexpected path: %s", pe.Path)
		}
	})
}

func TestReferenceError(t *testing.T) {
	t.Run("Dangling reference", func(t *testing.T) {
		err := &ReferenceError{Ref: "#/components/schemas/Nope", RefType: "local", Message: "not found"}
		if err.Error() != "unresolved reference: #/components/schemas/Nope: not found" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
		if !errors.Is(err, ErrUnresolvedReference) {
			t.Error("should match ErrUnresolvedReference")
		}
		if errors.Is(err, ErrCircularReference) {
			t.Error("should not match ErrCircularReference")
		}
	})

	t.Run("Circular reference", func(t *testing.T) {
		err := &ReferenceError{Ref: "#/definitions/A", IsCircular: true}
		if err.Error() != "circular reference: #/definitions/A" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
		if !errors.Is(err, ErrCircularReference) || !errors.Is(err, ErrUnresolvedReference) {
			t.Error("circular reference should match both sentinels")
		}
	})
}

func TestConversionError(t *testing.T) {
	err := &ConversionError{SourceVersion: "2.0", TargetVersion: "3.0.3", Path: "paths", Message: "must be a mapping"}
	if err.Error() != "unsupported document version (2.0 -> 3.0.3) at paths: must be a mapping" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Error("should match ErrUnsupportedVersion")
	}

	bare := &ConversionError{SourceVersion: "1.2"}
	if bare.Error() != "unsupported document version 1.2" {
		t.Errorf("unexpected error message: %s", bare.Error())
	}
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{ResourceType: "file_size", Limit: 10, Actual: 20}
	if err.Error() != "resource limit exceeded: file_size (limit: 10, actual: 20)" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrResourceLimit) {
		t.Error("should match ErrResourceLimit")
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "cliType", Value: "Webpack", Message: "must be Vite or VueCli"}
	if err.Error() != "configuration error for cliType (value: Webpack): must be Vite or VueCli" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("should match ErrConfig")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"source", &SourceError{}, KindSourceUnavailable},
		{"wrapped parse", fmt.Errorf("load: %w", &ParseError{}), KindMalformedDocument},
		{"reference", &ReferenceError{}, KindUnresolvedReference},
		{"conversion", &ConversionError{}, KindUnsupportedDocumentVersion},
		{"limit", &ResourceLimitError{}, KindResourceLimit},
		{"config", &ConfigError{}, KindConfig},
		{"canceled", context.Canceled, KindCanceled},
		{"deadline", fmt.Errorf("x: %w", context.DeadlineExceeded), KindCanceled},
		{"timeout while fetching", &SourceError{Cause: context.DeadlineExceeded}, KindSourceUnavailable},
		{"plain", errors.New("plain"), KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindOfReferenceWrappingFetch(t *testing.T) {
	err := &ReferenceError{Ref: "https://e.com/x.yaml#/A", RefType: "http", Cause: &SourceError{StatusCode: 500}}
	if got := KindOf(err); got != KindUnresolvedReference {
		t.Errorf("KindOf() = %q, want %q", got, KindUnresolvedReference)
	}
}
