package parser

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Debug("x", "k", 1)
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	assert.Equal(t, NopLogger{}, l.With("k", "v"))
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogAdapter(slog.New(handler)).With("source", "api.yaml")

	l.Debug("resolved reference", "ref", "#/definitions/Pet")
	l.Warn("skipped document", "kind", "SourceUnavailable")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, `msg="resolved reference"`)
	assert.Contains(t, out, "source=api.yaml")
	assert.Contains(t, out, "ref=#/definitions/Pet")
	assert.Contains(t, out, "kind=SourceUnavailable")
}

func TestNewSlogAdapterNil(t *testing.T) {
	assert.NotNil(t, NewSlogAdapter(nil))
}
