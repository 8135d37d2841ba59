package generator

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").
	Funcs(templateFuncs).
	ParseFS(templateFS, "templates/*.tmpl"))

// templateFuncs provides custom functions for templates
var templateFuncs = template.FuncMap{
	"quote":     jsString,
	"comment":   cleanComment,
	"signature": signature,
}

// executeTemplate executes a template by name and returns the rendered bytes.
// opCount sizes the scratch buffer.
func executeTemplate(name string, data any, opCount int) ([]byte, error) {
	buf := getTemplateBuffer(opCount)
	defer putTemplateBuffer(buf, opCount)

	if err := templates.ExecuteTemplate(buf, name, data); err != nil {
		return nil, err
	}
	if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		buf.WriteByte('\n')
	}
	return bytes.Clone(buf.Bytes()), nil
}
