package model

import (
	"strings"

	"github.com/FreezeNow/swagger-to-axios/document"
	"github.com/FreezeNow/swagger-to-axios/internal/httputil"
	"github.com/FreezeNow/swagger-to-axios/normalizer"
	"github.com/FreezeNow/swagger-to-axios/typegen"
)

// Build walks doc and returns its client model.
//
// BasePath and Host come from the first server. Each method of each path
// becomes one Operation, appended to the Tag named by the operation's first
// tag. Path item keys that are not HTTP methods (parameters, summary, x-*)
// are skipped, as are operations that are not objects.
func Build(doc *normalizer.NormalizedDocument, folderName string, cliType CLIType) Folder {
	f := Folder{Name: folderName, CLIType: cliType, Tags: []Tag{}}
	if servers := doc.Servers(); len(servers) > 0 {
		u, _ := servers[0].StrField("url")
		f.BasePath, f.Host = ParseServerURL(u, ServerVariables(servers[0]))
	}

	index := make(map[string]int)
	tagFor := func(name string) *Tag {
		i, ok := index[name]
		if !ok {
			i = len(f.Tags)
			index[name] = i
			f.Tags = append(f.Tags, Tag{Name: name, Operations: []Operation{}})
		}
		return &f.Tags[i]
	}

	for _, declared := range doc.Tags() {
		name, ok := declared.StrField("name")
		if !ok {
			continue
		}
		if _, seen := index[name]; seen {
			continue
		}
		comment, _ := declared.StrField("description")
		tagFor(name).Comment = comment
	}

	for _, path := range doc.Paths().Entries() {
		if strings.HasPrefix(path.Key, "x-") || !path.Value.IsMapping() {
			continue
		}
		for _, e := range path.Value.Entries() {
			if !httputil.IsMethod(e.Key) || !e.Value.IsMapping() {
				continue
			}
			op := buildOperation(path.Key, strings.ToLower(e.Key), e.Value)
			tag := tagFor(primaryTag(e.Value))
			tag.Operations = append(tag.Operations, op)
		}
	}
	return f
}

func buildOperation(path, method string, op *document.Value) Operation {
	o := Operation{URL: path, Method: method}
	o.Summary, _ = op.StrField("summary")
	o.Description, _ = op.StrField("description")
	o.OperationID, _ = op.StrField("operationId")
	if rt, ok := typegen.TranslateResponse(op); ok {
		o.ResponseType = &rt
	}
	return o
}

// primaryTag returns the operation's first tag, or "" when it has none.
func primaryTag(op *document.Value) string {
	tags, ok := op.SeqField("tags")
	if !ok || len(tags) == 0 {
		return ""
	}
	name, _ := tags[0].Scalar()
	return name
}
