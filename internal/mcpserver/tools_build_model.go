package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/FreezeNow/swagger-to-axios/converter"
	"github.com/FreezeNow/swagger-to-axios/model"
)

type buildModelInput struct {
	Spec    specInput `json:"spec"               jsonschema:"The document to build the model from"`
	Name    string    `json:"name,omitempty"     jsonschema:"Folder name (default: derived from the source)"`
	CLIType string    `json:"cli_type,omitempty" jsonschema:"Vite or VueCli (default: VueCli)"`
}

type operationSummary struct {
	Method       string `json:"method"`
	URL          string `json:"url"`
	Summary      string `json:"summary,omitempty"`
	OperationID  string `json:"operation_id,omitempty"`
	ResponseType string `json:"response_type,omitempty"`
}

type tagSummary struct {
	Name       string             `json:"name"`
	Comment    string             `json:"comment,omitempty"`
	Operations []operationSummary `json:"operations,omitempty"`
}

type buildModelOutput struct {
	Name           string       `json:"name"`
	CLIType        string       `json:"cli_type"`
	BasePath       string       `json:"base_path"`
	Host           string       `json:"host"`
	SourceVersion  string       `json:"source_version"`
	TagCount       int          `json:"tag_count"`
	OperationCount int          `json:"operation_count"`
	Tags           []tagSummary `json:"tags,omitempty"`
	Warnings       []string     `json:"warnings,omitempty"`
}

func handleBuildModel(ctx context.Context, _ *mcp.CallToolRequest, input buildModelInput) (*mcp.CallToolResult, buildModelOutput, error) {
	cliType, err := model.ParseCLIType(input.CLIType)
	if err != nil {
		return errResult(err), buildModelOutput{}, nil
	}
	doc, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), buildModelOutput{}, nil
	}
	name := input.Name
	if name == "" {
		name = model.DefaultFolderName(input.Spec.location())
	}
	folder := model.Build(doc, name, cliType)
	stats := folder.Stats()

	output := buildModelOutput{
		Name:           folder.Name,
		CLIType:        string(folder.CLIType),
		BasePath:       folder.BasePath,
		Host:           folder.Host,
		SourceVersion:  doc.SourceVersion,
		TagCount:       stats.Tags,
		OperationCount: stats.Operations,
		Tags:           makeSlice[tagSummary](len(folder.Tags)),
	}
	for _, tag := range folder.Tags {
		ts := tagSummary{Name: tag.Name, Comment: tag.Comment, Operations: makeSlice[operationSummary](len(tag.Operations))}
		for _, op := range tag.Operations {
			s := operationSummary{Method: op.Method, URL: op.URL, Summary: op.Summary, OperationID: op.OperationID}
			if op.ResponseType != nil {
				s.ResponseType = *op.ResponseType
			}
			ts.Operations = append(ts.Operations, s)
		}
		output.Tags = append(output.Tags, ts)
	}
	for _, issue := range doc.Issues {
		if issue.Severity >= converter.SeverityWarning {
			output.Warnings = append(output.Warnings, issue.String())
		}
	}
	return nil, output, nil
}
