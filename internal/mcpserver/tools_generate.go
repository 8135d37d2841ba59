package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/FreezeNow/swagger-to-axios/generator"
	"github.com/FreezeNow/swagger-to-axios/model"
)

type generateInput struct {
	Spec            specInput `json:"spec"                        jsonschema:"The document to generate request functions from"`
	Name            string    `json:"name,omitempty"              jsonschema:"Folder name (default: derived from the source)"`
	CLIType         string    `json:"cli_type,omitempty"          jsonschema:"Vite or VueCli; selects import.meta.env or process.env (default: VueCli)"`
	ImportAxiosPath string    `json:"import_axios_path,omitempty" jsonschema:"Module to import the request function from (default: window.axios)"`
	TypeScript      bool      `json:"typescript,omitempty"        jsonschema:"Emit .ts files with Promise return types"`
	HTTPS           bool      `json:"https,omitempty"             jsonschema:"Use https in the generated baseURL"`
	EnvHostName     string    `json:"env_host_name,omitempty"     jsonschema:"Environment variable holding the API host"`
	EnvProtocolName string    `json:"env_protocol_name,omitempty" jsonschema:"Environment variable holding the protocol"`
	NoBaseURL       bool      `json:"no_base_url,omitempty"       jsonschema:"Omit the baseURL option from requests"`
	URLAsArgument   bool      `json:"url_as_argument,omitempty"   jsonschema:"Pass the url as the first request argument instead of in the options"`
	OutputDir       string    `json:"output_dir,omitempty"        jsonschema:"Directory to write generated files to; omit to only return them"`
}

type generatedFileInfo struct {
	Path      string `json:"path"`
	Tag       string `json:"tag"`
	Functions int    `json:"functions"`
	Size      int    `json:"size"`
	Content   string `json:"content,omitempty"`
}

type generateOutput struct {
	Folder    string              `json:"folder"`
	OutputDir string              `json:"output_dir,omitempty"`
	FileCount int                 `json:"file_count"`
	Functions int                 `json:"functions"`
	Files     []generatedFileInfo `json:"files"`
}

func (in generateInput) config() generator.Config {
	c := generator.DefaultConfig()
	c.CLIType = model.CLIType(in.CLIType)
	c.ImportAxiosPath = in.ImportAxiosPath
	c.TypeScript = in.TypeScript
	c.HTTPS = in.HTTPS
	c.EnvHostName = in.EnvHostName
	c.EnvProtocolName = in.EnvProtocolName
	c.IncludeBaseURL = !in.NoBaseURL
	c.URLInOptions = !in.URLAsArgument
	return c
}

func handleGenerate(ctx context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	genCfg := input.config()
	if err := genCfg.Validate(); err != nil {
		return errResult(err), generateOutput{}, nil
	}
	doc, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}
	name := input.Name
	if name == "" {
		name = model.DefaultFolderName(input.Spec.location())
	}
	folder := model.Build(doc, name, genCfg.CLIType)

	result, err := generator.Generate([]model.Folder{folder}, genCfg)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}
	if input.OutputDir != "" {
		if err := result.WriteFiles(input.OutputDir); err != nil {
			return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateOutput{}, nil
		}
	}

	output := generateOutput{
		Folder:    folder.Name,
		OutputDir: input.OutputDir,
		FileCount: len(result.Files),
		Functions: result.Functions,
		Files:     makeSlice[generatedFileInfo](len(result.Files)),
	}
	for _, f := range result.Files {
		info := generatedFileInfo{Path: f.Path(), Tag: f.Tag, Functions: f.Functions, Size: len(f.Content)}
		if input.OutputDir == "" {
			info.Content = string(f.Content)
		}
		output.Files = append(output.Files, info)
	}
	return nil, output, nil
}
