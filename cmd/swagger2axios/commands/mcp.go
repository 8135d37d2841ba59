package commands

import (
	"github.com/spf13/cobra"

	"github.com/FreezeNow/swagger-to-axios/internal/mcpserver"
)

func newMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server on stdio",
		Long: `Run a Model Context Protocol server on stdin/stdout exposing the build_model,
translate_type and generate tools. Defaults are read from SWAGGER2AXIOS_MCP_* variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcpserver.Run(cmd.Context())
		},
	}
}
