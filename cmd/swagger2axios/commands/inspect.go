package commands

import (
	"github.com/spf13/cobra"

	"github.com/FreezeNow/swagger-to-axios/batch"
	"github.com/FreezeNow/swagger-to-axios/model"
)

// InspectFlags contains flags for the inspect command
type InspectFlags struct {
	Format  string
	URLType string
	Name    string
	CLIType string
}

func newInspectCommand(root *rootFlags) *cobra.Command {
	flags := &InspectFlags{}
	cmd := &cobra.Command{
		Use:   "inspect <file|url>",
		Short: "Print the folder model built from one document",
		Long: `Inspect loads and normalizes a single document and prints the folder model that generate
would render: base path, host, and every tag with its operations and response types.`,
		Example: `  swagger2axios inspect ./swagger.yaml
  swagger2axios inspect --format json https://petstore3.swagger.io/api/v3/openapi.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, root, flags, args[0])
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.Format, "format", "f", FormatYAML, "output format: json or yaml")
	f.StringVar(&flags.URLType, "url-type", "", "document format: yaml, json or auto")
	f.StringVar(&flags.Name, "name", "", "folder name (default: derived from the source)")
	f.StringVar(&flags.CLIType, "cli-type", "", "Vite or VueCli")
	return cmd
}

func runInspect(cmd *cobra.Command, root *rootFlags, flags *InspectFlags, source string) error {
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	cliType, err := model.ParseCLIType(flags.CLIType)
	if err != nil {
		return err
	}
	res, err := batch.Run(cmd.Context(), []batch.Document{documentFor(source, flags.URLType, flags.Name)},
		batch.WithCLIType(cliType),
		batch.WithLogger(root.logger(cmd.ErrOrStderr())),
	)
	if err != nil {
		return err
	}
	if len(res.Failures) > 0 {
		return res.Failures[0]
	}
	return OutputStructured(cmd.OutOrStdout(), res.Folders[0], flags.Format)
}
