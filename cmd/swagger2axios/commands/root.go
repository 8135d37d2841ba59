// Package commands provides the cobra command tree for swagger2axios.
package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/FreezeNow/swagger-to-axios/parser"
)

// rootFlags holds the flags shared by every command.
type rootFlags struct {
	Verbose bool
}

// logger returns a text logger on w. Debug output is enabled by --verbose.
func (f *rootFlags) logger(w io.Writer) parser.Logger {
	level := slog.LevelInfo
	if f.Verbose {
		level = slog.LevelDebug
	}
	return parser.NewSlogAdapter(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// NewRootCommand returns the swagger2axios command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "swagger2axios",
		Short: "Generate axios request functions from Swagger and OpenAPI documents",
		Long: `swagger2axios reads Swagger 2.0 and OpenAPI 3.x documents, resolves their references,
and writes one JavaScript or TypeScript file of axios request functions per tag.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newGenerateCommand(flags),
		newInspectCommand(flags),
		newMCPCommand(),
		newVersionCommand(),
	)
	return root
}
