package commands

import (
	"github.com/spf13/cobra"

	swaggertoaxios "github.com/FreezeNow/swagger-to-axios"
	"github.com/FreezeNow/swagger-to-axios/internal/cliutil"
)

func newVersionCommand() *cobra.Command {
	var detailed bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if detailed {
				cliutil.Writef(cmd.OutOrStdout(), "swagger2axios\n%s\n", swaggertoaxios.BuildInfo())
				return
			}
			cliutil.Writef(cmd.OutOrStdout(), "swagger2axios v%s\n", swaggertoaxios.Version())
		},
	}
	cmd.Flags().BoolVar(&detailed, "build", false, "include commit, build time and Go version")
	return cmd
}
