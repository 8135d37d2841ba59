package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FreezeNow/swagger-to-axios/batch"
	"github.com/FreezeNow/swagger-to-axios/config"
	"github.com/FreezeNow/swagger-to-axios/generator"
	"github.com/FreezeNow/swagger-to-axios/internal/cliutil"
	"github.com/FreezeNow/swagger-to-axios/model"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	ConfigPath string
	URLs       []string
	URLType    string
	Name       string

	// Overrides of the configuration file
	Output          string
	CLIType         string
	ImportAxiosPath string
	TypeScript      bool
	HTTPS           bool
	Concurrency     int

	DryRun bool
}

func newGenerateCommand(root *rootFlags) *cobra.Command {
	flags := &GenerateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate request functions for every configured document",
		Long: `Generate loads the configuration file (swagger2axios.yaml in the working directory
unless --config is given), adds any documents passed with --url, and writes one file per tag
under the output folder. Documents that cannot be loaded are reported and skipped; the command
fails only when every document failed or the configuration is invalid.`,
		Example: `  swagger2axios generate
  swagger2axios generate --config ./swagger2axios.yaml --ts
  swagger2axios generate --url https://petstore.swagger.io/v2/swagger.json --url-type json --name pets`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, root, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.ConfigPath, "config", "c", "", "configuration file (default: ./"+config.DefaultFileName+" if present)")
	f.StringArrayVarP(&flags.URLs, "url", "u", nil, "document URL or file path to generate from (repeatable)")
	f.StringVar(&flags.URLType, "url-type", "", "format of --url documents: yaml, json or auto")
	f.StringVar(&flags.Name, "name", "", "folder name for a single --url document")
	f.StringVarP(&flags.Output, "output", "o", "", "output folder (overrides outputFolder)")
	f.StringVar(&flags.CLIType, "cli-type", "", "Vite or VueCli (overrides cliType)")
	f.StringVar(&flags.ImportAxiosPath, "import-axios-path", "", "module exporting the request function (overrides importAxiosPath)")
	f.BoolVar(&flags.TypeScript, "ts", false, "emit TypeScript files (overrides typeScript)")
	f.BoolVar(&flags.HTTPS, "https", false, "use https in baseURL (overrides https)")
	f.IntVar(&flags.Concurrency, "concurrency", 0, "documents processed at once (overrides concurrency)")
	f.BoolVar(&flags.DryRun, "dry-run", false, "report what would be generated without writing files")
	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootFlags, flags *GenerateFlags) error {
	cfg, err := loadGenerateConfig(cmd, flags)
	if err != nil {
		return err
	}
	if len(cfg.Documents) == 0 {
		return errors.New("no documents to generate from: add documents to the configuration file or pass --url")
	}

	logger := root.logger(cmd.ErrOrStderr())
	res, err := batch.Run(cmd.Context(), cfg.Documents, append(cfg.BatchOptions(), batch.WithLogger(logger))...)
	if err != nil {
		return err
	}
	stderr := cmd.ErrOrStderr()
	for _, f := range res.Failures {
		cliutil.Writef(stderr, "skipped %s (%s): %v\n", f.Document.URL, f.Kind, f.Err)
	}
	if res.AllFailed() {
		return fmt.Errorf("all %d documents failed", len(res.Failures))
	}

	out, err := generator.Generate(res.Folders, cfg.Config, generator.WithLogger(logger))
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	if flags.DryRun {
		for _, f := range out.Files {
			cliutil.Writef(stdout, "%s (%d functions)\n", f.Path(), f.Functions)
		}
		cliutil.Writef(stdout, "Would generate %d files with %d functions in %s\n", len(out.Files), out.Functions, cfg.OutputFolder)
		return nil
	}
	if err := out.WriteFiles(cfg.OutputFolder); err != nil {
		return err
	}
	cliutil.Writef(stdout, "Generated %d files with %d functions from %d of %d documents in %s\n",
		len(out.Files), out.Functions, len(res.Folders), len(cfg.Documents), cfg.OutputFolder)
	return nil
}

// loadGenerateConfig loads the configuration file and applies the flags that
// were set on the command line.
func loadGenerateConfig(cmd *cobra.Command, flags *GenerateFlags) (*config.Config, error) {
	path := flags.ConfigPath
	if path == "" {
		if _, err := os.Stat(config.DefaultFileName); err == nil {
			path = config.DefaultFileName
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if len(flags.URLs) > 1 && flags.Name != "" {
		return nil, errors.New("--name can only be used with a single --url")
	}
	for _, u := range flags.URLs {
		cfg.Documents = append(cfg.Documents, documentFor(u, flags.URLType, flags.Name))
	}

	changed := cmd.Flags().Changed
	if changed("output") {
		cfg.OutputFolder = flags.Output
	}
	if changed("cli-type") {
		cfg.CLIType = model.CLIType(flags.CLIType)
	}
	if changed("import-axios-path") {
		cfg.ImportAxiosPath = flags.ImportAxiosPath
	}
	if changed("ts") {
		cfg.TypeScript = flags.TypeScript
	}
	if changed("https") {
		cfg.HTTPS = flags.HTTPS
	}
	if changed("concurrency") {
		cfg.Concurrency = flags.Concurrency
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
