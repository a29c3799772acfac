package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	menucmd "github.com/agentstation/marquee/cmd/marquee/cmd/menu"
	"github.com/agentstation/marquee/internal/cmd/output"
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/logging"
)

// flagValues holds the raw global flags before they are merged into Config.
type flagValues struct {
	configFile string
	dataFile   string
	format     string
	logLevel   string
	verbose    bool
	quiet      bool
	noColor    bool
}

// Execute runs the marquee CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "marquee",
		Short:   "Personal movie catalog",
		Version: a.version,
		Long: `Marquee keeps a small personal movie catalog in a JSON document.

Movies can be added, deleted and re-rated, listed plainly or by rating,
searched by title with a "did you mean" fallback, summarized and shown
as a ratings histogram.

Run without a subcommand to open the interactive menu.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupCommand,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return menucmd.Run(cmd, a)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Catalog Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "query",
		Title: "Query Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.flags.configFile, "config", "", "config file (default is $HOME/.marquee.yaml)")
	flags.StringVarP(&a.flags.dataFile, "data-file", "f", "", "catalog document (default \"data.json\")")
	flags.BoolVarP(&a.flags.verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&a.flags.quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")
	flags.StringVarP(&a.flags.format, "format", "o", "", "output format: table, json, yaml, wide, markdown")
	flags.StringVar(&a.flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("marquee {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	base := a.loaded
	if a.flags.configFile != "" {
		config, err := LoadConfigFile(a.flags.configFile)
		if err != nil {
			return err
		}
		base = config
	}

	if _, err := output.ParseFormat(a.flags.format); err != nil {
		return errors.WrapValidation("format", err)
	}

	// Flags apply to a copy so repeated executions start from the loaded config
	config := *base
	config.UpdateFromFlags(
		a.flags.verbose,
		a.flags.quiet,
		a.flags.noColor,
		a.flags.format,
		a.flags.logLevel,
		a.flags.dataFile,
	)
	a.config = &config

	logger := NewLogger(a.config)
	a.logger = &logger

	a.logger.Debug().
		Str("data_file", a.config.DataFile).
		Str("config_file", a.config.ConfigFile).
		Msg("Configuration loaded")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, a.logger))

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
