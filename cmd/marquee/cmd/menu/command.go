// Package menu provides the interactive menu command.
package menu

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/internal/appcontext"
	"github.com/agentstation/marquee/internal/cmd/cmdutil"
	"github.com/agentstation/marquee/internal/cmd/menu"
)

// NewCommand creates the menu command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "menu",
		GroupID: "core",
		Short:   "Open the interactive menu",
		Long: `Menu runs the numbered interactive menu. It is also what marquee
runs when no subcommand is given. Enter 10 or end input to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd, app)
		},
	}
}

// Run starts the menu on the command's input and output streams.
func Run(cmd *cobra.Command, app appcontext.Interface) error {
	client, err := app.Client()
	if err != nil {
		return err
	}

	m := menu.New(client, app.In(), cmd.OutOrStdout(),
		menu.WithLogger(cmdutil.Logger(cmd, "menu", "")),
		menu.WithHistogramWidth(app.HistogramWidth()),
		menu.WithColor(!app.NoColor() && isTerminal(cmd)),
	)
	return m.Run(cmd.Context())
}

func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
