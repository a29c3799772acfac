// Package random provides the command that picks a random movie.
package random

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/internal/appcontext"
	"github.com/agentstation/marquee/internal/cmd/alerts"
	"github.com/agentstation/marquee/internal/cmd/cmdutil"
)

// NewCommand creates the random command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "random",
		GroupID: "query",
		Short:   "Pick a random movie",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			m, err := client.PickRandom()
			if err != nil {
				return err
			}
			cmdutil.Logger(cmd, "random", "").Debug().Bool("empty", m == nil).Msg("Picked movie")

			p := cmdutil.NewPrinter(cmd, app)
			switch {
			case p.Structured():
				return p.Data(m)
			case m == nil:
				return p.Alert(alerts.NewWarning("No movies available."))
			default:
				return p.Alert(alerts.Successf("Random Pick: %s", m))
			}
		},
	}
}
