// Package stats provides the command that summarizes catalog ratings.
package stats

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/internal/appcontext"
	"github.com/agentstation/marquee/internal/cmd/alerts"
	"github.com/agentstation/marquee/internal/cmd/cmdutil"
	"github.com/agentstation/marquee/internal/cmd/output"
)

// NewCommand creates the stats command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		GroupID: "query",
		Short:   "Show rating statistics",
		Long: `Stats shows the number of movies, the average and median rating
rounded to two decimals, the most frequent rating and the highest and
lowest rated movies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			s, err := client.Stats()
			if err != nil {
				return err
			}
			cmdutil.Logger(cmd, "stats", "").Debug().Bool("empty", s == nil).Msg("Computed stats")

			p := cmdutil.NewPrinter(cmd, app)
			if s == nil {
				if p.Structured() {
					return p.Data(nil)
				}
				return p.Alert(alerts.NewWarning("No movies available."))
			}
			return output.FormatStats(p.Out, s, p.Format)
		},
	}
}
