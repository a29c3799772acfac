// Package histogram provides the command that draws the ratings histogram.
package histogram

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/internal/appcontext"
	"github.com/agentstation/marquee/internal/cmd/alerts"
	"github.com/agentstation/marquee/internal/cmd/cmdutil"
	"github.com/agentstation/marquee/internal/histogram"
	"github.com/agentstation/marquee/pkg/constants"
)

// NewCommand creates the histogram command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var width *int

	cmd := &cobra.Command{
		Use:     "histogram",
		Aliases: []string{"hist"},
		GroupID: "query",
		Short:   "Show the ratings histogram",
		Long: `Histogram splits the range of ratings into 10 equal-width bins and
draws one bar per bin. Structured formats print the bins instead.`,
		Example: `  marquee histogram
  marquee histogram --width 20
  marquee histogram -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			ratings, err := client.Ratings()
			if err != nil {
				return err
			}

			bins := histogram.Compute(ratings, constants.HistogramBins)
			cmdutil.Logger(cmd, "histogram", "").Debug().
				Int("ratings", len(ratings)).
				Int("bins", len(bins)).
				Msg("Computed histogram")

			p := cmdutil.NewPrinter(cmd, app)
			switch {
			case p.Structured():
				if bins == nil {
					bins = []histogram.Bin{}
				}
				return p.Data(bins)
			case bins == nil:
				return p.Alert(alerts.NewWarning("No movie ratings available to display."))
			default:
				return histogram.Render(p.Out, bins, cmdutil.HistogramWidth(*width, app.HistogramWidth()))
			}
		},
	}

	width = cmdutil.AddWidthFlag(cmd)

	return cmd
}
