// Package list provides the command that lists the catalog.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/internal/appcontext"
	"github.com/agentstation/marquee/internal/cmd/alerts"
	"github.com/agentstation/marquee/internal/cmd/cmdutil"
	"github.com/agentstation/marquee/internal/cmd/output"
	"github.com/agentstation/marquee/pkg/movies"
)

// NewCommand creates the list command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var sorted bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		GroupID: "core",
		Short:   "List all movies",
		Long: `List shows every movie in catalog order, or highest rated first
with --sorted. Movies with the same rating keep their catalog order.`,
		Example: `  marquee list
  marquee list --sorted
  marquee list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			var ms []movies.Movie
			if sorted {
				ms, err = client.SortedByRating()
			} else {
				ms, err = client.List()
			}
			if err != nil {
				return err
			}
			cmdutil.Logger(cmd, "list", "").Debug().
				Bool("sorted", sorted).
				Int("count", len(ms)).
				Msg("Listing movies")

			p := cmdutil.NewPrinter(cmd, app)
			if len(ms) == 0 && !p.Structured() {
				return p.Alert(alerts.NewWarning("No movies found."))
			}
			return output.FormatMovies(p.Out, ms, p.Format)
		},
	}

	cmd.Flags().BoolVarP(&sorted, "sorted", "s", false, "sort by rating, highest first")

	return cmd
}
