// Package search provides the command that searches titles.
package search

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/internal/appcontext"
	"github.com/agentstation/marquee/internal/cmd/alerts"
	"github.com/agentstation/marquee/internal/cmd/cmdutil"
	"github.com/agentstation/marquee/internal/cmd/output"
	"github.com/agentstation/marquee/pkg/movies"
)

// NewCommand creates the search command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "search <query>",
		GroupID: "query",
		Short:   "Search movies by title",
		Long: `Search lists every movie whose title contains the query, ignoring
case. When none does, the closest title is offered as a suggestion if it
is similar enough.`,
		Example: `  marquee search matrix
  marquee search titanik`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			query := cmdutil.JoinArgs(args)
			result, err := client.Search(query)
			if err != nil {
				return err
			}
			cmdutil.Logger(cmd, "search", "").Debug().
				Str("query", query).
				Stringer("kind", result.Kind).
				Int("score", result.Score).
				Msg("Search finished")

			p := cmdutil.NewPrinter(cmd, app)
			if p.Structured() {
				return p.Data(result)
			}

			switch result.Kind {
			case movies.KindExact:
				if err := p.Alert(alerts.NewSuccess("Exact match(es) found:")); err != nil {
					return err
				}
				return output.FormatMovies(p.Out, result.Matches, p.Format)
			case movies.KindSuggestion:
				return p.Alert(alerts.Infof("Did you mean: %s?", result.Suggestion))
			default:
				return p.Alert(alerts.NewWarning("No close matches found."))
			}
		},
	}
}
