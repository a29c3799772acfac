// Package rate provides the command that changes a movie's rating.
package rate

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/internal/appcontext"
	"github.com/agentstation/marquee/internal/cmd/alerts"
	"github.com/agentstation/marquee/internal/cmd/cmdutil"
	"github.com/agentstation/marquee/internal/cmd/completion"
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/movies"
)

// NewCommand creates the rate command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var rating *float64

	cmd := &cobra.Command{
		Use:     "rate <title>",
		GroupID: "core",
		Short:   "Update the rating of a movie",
		Long: `Rate sets a new rating on the first movie whose title matches,
ignoring case. It fails when no movie matches.`,
		Example: `  marquee rate "The Matrix" --rating 9.5`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completion.Titles(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := cmdutil.JoinArgs(args)
			if err := movies.ValidateRating(*rating); err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			updated, err := client.UpdateRating(title, *rating)
			if err != nil {
				return err
			}
			cmdutil.Logger(cmd, "rate", title).Debug().
				Float64("rating", *rating).
				Bool("updated", updated).
				Msg("Rating update finished")
			if !updated {
				return errors.NewNotFoundError("movie", title)
			}

			return cmdutil.NewPrinter(cmd, app).Alert(alerts.Successf("Movie '%s' rating updated successfully!", title))
		},
	}

	rating = cmdutil.AddRatingFlag(cmd)

	return cmd
}
