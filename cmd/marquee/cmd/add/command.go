// Package add provides the command that adds a movie to the catalog.
package add

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/internal/appcontext"
	"github.com/agentstation/marquee/internal/cmd/alerts"
	"github.com/agentstation/marquee/internal/cmd/cmdutil"
	"github.com/agentstation/marquee/pkg/errors"
)

// NewCommand creates the add command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		rating *float64
		year   *int
	)

	cmd := &cobra.Command{
		Use:     "add <title>",
		GroupID: "core",
		Short:   "Add a movie to the catalog",
		Long: `Add stores a new movie with its rating and release year.

Titles are unique ignoring case; adding a title that is already in the
catalog fails. Ratings must be between 0 and 10 and years between 1800
and 2100.`,
		Example: `  marquee add "The Matrix" --rating 9 --year 1999
  marquee add Heat -r 8.3 -y 1995`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, cmdutil.JoinArgs(args), *rating, *year)
		},
	}

	rating = cmdutil.AddRatingFlag(cmd)
	year = cmdutil.AddYearFlag(cmd)

	return cmd
}

func run(cmd *cobra.Command, app appcontext.Interface, title string, rating float64, year int) error {
	title, err := cmdutil.ValidateMovie(title, rating, year)
	if err != nil {
		return err
	}

	log := cmdutil.Logger(cmd, "add", title)
	log.Debug().Float64("rating", rating).Int("year", year).Msg("Adding movie")

	client, err := app.Client()
	if err != nil {
		return err
	}

	exists, err := client.Exists(title)
	if err != nil {
		return err
	}
	if exists {
		log.Debug().Msg("Movie already in catalog")
		return errors.NewAlreadyExistsError("movie", title)
	}

	if err := client.Add(title, rating, year); err != nil {
		return err
	}

	return cmdutil.NewPrinter(cmd, app).Alert(alerts.Successf("Movie '%s' added successfully!", title))
}
