// Package remove provides the command that deletes movies from the catalog.
package remove

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/internal/appcontext"
	"github.com/agentstation/marquee/internal/cmd/alerts"
	"github.com/agentstation/marquee/internal/cmd/cmdutil"
	"github.com/agentstation/marquee/internal/cmd/completion"
	"github.com/agentstation/marquee/pkg/errors"
)

// NewCommand creates the delete command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <title>",
		Aliases: []string{"rm", "remove"},
		GroupID: "core",
		Short:   "Delete a movie from the catalog",
		Long: `Delete removes every movie whose title matches, ignoring case.

It fails when no movie matches.`,
		Example: `  marquee delete "The Matrix"
  marquee rm heat`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completion.Titles(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := cmdutil.JoinArgs(args)

			client, err := app.Client()
			if err != nil {
				return err
			}

			removed, err := client.Delete(title)
			if err != nil {
				return err
			}
			cmdutil.Logger(cmd, "delete", title).Debug().Bool("removed", removed).Msg("Delete finished")
			if !removed {
				return errors.NewNotFoundError("movie", title)
			}

			return cmdutil.NewPrinter(cmd, app).Alert(alerts.Successf("Movie '%s' deleted successfully!", title))
		},
	}
}
