package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/cmd/marquee/cmd/add"
	"github.com/agentstation/marquee/cmd/marquee/cmd/histogram"
	"github.com/agentstation/marquee/cmd/marquee/cmd/list"
	"github.com/agentstation/marquee/cmd/marquee/cmd/man"
	"github.com/agentstation/marquee/cmd/marquee/cmd/menu"
	"github.com/agentstation/marquee/cmd/marquee/cmd/random"
	"github.com/agentstation/marquee/cmd/marquee/cmd/rate"
	"github.com/agentstation/marquee/cmd/marquee/cmd/remove"
	"github.com/agentstation/marquee/cmd/marquee/cmd/search"
	"github.com/agentstation/marquee/cmd/marquee/cmd/stats"
	"github.com/agentstation/marquee/cmd/marquee/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Catalog commands
	rootCmd.AddCommand(add.NewCommand(a))
	rootCmd.AddCommand(remove.NewCommand(a))
	rootCmd.AddCommand(rate.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(menu.NewCommand(a))

	// Query commands
	rootCmd.AddCommand(stats.NewCommand(a))
	rootCmd.AddCommand(search.NewCommand(a))
	rootCmd.AddCommand(random.NewCommand(a))
	rootCmd.AddCommand(histogram.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
	rootCmd.AddCommand(man.NewCommand(a))
}
