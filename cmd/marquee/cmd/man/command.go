// Package man provides the hidden command that renders the marquee man page.
package man

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/agentstation/marquee/internal/appcontext"
)

// NewCommand creates the man command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Generate man page",
		Long:   `Generate the marquee(1) man page for the whole command tree on stdout.`,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := cmd.Root()
			header := &doc.GenManHeader{
				Title:   strings.ToUpper(root.Name()),
				Section: "1",
				Source:  "marquee " + app.Version(),
				Manual:  "marquee Manual",
			}
			return doc.GenMan(root, header, cmd.OutOrStdout())
		},
	}
}
