// Package version provides the version command.
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/internal/appcontext"
	"github.com/agentstation/marquee/internal/cmd/cmdutil"
)

// Info is the structured form of the version output.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	BuiltBy   string `json:"built_by" yaml:"built_by"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// NewCommand creates the version command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := Info{
				Version:   app.Version(),
				Commit:    app.Commit(),
				Date:      app.Date(),
				BuiltBy:   app.BuiltBy(),
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			p := cmdutil.NewPrinter(cmd, app)
			if p.Structured() {
				return p.Data(info)
			}

			fmt.Fprintf(p.Out, "marquee version %s\n", info.Version)
			fmt.Fprintf(p.Out, "commit: %s\n", info.Commit)
			fmt.Fprintf(p.Out, "built: %s\n", info.Date)
			fmt.Fprintf(p.Out, "built by: %s\n", info.BuiltBy)
			fmt.Fprintf(p.Out, "go version: %s\n", info.GoVersion)
			fmt.Fprintf(p.Out, "platform: %s\n", info.Platform)
			return nil
		},
	}
}
