// Package cmdutil provides output and flag helpers shared by marquee commands.
package cmdutil

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/internal/appcontext"
	"github.com/agentstation/marquee/internal/cmd/alerts"
	"github.com/agentstation/marquee/internal/cmd/output"
	"github.com/agentstation/marquee/pkg/logging"
)

// Printer writes command results in the configured format.
type Printer struct {
	Out    io.Writer
	Format output.Format
	alerts *alerts.FormatWriter
}

// NewPrinter creates a Printer writing to the command's output stream.
func NewPrinter(cmd *cobra.Command, app appcontext.Interface) *Printer {
	out := cmd.OutOrStdout()
	format := output.DetectFormat(app.OutputFormat())

	aw := alerts.NewFormatWriter(out, format)
	if app.NoColor() {
		aw.WithColor(false)
	}

	return &Printer{
		Out:    out,
		Format: format,
		alerts: aw,
	}
}

// Structured reports whether results should be machine-readable.
func (p *Printer) Structured() bool {
	return !p.Format.IsTable()
}

// Alert writes a status line.
func (p *Printer) Alert(a *alerts.Alert) error {
	return p.alerts.WriteAlert(a)
}

// Data writes data in the configured format.
func (p *Printer) Data(data any) error {
	return output.FormatAny(p.Out, data, p.Format)
}

// JoinArgs joins positional arguments into a single title, so that
// unquoted multi-word titles work.
func JoinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// Logger returns the logger carried by the command's context, tagged with
// the operation and, when non-empty, the movie title.
func Logger(cmd *cobra.Command, operation, title string) *zerolog.Logger {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithOperation(ctx, operation)
	if title != "" {
		ctx = logging.WithTitle(ctx, title)
	}
	return logging.FromContext(ctx)
}
