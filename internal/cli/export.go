package cli

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/eventboard/internal/exchange"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	FormatOut string // json | csv | ics
	Output    string // output file; empty writes to stdout
}

// ExportSummary describes a completed export to a file.
type ExportSummary struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Count  int    `json:"count"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored events",
		Long: `Write every stored event in the chosen format.

Formats:
  json - the stored array, indented (can be read back by import)
  csv  - header row id,title,date,location,description
  ics  - iCalendar with one all-day event per entry

Without -o the document is written to stdout.

Examples:
  eventboard export > events.json
  eventboard export --format-out ics -o events.ics`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.FormatOut, "format-out", string(exchange.FormatJSON), "export format (json|csv|ics)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	format, err := exchange.ParseFormat(opts.FormatOut)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeCriteriaInvalid, err.Error(), nil)
	}

	s, err := openSession(opts.RootOptions, cmd, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	events := s.board.Events(cmd.Context())

	var buf bytes.Buffer
	if err := exchange.Export(&buf, events, format); err != nil {
		return fail(formatter, ExitCommandError, ErrCodeGeneric, "failed to encode events", err.Error())
	}

	if opts.Output == "" {
		if _, err := formatter.Writer.Write(buf.Bytes()); err != nil {
			return fail(formatter, ExitCommandError, ErrCodeWriteFailed, "failed to write export", err.Error())
		}
		return nil
	}

	if err := os.WriteFile(opts.Output, buf.Bytes(), 0644); err != nil {
		return fail(formatter, ExitCommandError, ErrCodeWriteFailed, "failed to write export", err.Error())
	}
	s.logger.Debug("events exported", "path", opts.Output, "format", format, "count", len(events))

	summary := ExportSummary{Path: opts.Output, Format: string(format), Count: len(events)}
	return formatter.Success(summary, func(t *textRenderer) {
		t.Success("Exported %d events to %s", summary.Count, summary.Path)
	})
}
