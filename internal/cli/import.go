package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/eventboard/internal/exchange"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Replace bool // overwrite instead of append
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import events from a JSON file",
		Long: `Read a JSON array of events and store it.

The file is checked against the event schema first: every record needs a
non-empty id, title, location and description and a YYYY-MM-DD date. If any
record fails, nothing is stored.

By default events are appended and records whose id is already stored are
skipped. With --replace the stored list is overwritten, and an empty array
clears it.

Exit codes:
  0 - Events stored
  1 - The file failed schema validation
  2 - Command error (file not found, database unavailable, etc.)

Examples:
  eventboard import events.json
  eventboard import backup.json --replace`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Replace, "replace", false, "overwrite stored events instead of appending")

	return cmd
}

func runImport(opts *ImportOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fail(formatter, ExitCommandError, ErrCodeNotFound, fmt.Sprintf("file not found: %s", path), nil)
		}
		return fail(formatter, ExitCommandError, ErrCodeGeneric, "failed to open file", err.Error())
	}
	defer f.Close()

	incoming, err := exchange.Import(f, path)
	if err != nil {
		var schemaErr *exchange.SchemaError
		if errors.As(err, &schemaErr) {
			return fail(formatter, ExitFailure, ErrCodeImportSchema, "import file failed schema validation", schemaErr.Problems)
		}
		return fail(formatter, ExitCommandError, ErrCodeGeneric, "failed to read import file", err.Error())
	}
	formatter.VerboseLog("Read %d events from %s", len(incoming), path)

	s, err := openSession(opts.RootOptions, cmd, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.board.Import(cmd.Context(), incoming, opts.Replace)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeWriteFailed, "failed to save events", err.Error())
	}

	return formatter.Success(res, func(t *textRenderer) {
		if opts.Replace && len(incoming) == 0 {
			t.Success("Cleared stored events")
			return
		}
		t.Success("Imported %d events (%d skipped)", res.Added, res.Skipped)
	})
}
