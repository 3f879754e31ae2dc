package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/eventboard/internal/board"
	"github.com/roach88/eventboard/internal/event"
	"github.com/roach88/eventboard/internal/listing"
)

// CreateOptions holds flags for the create command.
type CreateOptions struct {
	*RootOptions
	Draft event.Draft
}

// NewCreateCommand creates the create command.
func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CreateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event",
		Long: `Create an event from the given fields.

All four fields are required. Surrounding whitespace is trimmed before the
check, so a field of only spaces counts as empty.

Exit codes:
  0 - Event created
  1 - A field was empty; nothing was stored
  2 - Command error (database unavailable, etc.)

Examples:
  eventboard create --title "Book Club" --date 2025-06-15 \
    --location Library --description "June pick"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(opts, cmd)
		},
	}

	addDraftFlags(cmd, &opts.Draft)

	return cmd
}

// addDraftFlags binds the four event fields to flags.
func addDraftFlags(cmd *cobra.Command, d *event.Draft) {
	cmd.Flags().StringVar(&d.Title, "title", "", "event title")
	cmd.Flags().StringVar(&d.Date, "date", "", "event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&d.Location, "location", "", "event location")
	cmd.Flags().StringVar(&d.Description, "description", "", "event description")
}

func runCreate(opts *CreateOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	s, err := openSession(opts.RootOptions, cmd, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	out, err := s.board.Create(cmd.Context(), opts.Draft)
	if err != nil {
		return reportActionError(formatter, out, err)
	}

	return formatter.Success(out, func(t *textRenderer) {
		t.Message(out.Message)
		fmt.Fprintf(t.w, "  id: %s\n\n", out.Event.ID)
		t.Screen(*out.Screen, []listing.PanelID{listing.PanelManage})
	})
}

// reportActionError maps a failed board action to CLI output and exit code.
func reportActionError(f *OutputFormatter, out board.Outcome, err error) error {
	var verr *event.ValidationError
	switch {
	case errors.As(err, &verr):
		return fail(f, ExitFailure, ErrCodeValidation, out.Message.Text, map[string]any{
			"fields": verr.Fields,
			"target": out.Message.Target,
		})
	case errors.Is(err, event.ErrNotFound):
		return fail(f, ExitFailure, ErrCodeEventNotFound, err.Error(), nil)
	default:
		return fail(f, ExitCommandError, ErrCodeWriteFailed, "failed to save events", err.Error())
	}
}
