package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/eventboard/internal/event"
	"github.com/roach88/eventboard/internal/listing"
)

// EditOptions holds flags for the edit command.
type EditOptions struct {
	*RootOptions
	Draft event.Draft
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an event",
		Long: `Replace the fields of an existing event.

The form is pre-filled with the event's current values; only the flags you
pass change. The event keeps its id and its place in the stored list.

Exit codes:
  0 - Event updated
  1 - No event with that id, or a field was left empty
  2 - Command error (database unavailable, etc.)

Examples:
  eventboard edit 1718000000000 --location "Town Hall"
  eventboard edit 1718000000000 --title "Book Club (July)" --date 2025-07-13`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, args[0], cmd)
		},
	}

	addDraftFlags(cmd, &opts.Draft)

	return cmd
}

func runEdit(opts *EditOptions, id string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	s, err := openSession(opts.RootOptions, cmd, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	form, err := s.board.EditForm(ctx, id)
	if err != nil {
		if errors.Is(err, event.ErrNotFound) {
			return fail(formatter, ExitFailure, ErrCodeEventNotFound, fmt.Sprintf("event not found: %s", id), nil)
		}
		return fail(formatter, ExitFailure, ErrCodeGeneric, err.Error(), nil)
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		form.Title = opts.Draft.Title
	}
	if flags.Changed("date") {
		form.Date = opts.Draft.Date
	}
	if flags.Changed("location") {
		form.Location = opts.Draft.Location
	}
	if flags.Changed("description") {
		form.Description = opts.Draft.Description
	}

	out, err := s.board.Edit(ctx, id, form)
	if err != nil {
		return reportActionError(formatter, out, err)
	}

	return formatter.Success(out, func(t *textRenderer) {
		t.Message(out.Message)
		fmt.Fprintln(t.w)
		t.Screen(*out.Screen, []listing.PanelID{listing.PanelManage})
	})
}
