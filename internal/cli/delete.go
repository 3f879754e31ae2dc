package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/eventboard/internal/listing"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an event",
		Long: `Delete the event with the given id.

There is no confirmation and no undo. Deleting an id that does not exist
changes nothing and is not an error.

Examples:
  eventboard delete 1718000000000`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runDelete(opts *RootOptions, id string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	s, err := openSession(opts, cmd, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	out, err := s.board.Delete(cmd.Context(), id)
	if err != nil {
		return reportActionError(formatter, out, err)
	}

	return formatter.Success(out, func(t *textRenderer) {
		if out.Event != nil {
			t.Success("Deleted %q (%s)", out.Event.Title, id)
		} else {
			fmt.Fprintf(t.w, "No event with id %s; nothing deleted\n", id)
		}
		fmt.Fprintln(t.w)
		t.Screen(*out.Screen, []listing.PanelID{listing.PanelManage})
	})
}
