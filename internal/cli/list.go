package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/eventboard/internal/listing"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Panel  string           // "home", "manage" or "both"
	Manage listing.Criteria // criteria of the manage panel
	Home   listing.Criteria // criteria of the home panel
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the home and manage panels",
		Long: `Show stored events, sorted by date.

The home panel is a read-only list. The manage panel shows edit and delete
actions for each event. Each panel has its own search, filter and date
criteria: --search/--filter/--date apply to manage, --home-* to home.

Filters:
  all      - every event (default)
  upcoming - today or later
  past     - before today

Examples:
  eventboard list
  eventboard list --panel manage --search club --filter upcoming
  eventboard list --home-date 2025-06-15 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Panel, "panel", "both", "panel to show (home|manage|both)")
	addCriteriaFlags(cmd, "", &opts.Manage)
	addCriteriaFlags(cmd, "home-", &opts.Home)

	return cmd
}

func addCriteriaFlags(cmd *cobra.Command, prefix string, c *listing.Criteria) {
	panel := "manage"
	if prefix != "" {
		panel = strings.TrimSuffix(prefix, "-")
	}
	cmd.Flags().StringVar(&c.Search, prefix+"search", "", "case-insensitive title search ("+panel+" panel)")
	cmd.Flags().Var((*filterModeValue)(&c.Mode), prefix+"filter", "filter mode all|upcoming|past ("+panel+" panel)")
	cmd.Flags().StringVar(&c.Date, prefix+"date", "", "exact date YYYY-MM-DD ("+panel+" panel)")
}

// filterModeValue adapts listing.FilterMode to pflag.Value. Parsing is left
// to the board so an invalid mode is reported with the criteria error code.
type filterModeValue listing.FilterMode

func (v *filterModeValue) String() string     { return string(*v) }
func (v *filterModeValue) Set(s string) error { *v = filterModeValue(s); return nil }
func (v *filterModeValue) Type() string       { return "mode" }

// parsePanels expands the --panel flag.
func parsePanels(s string) ([]listing.PanelID, error) {
	if strings.EqualFold(strings.TrimSpace(s), "both") {
		return listing.Panels, nil
	}
	p, err := listing.ParsePanel(s)
	if err != nil {
		return nil, err
	}
	return []listing.PanelID{p}, nil
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	panels, err := parsePanels(opts.Panel)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeCriteriaInvalid, err.Error(), nil)
	}

	s, err := openSession(opts.RootOptions, cmd, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	criteria := map[listing.PanelID]listing.Criteria{
		listing.PanelHome:   opts.Home,
		listing.PanelManage: opts.Manage,
	}
	var screen listing.Screen
	for _, id := range listing.Panels {
		screen, err = s.board.SetCriteria(ctx, id, criteria[id])
		if err != nil {
			return fail(formatter, ExitCommandError, ErrCodeCriteriaInvalid, err.Error(), map[string]any{"panel": id})
		}
	}
	formatter.VerboseLog("Rendered %d stored events as of %s", len(s.board.Events(ctx)), s.board.Today())

	draw := func(t *textRenderer) { t.Screen(screen, panels) }
	if len(panels) == 1 {
		return formatter.Success(screen.View(panels[0]), draw)
	}
	return formatter.Success(screen, draw)
}
