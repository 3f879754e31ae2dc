package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/eventboard/internal/testutil"
)

func TestListCommandText(t *testing.T) {
	opts := newTestOptions(t, "text")
	seedEvents(t, opts, testutil.SampleEvents())

	out, err := execute(t, NewListCommand(opts))
	require.NoError(t, err)

	assert.Contains(t, out, "Home")
	assert.Contains(t, out, "Your Events")
	assert.Contains(t, out, "Manage Events")
	assert.Contains(t, out, "Sunday, June 15, 2025")
	assert.Contains(t, out, "[edit 1001] [delete 1001]")
	assert.Less(t, strings.Index(out, "Garden Party"), strings.Index(out, "Book Club"), "sorted by date")
}

func TestListCommandEmptyText(t *testing.T) {
	opts := newTestOptions(t, "text")

	out, err := execute(t, NewListCommand(opts))
	require.NoError(t, err)

	assert.Contains(t, out, "No events to display. Create your first event!")
	assert.Contains(t, out, "No events found matching your criteria.")
	assert.NotContains(t, out, "Your Events")
}

func TestListCommandJSONBothPanels(t *testing.T) {
	opts := newTestOptions(t, "json")
	seedEvents(t, opts, testutil.SampleEvents())

	out, err := execute(t, NewListCommand(opts), "--home-search", "GARDEN")
	require.NoError(t, err)

	var screen screenJSON
	resp := decodeResponse(t, out, &screen)
	assert.Equal(t, "ok", resp.Status)

	assert.Equal(t, "Your Events", screen.Home.Title)
	assert.Equal(t, []string{"Garden Party"}, cardTitles(screen.Home.Cards))
	assert.Empty(t, screen.Home.Cards[0].Actions)
	assert.True(t, screen.Home.Cards[0].Past)

	assert.Equal(t, []string{"Garden Party", "Book Club", "Team Offsite"}, cardTitles(screen.Manage.Cards))
	require.Len(t, screen.Manage.Cards[1].Actions, 2)
	assert.Equal(t, "edit", screen.Manage.Cards[1].Actions[0].Kind)
	assert.Equal(t, "1001", screen.Manage.Cards[1].Actions[0].EventID)
}

func TestListCommandJSONSinglePanel(t *testing.T) {
	opts := newTestOptions(t, "json")
	seedEvents(t, opts, testutil.SampleEvents())

	out, err := execute(t, NewListCommand(opts), "--panel", "manage", "--filter", "upcoming")
	require.NoError(t, err)

	var view viewJSON
	decodeResponse(t, out, &view)
	assert.Equal(t, "manage", view.Panel)
	assert.Equal(t, []string{"Book Club", "Team Offsite"}, cardTitles(view.Cards))
	assert.Empty(t, view.Placeholder)
}

func TestListCommandNoMatchPlaceholder(t *testing.T) {
	opts := newTestOptions(t, "json")
	seedEvents(t, opts, testutil.SampleEvents())

	out, err := execute(t, NewListCommand(opts), "--panel", "manage", "--date", "2025-01-01")
	require.NoError(t, err)

	var view viewJSON
	decodeResponse(t, out, &view)
	assert.Empty(t, view.Cards)
	assert.Equal(t, "No events found matching your criteria.", view.Placeholder)
}

func TestListCommandInvalidFilter(t *testing.T) {
	opts := newTestOptions(t, "text")

	out, err := execute(t, NewListCommand(opts), "--filter", "soon")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E003]")
	assert.Contains(t, out, `"soon"`)
}

func TestListCommandInvalidPanel(t *testing.T) {
	opts := newTestOptions(t, "json")

	out, err := execute(t, NewListCommand(opts), "--panel", "sidebar")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	resp := decodeResponse(t, out, nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeCriteriaInvalid, resp.Error.Code)
}

func TestParsePanels(t *testing.T) {
	panels, err := parsePanels("Both")
	require.NoError(t, err)
	assert.Len(t, panels, 2)

	panels, err = parsePanels("home")
	require.NoError(t, err)
	assert.Equal(t, "home", string(panels[0]))

	_, err = parsePanels("")
	assert.Error(t, err)
}
