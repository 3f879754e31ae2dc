package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/roach88/eventboard/internal/event"
	"github.com/roach88/eventboard/internal/store"
	"github.com/roach88/eventboard/internal/testutil"
)

// newTestOptions returns root options over a fresh database with a fixed
// date and "evt-N" ids.
func newTestOptions(t *testing.T, format string) *RootOptions {
	t.Helper()
	return &RootOptions{
		Format:      format,
		Database:    filepath.Join(t.TempDir(), "events.db"),
		Today:       testutil.SampleToday,
		IDGenerator: testutil.NewSequenceGenerator("evt-"),
	}
}

// execute runs cmd with args and returns what it wrote to stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func seedEvents(t *testing.T, opts *RootOptions, events []event.Event) {
	t.Helper()
	st, err := store.Open(opts.Database)
	require.NoError(t, err)
	defer st.Close()
	require.NoError(t, store.NewEvents(st, "", nil).Save(context.Background(), events))
}

func storedEvents(t *testing.T, opts *RootOptions) []event.Event {
	t.Helper()
	st, err := store.Open(opts.Database)
	require.NoError(t, err)
	defer st.Close()
	return store.NewEvents(st, "", nil).Load(context.Background())
}

// decodeResponse unmarshals a CLIResponse whose data is decoded into data.
func decodeResponse(t *testing.T, out string, data any) CLIResponse {
	t.Helper()
	var raw struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
		Error  *CLIError       `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &raw), out)
	if data != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return CLIResponse{Status: raw.Status, Error: raw.Error}
}

func cardTitles(cards []cardJSON) []string {
	titles := make([]string, 0, len(cards))
	for _, c := range cards {
		titles = append(titles, c.Title)
	}
	return titles
}

type cardJSON struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	DisplayDate string `json:"display_date"`
	Past        bool   `json:"past"`
	Actions     []struct {
		Kind    string `json:"kind"`
		EventID string `json:"event_id"`
	} `json:"actions"`
}

type viewJSON struct {
	Panel       string     `json:"panel"`
	Title       string     `json:"title"`
	Cards       []cardJSON `json:"cards"`
	Placeholder string     `json:"placeholder"`
}

type screenJSON struct {
	Home   viewJSON `json:"home"`
	Manage viewJSON `json:"manage"`
}

type messageJSON struct {
	Text         string `json:"text"`
	Kind         string `json:"kind"`
	Target       string `json:"target"`
	DismissAfter string `json:"dismiss_after"`
}

type outcomeJSON struct {
	Event     *event.Event `json:"event"`
	Form      *event.Draft `json:"form"`
	Screen    *screenJSON  `json:"screen"`
	Message   *messageJSON `json:"message"`
	Highlight *struct {
		EventID      string `json:"event_id"`
		Effect       string `json:"effect"`
		DismissAfter string `json:"dismiss_after"`
	} `json:"highlight"`
}
