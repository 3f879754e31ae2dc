package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/eventboard/internal/config"
	"github.com/roach88/eventboard/internal/store"
)

func TestSessionInvalidToday(t *testing.T) {
	opts := newTestOptions(t, "text")
	opts.Today = "10/06/2025"

	out, err := execute(t, NewListCommand(opts))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E001]")
	assert.Contains(t, out, "invalid --today date")
}

func TestSessionStoreUnavailable(t *testing.T) {
	opts := newTestOptions(t, "text")
	opts.Database = filepath.Join(t.TempDir(), "missing", "events.db")

	out, err := execute(t, NewListCommand(opts))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E002]: failed to open database")
}

func TestSessionConfigStorageKey(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("storage_key: my-events\n"), 0600))

	opts := newTestOptions(t, "text")
	opts.Config = cfgPath

	_, err := execute(t, NewCreateCommand(opts), concertArgs()...)
	require.NoError(t, err)

	st, err := store.Open(opts.Database)
	require.NoError(t, err)
	defer st.Close()

	_, ok, err := st.Get(context.Background(), store.DefaultKey)
	require.NoError(t, err)
	assert.False(t, ok, "default key untouched")

	events := store.NewEvents(st, "my-events", nil).Load(context.Background())
	require.Len(t, events, 1)
	assert.Equal(t, "Concert", events[0].Title)
}

func TestSessionConfigCreatedOnFirstRun(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "eventboard", "config.yaml")

	opts := newTestOptions(t, "text")
	opts.Config = cfgPath

	_, err := execute(t, NewListCommand(opts))
	require.NoError(t, err)
	assert.FileExists(t, cfgPath)
}

func TestSessionDatabaseFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("database: "+filepath.Join(dir, "from-config.db")+"\n"), 0600))

	opts := newTestOptions(t, "text")
	opts.Config = cfgPath

	_, err := execute(t, NewCreateCommand(opts), concertArgs()...)
	require.NoError(t, err)

	assert.Len(t, storedEvents(t, opts), 1)
	assert.NoFileExists(t, filepath.Join(dir, "from-config.db"))
}

func TestSessionClockUsesTimezone(t *testing.T) {
	opts := &RootOptions{}
	cfg := newConfigWithTimezone("Not/AZone")
	_, err := sessionClock(opts, cfg)
	assert.Error(t, err)

	opts.Today = "2025-06-10"
	clock, err := sessionClock(opts, cfg)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", clock.Today())
}

func newConfigWithTimezone(tz string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Timezone = tz
	return cfg
}
