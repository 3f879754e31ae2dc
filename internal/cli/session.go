package cli

import (
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/eventboard/internal/board"
	"github.com/roach88/eventboard/internal/config"
	"github.com/roach88/eventboard/internal/event"
	"github.com/roach88/eventboard/internal/store"
)

// session is one command's view of the database: config, store and board.
// The command that opens a session closes it.
type session struct {
	config *config.Config
	store  *store.Store
	board  *board.Board
	logger *slog.Logger
}

// newFormatter builds the output formatter for a command.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// newLogger configures slog on w: debug level when verbose, info otherwise.
func newLogger(opts *RootOptions, w io.Writer) *slog.Logger {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

// openSession loads the configuration, opens the SQLite store and builds the
// board. Failures are reported through f and returned as an ExitError.
func openSession(opts *RootOptions, cmd *cobra.Command, f *OutputFormatter) (*session, error) {
	logger := newLogger(opts, cmd.ErrOrStderr())

	cfg := config.DefaultConfig()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return nil, fail(f, ExitCommandError, ErrCodeGeneric, "failed to load config", err.Error())
		}
		cfg = loaded
	}
	if opts.Database != "" {
		cfg.Database = opts.Database
	}
	f.VerboseLog("Using database %s (key %q)", cfg.Database, cfg.StorageKey)

	clock, err := sessionClock(opts, cfg)
	if err != nil {
		return nil, fail(f, ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}

	st, err := store.Open(cfg.Database)
	if err != nil {
		return nil, fail(f, ExitCommandError, ErrCodeStoreUnavailable, "failed to open database", err.Error())
	}

	ids := opts.IDGenerator
	if ids == nil {
		ids = event.NewGenerator(cfg.IDScheme)
	}

	b := board.New(store.NewEvents(st, cfg.StorageKey, logger),
		board.WithClock(clock),
		board.WithIDGenerator(ids),
		board.WithLogger(logger),
		board.WithMessageTTL(cfg.MessageTTL),
		board.WithHighlightTTL(cfg.HighlightTTL),
	)

	return &session{config: cfg, store: st, board: b, logger: logger}, nil
}

// sessionClock returns the --today date when set, otherwise the wall clock in
// the configured time zone.
func sessionClock(opts *RootOptions, cfg *config.Config) (board.Clock, error) {
	if opts.Today != "" {
		if _, err := time.Parse(event.DateLayout, opts.Today); err != nil {
			return nil, NewExitError(ExitCommandError, "invalid --today date "+opts.Today+" (want YYYY-MM-DD)")
		}
		return board.FixedDate(opts.Today), nil
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return board.SystemClock{Location: loc}, nil
}

// Close releases the database.
func (s *session) Close() error {
	return s.store.Close()
}
