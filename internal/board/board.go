package board

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/roach88/eventboard/internal/event"
	"github.com/roach88/eventboard/internal/listing"
	"github.com/roach88/eventboard/internal/store"
)

// maxIDAttempts bounds retries when a generated id is already stored.
const maxIDAttempts = 16

// Board dispatches user actions against the stored collection.
//
// Thread-safety: criteria access is guarded by a mutex, but actions are not
// serialized against each other. Each action performs one Load and at most
// one Save; concurrent writers may overwrite each other.
type Board struct {
	events       *store.Events
	clock        Clock
	ids          event.IDGenerator
	logger       *slog.Logger
	messageTTL   time.Duration
	highlightTTL time.Duration

	mu       sync.Mutex
	criteria map[listing.PanelID]listing.Criteria
}

// Option configures a Board.
type Option func(*Board)

// WithClock sets the source of today's date. Default: SystemClock in UTC.
func WithClock(c Clock) Option {
	return func(b *Board) {
		b.clock = c
	}
}

// WithIDGenerator sets the id source for new events.
// Default: event.TimestampGenerator.
func WithIDGenerator(g event.IDGenerator) Option {
	return func(b *Board) {
		b.ids = g
	}
}

// WithLogger sets the logger. Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) {
		b.logger = l
	}
}

// WithMessageTTL sets how long messages stay visible.
func WithMessageTTL(d time.Duration) Option {
	return func(b *Board) {
		b.messageTTL = d
	}
}

// WithHighlightTTL sets how long the new-card highlight lasts.
func WithHighlightTTL(d time.Duration) Option {
	return func(b *Board) {
		b.highlightTTL = d
	}
}

// WithCriteria sets the initial criteria of a panel.
func WithCriteria(panel listing.PanelID, c listing.Criteria) Option {
	return func(b *Board) {
		b.criteria[panel] = c
	}
}

// New creates a Board over the given accessor.
func New(events *store.Events, opts ...Option) *Board {
	b := &Board{
		events:       events,
		clock:        SystemClock{},
		ids:          &event.TimestampGenerator{},
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		messageTTL:   DefaultMessageTTL,
		highlightTTL: DefaultHighlightTTL,
		criteria:     make(map[listing.PanelID]listing.Criteria),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Today returns the date the board classifies events against.
func (b *Board) Today() string {
	return b.clock.Today()
}

// Events returns the stored collection in insertion order.
func (b *Board) Events(ctx context.Context) []event.Event {
	return b.events.Load(ctx)
}

// Criteria returns the current criteria of a panel.
func (b *Board) Criteria(panel listing.PanelID) listing.Criteria {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.criteria[panel]
}

// SetCriteria replaces a panel's criteria and re-renders.
// An unknown filter mode is rejected and the previous criteria are kept.
func (b *Board) SetCriteria(ctx context.Context, panel listing.PanelID, c listing.Criteria) (listing.Screen, error) {
	mode, err := listing.ParseFilterMode(string(c.Mode))
	if err != nil {
		return listing.Screen{}, fmt.Errorf("set criteria: %w", err)
	}
	c.Mode = mode

	b.mu.Lock()
	b.criteria[panel] = c
	b.mu.Unlock()

	b.logger.Debug("criteria changed", "panel", panel, "search", c.Search, "mode", c.Mode, "date", c.Date)
	return b.Screen(ctx), nil
}

// Screen renders both panels from the stored collection.
func (b *Board) Screen(ctx context.Context) listing.Screen {
	return b.render(b.events.Load(ctx))
}

func (b *Board) render(events []event.Event) listing.Screen {
	b.mu.Lock()
	home, manage := b.criteria[listing.PanelHome], b.criteria[listing.PanelManage]
	b.mu.Unlock()
	return listing.RenderScreen(events, home, manage, b.clock.Today())
}

// Create validates d and appends a new event.
//
// On a validation failure the returned Outcome carries the error message for
// the create form and err is a *event.ValidationError; nothing is stored.
func (b *Board) Create(ctx context.Context, d event.Draft) (Outcome, error) {
	if err := d.Validate(); err != nil {
		return b.rejected(TargetCreateForm), err
	}

	events := b.events.Load(ctx)
	id, err := b.nextID(events)
	if err != nil {
		return Outcome{}, err
	}

	e := event.New(id, d)
	events = append(events, e)
	if err := b.events.Save(ctx, events); err != nil {
		return Outcome{}, fmt.Errorf("create event: %w", err)
	}
	b.logger.Info("event created", "id", e.ID, "date", e.Date)

	screen := b.render(events)
	return Outcome{
		Event:     &e,
		Form:      &event.Draft{},
		Screen:    &screen,
		Message:   b.message(MsgCreated, KindSuccess, TargetCreateForm),
		Highlight: &Highlight{EventID: e.ID, Effect: EffectPulse, DismissAfter: b.highlightTTL},
	}, nil
}

// EditForm returns the current values of an event, for pre-filling the
// edit form.
func (b *Board) EditForm(ctx context.Context, id string) (event.Draft, error) {
	events := b.events.Load(ctx)
	i := event.IndexOf(events, id)
	if i < 0 {
		return event.Draft{}, fmt.Errorf("edit %q: %w", id, event.ErrNotFound)
	}
	return events[i].Draft(), nil
}

// Edit replaces the fields of the event with the given id. The event keeps
// its id and its position in the stored collection.
//
// Validation failures behave as in Create, addressed to the edit form. An
// unknown id returns event.ErrNotFound and stores nothing.
func (b *Board) Edit(ctx context.Context, id string, d event.Draft) (Outcome, error) {
	if err := d.Validate(); err != nil {
		return b.rejected(TargetEditForm), err
	}

	events := b.events.Load(ctx)
	i := event.IndexOf(events, id)
	if i < 0 {
		return Outcome{}, fmt.Errorf("edit %q: %w", id, event.ErrNotFound)
	}

	events[i] = events[i].Apply(d.Normalize())
	if err := b.events.Save(ctx, events); err != nil {
		return Outcome{}, fmt.Errorf("edit event: %w", err)
	}
	b.logger.Info("event updated", "id", id)

	e := events[i]
	screen := b.render(events)
	return Outcome{
		Event:   &e,
		Screen:  &screen,
		Message: b.message(MsgUpdated, KindSuccess, TargetManage),
	}, nil
}

// Delete removes the event with the given id. An unknown id leaves the
// collection unchanged and is not an error.
//
// Outcome.Event is the removed event, or nil when nothing matched.
func (b *Board) Delete(ctx context.Context, id string) (Outcome, error) {
	events := b.events.Load(ctx)

	var removed *event.Event
	if i := event.IndexOf(events, id); i >= 0 {
		e := events[i]
		removed = &e
	}
	events = slices.DeleteFunc(events, func(e event.Event) bool {
		return e.ID == id
	})

	if err := b.events.Save(ctx, events); err != nil {
		return Outcome{}, fmt.Errorf("delete event: %w", err)
	}
	if removed != nil {
		b.logger.Info("event deleted", "id", id)
	} else {
		b.logger.Debug("delete matched no event", "id", id)
	}

	screen := b.render(events)
	return Outcome{Event: removed, Screen: &screen}, nil
}

// ImportResult counts what an import did.
type ImportResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// Import stores incoming events. With replace the collection is overwritten;
// otherwise events are appended and those whose id is already present are
// skipped. Incoming events are stored as given, without normalization.
// Replacing with an empty document removes the storage key.
func (b *Board) Import(ctx context.Context, incoming []event.Event, replace bool) (ImportResult, error) {
	if replace && len(incoming) == 0 {
		if err := b.events.Clear(ctx); err != nil {
			return ImportResult{}, fmt.Errorf("import events: %w", err)
		}
		b.logger.Info("events cleared by import", "key", b.events.Key())
		return ImportResult{}, nil
	}

	var events []event.Event
	if !replace {
		events = b.events.Load(ctx)
	}

	seen := make(map[string]bool, len(events)+len(incoming))
	for _, e := range events {
		seen[e.ID] = true
	}

	var res ImportResult
	for _, e := range incoming {
		if seen[e.ID] {
			res.Skipped++
			continue
		}
		seen[e.ID] = true
		events = append(events, e)
		res.Added++
	}

	if err := b.events.Save(ctx, events); err != nil {
		return ImportResult{}, fmt.Errorf("import events: %w", err)
	}
	b.logger.Info("events imported", "added", res.Added, "skipped", res.Skipped, "replace", replace)
	return res, nil
}

func (b *Board) nextID(events []event.Event) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := b.ids.Generate()
		if event.IndexOf(events, id) < 0 {
			return id, nil
		}
		b.logger.Debug("generated id already stored, retrying", "id", id, "attempt", attempt+1)
	}
	return "", ErrIDExhausted
}

func (b *Board) rejected(target Target) Outcome {
	return Outcome{Message: b.message(MsgFillAllFields, KindError, target)}
}

func (b *Board) message(text string, kind MessageKind, target Target) *Message {
	return &Message{Text: text, Kind: kind, Target: target, DismissAfter: b.messageTTL}
}
