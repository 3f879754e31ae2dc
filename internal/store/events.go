package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/eventboard/internal/event"
)

// DefaultKey is the key the event collection is stored under.
const DefaultKey = "events"

// Events reads and writes the full event collection under a single key.
//
// There are no partial updates: every Save rewrites the whole array. The
// accessor does no locking; callers run one Load followed by one Save per
// user action.
type Events struct {
	kv     KV
	key    string
	logger *slog.Logger
}

// NewEvents returns an accessor for the collection stored under key in kv.
// An empty key selects DefaultKey; a nil logger discards output.
func NewEvents(kv KV, key string, logger *slog.Logger) *Events {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Events{kv: kv, key: key, logger: logger}
}

// Key returns the storage key in use.
func (e *Events) Key() string {
	return e.key
}

// Load returns the stored events in insertion order.
//
// A missing key, a read failure, or content that is not a JSON array of
// event records all yield an empty, non-nil slice. The failure is logged at
// debug level and never returned.
func (e *Events) Load(ctx context.Context) []event.Event {
	raw, ok, err := e.kv.Get(ctx, e.key)
	if err != nil {
		e.logger.Debug("event storage read failed, using empty collection", "key", e.key, "error", err)
		return []event.Event{}
	}
	if !ok {
		return []event.Event{}
	}

	events, err := Decode([]byte(raw))
	if err != nil {
		e.logger.Debug("stored events malformed, using empty collection", "key", e.key, "error", err)
		return []event.Event{}
	}
	return events
}

// Save overwrites the stored collection with events.
func (e *Events) Save(ctx context.Context, events []event.Event) error {
	data, err := Encode(events)
	if err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	if err := e.kv.Put(ctx, e.key, string(data)); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	e.logger.Debug("events saved", "key", e.key, "count", len(events))
	return nil
}

// Clear removes the storage key. A later Load sees an absent key and
// returns an empty collection.
func (e *Events) Clear(ctx context.Context) error {
	if err := e.kv.Delete(ctx, e.key); err != nil {
		return fmt.Errorf("clear events: %w", err)
	}
	e.logger.Debug("events cleared", "key", e.key)
	return nil
}

// Encode serializes events as a compact JSON array.
// HTML escaping is disabled so stored text matches what was entered.
func Encode(events []event.Event) ([]byte, error) {
	if events == nil {
		events = []event.Event{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(events); err != nil {
		return nil, fmt.Errorf("encode events: %w", err)
	}
	// Encoder adds a trailing newline, remove it
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode parses a JSON array of events. A JSON null decodes to an empty
// collection.
func Decode(data []byte) ([]event.Event, error) {
	var events []event.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	if events == nil {
		events = []event.Event{}
	}
	return events, nil
}
