// Package board implements the user actions of the event manager.
//
// A Board owns the event accessor and the criteria of both panels. Every
// action is one read-modify-write of the stored collection followed by a
// full re-render of both panels:
//
//	b := board.New(store.NewEvents(kv, "events", logger), board.WithLogger(logger))
//	out, err := b.Create(ctx, draft)
//
// Actions return an Outcome describing what the host UI should do next:
// the new screen, a message to show, a card to highlight. Messages and
// highlights carry a DismissAfter duration; the board itself never waits.
package board
