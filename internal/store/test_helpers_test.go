package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/eventboard/internal/event"
)

// createTestStore creates a new file-backed store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestEvent creates an event with every field filled in.
func createTestEvent(id, title, date string) event.Event {
	return event.Event{
		ID:          id,
		Title:       title,
		Date:        date,
		Location:    "Town Hall",
		Description: "Notes for " + title,
	}
}
