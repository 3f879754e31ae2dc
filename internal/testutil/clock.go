package testutil

import (
	"sync"
	"time"

	"github.com/roach88/eventboard/internal/event"
)

// FixedClock reports a settable date instead of reading the wall clock.
//
// The same scenario run against the same FixedClock classifies every event
// identically, which keeps golden snapshots stable across days.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu    sync.Mutex
	today time.Time
}

// NewFixedClock creates a clock pinned to date (YYYY-MM-DD).
//
// Panics if date is not a valid date; fixtures are expected to be correct.
func NewFixedClock(date string) *FixedClock {
	t, err := time.Parse(event.DateLayout, date)
	if err != nil {
		panic("testutil: invalid fixed date " + date)
	}
	return &FixedClock{today: t}
}

// Today returns the pinned date.
func (c *FixedClock) Today() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.today.Format(event.DateLayout)
}

// Advance moves the pinned date by days (negative moves backwards).
func (c *FixedClock) Advance(days int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.today = c.today.AddDate(0, 0, days)
}
