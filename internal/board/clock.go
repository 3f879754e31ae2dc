package board

import (
	"fmt"
	"time"

	"github.com/roach88/eventboard/internal/event"
)

// Clock reports the current calendar date in event.DateLayout form.
type Clock interface {
	Today() string
}

// SystemClock reads the wall clock in a fixed location.
//
// The zero value reports the UTC date, which is what an ISO timestamp of
// "now" truncated to its date part yields.
type SystemClock struct {
	Location *time.Location
	Now      func() time.Time
}

// NewSystemClock returns a clock for the named IANA time zone.
// An empty name selects UTC.
func NewSystemClock(tz string) (SystemClock, error) {
	if tz == "" {
		return SystemClock{Location: time.UTC}, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return SystemClock{}, fmt.Errorf("load time zone %q: %w", tz, err)
	}
	return SystemClock{Location: loc}, nil
}

// Today returns the current date.
func (c SystemClock) Today() string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc).Format(event.DateLayout)
}

// FixedDate is a Clock that always reports the same date.
type FixedDate string

// Today returns the fixed date.
func (d FixedDate) Today() string {
	return string(d)
}
